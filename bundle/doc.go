// Package bundle provides parsing and assembly of module-registration
// bundles.
//
// [Parse] turns raw bundle text into a structured [Bundle].
//
// [Assemble] is its inverse, deterministically reconstructing bundle
// text from the structured form.
package bundle
