// Package libpatch computes and applies minimal patches between two
// parsed bundles.
//
// [Diff] produces a [Patch]; [Apply] and [ApplyVerified] apply one
// all-or-nothing; [Reverse] derives the inverse patch for rollback.
package libpatch
