// Package rollout decides, per device, whether a release applies:
// staged rollout bucketing, targeting rule evaluation, and app
// version bounds.  Every function here is a pure predicate over its
// inputs; identical inputs always produce identical answers.
package rollout
