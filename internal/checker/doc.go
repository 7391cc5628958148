// Package checker asserts that the version tokens of a detection schema agree
// with each other and with the build version being released.
//
// Each check produces a tagged Result. Fatal results abort the run when they
// fail; Advisory results are only reported as warnings. The check list is
// evaluated in full, every failed advisory result is logged, and the first
// failed fatal result becomes the returned error.
//
// Order of checks:
//
//  1. planned-version   (fatal, only for a non-SNAPSHOT supplied version)
//  2. release-shape     (fatal, only for a non-SNAPSHOT supplied version)
//  3. namespace-prefix  (advisory, only for a non-SNAPSHOT supplied version)
//  4. namespace         (fatal)
//  5. id                (fatal)
//
// The namespace declaration occurring exactly once is enforced earlier, during
// extraction (see package schema).
package checker
