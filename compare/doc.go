// Package compare centralizes tolerance-based scalar comparisons.
//
// Every predicate takes its tolerance explicitly; DefaultTolerance is only a
// documented starting point for callers, never an implicit fallback.
//
// Tolerance comparisons are not transitive: IsEqual(a, b) and IsEqual(b, c)
// do not imply IsEqual(a, c). The numeric routines in this module only chain
// a handful of comparisons, which keeps the drift bounded by a few eps.
package compare
