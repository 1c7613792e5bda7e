// SPDX-License-Identifier: MIT

package compare

import "math"

// DefaultTolerance is the absolute tolerance used by the solvers of this
// module when the caller has no better estimate of the problem scale.
const DefaultTolerance = 1e-14

// IsZero reports whether |x| < eps.
func IsZero(x, eps float64) bool {
	return math.Abs(x) < eps
}

// IsGTZero reports whether x >= eps, i.e. x is positive beyond the tolerance band.
func IsGTZero(x, eps float64) bool {
	return x >= eps
}

// IsLTZero reports whether x <= -eps, i.e. x is negative beyond the tolerance band.
func IsLTZero(x, eps float64) bool {
	return x <= -eps
}

// IsEqual reports whether x and y differ by less than eps.
func IsEqual(x, y, eps float64) bool {
	return IsZero(x-y, eps)
}

// IsEqualSlices reports whether a and b have the same length and are
// elementwise equal within eps.
func IsEqualSlices(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !IsEqual(a[i], b[i], eps) {
			return false
		}
	}

	return true
}

// SelectDistinctValues returns the first-seen representative of every group
// of values that are IsEqual within eps.
//
// Complexity: O(n²) time, O(n) extra memory. Input order is preserved and
// the input slice is not modified.
func SelectDistinctValues(values []float64, eps float64) []float64 {
	out := make([]float64, 0, len(values))
	var seen bool
	for _, v := range values {
		seen = false
		for _, u := range out {
			if IsEqual(u, v, eps) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, v)
		}
	}

	return out
}
