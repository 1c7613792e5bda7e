// SPDX-License-Identifier: MIT

package matrix

import "math"

// Rotg generates a plane rotation that zeroes b against a:
//
//	[ c  s ] [a]   [r]
//	[-s  c ] [b] = [0]
//
// with c² + s² = 1.
//
// Implementation follows Anderson's discontinuous rotation: the ratio is
// always taken as the smaller magnitude over the larger, so sqrt(1+t²)
// never overflows, and r carries the sign of the larger input.
//
// Tie-breaks:
//   - b == 0: (sign(a), 0, |a|), with sign(0) = +1.
//   - a == 0: (0, sign(b), |b|).
func Rotg(a, b float64) (c, s, r float64) {
	switch {
	case b == 0:
		return math.Copysign(1, a), 0, math.Abs(a)
	case a == 0:
		return 0, math.Copysign(1, b), math.Abs(b)
	case math.Abs(a) > math.Abs(b):
		t := b / a
		u := math.Copysign(math.Sqrt(1+t*t), a)
		c = 1 / u

		return c, c * t, a * u
	default:
		t := a / b
		u := math.Copysign(math.Sqrt(1+t*t), b)
		s = 1 / u

		return s * t, s, b * u
	}
}
