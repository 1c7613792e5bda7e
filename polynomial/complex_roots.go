// SPDX-License-Identifier: MIT

package polynomial

import (
	"github.com/katalvlaran/lvmath/compare"
	"github.com/katalvlaran/lvmath/complexnum"
)

// CubicRoots returns every root of a·x³ + b·x² + c·x + d = 0, repeated
// according to multiplicity: three values for a genuine cubic.
//
// Real roots come first in ascending order, followed by a complex-conjugate
// pair (positive imaginary part first) when only one real root exists.
// The pair is obtained by deflating the real root and solving the remaining
// quadratic in complex arithmetic.
//
// a within tol of zero degrades to QuadraticRoots(b, c, d, tol).
func CubicRoots(a, b, c, d, tol float64) []complexnum.Complex {
	if compare.IsZero(a, tol) {
		return QuadraticRoots(b, c, d, tol)
	}

	p, q, r := b/a, c/a, d/a
	roots := monicCubic(p, q, r, tol)
	out := expand(roots)
	if len(out) == 3 {
		return out
	}

	// x³+px²+qx+r = (x - x1)(x² + (p+x1)x + q + (p+x1)x1)
	x1 := roots[0].Value
	qb := p + x1
	qc := q + qb*x1

	return append(out, complexQuadratic(1, qb, qc)...)
}

// QuadraticRoots returns both roots of a·x² + b·x + c = 0 in complex
// arithmetic, repeated according to multiplicity. a within tol of zero
// degrades to the linear equation, which yields one or zero roots.
func QuadraticRoots(a, b, c, tol float64) []complexnum.Complex {
	if compare.IsZero(a, tol) {
		return expand(quadraticRoots(a, b, c, tol))
	}
	disc := b*b - 4*a*c
	if !compare.IsLTZero(disc, tol) {
		return expand(quadraticRoots(a, b, c, tol))
	}

	return complexQuadratic(a, b, c)
}

// complexQuadratic assumes b²-4ac < 0.
func complexQuadratic(a, b, c float64) []complexnum.Complex {
	disc := complexnum.FromReal(b*b - 4*a*c)
	sq := disc.Sqrt()
	if len(sq) == 1 {
		// Non-negative discriminant from rounding: both roots are real.
		v := complexnum.FromReal(-b).Add(sq[0]).Scale(1 / (2 * a))
		w := complexnum.FromReal(-b).Sub(sq[0]).Scale(1 / (2 * a))

		return []complexnum.Complex{w, v}
	}

	out := make([]complexnum.Complex, 0, 2)
	for _, s := range sq {
		out = append(out, complexnum.FromReal(-b).Add(s).Scale(1/(2*a)))
	}
	if out[0].Imag < out[1].Imag {
		out[0], out[1] = out[1], out[0]
	}

	return out
}

func expand(roots []Root) []complexnum.Complex {
	out := make([]complexnum.Complex, 0, 3)
	for _, r := range roots {
		for k := 0; k < r.Multiplicity; k++ {
			out = append(out, complexnum.FromReal(r.Value))
		}
	}

	return out
}
