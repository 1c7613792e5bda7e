// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvmath/compare"
)

// Root is a real root together with its algebraic multiplicity.
type Root struct {
	Value        float64
	Multiplicity int
}

// Evaluate returns the value at x of the polynomial whose coefficients are
// given from the highest degree down (Horner scheme). An empty slice
// evaluates to 0.
func Evaluate(coeffs []float64, x float64) float64 {
	var acc float64
	for _, c := range coeffs {
		acc = acc*x + c
	}

	return acc
}

// RealQuadraticRoots returns the distinct real roots of a·x² + b·x + c = 0,
// ascending.
//
// Behavior highlights:
//   - D = b²-4ac within tol of zero yields the single root -b/2a.
//   - D <= -tol yields no roots.
//   - a within tol of zero degrades to the linear equation b·x + c = 0,
//     which has no roots when b is also ≈ 0.
func RealQuadraticRoots(a, b, c, tol float64) []float64 {
	return values(quadraticRoots(a, b, c, tol))
}

// RealCubicRoots returns the distinct real roots of
// a·x³ + b·x² + c·x + d = 0, ascending. Repeated roots are reported once;
// use RealCubicRootsWithMultiplicity to recover their multiplicity.
//
// a within tol of zero degrades to RealQuadraticRoots(b, c, d, tol).
func RealCubicRoots(a, b, c, d, tol float64) []float64 {
	return values(RealCubicRootsWithMultiplicity(a, b, c, d, tol))
}

// RealCubicRootsWithMultiplicity is RealCubicRoots with multiplicities.
// When the cubic has three real roots counted with multiplicity the
// multiplicities sum to 3; a single reported simple root means the other
// two are a complex-conjugate pair (see CubicRoots).
func RealCubicRootsWithMultiplicity(a, b, c, d, tol float64) []Root {
	if compare.IsZero(a, tol) {
		return quadraticRoots(b, c, d, tol)
	}
	roots := monicCubic(b/a, c/a, d/a, tol)

	return roots
}

func quadraticRoots(a, b, c, tol float64) []Root {
	if compare.IsZero(a, tol) {
		if compare.IsZero(b, tol) {
			return []Root{}
		}

		return []Root{{Value: -c / b, Multiplicity: 1}}
	}

	disc := b*b - 4*a*c
	switch {
	case compare.IsZero(disc, tol):
		return []Root{{Value: -b / (2 * a), Multiplicity: 2}}
	case compare.IsLTZero(disc, tol):
		return []Root{}
	}

	sq := math.Sqrt(disc)
	roots := []Root{
		{Value: (-b - sq) / (2 * a), Multiplicity: 1},
		{Value: (-b + sq) / (2 * a), Multiplicity: 1},
	}
	sortRoots(roots)

	return roots
}

// monicCubic solves x³ + p·x² + q·x + r = 0 over the reals.
func monicCubic(p, q, r, tol float64) []Root {
	shift := p / 3
	a := q - p*p/3
	b := (2*p*p*p - 9*p*q + 27*r) / 27
	disc := b*b/4 + a*a*a/27

	nearZero := compare.IsZero(disc, tol)
	switch {
	case nearZero && compare.IsZero(b, tol):
		return []Root{{Value: -shift, Multiplicity: 3}}

	case nearZero && a < 0:
		// b²/4 ≈ -a³/27: one simple root and one double root.
		m := math.Sqrt(-a / 3)
		sign := math.Copysign(1, b)
		roots := []Root{
			{Value: -2*sign*m - shift, Multiplicity: 1},
			{Value: sign*m - shift, Multiplicity: 2},
		}
		sortRoots(roots)

		return roots

	case nearZero || disc > 0:
		// Rounding may leave a near-zero disc slightly negative.
		sq := math.Sqrt(math.Max(disc, 0))
		y := math.Cbrt(-b/2+sq) + math.Cbrt(-b/2-sq)

		return []Root{{Value: y - shift, Multiplicity: 1}}
	}

	// disc < 0 implies a < 0, so J lies in [0, 1] up to rounding.
	j := (b * b / 4) / (-a * a * a / 27)
	arg := math.Sqrt(j)
	if b > 0 {
		arg = -arg
	}
	phi := -math.Acos(math.Max(-1, math.Min(1, arg)))
	m := 2 * math.Sqrt(-a/3)

	roots := make([]Root, 3)
	for k := range roots {
		roots[k] = Root{Value: m*math.Cos((phi+2*math.Pi*float64(k))/3) - shift, Multiplicity: 1}
	}
	sortRoots(roots)

	return roots
}

func sortRoots(roots []Root) {
	slices.SortFunc(roots, func(x, y Root) int {
		switch {
		case x.Value < y.Value:
			return -1
		case x.Value > y.Value:
			return 1
		}

		return 0
	})
}

func values(roots []Root) []float64 {
	out := make([]float64, len(roots))
	for i, r := range roots {
		out[i] = r.Value
	}

	return out
}
