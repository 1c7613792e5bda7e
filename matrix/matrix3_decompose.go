// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/lvmath/complexnum"
	"github.com/katalvlaran/lvmath/polynomial"
)

// QR factors m = Q·R with Q orthogonal and R upper triangular, using
// Givens rotations.
//
// Implementation:
//   - Stage 1: copy m into R with entries below eps flushed to zero.
//   - Stage 2: for each column j, walk rows i from the bottom up to j+1 and
//     rotate rows (i-1, i) so that R(i, j) becomes zero. Pairs where both
//     entries are below eps are skipped.
//   - Stage 3: accumulate Q as the product of the transposed rotations.
//
// Options: WithEpsilon.
//
// Complexity: O(1) for fixed size (three rotations of three columns each).
func (m Matrix3) QR(opts ...Option) (q, r Matrix3) {
	o := gatherOptions(opts...)

	r = m
	for i, v := range r.Elements {
		if math.Abs(v) < o.eps {
			r.Elements[i] = 0
		}
	}
	q = NewMatrix3()

	var x, y float64
	for j := 0; j < 3; j++ {
		for i := 2; i > j; i-- {
			a, b := r.Elements[j*3+i-1], r.Elements[j*3+i]
			if math.Abs(a) < o.eps && math.Abs(b) < o.eps {
				continue
			}
			c, s, _ := Rotg(a, b)
			for k := 0; k < 3; k++ {
				// rows i-1, i of R
				x, y = r.Elements[k*3+i-1], r.Elements[k*3+i]
				r.Elements[k*3+i-1] = c*x + s*y
				r.Elements[k*3+i] = -s*x + c*y
				// columns i-1, i of Q
				x, y = q.Elements[(i-1)*3+k], q.Elements[i*3+k]
				q.Elements[(i-1)*3+k] = c*x + s*y
				q.Elements[i*3+k] = -s*x + c*y
			}
			r.Elements[j*3+i] = 0
		}
	}

	return q, r
}

// RREF returns the reduced row-echelon form of m together with its number
// of pivots. Entries with magnitude at or below the rank tolerance are
// treated as zero; pivots are chosen by largest magnitude in the column.
//
// Options: WithRankTolerance.
func (m Matrix3) RREF(opts ...Option) (Matrix3, int) {
	o := gatherOptions(opts...)

	return m.rref(o.rankTol)
}

func (m Matrix3) rref(tol float64) (Matrix3, int) {
	var a [3][3]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			a[r][c] = flush(m.Elements[c*3+r], tol)
		}
	}

	pivots := 0
	for col := 0; col < 3 && pivots < 3; col++ {
		best := pivots
		for r := pivots + 1; r < 3; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[best][col]) {
				best = r
			}
		}
		if math.Abs(a[best][col]) <= tol {
			continue
		}
		a[pivots], a[best] = a[best], a[pivots]

		pv := a[pivots][col]
		for c := 0; c < 3; c++ {
			a[pivots][c] /= pv
		}
		for r := 0; r < 3; r++ {
			if r == pivots || a[r][col] == 0 {
				continue
			}
			f := a[r][col]
			for c := 0; c < 3; c++ {
				a[r][c] = flush(a[r][c]-f*a[pivots][c], tol)
			}
		}
		pivots++
	}

	var out Matrix3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.Elements[c*3+r] = a[r][c]
		}
	}

	return out, pivots
}

// Rank returns the number of linearly independent rows of m: R from QR is
// thresholded at the rank tolerance and reduced to row-echelon form, and
// the nonzero rows are counted.
//
// Options: WithEpsilon (QR), WithRankTolerance.
func (m Matrix3) Rank(opts ...Option) int {
	o := gatherOptions(opts...)
	_, r := m.QR(opts...)
	_, rank := r.rref(o.rankTol)

	return rank
}

// Eigenvalues returns the three eigenvalues of m, repeated by algebraic
// multiplicity.
//
// The characteristic polynomial λ³ + Bλ² + Cλ + D is built from the
// invariants B = -trace, C = sum of the principal 2x2 minors and D = -det,
// then solved in closed form. Real eigenvalues come first in ascending
// order; for non-symmetric input with a complex-conjugate pair the pair
// follows, positive imaginary part first.
//
// The matrix is first divided by its largest absolute entry, so the
// discriminant tolerance applies to a unit-scale problem, and the roots are
// scaled back afterwards.
//
// Options: WithEpsilon (discriminant tolerance of the cubic).
func (m Matrix3) Eigenvalues(opts ...Option) []complexnum.Complex {
	o := gatherOptions(opts...)
	scale := m.maxAbs()
	if scale == 0 {
		return []complexnum.Complex{{}, {}, {}}
	}
	u := m
	for i := range u.Elements {
		u.Elements[i] /= scale
	}
	b := -u.Trace()
	c := u.cofactor(0, 0) + u.cofactor(1, 1) + u.cofactor(2, 2)
	d := -u.Determinant()

	roots := polynomial.CubicRoots(1, b, c, d, o.eps)
	for i := range roots {
		roots[i] = roots[i].Scale(scale)
	}

	return roots
}

func (m Matrix3) maxAbs() float64 {
	var out float64
	for _, x := range m.Elements {
		out = math.Max(out, math.Abs(x))
	}

	return out
}

func flush(x, tol float64) float64 {
	if math.Abs(x) <= tol {
		return 0
	}

	return x
}
