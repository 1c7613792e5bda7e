// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Conversions to and from gonum's mat package. gonum stores row-major, so
// the fixed-size types transpose their column-major layout on the way.

// ToGonum returns a row-major copy of m.
func (m Matrix2) ToGonum() *mat.Dense { return toGonumColMajor(2, m.Elements[:]) }

// ToGonum returns a row-major copy of m.
func (m Matrix3) ToGonum() *mat.Dense { return toGonumColMajor(3, m.Elements[:]) }

// ToGonum returns a row-major copy of m.
func (m Matrix4) ToGonum() *mat.Dense { return toGonumColMajor(4, m.Elements[:]) }

// Matrix2FromGonum copies a 2x2 gonum matrix. Returns ErrDimensionMismatch
// for any other shape.
func Matrix2FromGonum(a mat.Matrix) (Matrix2, error) {
	var m Matrix2
	err := fromGonumColMajor("Matrix2", a, 2, m.Elements[:])

	return m, err
}

// Matrix3FromGonum copies a 3x3 gonum matrix. Returns ErrDimensionMismatch
// for any other shape.
func Matrix3FromGonum(a mat.Matrix) (Matrix3, error) {
	var m Matrix3
	err := fromGonumColMajor("Matrix3", a, 3, m.Elements[:])

	return m, err
}

// Matrix4FromGonum copies a 4x4 gonum matrix. Returns ErrDimensionMismatch
// for any other shape.
func Matrix4FromGonum(a mat.Matrix) (Matrix4, error) {
	var m Matrix4
	err := fromGonumColMajor("Matrix4", a, 4, m.Elements[:])

	return m, err
}

// ToGonum returns a copy of m as a gonum matrix.
func (m *Dense) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// DenseFromGonum copies any gonum matrix into a new Dense, applying the
// numeric policy from opts.
func DenseFromGonum(a mat.Matrix, opts ...Option) (*Dense, error) {
	r, c := a.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("Dense"+opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, a.At(i, j)); err != nil {
				return nil, matrixErrorf("Dense"+opFromGonum, err)
			}
		}
	}

	return m, nil
}

// Determinant returns det(m) through gonum's LU factorization.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
func Determinant(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return mat.Det(m.ToGonum()), nil
}

// Inverse returns m⁻¹ through gonum's LU factorization. Ill-conditioned
// but nonsingular input is still inverted, as for the fixed-size types.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var inv mat.Dense
	if err := inv.Inverse(m.ToGonum()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, matrixErrorf(opInverse, ErrSingular)
		}
	}

	out, err := DenseFromGonum(&inv, withPolicyOf(m))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return out, nil
}

func toGonumColMajor(n int, elems []float64) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			out.Set(r, c, elems[c*n+r])
		}
	}

	return out
}

func fromGonumColMajor(name string, a mat.Matrix, n int, dst []float64) error {
	r, c := a.Dims()
	if r != n || c != n {
		return matrixErrorf(name+opFromGonum, fmt.Errorf("%dx%d: %w", r, c, ErrDimensionMismatch))
	}
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			dst[col*n+row] = a.At(row, col)
		}
	}

	return nil
}

// withPolicyOf carries m's NaN/Inf policy into a derived matrix.
func withPolicyOf(m *Dense) Option {
	return func(o *Options) { o.validateNaNInf = m.validateNaNInf }
}
