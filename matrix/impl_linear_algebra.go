// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels of the arbitrary-dimension
// Dense matrix: element-wise addition and subtraction, matrix multiplication,
// transpose, scalar scaling, trace and matrix-vector products. All kernels
// validate shapes up front, never mutate their operands, and return a
// freshly allocated result.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/vector"
)

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opTrace       = "Trace"
	opMatVec      = "MatVec"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opFromArray   = "FromArray"
	opFromGonum   = "FromGonum"
	opSetRow      = "SetRow"
	opSetCol      = "SetColumn"
	opRow         = "Row"
	opCol         = "Column"
	opMatAt       = "At"
	opMatSet      = "Set"
)

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: single flat loop 0..n-1 over the backing slices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]float64, len(a.data)), validateNaNInf: a.validateNaNInf}
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols), validateNaNInf: a.validateNaNInf}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors:
//   - ErrNilMatrix.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data)), validateNaNInf: m.validateNaNInf}
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Trace returns Σ m[i,i] of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
func Trace(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := 0.0
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// MatVec computes y = m · x for a column vector x.
//
// Contract: m non-nil; x.Len() == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m *Dense, x vector.VecN) (vector.VecN, error) {
	if err := ValidateNotNil(m); err != nil {
		return vector.VecN{}, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return vector.VecN{}, matrixErrorf(opMatVec, err)
	}
	xs := x.ToArray()
	y := make([]float64, m.r)
	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if xs[j] != 0 {
				acc += m.data[base+j] * xs[j]
			}
		}
		y[i] = acc
	}
	out, err := vector.VecNFromArray(y)
	if err != nil {
		return vector.VecN{}, matrixErrorf(opMatVec, fmt.Errorf("result: %w", err))
	}

	return out, nil
}

// Equal reports identical shapes and |a[i,j] - b[i,j]| <= eps everywhere,
// so eps 0 demands exact equality.
// Nil operands are never equal.
func Equal(a, b *Dense, eps float64) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for idx := range a.data {
		if math.Abs(a.data[idx]-b.data[idx]) > eps {
			return false
		}
	}

	return true
}
