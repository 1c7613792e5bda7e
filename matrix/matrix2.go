// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/vector"
)

// Matrix2 is a 2x2 matrix stored column-major: element (row, col) lives at
// Elements[col*2+row].
//
// The zero value is the zero matrix; NewMatrix2 returns the identity.
type Matrix2 struct {
	Elements [4]float64
}

// NewMatrix2 returns the 2x2 identity.
func NewMatrix2() Matrix2 {
	var m Matrix2
	for i := 0; i < 2; i++ {
		m.Elements[i*2+i] = 1
	}

	return m
}

// Matrix2FromArray builds a Matrix2 from 4 column-major values.
// Returns ErrDimensionMismatch for any other length.
func Matrix2FromArray(a []float64) (Matrix2, error) {
	var m Matrix2
	if len(a) != 4 {
		return m, matrixErrorf("Matrix2"+opFromArray, fmt.Errorf("len %d: %w", len(a), ErrDimensionMismatch))
	}
	copy(m.Elements[:], a)

	return m, nil
}

// Matrix2FromRows builds a Matrix2 whose i-th row is rows[i].
func Matrix2FromRows(r0, r1 vector.Vector2) Matrix2 {
	var m Matrix2
	for i, r := range [2]vector.Vector2{r0, r1} {
		a := arr2(r)
		for j := 0; j < 2; j++ {
			m.Elements[j*2+i] = a[j]
		}
	}

	return m
}

// ToArray returns the column-major elements.
func (m Matrix2) ToArray() []float64 {
	out := make([]float64, 4)
	copy(out, m.Elements[:])

	return out
}

// At returns element (row, col) or ErrOutOfRange.
func (m Matrix2) At(row, col int) (float64, error) {
	if row < 0 || row >= 2 || col < 0 || col >= 2 {
		return 0, matrixErrorf("Matrix2."+opMatAt, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return m.Elements[col*2+row], nil
}

// Set assigns element (row, col) in place or returns ErrOutOfRange.
func (m *Matrix2) Set(row, col int, v float64) error {
	if row < 0 || row >= 2 || col < 0 || col >= 2 {
		return matrixErrorf("Matrix2."+opMatSet, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	m.Elements[col*2+row] = v

	return nil
}

// Row returns row i or ErrOutOfRange.
func (m Matrix2) Row(i int) (vector.Vector2, error) {
	if i < 0 || i >= 2 {
		return vector.Vector2{}, matrixErrorf("Matrix2."+opRow, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	var a [2]float64
	for j := range a {
		a[j] = m.Elements[j*2+i]
	}

	return vec2(a), nil
}

// Column returns column j or ErrOutOfRange.
func (m Matrix2) Column(j int) (vector.Vector2, error) {
	if j < 0 || j >= 2 {
		return vector.Vector2{}, matrixErrorf("Matrix2."+opCol, fmt.Errorf("index %d: %w", j, ErrOutOfRange))
	}
	var a [2]float64
	copy(a[:], m.Elements[j*2:(j+1)*2])

	return vec2(a), nil
}

// SetRow replaces row i in place or returns ErrOutOfRange.
func (m *Matrix2) SetRow(i int, v vector.Vector2) error {
	if i < 0 || i >= 2 {
		return matrixErrorf("Matrix2."+opSetRow, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	a := arr2(v)
	for j := range a {
		m.Elements[j*2+i] = a[j]
	}

	return nil
}

// SetColumn replaces column j in place or returns ErrOutOfRange.
func (m *Matrix2) SetColumn(j int, v vector.Vector2) error {
	if j < 0 || j >= 2 {
		return matrixErrorf("Matrix2."+opSetCol, fmt.Errorf("index %d: %w", j, ErrOutOfRange))
	}
	a := arr2(v)
	copy(m.Elements[j*2:(j+1)*2], a[:])

	return nil
}

// Add returns m + o.
func (m Matrix2) Add(o Matrix2) Matrix2 {
	for i := range m.Elements {
		m.Elements[i] += o.Elements[i]
	}

	return m
}

// Sub returns m - o.
func (m Matrix2) Sub(o Matrix2) Matrix2 {
	for i := range m.Elements {
		m.Elements[i] -= o.Elements[i]
	}

	return m
}

// Scale returns s·m.
func (m Matrix2) Scale(s float64) Matrix2 {
	for i := range m.Elements {
		m.Elements[i] *= s
	}

	return m
}

// Multiply returns the matrix product m·o.
func (m Matrix2) Multiply(o Matrix2) Matrix2 {
	var out Matrix2
	var sum float64
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			sum = 0
			for k := 0; k < 2; k++ {
				sum += m.Elements[k*2+r] * o.Elements[c*2+k]
			}
			out.Elements[c*2+r] = sum
		}
	}

	return out
}

// Transpose returns mᵀ.
func (m Matrix2) Transpose() Matrix2 {
	var out Matrix2
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			out.Elements[r*2+c] = m.Elements[c*2+r]
		}
	}

	return out
}

// Trace returns the sum of the diagonal.
func (m Matrix2) Trace() float64 {
	sum := 0.0
	for i := 0; i < 2; i++ {
		sum += m.Elements[i*2+i]
	}

	return sum
}

// TransformVector returns the column-vector product m·v.
func (m Matrix2) TransformVector(v vector.Vector2) vector.Vector2 {
	a := arr2(v)
	var out [2]float64
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			out[r] += m.Elements[c*2+r] * a[c]
		}
	}

	return vec2(out)
}

// TransposeTransform returns the row-vector product vᵀ·m (equivalently mᵀ·v).
func (m Matrix2) TransposeTransform(v vector.Vector2) vector.Vector2 {
	a := arr2(v)
	var out [2]float64
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			out[c] += a[r] * m.Elements[c*2+r]
		}
	}

	return vec2(out)
}

// OuterProduct2 returns a⊗b, the matrix with (row, col) = a[row]·b[col].
func OuterProduct2(a, b vector.Vector2) Matrix2 {
	return Matrix2{}.AddOuterProduct(a, b, 1)
}

// AddOuterProduct returns m + s·(a⊗b).
func (m Matrix2) AddOuterProduct(a, b vector.Vector2, s float64) Matrix2 {
	aa, bb := arr2(a), arr2(b)
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			m.Elements[c*2+r] += s * aa[r] * bb[c]
		}
	}

	return m
}

// Inverse returns m⁻¹ = adj(m)/det(m).
//
// Errors:
//   - ErrSingular when the determinant is exactly zero. Nearly singular
//     matrices are inverted; check the determinant first if conditioning matters.
func (m Matrix2) Inverse() (Matrix2, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix2{}, matrixErrorf("Matrix2."+opInverse, ErrSingular)
	}

	adj := m.Adjugate()
	for i := range adj.Elements {
		adj.Elements[i] /= det
	}

	return adj, nil
}

// InverseOrIdentity returns m⁻¹, or the identity after logging a warning
// when m is singular. Use Inverse when the caller must handle the
// degenerate case itself.
func (m Matrix2) InverseOrIdentity(opts ...Option) Matrix2 {
	inv, err := m.Inverse()
	if err != nil {
		o := gatherOptions(opts...)
		o.logger.WithMethod("Matrix2."+opInverse).LogSingular("substituting identity", "matrix", m.String())

		return NewMatrix2()
	}

	return inv
}

// Equal reports whether every element differs by at most eps; eps 0
// demands exact equality.
func (m Matrix2) Equal(o Matrix2, eps float64) bool {
	for i := range m.Elements {
		if d := m.Elements[i] - o.Elements[i]; d > eps || -d > eps {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m Matrix2) String() string {
	var b strings.Builder
	for r := 0; r < 2; r++ {
		b.WriteString(_fmtRowOpen)
		for c := 0; c < 2; c++ {
			b.WriteString(fmt.Sprintf("%g", m.Elements[c*2+r]))
			if c+1 < 2 {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

func arr2(v vector.Vector2) [2]float64 { return [2]float64{v.X, v.Y} }

func vec2(a [2]float64) vector.Vector2 { return vector.Vector2{X: a[0], Y: a[1]} }

// Determinant returns m00·m11 - m01·m10.
func (m Matrix2) Determinant() float64 {
	e := m.Elements

	return e[0]*e[3] - e[2]*e[1]
}

// Adjugate returns the transposed cofactor matrix, so that
// m·adj(m) = det(m)·I.
func (m Matrix2) Adjugate() Matrix2 {
	e := m.Elements

	return Matrix2{Elements: [4]float64{e[3], -e[1], -e[2], e[0]}}
}
