// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/vector"
)

// Matrix4 is a 4x4 matrix stored column-major: element (row, col) lives at
// Elements[col*4+row].
//
// The zero value is the zero matrix; NewMatrix4 returns the identity.
type Matrix4 struct {
	Elements [16]float64
}

// NewMatrix4 returns the 4x4 identity.
func NewMatrix4() Matrix4 {
	var m Matrix4
	for i := 0; i < 4; i++ {
		m.Elements[i*4+i] = 1
	}

	return m
}

// Matrix4FromArray builds a Matrix4 from 16 column-major values.
// Returns ErrDimensionMismatch for any other length.
func Matrix4FromArray(a []float64) (Matrix4, error) {
	var m Matrix4
	if len(a) != 16 {
		return m, matrixErrorf("Matrix4"+opFromArray, fmt.Errorf("len %d: %w", len(a), ErrDimensionMismatch))
	}
	copy(m.Elements[:], a)

	return m, nil
}

// Matrix4FromRows builds a Matrix4 whose i-th row is rows[i].
func Matrix4FromRows(r0, r1, r2, r3 vector.Vector4) Matrix4 {
	var m Matrix4
	for i, r := range [4]vector.Vector4{r0, r1, r2, r3} {
		a := arr4(r)
		for j := 0; j < 4; j++ {
			m.Elements[j*4+i] = a[j]
		}
	}

	return m
}

// ToArray returns the column-major elements.
func (m Matrix4) ToArray() []float64 {
	out := make([]float64, 16)
	copy(out, m.Elements[:])

	return out
}

// At returns element (row, col) or ErrOutOfRange.
func (m Matrix4) At(row, col int) (float64, error) {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		return 0, matrixErrorf("Matrix4."+opMatAt, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return m.Elements[col*4+row], nil
}

// Set assigns element (row, col) in place or returns ErrOutOfRange.
func (m *Matrix4) Set(row, col int, v float64) error {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		return matrixErrorf("Matrix4."+opMatSet, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	m.Elements[col*4+row] = v

	return nil
}

// Row returns row i or ErrOutOfRange.
func (m Matrix4) Row(i int) (vector.Vector4, error) {
	if i < 0 || i >= 4 {
		return vector.Vector4{}, matrixErrorf("Matrix4."+opRow, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	var a [4]float64
	for j := range a {
		a[j] = m.Elements[j*4+i]
	}

	return vec4(a), nil
}

// Column returns column j or ErrOutOfRange.
func (m Matrix4) Column(j int) (vector.Vector4, error) {
	if j < 0 || j >= 4 {
		return vector.Vector4{}, matrixErrorf("Matrix4."+opCol, fmt.Errorf("index %d: %w", j, ErrOutOfRange))
	}
	var a [4]float64
	copy(a[:], m.Elements[j*4:(j+1)*4])

	return vec4(a), nil
}

// SetRow replaces row i in place or returns ErrOutOfRange.
func (m *Matrix4) SetRow(i int, v vector.Vector4) error {
	if i < 0 || i >= 4 {
		return matrixErrorf("Matrix4."+opSetRow, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	a := arr4(v)
	for j := range a {
		m.Elements[j*4+i] = a[j]
	}

	return nil
}

// SetColumn replaces column j in place or returns ErrOutOfRange.
func (m *Matrix4) SetColumn(j int, v vector.Vector4) error {
	if j < 0 || j >= 4 {
		return matrixErrorf("Matrix4."+opSetCol, fmt.Errorf("index %d: %w", j, ErrOutOfRange))
	}
	a := arr4(v)
	copy(m.Elements[j*4:(j+1)*4], a[:])

	return nil
}

// Add returns m + o.
func (m Matrix4) Add(o Matrix4) Matrix4 {
	for i := range m.Elements {
		m.Elements[i] += o.Elements[i]
	}

	return m
}

// Sub returns m - o.
func (m Matrix4) Sub(o Matrix4) Matrix4 {
	for i := range m.Elements {
		m.Elements[i] -= o.Elements[i]
	}

	return m
}

// Scale returns s·m.
func (m Matrix4) Scale(s float64) Matrix4 {
	for i := range m.Elements {
		m.Elements[i] *= s
	}

	return m
}

// Multiply returns the matrix product m·o.
func (m Matrix4) Multiply(o Matrix4) Matrix4 {
	var out Matrix4
	var sum float64
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			sum = 0
			for k := 0; k < 4; k++ {
				sum += m.Elements[k*4+r] * o.Elements[c*4+k]
			}
			out.Elements[c*4+r] = sum
		}
	}

	return out
}

// Transpose returns mᵀ.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out.Elements[r*4+c] = m.Elements[c*4+r]
		}
	}

	return out
}

// Trace returns the sum of the diagonal.
func (m Matrix4) Trace() float64 {
	sum := 0.0
	for i := 0; i < 4; i++ {
		sum += m.Elements[i*4+i]
	}

	return sum
}

// TransformVector returns the column-vector product m·v.
func (m Matrix4) TransformVector(v vector.Vector4) vector.Vector4 {
	a := arr4(v)
	var out [4]float64
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r] += m.Elements[c*4+r] * a[c]
		}
	}

	return vec4(out)
}

// TransposeTransform returns the row-vector product vᵀ·m (equivalently mᵀ·v).
func (m Matrix4) TransposeTransform(v vector.Vector4) vector.Vector4 {
	a := arr4(v)
	var out [4]float64
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c] += a[r] * m.Elements[c*4+r]
		}
	}

	return vec4(out)
}

// OuterProduct4 returns a⊗b, the matrix with (row, col) = a[row]·b[col].
func OuterProduct4(a, b vector.Vector4) Matrix4 {
	return Matrix4{}.AddOuterProduct(a, b, 1)
}

// AddOuterProduct returns m + s·(a⊗b).
func (m Matrix4) AddOuterProduct(a, b vector.Vector4, s float64) Matrix4 {
	aa, bb := arr4(a), arr4(b)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m.Elements[c*4+r] += s * aa[r] * bb[c]
		}
	}

	return m
}

// Inverse returns m⁻¹ = adj(m)/det(m).
//
// Errors:
//   - ErrSingular when the determinant is exactly zero. Nearly singular
//     matrices are inverted; check the determinant first if conditioning matters.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix4{}, matrixErrorf("Matrix4."+opInverse, ErrSingular)
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
func (m Matrix4) InverseOrIdentity(opts ...Option) Matrix4 {
	inv, err := m.Inverse()
	if err != nil {
		o := gatherOptions(opts...)
		o.logger.WithMethod("Matrix4."+opInverse).LogSingular("substituting identity", "matrix", m.String())

		return NewMatrix4()
	}

	return inv
}

// Equal reports whether every element differs by at most eps; eps 0
// demands exact equality.
func (m Matrix4) Equal(o Matrix4, eps float64) bool {
	for i := range m.Elements {
		if d := m.Elements[i] - o.Elements[i]; d > eps || -d > eps {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m Matrix4) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		b.WriteString(_fmtRowOpen)
		for c := 0; c < 4; c++ {
			b.WriteString(fmt.Sprintf("%g", m.Elements[c*4+r]))
			if c+1 < 4 {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

func arr4(v vector.Vector4) [4]float64 { return [4]float64{v.X, v.Y, v.Z, v.W} }

func vec4(a [4]float64) vector.Vector4 { return vector.Vector4{X: a[0], Y: a[1], Z: a[2], W: a[3]} }

// minor returns the 3x3 submatrix obtained by deleting row i and column j.
func (m Matrix4) minor(i, j int) Matrix3 {
	var out Matrix3
	k := 0
	for c := 0; c < 4; c++ {
		if c == j {
			continue
		}
		for r := 0; r < 4; r++ {
			if r == i {
				continue
			}
			out.Elements[k] = m.Elements[c*4+r]
			k++
		}
	}

	return out
}

func (m Matrix4) cofactor(i, j int) float64 {
	d := m.minor(i, j).Determinant()
	if (i+j)%2 == 1 {
		return -d
	}

	return d
}

// Determinant returns the Laplace expansion along the first row.
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for j := 0; j < 4; j++ {
		if a := m.Elements[j*4]; a != 0 {
			det += a * m.cofactor(0, j)
		}
	}

	return det
}

// Adjugate returns the transposed cofactor matrix, so that
// m·adj(m) = det(m)·I.
func (m Matrix4) Adjugate() Matrix4 {
	var out Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.Elements[i*4+j] = m.cofactor(i, j)
		}
	}

	return out
}

// Matrix4FromMatrix3 embeds m in the upper-left block of the 4x4 identity.
func Matrix4FromMatrix3(m Matrix3) Matrix4 {
	out := NewMatrix4()
	for c := 0; c < 3; c++ {
		copy(out.Elements[c*4:c*4+3], m.Elements[c*3:c*3+3])
	}

	return out
}

// Upper3 returns the upper-left 3x3 block.
func (m Matrix4) Upper3() Matrix3 {
	var out Matrix3
	for c := 0; c < 3; c++ {
		copy(out.Elements[c*3:c*3+3], m.Elements[c*4:c*4+3])
	}

	return out
}
