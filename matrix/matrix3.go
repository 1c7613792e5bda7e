// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/vector"
)

// Matrix3 is a 3x3 matrix stored column-major: element (row, col) lives at
// Elements[col*3+row].
//
// The zero value is the zero matrix; NewMatrix3 returns the identity.
type Matrix3 struct {
	Elements [9]float64
}

// NewMatrix3 returns the 3x3 identity.
func NewMatrix3() Matrix3 {
	var m Matrix3
	for i := 0; i < 3; i++ {
		m.Elements[i*3+i] = 1
	}

	return m
}

// Matrix3FromArray builds a Matrix3 from 9 column-major values.
// Returns ErrDimensionMismatch for any other length.
func Matrix3FromArray(a []float64) (Matrix3, error) {
	var m Matrix3
	if len(a) != 9 {
		return m, matrixErrorf("Matrix3"+opFromArray, fmt.Errorf("len %d: %w", len(a), ErrDimensionMismatch))
	}
	copy(m.Elements[:], a)

	return m, nil
}

// Matrix3FromRows builds a Matrix3 whose i-th row is rows[i].
func Matrix3FromRows(r0, r1, r2 vector.Vector3) Matrix3 {
	var m Matrix3
	for i, r := range [3]vector.Vector3{r0, r1, r2} {
		a := arr3(r)
		for j := 0; j < 3; j++ {
			m.Elements[j*3+i] = a[j]
		}
	}

	return m
}

// ToArray returns the column-major elements.
func (m Matrix3) ToArray() []float64 {
	out := make([]float64, 9)
	copy(out, m.Elements[:])

	return out
}

// At returns element (row, col) or ErrOutOfRange.
func (m Matrix3) At(row, col int) (float64, error) {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return 0, matrixErrorf("Matrix3."+opMatAt, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return m.Elements[col*3+row], nil
}

// Set assigns element (row, col) in place or returns ErrOutOfRange.
func (m *Matrix3) Set(row, col int, v float64) error {
	if row < 0 || row >= 3 || col < 0 || col >= 3 {
		return matrixErrorf("Matrix3."+opMatSet, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	m.Elements[col*3+row] = v

	return nil
}

// Row returns row i or ErrOutOfRange.
func (m Matrix3) Row(i int) (vector.Vector3, error) {
	if i < 0 || i >= 3 {
		return vector.Vector3{}, matrixErrorf("Matrix3."+opRow, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	var a [3]float64
	for j := range a {
		a[j] = m.Elements[j*3+i]
	}

	return vec3(a), nil
}

// Column returns column j or ErrOutOfRange.
func (m Matrix3) Column(j int) (vector.Vector3, error) {
	if j < 0 || j >= 3 {
		return vector.Vector3{}, matrixErrorf("Matrix3."+opCol, fmt.Errorf("index %d: %w", j, ErrOutOfRange))
	}
	var a [3]float64
	copy(a[:], m.Elements[j*3:(j+1)*3])

	return vec3(a), nil
}

// SetRow replaces row i in place or returns ErrOutOfRange.
func (m *Matrix3) SetRow(i int, v vector.Vector3) error {
	if i < 0 || i >= 3 {
		return matrixErrorf("Matrix3."+opSetRow, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	a := arr3(v)
	for j := range a {
		m.Elements[j*3+i] = a[j]
	}

	return nil
}

// SetColumn replaces column j in place or returns ErrOutOfRange.
func (m *Matrix3) SetColumn(j int, v vector.Vector3) error {
	if j < 0 || j >= 3 {
		return matrixErrorf("Matrix3."+opSetCol, fmt.Errorf("index %d: %w", j, ErrOutOfRange))
	}
	a := arr3(v)
	copy(m.Elements[j*3:(j+1)*3], a[:])

	return nil
}

// Add returns m + o.
func (m Matrix3) Add(o Matrix3) Matrix3 {
	for i := range m.Elements {
		m.Elements[i] += o.Elements[i]
	}

	return m
}

// Sub returns m - o.
func (m Matrix3) Sub(o Matrix3) Matrix3 {
	for i := range m.Elements {
		m.Elements[i] -= o.Elements[i]
	}

	return m
}

// Scale returns s·m.
func (m Matrix3) Scale(s float64) Matrix3 {
	for i := range m.Elements {
		m.Elements[i] *= s
	}

	return m
}

// Multiply returns the matrix product m·o.
func (m Matrix3) Multiply(o Matrix3) Matrix3 {
	var out Matrix3
	var sum float64
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			sum = 0
			for k := 0; k < 3; k++ {
				sum += m.Elements[k*3+r] * o.Elements[c*3+k]
			}
			out.Elements[c*3+r] = sum
		}
	}

	return out
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	var out Matrix3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out.Elements[r*3+c] = m.Elements[c*3+r]
		}
	}

	return out
}

// Trace returns the sum of the diagonal.
func (m Matrix3) Trace() float64 {
	sum := 0.0
	for i := 0; i < 3; i++ {
		sum += m.Elements[i*3+i]
	}

	return sum
}

// TransformVector returns the column-vector product m·v.
func (m Matrix3) TransformVector(v vector.Vector3) vector.Vector3 {
	a := arr3(v)
	var out [3]float64
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[r] += m.Elements[c*3+r] * a[c]
		}
	}

	return vec3(out)
}

// TransposeTransform returns the row-vector product vᵀ·m (equivalently mᵀ·v).
func (m Matrix3) TransposeTransform(v vector.Vector3) vector.Vector3 {
	a := arr3(v)
	var out [3]float64
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c] += a[r] * m.Elements[c*3+r]
		}
	}

	return vec3(out)
}

// OuterProduct3 returns a⊗b, the matrix with (row, col) = a[row]·b[col].
func OuterProduct3(a, b vector.Vector3) Matrix3 {
	return Matrix3{}.AddOuterProduct(a, b, 1)
}

// AddOuterProduct returns m + s·(a⊗b).
func (m Matrix3) AddOuterProduct(a, b vector.Vector3, s float64) Matrix3 {
	aa, bb := arr3(a), arr3(b)
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m.Elements[c*3+r] += s * aa[r] * bb[c]
		}
	}

	return m
}

// Inverse returns m⁻¹ = adj(m)/det(m).
//
// Errors:
//   - ErrSingular when the determinant is exactly zero. Nearly singular
//     matrices are inverted; check the determinant first if conditioning matters.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}, matrixErrorf("Matrix3."+opInverse, ErrSingular)
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
func (m Matrix3) InverseOrIdentity(opts ...Option) Matrix3 {
	inv, err := m.Inverse()
	if err != nil {
		o := gatherOptions(opts...)
		o.logger.WithMethod("Matrix3."+opInverse).LogSingular("substituting identity", "matrix", m.String())

		return NewMatrix3()
	}

	return inv
}

// Equal reports whether every element differs by at most eps; eps 0
// demands exact equality.
func (m Matrix3) Equal(o Matrix3, eps float64) bool {
	for i := range m.Elements {
		if d := m.Elements[i] - o.Elements[i]; d > eps || -d > eps {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m Matrix3) String() string {
	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(_fmtRowOpen)
		for c := 0; c < 3; c++ {
			b.WriteString(fmt.Sprintf("%g", m.Elements[c*3+r]))
			if c+1 < 3 {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

func arr3(v vector.Vector3) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

func vec3(a [3]float64) vector.Vector3 { return vector.Vector3{X: a[0], Y: a[1], Z: a[2]} }

// cofactor returns the signed (i, j) cofactor. Cyclic index order yields
// the checkerboard sign without an explicit (-1)^(i+j).
func (m Matrix3) cofactor(i, j int) float64 {
	i1, i2 := (i+1)%3, (i+2)%3
	j1, j2 := (j+1)%3, (j+2)%3
	e := m.Elements

	return e[j1*3+i1]*e[j2*3+i2] - e[j2*3+i1]*e[j1*3+i2]
}

// Determinant returns the cofactor expansion along the first row.
func (m Matrix3) Determinant() float64 {
	e := m.Elements

	return e[0]*m.cofactor(0, 0) + e[3]*m.cofactor(0, 1) + e[6]*m.cofactor(0, 2)
}

// Adjugate returns the transposed cofactor matrix, so that
// m·adj(m) = det(m)·I.
func (m Matrix3) Adjugate() Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// adj(m)[j][i] = C[i][j]; column-major index of (j, i) is i*3+j.
			out.Elements[i*3+j] = m.cofactor(i, j)
		}
	}

	return out
}

// CrossProductMatrix returns the skew-symmetric [v]ₓ with [v]ₓ·w = v×w.
func CrossProductMatrix(v vector.Vector3) Matrix3 {
	return Matrix3FromRows(
		vector.Vector3{X: 0, Y: -v.Z, Z: v.Y},
		vector.Vector3{X: v.Z, Y: 0, Z: -v.X},
		vector.Vector3{X: -v.Y, Y: v.X, Z: 0},
	)
}
