// SPDX-License-Identifier: MIT
package matrix_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

func sample2() matrix.Matrix2 {
	return matrix.Matrix2FromRows(vector.Vector2{X: 4, Y: 7}, vector.Vector2{X: 2, Y: 6})
}

func sample3() matrix.Matrix3 {
	return matrix.Matrix3FromRows(
		vector.Vector3{X: 2, Y: -1, Z: 0},
		vector.Vector3{X: 1, Y: 3, Z: 1},
		vector.Vector3{X: 5, Y: 0.5, Z: -2},
	)
}

func sample4() matrix.Matrix4 {
	return matrix.Matrix4FromRows(
		vector.Vector4{X: 1, Y: 2, Z: 3, W: 4},
		vector.Vector4{X: 0, Y: 1, Z: 0, W: 2},
		vector.Vector4{X: 3, Y: 0, Z: 1, W: 1},
		vector.Vector4{X: 2, Y: 1, Z: 0, W: 1},
	)
}

func TestNewMatrixIsIdentity(t *testing.T) {
	assert.Equal(t, [4]float64{1, 0, 0, 1}, matrix.NewMatrix2().Elements)
	assert.Equal(t, [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, matrix.NewMatrix3().Elements)
	m4 := matrix.NewMatrix4()
	for i := 0; i < 4; i++ {
		v, err := m4.At(i, i)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	}
	assert.Equal(t, 4.0, m4.Trace())
}

func TestColumnMajorLayout(t *testing.T) {
	m := sample3()
	// Elements[col*3+row]
	assert.Equal(t, [9]float64{2, 1, 5, -1, 3, 0.5, 0, 1, -2}, m.Elements)

	v, err := m.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, v)

	require.NoError(t, m.Set(0, 2, 9))
	assert.Equal(t, 9.0, m.Elements[6])

	_, err = m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestFromArrayToArray(t *testing.T) {
	in := []float64{1, 2, 3, 4}
	m, err := matrix.Matrix2FromArray(in)
	require.NoError(t, err)
	assert.Equal(t, in, m.ToArray())
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = matrix.Matrix3FromArray(in)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Matrix4FromArray(make([]float64, 17))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRowsAndColumns(t *testing.T) {
	m := sample3()

	r, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector3{X: 1, Y: 3, Z: 1}, r)

	c, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector3{X: -1, Y: 3, Z: 0.5}, c)

	require.NoError(t, m.SetRow(0, vector.Vector3{X: 7, Y: 8, Z: 9}))
	require.NoError(t, m.SetColumn(2, vector.Vector3{X: -1, Y: -2, Z: -3}))
	r, err = m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector3{X: 7, Y: 8, Z: -1}, r)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetRow(5, vector.Vector3{}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetColumn(3, vector.Vector3{}), matrix.ErrOutOfRange)

	m4 := sample4()
	c4, err := m4.Column(3)
	require.NoError(t, err)
	assert.Equal(t, vector.Vector4{X: 4, Y: 2, Z: 1, W: 1}, c4)
}

func TestArithmetic(t *testing.T) {
	a := sample2()
	b := matrix.Matrix2FromRows(vector.Vector2{X: 1, Y: 2}, vector.Vector2{X: 3, Y: 4})

	assert.Equal(t, matrix.Matrix2FromRows(vector.Vector2{X: 5, Y: 9}, vector.Vector2{X: 5, Y: 10}), a.Add(b))
	assert.Equal(t, matrix.Matrix2FromRows(vector.Vector2{X: 3, Y: 5}, vector.Vector2{X: -1, Y: 2}), a.Sub(b))
	assert.Equal(t, matrix.Matrix2FromRows(vector.Vector2{X: 8, Y: 14}, vector.Vector2{X: 4, Y: 12}), a.Scale(2))
	// [4 7; 2 6]·[1 2; 3 4] = [25 36; 20 28]
	assert.Equal(t, matrix.Matrix2FromRows(vector.Vector2{X: 25, Y: 36}, vector.Vector2{X: 20, Y: 28}), a.Multiply(b))
	assert.Equal(t, matrix.Matrix2FromRows(vector.Vector2{X: 4, Y: 2}, vector.Vector2{X: 7, Y: 6}), a.Transpose())
	assert.Equal(t, 10.0, a.Trace())

	m := sample3()
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.True(t, m.Multiply(matrix.NewMatrix3()).Equal(m, 0))
}

func TestDeterminant(t *testing.T) {
	assert.InDelta(t, 10, sample2().Determinant(), tol)
	assert.InDelta(t, -20, sample3().Determinant(), tol)
	assert.InDelta(t, 14, sample4().Determinant(), tol)
	assert.InDelta(t, 8, matrix.Matrix3FromRows(
		vector.Vector3{X: 3, Y: 2, Z: 4},
		vector.Vector3{X: 2, Y: 0, Z: 2},
		vector.Vector3{X: 4, Y: 2, Z: 3},
	).Determinant(), tol)
}

// TestInverseRoundTrip checks A·A⁻¹ ≈ I and A·adj(A) ≈ det(A)·I for every size.
func TestInverseRoundTrip(t *testing.T) {
	t.Run("2x2", func(t *testing.T) {
		a := sample2()
		inv, err := a.Inverse()
		require.NoError(t, err)
		assert.True(t, a.Multiply(inv).Equal(matrix.NewMatrix2(), tol))
		assert.True(t, inv.Multiply(a).Equal(matrix.NewMatrix2(), tol))
		assert.True(t, a.Multiply(a.Adjugate()).Equal(matrix.NewMatrix2().Scale(a.Determinant()), tol))
	})
	t.Run("3x3", func(t *testing.T) {
		a := sample3()
		inv, err := a.Inverse()
		require.NoError(t, err)
		assert.True(t, a.Multiply(inv).Equal(matrix.NewMatrix3(), tol))
		assert.True(t, inv.Multiply(a).Equal(matrix.NewMatrix3(), tol))
		assert.True(t, a.Multiply(a.Adjugate()).Equal(matrix.NewMatrix3().Scale(a.Determinant()), tol))
	})
	t.Run("4x4", func(t *testing.T) {
		a := sample4()
		inv, err := a.Inverse()
		require.NoError(t, err)
		assert.True(t, a.Multiply(inv).Equal(matrix.NewMatrix4(), tol))
		assert.True(t, inv.Multiply(a).Equal(matrix.NewMatrix4(), tol))
		assert.True(t, a.Multiply(a.Adjugate()).Equal(matrix.NewMatrix4().Scale(a.Determinant()), tol))
	})
}

func TestInverseSingular(t *testing.T) {
	_, err := matrix.Matrix2{}.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	rankTwo := matrix.Matrix3FromRows(
		vector.Vector3{X: 1, Y: 2, Z: 3},
		vector.Vector3{X: 2, Y: 4, Z: 6},
		vector.Vector3{X: 0, Y: 1, Z: 1},
	)
	_, err = rankTwo.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Matrix4{}.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverseOrIdentityLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	got := matrix.Matrix3{}.InverseOrIdentity(matrix.WithLogger(logger))
	assert.Equal(t, matrix.NewMatrix3(), got)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "Matrix3.Inverse", rec["method"])

	// A regular matrix is inverted silently.
	buf.Reset()
	inv := sample2().InverseOrIdentity(matrix.WithLogger(logger))
	assert.True(t, sample2().Multiply(inv).Equal(matrix.NewMatrix2(), tol))
	assert.Zero(t, buf.Len())
}

func TestTransformVector(t *testing.T) {
	m := sample3()
	v := vector.Vector3{X: 1, Y: 2, Z: 3}

	// M·v
	assert.Equal(t, vector.Vector3{X: 0, Y: 10, Z: 0}, m.TransformVector(v))
	// vᵀ·M == Mᵀ·v
	assert.Equal(t, m.Transpose().TransformVector(v), m.TransposeTransform(v))

	m2 := sample2()
	assert.Equal(t, vector.Vector2{X: 18, Y: 14}, m2.TransformVector(vector.Vector2{X: 1, Y: 2}))
	assert.Equal(t, vector.Vector2{X: 8, Y: 19}, m2.TransposeTransform(vector.Vector2{X: 1, Y: 2}))

	assert.Equal(t, vector.Vector4{X: 1, Y: 2, Z: 3, W: 4}, matrix.NewMatrix4().TransformVector(vector.Vector4{X: 1, Y: 2, Z: 3, W: 4}))
}

func TestOuterProduct(t *testing.T) {
	a := vector.Vector2{X: 1, Y: 2}
	b := vector.Vector2{X: 3, Y: 4}

	want := matrix.Matrix2FromRows(vector.Vector2{X: 3, Y: 4}, vector.Vector2{X: 6, Y: 8})
	assert.Equal(t, want, matrix.OuterProduct2(a, b))

	acc := matrix.NewMatrix2().AddOuterProduct(a, b, -0.5)
	assert.Equal(t, matrix.Matrix2FromRows(vector.Vector2{X: -0.5, Y: -2}, vector.Vector2{X: -3, Y: -3}), acc)

	o3 := matrix.OuterProduct3(vector.Vector3{X: 1, Y: 0, Z: 0}, vector.Vector3{X: 0, Y: 0, Z: 1})
	v, err := o3.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 0.0, o3.Trace())
}

func TestCrossProductMatrix(t *testing.T) {
	v := vector.Vector3{X: 1, Y: -2, Z: 3}
	w := vector.Vector3{X: 0.5, Y: 4, Z: -1}

	assert.Equal(t, v.Cross(w), matrix.CrossProductMatrix(v).TransformVector(w))
	assert.Equal(t, matrix.CrossProductMatrix(v).Scale(-1), matrix.CrossProductMatrix(v).Transpose())
}

func TestMatrix4Blocks(t *testing.T) {
	m3 := sample3()
	m4 := matrix.Matrix4FromMatrix3(m3)
	assert.Equal(t, m3, m4.Upper3())
	assert.InDelta(t, m3.Determinant(), m4.Determinant(), tol)
	v, err := m4.At(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestEqualAndString(t *testing.T) {
	a := sample2()
	b := a
	b.Elements[0] += 1e-12
	assert.True(t, a.Equal(b, 1e-9))
	assert.False(t, a.Equal(b, 1e-13))
	assert.Equal(t, "[4, 7]\n[2, 6]\n", a.String())
}

// TestEqualZeroToleranceIsExact checks that eps 0 accepts identical matrices
// and rejects any difference.
func TestEqualZeroToleranceIsExact(t *testing.T) {
	m2, m3, m4 := sample2(), sample3(), sample4()
	assert.True(t, m2.Equal(m2, 0))
	assert.True(t, m3.Equal(m3, 0))
	assert.True(t, m4.Equal(m4, 0))

	off := m3
	off.Elements[4] = math.Nextafter(off.Elements[4], math.Inf(1))
	assert.False(t, m3.Equal(off, 0))

	// A difference of exactly eps is accepted.
	b := m2
	b.Elements[1] += 0.5
	assert.True(t, m2.Equal(b, 0.5))
}
