// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// Vector4 is a 4-component vector.
type Vector4 struct {
	X, Y, Z, W float64
}

// NewVector4 returns (x, y, z, w).
func NewVector4(x, y, z, w float64) Vector4 { return Vector4{X: x, Y: y, Z: z, W: w} }

// Vector4FromArray builds a Vector4 from exactly 4 values.
// Returns ErrDimensionMismatch for any other length.
func Vector4FromArray(a []float64) (Vector4, error) {
	if len(a) != 4 {
		return Vector4{}, vectorErrorf("Vector4FromArray", fmt.Errorf("len %d: %w", len(a), ErrDimensionMismatch))
	}

	return Vector4{X: a[0], Y: a[1], Z: a[2], W: a[3]}, nil
}

// ToArray returns the components in order.
func (v Vector4) ToArray() []float64 { return []float64{v.X, v.Y, v.Z, v.W} }

// Component returns the i-th component.
func (v Vector4) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	case 3:
		return v.W, nil
	}

	return 0, vectorErrorf("Vector4.Component", fmt.Errorf("index %d: %w", i, ErrOutOfRange))
}

// SetComponent assigns the i-th component in place.
func (v *Vector4) SetComponent(i int, x float64) error {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	case 3:
		v.W = x
	default:
		return vectorErrorf("Vector4.SetComponent", fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return nil
}

// Add returns v + o.
func (v Vector4) Add(o Vector4) Vector4 { return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }

// Sub returns v - o.
func (v Vector4) Sub(o Vector4) Vector4 { return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }

// Multiply returns the componentwise product.
func (v Vector4) Multiply(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Scale returns s·v.
func (v Vector4) Scale(s float64) Vector4 { return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// AddScaled returns v + s·o.
func (v Vector4) AddScaled(o Vector4, s float64) Vector4 {
	return Vector4{v.X + s*o.X, v.Y + s*o.Y, v.Z + s*o.Z, v.W + s*o.W}
}

// Negate returns -v.
func (v Vector4) Negate() Vector4 { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

// Dot returns v·o.
func (v Vector4) Dot(o Vector4) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W }

// LengthSquared returns v·v.
func (v Vector4) LengthSquared() float64 { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vector4) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v/|v|. The zero vector is returned unchanged.
func (v Vector4) Normalize() Vector4 {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Scale(1 / l)
}

// Distance returns |v - o|.
func (v Vector4) Distance(o Vector4) float64 { return v.Sub(o).Length() }

// Lerp returns v + t·(o - v).
func (v Vector4) Lerp(o Vector4, t float64) Vector4 { return v.AddScaled(o.Sub(v), t) }

// Min returns the componentwise minimum.
func (v Vector4) Min(o Vector4) Vector4 {
	return Vector4{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z), math.Min(v.W, o.W)}
}

// Max returns the componentwise maximum.
func (v Vector4) Max(o Vector4) Vector4 {
	return Vector4{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z), math.Max(v.W, o.W)}
}

// Equal reports whether every component differs by less than eps.
func (v Vector4) Equal(o Vector4, eps float64) bool {
	return math.Abs(v.X-o.X) < eps &&
		math.Abs(v.Y-o.Y) < eps &&
		math.Abs(v.Z-o.Z) < eps &&
		math.Abs(v.W-o.W) < eps
}

// String formats v as "(x, y, ...)".
func (v Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}

// Homogeneous returns (v, w).
func Homogeneous(v Vector3, w float64) Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// XYZ drops the W component.
func (v Vector4) XYZ() Vector3 { return Vector3{X: v.X, Y: v.Y, Z: v.Z} }

// PerspectiveDivide returns (X/W, Y/W, Z/W). W == 0 yields Inf/NaN components.
func (v Vector4) PerspectiveDivide() Vector3 {
	return Vector3{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W}
}
