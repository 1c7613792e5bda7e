// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// Vector3 is a 3-component vector.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 returns (x, y, z).
func NewVector3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// Vector3FromArray builds a Vector3 from exactly 3 values.
// Returns ErrDimensionMismatch for any other length.
func Vector3FromArray(a []float64) (Vector3, error) {
	if len(a) != 3 {
		return Vector3{}, vectorErrorf("Vector3FromArray", fmt.Errorf("len %d: %w", len(a), ErrDimensionMismatch))
	}

	return Vector3{X: a[0], Y: a[1], Z: a[2]}, nil
}

// ToArray returns the components in order.
func (v Vector3) ToArray() []float64 { return []float64{v.X, v.Y, v.Z} }

// Component returns the i-th component.
func (v Vector3) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	case 2:
		return v.Z, nil
	}

	return 0, vectorErrorf("Vector3.Component", fmt.Errorf("index %d: %w", i, ErrOutOfRange))
}

// SetComponent assigns the i-th component in place.
func (v *Vector3) SetComponent(i int, x float64) error {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		return vectorErrorf("Vector3.SetComponent", fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return nil
}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Multiply returns the componentwise product.
func (v Vector3) Multiply(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Scale returns s·v.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// AddScaled returns v + s·o.
func (v Vector3) AddScaled(o Vector3, s float64) Vector3 {
	return Vector3{v.X + s*o.X, v.Y + s*o.Y, v.Z + s*o.Z}
}

// Negate returns -v.
func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns v·o.
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// LengthSquared returns v·v.
func (v Vector3) LengthSquared() float64 { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vector3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v/|v|. The zero vector is returned unchanged.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Scale(1 / l)
}

// Distance returns |v - o|.
func (v Vector3) Distance(o Vector3) float64 { return v.Sub(o).Length() }

// Lerp returns v + t·(o - v).
func (v Vector3) Lerp(o Vector3, t float64) Vector3 { return v.AddScaled(o.Sub(v), t) }

// Min returns the componentwise minimum.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the componentwise maximum.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Equal reports whether every component differs by less than eps.
func (v Vector3) Equal(o Vector3, eps float64) bool {
	return math.Abs(v.X-o.X) < eps &&
		math.Abs(v.Y-o.Y) < eps &&
		math.Abs(v.Z-o.Z) < eps
}

// String formats v as "(x, y, ...)".
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Cross returns v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Angle returns the unsigned angle between v and o in [0, π].
// atan2 of |v×o| and v·o stays accurate for nearly parallel vectors where
// acos of the normalized dot product does not.
func (v Vector3) Angle(o Vector3) float64 {
	return math.Atan2(v.Cross(o).Length(), v.Dot(o))
}

// XY drops the Z component.
func (v Vector3) XY() Vector2 { return Vector2{X: v.X, Y: v.Y} }
