// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// Vector2 is a 2-component vector.
type Vector2 struct {
	X, Y float64
}

// NewVector2 returns (x, y).
func NewVector2(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// Vector2FromArray builds a Vector2 from exactly 2 values.
// Returns ErrDimensionMismatch for any other length.
func Vector2FromArray(a []float64) (Vector2, error) {
	if len(a) != 2 {
		return Vector2{}, vectorErrorf("Vector2FromArray", fmt.Errorf("len %d: %w", len(a), ErrDimensionMismatch))
	}

	return Vector2{X: a[0], Y: a[1]}, nil
}

// ToArray returns the components in order.
func (v Vector2) ToArray() []float64 { return []float64{v.X, v.Y} }

// Component returns the i-th component.
func (v Vector2) Component(i int) (float64, error) {
	switch i {
	case 0:
		return v.X, nil
	case 1:
		return v.Y, nil
	}

	return 0, vectorErrorf("Vector2.Component", fmt.Errorf("index %d: %w", i, ErrOutOfRange))
}

// SetComponent assigns the i-th component in place.
func (v *Vector2) SetComponent(i int, x float64) error {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		return vectorErrorf("Vector2.SetComponent", fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return nil
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Multiply returns the componentwise product.
func (v Vector2) Multiply(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }

// Scale returns s·v.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// AddScaled returns v + s·o.
func (v Vector2) AddScaled(o Vector2, s float64) Vector2 { return Vector2{v.X + s*o.X, v.Y + s*o.Y} }

// Negate returns -v.
func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }

// Dot returns v·o.
func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }

// LengthSquared returns v·v.
func (v Vector2) LengthSquared() float64 { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vector2) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns v/|v|. The zero vector is returned unchanged.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l == 0 {
		return v
	}

	return v.Scale(1 / l)
}

// Distance returns |v - o|.
func (v Vector2) Distance(o Vector2) float64 { return v.Sub(o).Length() }

// Lerp returns v + t·(o - v).
func (v Vector2) Lerp(o Vector2, t float64) Vector2 { return v.AddScaled(o.Sub(v), t) }

// Min returns the componentwise minimum.
func (v Vector2) Min(o Vector2) Vector2 { return Vector2{math.Min(v.X, o.X), math.Min(v.Y, o.Y)} }

// Max returns the componentwise maximum.
func (v Vector2) Max(o Vector2) Vector2 { return Vector2{math.Max(v.X, o.X), math.Max(v.Y, o.Y)} }

// Equal reports whether every component differs by less than eps.
func (v Vector2) Equal(o Vector2, eps float64) bool {
	return math.Abs(v.X-o.X) < eps &&
		math.Abs(v.Y-o.Y) < eps
}

// String formats v as "(x, y, ...)".
func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Cross returns the z component of the 3D cross product of (v, 0) and (o, 0),
// i.e. the signed area of the parallelogram spanned by v and o.
func (v Vector2) Cross(o Vector2) float64 { return v.X*o.Y - v.Y*o.X }

// Perpendicular returns v rotated by +90°.
func (v Vector2) Perpendicular() Vector2 { return Vector2{X: -v.Y, Y: v.X} }

// Angle returns the signed angle from v to o in (-π, π].
func (v Vector2) Angle(o Vector2) float64 { return math.Atan2(v.Cross(o), v.Dot(o)) }
