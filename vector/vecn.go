// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
	"strings"
)

// Operation tags for error wrapping.
const (
	opAdd   = "VecN.Add"
	opSub   = "VecN.Sub"
	opDot   = "VecN.Dot"
	opAt    = "VecN.At"
	opSet   = "VecN.Set"
	opNew   = "NewVecN"
	opArray = "VecNFromArray"
)

// VecN is a vector of arbitrary positive dimension backed by a flat slice.
// Arithmetic returns fresh values; only Set mutates the receiver.
type VecN struct {
	data []float64
}

var _ fmt.Stringer = VecN{}

// NewVecN returns the zero vector of dimension n.
// Returns ErrInvalidDimension if n <= 0.
func NewVecN(n int) (VecN, error) {
	if n <= 0 {
		return VecN{}, vectorErrorf(opNew, ErrInvalidDimension)
	}

	return VecN{data: make([]float64, n)}, nil
}

// VecNFromArray copies a into a new VecN.
// Returns ErrInvalidDimension for an empty slice.
func VecNFromArray(a []float64) (VecN, error) {
	if len(a) == 0 {
		return VecN{}, vectorErrorf(opArray, ErrInvalidDimension)
	}
	data := make([]float64, len(a))
	copy(data, a)

	return VecN{data: data}, nil
}

// Len returns the dimension.
func (v VecN) Len() int { return len(v.data) }

// At returns the i-th component or ErrOutOfRange.
func (v VecN) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(opAt, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return v.data[i], nil
}

// Set assigns the i-th component in place or returns ErrOutOfRange.
// VecN shares its backing slice across copies of the struct; Clone first
// when the original must stay intact.
func (v VecN) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(opSet, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep copy.
func (v VecN) Clone() VecN {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return VecN{data: data}
}

// ToArray returns a copy of the components.
func (v VecN) ToArray() []float64 { return v.Clone().data }

// combine computes out = v + sign·o after a dimension check.
func (v VecN) combine(o VecN, sign float64, tag string) (VecN, error) {
	if len(v.data) != len(o.data) {
		return VecN{}, vectorErrorf(tag, fmt.Errorf("%d vs %d: %w", len(v.data), len(o.data), ErrDimensionMismatch))
	}
	out := make([]float64, len(v.data))
	for i := range out {
		out[i] = v.data[i] + sign*o.data[i]
	}

	return VecN{data: out}, nil
}

// Add returns v + o or ErrDimensionMismatch.
func (v VecN) Add(o VecN) (VecN, error) { return v.combine(o, +1, opAdd) }

// Sub returns v - o or ErrDimensionMismatch.
func (v VecN) Sub(o VecN) (VecN, error) { return v.combine(o, -1, opSub) }

// Scale returns s·v.
func (v VecN) Scale(s float64) VecN {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = s * x
	}

	return VecN{data: out}
}

// Dot returns v·o or ErrDimensionMismatch.
func (v VecN) Dot(o VecN) (float64, error) {
	if len(v.data) != len(o.data) {
		return 0, vectorErrorf(opDot, fmt.Errorf("%d vs %d: %w", len(v.data), len(o.data), ErrDimensionMismatch))
	}
	var sum float64
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}

// Length returns the Euclidean norm.
func (v VecN) Length() float64 {
	var sum float64
	for _, x := range v.data {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Equal reports equal dimension and componentwise |Δ| < eps.
func (v VecN) Equal(o VecN, eps float64) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if math.Abs(v.data[i]-o.data[i]) >= eps {
			return false
		}
	}

	return true
}

// String formats v as "(a, b, ...)".
func (v VecN) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteByte(')')

	return b.String()
}
