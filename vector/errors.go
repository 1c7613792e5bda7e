// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a component index outside [0, dimension).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands or arrays of incompatible length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidDimension indicates a non-positive dimension for VecN.
	ErrInvalidDimension = errors.New("vector: dimension must be > 0")
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
