// SPDX-License-Identifier: MIT

package optimization

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// Default values for Solution.
const (
	DefaultTolerance     = 1e-8
	DefaultMaxIterations = 200
)

var (
	// ErrInvalidObjective reports a missing evaluator or a non-positive
	// line-search seed.
	ErrInvalidObjective = errors.New("optimization: invalid objective")

	// ErrInvalidSolution reports a negative or NaN tolerance or a
	// non-positive iteration cap.
	ErrInvalidSolution = errors.New("optimization: invalid solution settings")
)

// Objective describes the function to minimize.
//
// Fields:
//   - Start: initial point.
//   - Delta: initial step length tried by the line search (QuasiNewton only).
//   - Func: f(x).
//   - Gradient: ∇f(x).
//   - Hessian: ∇²f(x); required by Newton, ignored by QuasiNewton.
type Objective struct {
	Start    vector.Vector2
	Delta    float64
	Func     func(x vector.Vector2) float64
	Gradient func(x vector.Vector2) vector.Vector2
	Hessian  func(x vector.Vector2) matrix.Matrix2
}

// Solution holds the stopping rule.
type Solution struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultSolution returns Tolerance 1e-8 and MaxIterations 200.
func DefaultSolution() Solution {
	return Solution{Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// Options carries ambient dependencies. The zero value logs to slog.Default().
type Options struct {
	Logger *slog.Logger
}

// Status explains how a solver stopped.
type Status int

const (
	// StatusConverged: both stopping criteria held.
	StatusConverged Status = iota
	// StatusMaxIterations: the iteration cap was reached first.
	StatusMaxIterations
	// StatusLineSearchFailed: the line search could not bracket a minimum.
	StatusLineSearchFailed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusMaxIterations:
		return "max iterations"
	case StatusLineSearchFailed:
		return "line search failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result reports the final iterate.
//
// SolutionValid is true exactly when Status == StatusConverged.
type Result struct {
	Solution         vector.Vector2
	SolutionValid    bool
	Status           Status
	Iterations       int
	InitialObjective float64
	FinalObjective   float64
	GradNorm         float64
}

func validateObjective(obj Objective, needHessian, needDelta bool) error {
	switch {
	case obj.Func == nil:
		return fmt.Errorf("nil Func: %w", ErrInvalidObjective)
	case obj.Gradient == nil:
		return fmt.Errorf("nil Gradient: %w", ErrInvalidObjective)
	case needHessian && obj.Hessian == nil:
		return fmt.Errorf("nil Hessian: %w", ErrInvalidObjective)
	case needDelta && (!(obj.Delta > 0) || math.IsInf(obj.Delta, 1)):
		return fmt.Errorf("Delta %g: %w", obj.Delta, ErrInvalidObjective)
	}

	return nil
}

func validateSolution(sol Solution) error {
	if !(sol.Tolerance >= 0) {
		return fmt.Errorf("Tolerance %g: %w", sol.Tolerance, ErrInvalidSolution)
	}
	if sol.MaxIterations <= 0 {
		return fmt.Errorf("MaxIterations %d: %w", sol.MaxIterations, ErrInvalidSolution)
	}

	return nil
}

func converged(df, gradNorm, tol float64) bool {
	return math.Abs(df) <= tol && gradNorm <= tol
}
