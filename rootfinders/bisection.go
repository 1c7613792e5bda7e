// SPDX-License-Identifier: MIT

package rootfinders

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvmath/internal/logging"
)

// Default option values.
const (
	DefaultLowerBound    = 0.0
	DefaultUpperBound    = 1.0
	DefaultMaxIterations = 100
	DefaultRootTolerance = 1e-10
)

// ErrInvalidOptions reports a bracket or stopping rule that cannot work:
// a nil function, LowerBound >= UpperBound, non-finite bounds,
// MaxIterations <= 0 or a negative RootTolerance.
var ErrInvalidOptions = errors.New("rootfinders: invalid options")

// BisectionOptions configures Bisection.
//
// Fields:
//   - LowerBound, UpperBound: the initial bracket; f should change sign on it.
//   - InitialValue: a warm-start guess. If |f(InitialValue)| < RootTolerance
//     it is returned at once without iterating.
//   - MaxIterations: cap on midpoint evaluations.
//   - RootTolerance: stop when |f(mid)| < RootTolerance.
//   - Logger: destination for convergence diagnostics; nil means slog.Default().
type BisectionOptions struct {
	LowerBound    float64
	UpperBound    float64
	InitialValue  float64
	MaxIterations int
	RootTolerance float64
	Logger        *slog.Logger
}

// DefaultBisectionOptions returns the documented defaults: bracket [0, 1],
// 100 iterations, tolerance 1e-10.
func DefaultBisectionOptions() BisectionOptions {
	return BisectionOptions{
		LowerBound:    DefaultLowerBound,
		UpperBound:    DefaultUpperBound,
		InitialValue:  DefaultLowerBound,
		MaxIterations: DefaultMaxIterations,
		RootTolerance: DefaultRootTolerance,
	}
}

// Result reports the outcome of a root search.
type Result struct {
	Root       float64 // best estimate
	Value      float64 // f(Root)
	Iterations int     // midpoint evaluations performed
	Converged  bool    // |Value| < RootTolerance
}

// Bisection finds x in [LowerBound, UpperBound] with |f(x)| < RootTolerance.
// A nil opts selects DefaultBisectionOptions.
//
// Each iteration evaluates the midpoint and keeps the half whose endpoints
// still straddle a sign change of f, judged by the sign of f(lower)·f(mid).
// Without a sign change over the initial bracket the search drifts to an
// endpoint and normally ends at the iteration cap.
//
// Errors: ErrInvalidOptions only. Non-convergence is reported through
// Result.Converged and a logged warning.
//
// Complexity: O(MaxIterations) evaluations of f.
func Bisection(f func(float64) float64, opts *BisectionOptions) (Result, error) {
	o := DefaultBisectionOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(f, o); err != nil {
		return Result{}, err
	}
	log := logging.New(o.Logger).WithMethod("Bisection")

	if v := f(o.InitialValue); math.Abs(v) < o.RootTolerance {
		log.LogConverged(0, math.Abs(v))

		return Result{Root: o.InitialValue, Value: v, Converged: true}, nil
	}

	lo, hi := o.LowerBound, o.UpperBound
	flo := f(lo)
	var mid, fm float64
	for i := 1; i <= o.MaxIterations; i++ {
		mid = lo + (hi-lo)/2
		fm = f(mid)
		if math.Abs(fm) < o.RootTolerance {
			log.LogConverged(i, math.Abs(fm))

			return Result{Root: mid, Value: fm, Iterations: i, Converged: true}, nil
		}
		if flo*fm < 0 {
			hi = mid
		} else {
			lo, flo = mid, fm
		}
	}

	log.LogNonConvergence(o.MaxIterations, o.RootTolerance, math.Abs(fm))

	return Result{Root: mid, Value: fm, Iterations: o.MaxIterations}, nil
}

func validate(f func(float64) float64, o BisectionOptions) error {
	switch {
	case f == nil:
		return fmt.Errorf("nil function: %w", ErrInvalidOptions)
	case math.IsNaN(o.LowerBound) || math.IsInf(o.LowerBound, 0) ||
		math.IsNaN(o.UpperBound) || math.IsInf(o.UpperBound, 0):
		return fmt.Errorf("non-finite bracket [%g, %g]: %w", o.LowerBound, o.UpperBound, ErrInvalidOptions)
	case o.LowerBound >= o.UpperBound:
		return fmt.Errorf("empty bracket [%g, %g]: %w", o.LowerBound, o.UpperBound, ErrInvalidOptions)
	case o.MaxIterations <= 0:
		return fmt.Errorf("MaxIterations %d: %w", o.MaxIterations, ErrInvalidOptions)
	case o.RootTolerance < 0 || math.IsNaN(o.RootTolerance):
		return fmt.Errorf("RootTolerance %g: %w", o.RootTolerance, ErrInvalidOptions)
	}

	return nil
}
