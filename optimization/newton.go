// SPDX-License-Identifier: MIT

package optimization

import (
	"errors"

	"github.com/katalvlaran/lvmath/internal/logging"
	"github.com/katalvlaran/lvmath/matrix"
)

// Newton minimizes obj.Func with full Newton steps.
//
// Implementation:
//   - Stage 1: evaluate f, ∇f and ∇²f at obj.Start.
//   - Stage 2: per iteration, invert the Hessian and step
//     dx = -(gᵀ·H⁻¹), then re-evaluate at xₖ₊₁ = xₖ + dx.
//   - Stage 3: stop on the dual criterion or the iteration cap.
//
// A singular Hessian is logged as a warning and replaced by the identity
// for that step, which turns it into a steepest-descent step.
//
// Errors: ErrInvalidObjective (nil Func, Gradient or Hessian),
// ErrInvalidSolution. A nil opts is equivalent to &Options{}.
func Newton(obj Objective, sol Solution, opts *Options) (Result, error) {
	if err := validateObjective(obj, true, false); err != nil {
		return Result{}, err
	}
	if err := validateSolution(sol); err != nil {
		return Result{}, err
	}
	if opts == nil {
		opts = &Options{}
	}
	log := logging.New(opts.Logger).WithMethod("Newton")

	xk := obj.Start
	fk := obj.Func(xk)
	gk := obj.Gradient(xk)
	hk := obj.Hessian(xk)
	res := Result{InitialObjective: fk, Status: StatusMaxIterations}

	for iter := 1; iter <= sol.MaxIterations; iter++ {
		inv, err := hk.Inverse()
		if errors.Is(err, matrix.ErrSingular) {
			log.LogSingular("using gradient step", logging.KeyIterations, iter)
			inv = matrix.NewMatrix2()
		}
		dx := inv.TransposeTransform(gk).Negate()

		xk1 := xk.Add(dx)
		fk1 := obj.Func(xk1)
		df := fk1 - fk

		xk, fk = xk1, fk1
		gk = obj.Gradient(xk)
		hk = obj.Hessian(xk)
		res.Iterations = iter

		if converged(df, gk.Length(), sol.Tolerance) {
			res.Status = StatusConverged
			break
		}
	}

	res.Solution = xk
	res.FinalObjective = fk
	res.GradNorm = gk.Length()
	res.SolutionValid = res.Status == StatusConverged
	report(log, res, sol)

	return res, nil
}

func report(log *logging.Logger, res Result, sol Solution) {
	switch res.Status {
	case StatusConverged:
		log.LogConverged(res.Iterations, res.GradNorm)
	case StatusMaxIterations:
		log.LogNonConvergence(res.Iterations, sol.Tolerance, res.GradNorm)
	case StatusLineSearchFailed:
		log.LogLineSearchFailure(res.Iterations, res.FinalObjective)
	}
}
