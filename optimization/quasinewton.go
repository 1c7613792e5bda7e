// SPDX-License-Identifier: MIT

package optimization

import (
	"github.com/katalvlaran/lvmath/compare"
	"github.com/katalvlaran/lvmath/internal/logging"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

// CurvatureTolerance is the smallest secant curvature dx·dy accepted by
// QuasiNewton before the inverse-Hessian approximation is reset.
const CurvatureTolerance = compare.DefaultTolerance

// QuasiNewton minimizes obj.Func with the BFGS method.
//
// Implementation:
//   - Stage 1: N = I; the first direction is the normalized negative gradient.
//   - Stage 2: per iteration, ParabolicLineSearch picks α along the
//     direction (seeded with obj.Delta) and xₖ₊₁ = xₖ + α·dir.
//   - Stage 3: N is refreshed by BFGSRankUpdate with the secant pair
//     (xₖ₊₁-xₖ, ∇fₖ₊₁-∇fₖ); the next direction is -N·∇fₖ₊₁.
//   - Stage 4: stop on the dual criterion, the iteration cap or a failed
//     line search (Status reports which).
//
// Errors: ErrInvalidObjective (nil Func or Gradient, Delta <= 0),
// ErrInvalidSolution. A nil opts is equivalent to &Options{}.
func QuasiNewton(obj Objective, sol Solution, opts *Options) (Result, error) {
	if err := validateObjective(obj, false, true); err != nil {
		return Result{}, err
	}
	if err := validateSolution(sol); err != nil {
		return Result{}, err
	}
	if opts == nil {
		opts = &Options{}
	}
	log := logging.New(opts.Logger).WithMethod("QuasiNewton")

	xk := obj.Start
	fk := obj.Func(xk)
	gk := obj.Gradient(xk)
	n := matrix.NewMatrix2()
	res := Result{InitialObjective: fk, Status: StatusMaxIterations}

	dir := gk.Normalize().Negate()
	for iter := 1; iter <= sol.MaxIterations; iter++ {
		alpha, fk1, ok := ParabolicLineSearch(obj.Func, xk, dir, obj.Delta)
		if !ok {
			res.Status = StatusLineSearchFailed
			break
		}

		xk1 := xk.AddScaled(dir, alpha)
		gk1 := obj.Gradient(xk1)

		var updated bool
		n, updated = BFGSRankUpdate(n, xk1.Sub(xk), gk1.Sub(gk), CurvatureTolerance)
		if !updated {
			log.LogCurvatureReset(iter, xk1.Sub(xk).Dot(gk1.Sub(gk)))
		}

		df := fk1 - fk
		xk, fk, gk = xk1, fk1, gk1
		res.Iterations = iter

		if converged(df, gk.Length(), sol.Tolerance) {
			res.Status = StatusConverged
			break
		}
		dir = n.TransformVector(gk).Negate()
	}

	res.Solution = xk
	res.FinalObjective = fk
	res.GradNorm = gk.Length()
	res.SolutionValid = res.Status == StatusConverged
	report(log, res, sol)

	return res, nil
}

// BFGSRankUpdate applies the BFGS rank-two update to the inverse-Hessian
// approximation n for the secant pair dx = xₖ₊₁-xₖ, dy = ∇fₖ₊₁-∇fₖ:
//
//	t = n·dy, a = dx·dy, b = dy·t, c = 1/a, d = (1 + b/a)·c
//	n' = n + d·(dx⊗dx) - c·(dx⊗t) - c·(t⊗dx)
//
// When the curvature a is at or below eps the update would lose positive
// definiteness (or divide by zero); the identity is returned instead with
// updated == false.
func BFGSRankUpdate(n matrix.Matrix2, dx, dy vector.Vector2, eps float64) (matrix.Matrix2, bool) {
	a := dx.Dot(dy)
	if a <= eps {
		return matrix.NewMatrix2(), false
	}
	t := n.TransformVector(dy)
	b := dy.Dot(t)
	c := 1 / a
	d := (1 + b/a) * c

	return n.AddOuterProduct(dx, dx, d).
		AddOuterProduct(dx, t, -c).
		AddOuterProduct(t, dx, -c), true
}
