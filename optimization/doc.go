// Package optimization minimizes smooth scalar functions of two variables.
//
// Two solvers share one configuration surface:
//
//   - Newton takes full Newton steps dx = -H⁻¹·g using a caller-supplied
//     Hessian. A singular Hessian is logged and the step falls back to the
//     negative gradient.
//   - QuasiNewton (BFGS) keeps an inverse-Hessian approximation N, starts
//     from the identity, picks the step length with ParabolicLineSearch and
//     refreshes N with BFGSRankUpdate after every step.
//
// Both stop when |f(xₖ₊₁) - f(xₖ)| <= Tolerance and |∇f(xₖ₊₁)| <= Tolerance
// hold together, or when MaxIterations is reached. Non-convergence is not
// an error: Result.SolutionValid is false, Result.Status says why, and a
// warning is logged. Errors are returned only for unusable configuration.
//
// Every solver allocates its own iteration state; the caller's Objective is
// never mutated.
package optimization
