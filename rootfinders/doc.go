// Package rootfinders locates roots of scalar functions by bracketing.
//
// Bisection halves a bracket [LowerBound, UpperBound] until the function
// value at the midpoint drops below RootTolerance. Hitting MaxIterations is
// not an error: the best midpoint is returned with Converged == false and a
// warning is logged, so the caller decides whether the estimate is usable.
package rootfinders
