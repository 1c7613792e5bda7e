// Package lvmath is a small-dimension linear algebra and numerical toolkit:
// fixed-size vectors and matrices, closed-form polynomial roots, Matrix3
// decompositions and two-variable optimizers.
//
// 🚀 What is in lvmath?
//
//   - Tolerance predicates shared by every solver (compare)
//   - Complex numbers with all square and cube roots (complexnum)
//   - Vector2/3/4 value types plus a dimension-checked VecN (vector)
//   - Matrix2/3/4 (column-major) and a row-major Dense (matrix)
//   - QR via Givens rotations, rank via RREF, eigenvalues via the
//     characteristic cubic (matrix)
//   - Real quadratic and cubic roots in closed form (polynomial)
//   - Bracketed bisection (rootfinders)
//   - Newton and BFGS quasi-Newton with a parabolic line search (optimization)
//
// ✨ Conventions
//
//   - Value semantics: arithmetic returns new values, receivers are never mutated.
//   - Explicit tolerances: no hidden process-wide epsilon.
//   - Errors for bad input (dimension, index, singular inversion); result
//     flags plus a log/slog warning for numerical non-convergence.
//
// Layout:
//
//	compare/        IsZero, IsEqual, SelectDistinctValues
//	complexnum/     Complex arithmetic, Sqrt, Cbrt
//	vector/         Vector2, Vector3, Vector4, VecN
//	matrix/         Matrix2/3/4, Dense, QR, Rank, Eigenvalues, gonum interop
//	polynomial/     RealQuadraticRoots, RealCubicRoots, CubicRoots
//	rootfinders/    Bisection
//	optimization/   Newton, QuasiNewton, ParabolicLineSearch, BFGSRankUpdate
//	examples/       runnable programs
//
//	go get github.com/katalvlaran/lvmath
package lvmath
