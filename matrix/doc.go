// Package matrix provides small fixed-size matrices for geometry and
// numerical optimization, plus an arbitrary-size Dense companion.
//
// Fixed-size types:
//
//   - Matrix2, Matrix3 and Matrix4 are value types storing their elements
//     column-major: element (row, col) lives at Elements[col*N+row].
//     NewMatrixN returns the identity; the zero value is the zero matrix.
//   - Arithmetic returns new values and never mutates the receiver. Only
//     Set, SetRow and SetColumn write in place, through a pointer receiver.
//   - Inverse returns ErrSingular when the determinant is exactly zero.
//     InverseOrIdentity logs a warning and substitutes the identity instead,
//     for callers that prefer to continue.
//
// Matrix3 additionally offers QR (Givens rotations), RREF, Rank and
// Eigenvalues. Eigenvalues solves the characteristic cubic in closed form
// and returns all three roots, complex-conjugate pairs included.
//
// Dense is a row-major r×c matrix with error-returning accessors, an
// optional NaN/Inf rejection policy and free-function kernels (Add, Sub,
// Mul, Transpose, Scale, Trace, MatVec, Determinant, Inverse).
// Determinant and Inverse on Dense delegate to gonum's LU factorization;
// ToGonum and the FromGonum constructors convert every type to and from
// gonum.org/v1/gonum/mat.
//
// Configuration uses functional options (WithEpsilon, WithRankTolerance,
// WithLogger, WithValidateNaNInf) resolved against the documented DefaultX
// constants.
package matrix
