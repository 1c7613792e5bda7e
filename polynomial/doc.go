// Package polynomial extracts roots of low-degree real polynomials in
// closed form.
//
// The cubic solver normalizes to a monic polynomial, depresses it with the
// substitution x = y - p/3 and branches on the sign of the discriminant
//
//	Δ = b²/4 + a³/27    for y³ + a·y + b = 0
//
// so that every branch stays in real arithmetic:
//
//   - Δ ≈ 0: a repeated root (triple when b ≈ 0, otherwise one simple and
//     one double root).
//   - Δ > 0: one real root from Cardano's formula.
//   - Δ < 0: three distinct real roots from the trigonometric method, which
//     avoids the complex intermediate cube roots Cardano would need.
//
// Every solver takes an explicit tolerance used for the discriminant and
// leading-coefficient tests; compare.DefaultTolerance is a reasonable value
// for well-scaled coefficients.
//
// Real roots are returned in ascending order.
package polynomial
