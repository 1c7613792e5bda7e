// SPDX-License-Identifier: MIT

package complexnum

import (
	"fmt"
	"math"
)

// Complex is a complex number Real + Imag·i.
// The zero value is 0+0i.
type Complex struct {
	Real float64
	Imag float64
}

// New returns real + imag·i.
func New(real, imag float64) Complex { return Complex{Real: real, Imag: imag} }

// FromReal returns x + 0i.
func FromReal(x float64) Complex { return Complex{Real: x} }

// FromPolar returns r·(cos θ + i·sin θ).
func FromPolar(r, theta float64) Complex {
	s, c := math.Sincos(theta)

	return Complex{Real: r * c, Imag: r * s}
}

// Add returns z + o.
func (z Complex) Add(o Complex) Complex {
	return Complex{Real: z.Real + o.Real, Imag: z.Imag + o.Imag}
}

// Sub returns z - o.
func (z Complex) Sub(o Complex) Complex {
	return Complex{Real: z.Real - o.Real, Imag: z.Imag - o.Imag}
}

// Multiply returns z·o.
func (z Complex) Multiply(o Complex) Complex {
	return Complex{
		Real: z.Real*o.Real - z.Imag*o.Imag,
		Imag: z.Real*o.Imag + z.Imag*o.Real,
	}
}

// Divide returns z / o computed by multiplying with the conjugate of o:
//
//	(a+bi)/(c+di) = (ac+bd)/(c²+d²) + (bc-ad)/(c²+d²)·i
//
// A zero divisor is not guarded; the result then carries ±Inf or NaN
// components exactly as IEEE division produces them.
func (z Complex) Divide(o Complex) Complex {
	den := o.Real*o.Real + o.Imag*o.Imag

	return Complex{
		Real: (z.Real*o.Real + z.Imag*o.Imag) / den,
		Imag: (z.Imag*o.Real - z.Real*o.Imag) / den,
	}
}

// Scale returns s·z.
func (z Complex) Scale(s float64) Complex {
	return Complex{Real: z.Real * s, Imag: z.Imag * s}
}

// Conjugate returns Real - Imag·i.
func (z Complex) Conjugate() Complex {
	return Complex{Real: z.Real, Imag: -z.Imag}
}

// Negate returns -z.
func (z Complex) Negate() Complex {
	return Complex{Real: -z.Real, Imag: -z.Imag}
}

// Modulus returns |z|.
func (z Complex) Modulus() float64 {
	return math.Hypot(z.Real, z.Imag)
}

// Argument returns the principal angle atan2(Imag, Real) in (-π, π].
func (z Complex) Argument() float64 {
	return math.Atan2(z.Imag, z.Real)
}

// Pow returns zⁿ by repeated squaring. Negative n inverts the result.
func (z Complex) Pow(n int) Complex {
	if n < 0 {
		return FromReal(1).Divide(z.Pow(-n))
	}
	out := FromReal(1)
	base := z
	for n > 0 {
		if n&1 == 1 {
			out = out.Multiply(base)
		}
		base = base.Multiply(base)
		n >>= 1
	}

	return out
}

// Sqrt returns the square roots of z.
//
// A non-negative real input (Imag == 0, Real >= 0) yields its single real
// root. Otherwise both roots are produced by the half-angle polar formula
// √r·(cos(θ/2 + kπ), sin(θ/2 + kπ)) for k = 0, 1 with θ = atan2(Imag, Real).
func (z Complex) Sqrt() []Complex {
	if z.Imag == 0 && z.Real >= 0 {
		return []Complex{{Real: math.Sqrt(z.Real)}}
	}
	r := math.Sqrt(z.Modulus())
	half := z.Argument() / 2

	return []Complex{
		FromPolar(r, half),
		FromPolar(r, half+math.Pi),
	}
}

// Cbrt returns the three cube roots of z: ∛r·(cos φ_k, sin φ_k) with
// φ_k = θ/3 + k·2π/3 for k = 0, 1, 2.
func (z Complex) Cbrt() []Complex {
	r := math.Cbrt(z.Modulus())
	third := z.Argument() / 3
	const step = 2 * math.Pi / 3

	return []Complex{
		FromPolar(r, third),
		FromPolar(r, third+step),
		FromPolar(r, third+2*step),
	}
}

// Equal reports whether the real and imaginary parts each differ by less
// than eps. The parts are compared independently, not by modulus.
func (z Complex) Equal(o Complex, eps float64) bool {
	return math.Abs(z.Real-o.Real) < eps && math.Abs(z.Imag-o.Imag) < eps
}

// ExactEqual reports bitwise-value equality of both parts.
func (z Complex) ExactEqual(o Complex) bool {
	return z.Real == o.Real && z.Imag == o.Imag
}

// IsReal reports whether |Imag| < eps.
func (z Complex) IsReal(eps float64) bool {
	return math.Abs(z.Imag) < eps
}

// String formats z as "a+bi" / "a-bi".
func (z Complex) String() string {
	if math.Signbit(z.Imag) {
		return fmt.Sprintf("%g-%gi", z.Real, -z.Imag)
	}

	return fmt.Sprintf("%g+%gi", z.Real, z.Imag)
}
