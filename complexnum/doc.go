// Package complexnum implements complex-number arithmetic on a plain
// {Real, Imag} value type, including all square and cube roots via the
// polar form.
//
// Complex is a value type: every operation returns a new value and never
// mutates its receiver, so expressions chain naturally:
//
//	z := complexnum.New(1, 2).Multiply(w).Scale(0.5)
//
// Roots are returned as slices because their count depends on the input:
// Sqrt yields one value for non-negative reals and two otherwise, Cbrt always
// yields three.
package complexnum
