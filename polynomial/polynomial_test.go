package polynomial_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvmath/compare"
	"github.com/katalvlaran/lvmath/complexnum"
	"github.com/katalvlaran/lvmath/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

var (
	approx    = cmpopts.EquateApprox(0, tol)
	unordered = cmpopts.SortSlices(func(a, b float64) bool { return a < b })
)

func TestEvaluate(t *testing.T) {
	assert.Equal(t, 0.0, polynomial.Evaluate(nil, 3))
	assert.Equal(t, 7.0, polynomial.Evaluate([]float64{7}, 3))
	// x³ - 6x² + 11x - 6 at 4 is 6.
	assert.Equal(t, 6.0, polynomial.Evaluate([]float64{1, -6, 11, -6}, 4))
}

func TestRealQuadraticRoots(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"negative discriminant", 1, 0, 1, []float64{}},
		{"zero discriminant", 1, -2, 1, []float64{1}},
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"scaled", -2, 6, -4, []float64{1, 2}},
		{"linear", 0, 2, -3, []float64{1.5}},
		{"constant", 0, 0, 5, []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := polynomial.RealQuadraticRoots(tc.a, tc.b, tc.c, compare.DefaultTolerance)
			if diff := cmp.Diff(tc.want, got, approx, unordered); diff != "" {
				t.Fatalf("roots mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRealCubicRoots(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d float64
		want       []float64
	}{
		{"three distinct", 1, -6, 11, -6, []float64{1, 2, 3}},
		{"triple zero", 1, 0, 0, 0, []float64{0}},
		{"triple shifted", 1, -6, 12, -8, []float64{2}},
		{"double and simple", 1, -6, -15, -8, []float64{-1, 8}},
		{"single real", 1, 0, 0, -1, []float64{1}},
		{"non-monic", 2, -12, 22, -12, []float64{1, 2, 3}},
		{"symmetric about zero", 1, 0, -1, 0, []float64{-1, 0, 1}},
		{"degenerate to quadratic", 0, 1, -3, 2, []float64{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := polynomial.RealCubicRoots(tc.a, tc.b, tc.c, tc.d, compare.DefaultTolerance)
			if diff := cmp.Diff(tc.want, got, approx, unordered); diff != "" {
				t.Fatalf("roots mismatch (-want +got):\n%s", diff)
			}
			for _, x := range got {
				assert.InDelta(t, 0, polynomial.Evaluate([]float64{tc.a, tc.b, tc.c, tc.d}, x), 1e-8)
			}
		})
	}
}

func TestRealCubicRootsAscending(t *testing.T) {
	got := polynomial.RealCubicRoots(1, -6, 11, -6, compare.DefaultTolerance)
	require.Len(t, got, 3)
	assert.IsIncreasing(t, got)
}

func TestRealCubicRootsWithMultiplicity(t *testing.T) {
	got := polynomial.RealCubicRootsWithMultiplicity(1, -6, -15, -8, compare.DefaultTolerance)
	want := []polynomial.Root{{Value: -1, Multiplicity: 2}, {Value: 8, Multiplicity: 1}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("roots mismatch (-want +got):\n%s", diff)
	}

	got = polynomial.RealCubicRootsWithMultiplicity(1, 0, 0, 0, compare.DefaultTolerance)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Multiplicity)

	got = polynomial.RealCubicRootsWithMultiplicity(1, -6, 11, -6, compare.DefaultTolerance)
	total := 0
	for _, r := range got {
		total += r.Multiplicity
	}
	assert.Equal(t, 3, total)
}

func TestCubicRootsIncludesComplexPair(t *testing.T) {
	got := polynomial.CubicRoots(1, 0, 0, -1, compare.DefaultTolerance)
	want := []complexnum.Complex{
		complexnum.FromReal(1),
		complexnum.New(-0.5, 0.8660254037844386),
		complexnum.New(-0.5, -0.8660254037844386),
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("roots mismatch (-want +got):\n%s", diff)
	}
}

// TestCubicRootsNearZeroDiscriminantPositiveSlope covers x³ + 1e-5·x + 1e-8,
// whose depressed discriminant is below the tolerance while the linear
// coefficient is positive: one real root and a complex pair.
func TestCubicRootsNearZeroDiscriminantPositiveSlope(t *testing.T) {
	coeffs := []float64{1, 0, 1e-5, 1e-8}

	reals := polynomial.RealCubicRoots(coeffs[0], coeffs[1], coeffs[2], coeffs[3], compare.DefaultTolerance)
	require.Len(t, reals, 1)
	assert.False(t, math.IsNaN(reals[0]))
	assert.InDelta(t, -9.216989942046787e-4, reals[0], 1e-15)
	assert.InDelta(t, 0, polynomial.Evaluate(coeffs, reals[0]), 1e-20)

	got := polynomial.CubicRoots(coeffs[0], coeffs[1], coeffs[2], coeffs[3], compare.DefaultTolerance)
	want := []complexnum.Complex{
		complexnum.FromReal(-9.216989942046787e-4),
		complexnum.New(4.6084949710233937e-4, 3.2614639009099023e-3),
		complexnum.New(4.6084949710233937e-4, -3.2614639009099023e-3),
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-14)); diff != "" {
		t.Fatalf("roots mismatch (-want +got):\n%s", diff)
	}
}

// TestRealCubicRootsExactDoubleRoot solves cubics with a double root at u and
// zero tolerance, which drives the trigonometric branch to its acos boundary.
func TestRealCubicRootsExactDoubleRoot(t *testing.T) {
	for _, u := range []float64{1, 0.1, 1.0 / 3, 7, -2.5} {
		// (x-u)²(x+2u) = x³ - 3u²x + 2u³
		coeffs := []float64{1, 0, -3 * u * u, 2 * u * u * u}
		got := polynomial.RealCubicRoots(coeffs[0], coeffs[1], coeffs[2], coeffs[3], 0)
		require.Len(t, got, 3, "u=%v", u)
		for _, x := range got {
			require.False(t, math.IsNaN(x), "u=%v", u)
			assert.InDelta(t, 0, polynomial.Evaluate(coeffs, x), 1e-12, "u=%v", u)
		}
		assert.InDelta(t, math.Min(u, -2*u), got[0], 1e-12)
	}
}

func TestCubicRootsRepeatsMultipleRoots(t *testing.T) {
	got := polynomial.CubicRoots(1, -6, -15, -8, compare.DefaultTolerance)
	want := []complexnum.Complex{complexnum.FromReal(-1), complexnum.FromReal(-1), complexnum.FromReal(8)}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("roots mismatch (-want +got):\n%s", diff)
	}
}

func TestQuadraticRoots(t *testing.T) {
	got := polynomial.QuadraticRoots(1, 0, 4, compare.DefaultTolerance)
	want := []complexnum.Complex{complexnum.New(0, 2), complexnum.New(0, -2)}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("roots mismatch (-want +got):\n%s", diff)
	}

	got = polynomial.QuadraticRoots(1, -2, 1, compare.DefaultTolerance)
	assert.Len(t, got, 2)

	assert.Empty(t, polynomial.QuadraticRoots(0, 0, 1, compare.DefaultTolerance))
}
