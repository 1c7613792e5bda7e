// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// decompositions and of Dense.
//
// Design goals:
//   - No global state: every tolerance a routine uses arrives through Option.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error); routines never panic on data.
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/lvmath/compare"
	"github.com/katalvlaran/lvmath/internal/logging"
)

// machineEpsilon is the spacing of float64 values around 1 (2⁻⁵²).
const machineEpsilon = 2.220446049250313e-16

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by QR (entries treated as
	// zero) and by the characteristic-cubic solver behind Eigenvalues.
	DefaultEpsilon = compare.DefaultTolerance

	// DefaultRankTolerance is the threshold below which entries of R and of
	// the row-echelon form count as zero when computing Rank.
	DefaultRankTolerance = 100 * machineEpsilon

	// DefaultValidateNaNInf toggles strict finite-value validation on Dense.Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages ----------

const (
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicRankToleranceInvalid = "matrix: WithRankTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps            float64 // DefaultEpsilon
	rankTol        float64 // DefaultRankTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
	logger         *logging.Logger
}

// WithEpsilon sets the tolerance used by QR and Eigenvalues.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRankTolerance sets the zero threshold used by Rank and RREF.
// Panics when tol is negative, NaN or ±Inf.
func WithRankTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// WithValidateNaNInf makes Dense reject NaN/±Inf on Set (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Dense store NaN/±Inf.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithLogger routes diagnostics (e.g. InverseOrIdentity warnings) to l.
// A nil l selects slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = logging.New(l) }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		rankTol:        DefaultRankTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = logging.New(nil)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
