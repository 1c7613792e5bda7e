// Package logging wraps log/slog with the event helpers shared by the
// iterative solvers of this module, so every solver reports the same
// structured keys.
package logging

import (
	"io"
	"log/slog"
)

// Stable attribute keys.
const (
	KeyMethod     = "method"
	KeyIterations = "iterations"
	KeyTolerance  = "tolerance"
	KeyResidual   = "residual"
	KeyCurvature  = "curvature"
	KeyValue      = "value"
)

// Logger wraps slog.Logger with solver-specific helpers.
type Logger struct {
	*slog.Logger
}

// New wraps l. A nil l falls back to slog.Default(), so warnings stay visible
// unless the caller opts out with Noop.
func New(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}

	return &Logger{Logger: l}
}

// Noop returns a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithMethod tags every record with the solver name.
func (l *Logger) WithMethod(method string) *Logger {
	return &Logger{Logger: l.Logger.With(KeyMethod, method)}
}

// LogNonConvergence reports that an iteration cap was reached.
func (l *Logger) LogNonConvergence(iterations int, tolerance, residual float64) {
	l.Warn("iteration limit reached without convergence",
		KeyIterations, iterations,
		KeyTolerance, tolerance,
		KeyResidual, residual,
	)
}

// LogConverged reports a successful solve at debug level.
func (l *Logger) LogConverged(iterations int, residual float64) {
	l.Debug("converged",
		KeyIterations, iterations,
		KeyResidual, residual,
	)
}

// LogSingular reports a degenerate matrix encountered during inversion;
// what describes the recovery taken, args are extra key/value pairs.
func (l *Logger) LogSingular(what string, args ...any) {
	l.Warn("singular matrix, "+what, args...)
}

// LogLineSearchFailure reports that the line search could not bracket a
// minimum; value is the objective at the last accepted point.
func (l *Logger) LogLineSearchFailure(iterations int, value float64) {
	l.Warn("line search failed to bracket a minimum",
		KeyIterations, iterations,
		KeyValue, value,
	)
}

// LogCurvatureReset reports that a quasi-Newton update was skipped and the
// inverse Hessian approximation reset to identity.
func (l *Logger) LogCurvatureReset(iterations int, curvature float64) {
	l.Debug("non-positive curvature, inverse Hessian reset to identity",
		KeyIterations, iterations,
		KeyCurvature, curvature,
	)
}
