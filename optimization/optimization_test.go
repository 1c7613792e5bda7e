package optimization_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/optimization"
	"github.com/katalvlaran/lvmath/vector"
)

// OptimizationSuite exercises Newton and QuasiNewton on known problems.
type OptimizationSuite struct {
	suite.Suite
	buf  bytes.Buffer
	opts *optimization.Options
}

func (s *OptimizationSuite) SetupTest() {
	s.buf.Reset()
	h := slog.NewJSONHandler(&s.buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	s.opts = &optimization.Options{Logger: slog.New(h)}
}

// records decodes every JSON log line written during the test.
func (s *OptimizationSuite) records() []map[string]any {
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(s.buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		require.NoError(s.T(), json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}

	return out
}

func (s *OptimizationSuite) hasRecord(level, msg string) bool {
	for _, r := range s.records() {
		if r["level"] == level && r["msg"] == msg {
			return true
		}
	}

	return false
}

// bowl is f(x, y) = (x-1)² + (y-2)².
func bowl() optimization.Objective {
	return optimization.Objective{
		Start: vector.Vector2{},
		Delta: 1,
		Func: func(p vector.Vector2) float64 {
			return (p.X-1)*(p.X-1) + (p.Y-2)*(p.Y-2)
		},
		Gradient: func(p vector.Vector2) vector.Vector2 {
			return vector.Vector2{X: 2 * (p.X - 1), Y: 2 * (p.Y - 2)}
		},
		Hessian: func(vector.Vector2) matrix.Matrix2 {
			return matrix.NewMatrix2().Scale(2)
		},
	}
}

// rosenbrock is f(x, y) = (1-x)² + 100(y-x²)² from the classic start (-1.2, 1).
func rosenbrock() optimization.Objective {
	return optimization.Objective{
		Start: vector.Vector2{X: -1.2, Y: 1},
		Delta: 0.1,
		Func: func(p vector.Vector2) float64 {
			a, b := 1-p.X, p.Y-p.X*p.X
			return a*a + 100*b*b
		},
		Gradient: func(p vector.Vector2) vector.Vector2 {
			b := p.Y - p.X*p.X
			return vector.Vector2{X: -2*(1-p.X) - 400*p.X*b, Y: 200 * b}
		},
		Hessian: func(p vector.Vector2) matrix.Matrix2 {
			return matrix.Matrix2FromRows(
				vector.Vector2{X: 2 - 400*p.Y + 1200*p.X*p.X, Y: -400 * p.X},
				vector.Vector2{X: -400 * p.X, Y: 200},
			)
		},
	}
}

func (s *OptimizationSuite) TestQuasiNewtonConvexQuadratic() {
	sol := optimization.DefaultSolution()
	res, err := optimization.QuasiNewton(bowl(), sol, s.opts)
	require.NoError(s.T(), err)

	require.True(s.T(), res.SolutionValid)
	require.Equal(s.T(), optimization.StatusConverged, res.Status)
	require.InDelta(s.T(), 1, res.Solution.X, 1e-8)
	require.InDelta(s.T(), 2, res.Solution.Y, 1e-8)
	require.Less(s.T(), res.Iterations, 5)
	require.Equal(s.T(), 5.0, res.InitialObjective)
	require.InDelta(s.T(), 0, res.FinalObjective, 1e-12)
	require.LessOrEqual(s.T(), res.GradNorm, sol.Tolerance)
	require.True(s.T(), s.hasRecord("DEBUG", "converged"))
}

func (s *OptimizationSuite) TestQuasiNewtonResetsOnZeroCurvature() {
	// The first line search lands on the minimum, so the second secant pair
	// is zero and the inverse Hessian is reset.
	_, err := optimization.QuasiNewton(bowl(), optimization.DefaultSolution(), s.opts)
	require.NoError(s.T(), err)
	require.True(s.T(), s.hasRecord("DEBUG", "non-positive curvature, inverse Hessian reset to identity"))
}

func (s *OptimizationSuite) TestQuasiNewtonRosenbrock() {
	sol := optimization.Solution{Tolerance: 1e-8, MaxIterations: 500}
	res, err := optimization.QuasiNewton(rosenbrock(), sol, s.opts)
	require.NoError(s.T(), err)

	require.True(s.T(), res.SolutionValid, "status %v after %d iterations", res.Status, res.Iterations)
	require.InDelta(s.T(), 1, res.Solution.X, 1e-6)
	require.InDelta(s.T(), 1, res.Solution.Y, 1e-6)
	require.Less(s.T(), res.Iterations, 100)
}

// TestQuasiNewtonFinalObjectiveMatchesSolution checks that the objective
// reported from the line search is f at the returned point.
func (s *OptimizationSuite) TestQuasiNewtonFinalObjectiveMatchesSolution() {
	obj := rosenbrock()
	f := obj.Func
	calls := 0
	obj.Func = func(p vector.Vector2) float64 {
		calls++
		return f(p)
	}

	res, err := optimization.QuasiNewton(obj, optimization.Solution{Tolerance: 1e-8, MaxIterations: 500}, s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), f(res.Solution), res.FinalObjective)
	// Each iteration samples at least φ(0) and φ(Delta).
	require.GreaterOrEqual(s.T(), calls, 1+2*res.Iterations)
}

func (s *OptimizationSuite) TestQuasiNewtonStartsAtMinimum() {
	obj := bowl()
	obj.Start = vector.Vector2{X: 1, Y: 2}
	res, err := optimization.QuasiNewton(obj, optimization.DefaultSolution(), s.opts)
	require.NoError(s.T(), err)
	require.True(s.T(), res.SolutionValid)
	require.Equal(s.T(), 1, res.Iterations)
	require.Equal(s.T(), obj.Start, res.Solution)
}

func (s *OptimizationSuite) TestQuasiNewtonLineSearchFailure() {
	obj := optimization.Objective{
		Delta:    1,
		Func:     func(p vector.Vector2) float64 { return -p.X },
		Gradient: func(vector.Vector2) vector.Vector2 { return vector.Vector2{X: -1} },
	}
	res, err := optimization.QuasiNewton(obj, optimization.DefaultSolution(), s.opts)
	require.NoError(s.T(), err)

	require.False(s.T(), res.SolutionValid)
	require.Equal(s.T(), optimization.StatusLineSearchFailed, res.Status)
	require.Equal(s.T(), 0, res.Iterations)
	require.True(s.T(), s.hasRecord("WARN", "line search failed to bracket a minimum"))
}

func (s *OptimizationSuite) TestQuasiNewtonIterationCap() {
	sol := optimization.Solution{Tolerance: 1e-12, MaxIterations: 2}
	res, err := optimization.QuasiNewton(rosenbrock(), sol, s.opts)
	require.NoError(s.T(), err)

	require.False(s.T(), res.SolutionValid)
	require.Equal(s.T(), optimization.StatusMaxIterations, res.Status)
	require.Equal(s.T(), 2, res.Iterations)
	require.Less(s.T(), res.FinalObjective, res.InitialObjective)
	require.True(s.T(), s.hasRecord("WARN", "iteration limit reached without convergence"))
}

func (s *OptimizationSuite) TestNewtonConvexQuadratic() {
	res, err := optimization.Newton(bowl(), optimization.DefaultSolution(), s.opts)
	require.NoError(s.T(), err)

	require.True(s.T(), res.SolutionValid)
	require.Equal(s.T(), 2, res.Iterations)
	require.Equal(s.T(), vector.Vector2{X: 1, Y: 2}, res.Solution)
}

func (s *OptimizationSuite) TestNewtonRosenbrock() {
	sol := optimization.Solution{Tolerance: 1e-6, MaxIterations: 50}
	res, err := optimization.Newton(rosenbrock(), sol, s.opts)
	require.NoError(s.T(), err)

	require.True(s.T(), res.SolutionValid)
	require.InDelta(s.T(), 1, res.Solution.X, 1e-6)
	require.InDelta(s.T(), 1, res.Solution.Y, 1e-6)
	require.Less(s.T(), res.Iterations, 10)
}

func (s *OptimizationSuite) TestNewtonSingularHessianFallsBack() {
	// f = x⁴ + y² has a singular Hessian on the line x = 0; the gradient
	// step then oscillates between y = ±1 until the cap.
	obj := optimization.Objective{
		Start:    vector.Vector2{X: 0, Y: 1},
		Func:     func(p vector.Vector2) float64 { return math.Pow(p.X, 4) + p.Y*p.Y },
		Gradient: func(p vector.Vector2) vector.Vector2 { return vector.Vector2{X: 4 * math.Pow(p.X, 3), Y: 2 * p.Y} },
		Hessian: func(p vector.Vector2) matrix.Matrix2 {
			return matrix.Matrix2FromRows(vector.Vector2{X: 12 * p.X * p.X}, vector.Vector2{Y: 2})
		},
	}
	res, err := optimization.Newton(obj, optimization.Solution{Tolerance: 1e-8, MaxIterations: 4}, s.opts)
	require.NoError(s.T(), err)

	require.False(s.T(), res.SolutionValid)
	require.Equal(s.T(), optimization.StatusMaxIterations, res.Status)
	require.Equal(s.T(), 4, res.Iterations)
	require.Equal(s.T(), vector.Vector2{X: 0, Y: 1}, res.Solution)
	require.True(s.T(), s.hasRecord("WARN", "singular matrix, using gradient step"))
}

func (s *OptimizationSuite) TestInvalidConfiguration() {
	sol := optimization.DefaultSolution()

	noHessian := bowl()
	noHessian.Hessian = nil
	_, err := optimization.Newton(noHessian, sol, s.opts)
	require.ErrorIs(s.T(), err, optimization.ErrInvalidObjective)
	// QuasiNewton does not need it.
	_, err = optimization.QuasiNewton(noHessian, sol, s.opts)
	require.NoError(s.T(), err)

	noFunc := bowl()
	noFunc.Func = nil
	_, err = optimization.QuasiNewton(noFunc, sol, s.opts)
	require.ErrorIs(s.T(), err, optimization.ErrInvalidObjective)

	noGrad := bowl()
	noGrad.Gradient = nil
	_, err = optimization.Newton(noGrad, sol, s.opts)
	require.ErrorIs(s.T(), err, optimization.ErrInvalidObjective)

	zeroDelta := bowl()
	zeroDelta.Delta = 0
	_, err = optimization.QuasiNewton(zeroDelta, sol, s.opts)
	require.ErrorIs(s.T(), err, optimization.ErrInvalidObjective)
	// Newton ignores Delta.
	_, err = optimization.Newton(zeroDelta, sol, nil)
	require.NoError(s.T(), err)

	_, err = optimization.Newton(bowl(), optimization.Solution{Tolerance: -1, MaxIterations: 10}, s.opts)
	require.ErrorIs(s.T(), err, optimization.ErrInvalidSolution)
	_, err = optimization.QuasiNewton(bowl(), optimization.Solution{Tolerance: math.NaN(), MaxIterations: 10}, s.opts)
	require.ErrorIs(s.T(), err, optimization.ErrInvalidSolution)
	_, err = optimization.QuasiNewton(bowl(), optimization.Solution{Tolerance: 1e-8}, s.opts)
	require.ErrorIs(s.T(), err, optimization.ErrInvalidSolution)
}

func TestOptimizationSuite(t *testing.T) {
	suite.Run(t, new(OptimizationSuite))
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "converged", optimization.StatusConverged.String())
	require.Equal(t, "max iterations", optimization.StatusMaxIterations.String())
	require.Equal(t, "line search failed", optimization.StatusLineSearchFailed.String())
	require.Equal(t, "Status(9)", optimization.Status(9).String())
}
