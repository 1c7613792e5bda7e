// SPDX-License-Identifier: MIT

package optimization

import (
	"github.com/katalvlaran/lvmath/vector"
)

// MaxBracketIterations caps the step-doubling phase of ParabolicLineSearch.
const MaxBracketIterations = 1024

// maxShrinkIterations caps step halving when the first trial step already
// overshoots. Halving 1 this many times reaches the subnormal range.
const maxShrinkIterations = 1080

type sample struct {
	alpha, f float64
}

// ParabolicLineSearch minimizes φ(α) = f(x0 + α·dir) for α >= 0 and
// returns the step length together with φ at that step, so callers need not
// evaluate f again at the accepted point.
//
// Implementation:
//   - Stage 1: if φ(alphaStart) >= φ(0), halve the step until it decreases;
//     the bracket is then (0, α, 2α). When no halving helps, the direction
//     offers no descent and 0 is returned with ok == true.
//   - Stage 2: otherwise double α while φ keeps decreasing, keeping the last
//     three samples in a rolling window. More than MaxBracketIterations
//     doublings fail with ok == false (φ unbounded below or non-finite).
//   - Stage 3: the window (a, 2a, 4a) is made equally spaced by sampling
//     its last gap at 3a; the three points around the lowest sample define
//     the parabola whose vertex a₂ + Δa·(f₁-f₃)/(2·(f₁-2f₂+f₃)) is the
//     candidate step.
//   - Stage 4: the candidate is kept only if it improves on the best sample.
//
// A non-positive alphaStart or a zero direction returns (0, f(x0), true).
// On failure value is φ(0).
func ParabolicLineSearch(f func(vector.Vector2) float64, x0, dir vector.Vector2, alphaStart float64) (alpha, value float64, ok bool) {
	phi := func(a float64) float64 { return f(x0.AddScaled(dir, a)) }
	if !(alphaStart > 0) || dir == (vector.Vector2{}) {
		return 0, phi(0), true
	}

	start := sample{0, phi(0)}
	cur := sample{alphaStart, phi(alphaStart)}

	// Stage 1: shrink until the first step descends.
	if !(cur.f < start.f) {
		for i := 0; ; i++ {
			if i >= maxShrinkIterations || cur.alpha == 0 {
				return start.alpha, start.f, true
			}
			next := sample{cur.alpha / 2, phi(cur.alpha / 2)}
			if next.f < start.f {
				best := vertex(start, next, cur, next.alpha, phi)
				return best.alpha, best.f, true
			}
			cur = next
		}
	}

	// Stage 2: expand. window holds samples j-2, j-1, j.
	var window [3]sample
	window[0], window[1] = start, cur
	for j := 2; ; j++ {
		if j-2 >= MaxBracketIterations {
			return start.alpha, start.f, false
		}
		prev := window[(j-1)%3]
		next := sample{2 * prev.alpha, phi(2 * prev.alpha)}
		window[j%3] = next
		if next.f >= prev.f {
			s1, s2, s3 := window[(j-2)%3], prev, next
			var best sample
			if s1.alpha == 0 {
				// (0, a, 2a) is already equally spaced.
				best = vertex(s1, s2, s3, s2.alpha, phi)
			} else {
				// Stage 3: (a, 2a, 4a) plus the midpoint 3a of the last gap.
				mid := sample{(s2.alpha + s3.alpha) / 2, phi((s2.alpha + s3.alpha) / 2)}
				if mid.f < s2.f {
					best = vertex(s2, mid, s3, s1.alpha, phi)
				} else {
					best = vertex(s1, s2, mid, s1.alpha, phi)
				}
			}

			return best.alpha, best.f, true
		}
	}
}

// vertex fits a parabola through three samples spaced da apart with
// s2.f <= s1.f, s3.f and returns the better of its vertex and s2.
func vertex(s1, s2, s3 sample, da float64, phi func(float64) float64) sample {
	den := s1.f - 2*s2.f + s3.f
	if !(den > 0) {
		return s2
	}
	a := s2.alpha + da*(s1.f-s3.f)/(2*den)
	if a < 0 {
		return s2
	}
	if fa := phi(a); fa < s2.f {
		return sample{a, fa}
	}

	return s2
}
