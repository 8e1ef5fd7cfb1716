package simplify

import (
	"math"

	"github.com/katalvlaran/curvath/curve"
	"github.com/katalvlaran/curvath/ncc"
)

// interval is one pending tolerance interval on the search stack.
type interval struct {
	Low   float64
	High  float64
	Depth int
}

// FindTolerance searches [opts.LowBound, opts.HighBound] for the loosest
// tolerance whose simplified curve still scores opts.TargetSimilarity
// against c — maximal compression subject to quality.
//
// Similarity is monotonically non-increasing in the tolerance (coarser
// simplification loses fidelity), so the search narrows one interval at a
// time on an explicit stack of (low, high, depth) triples:
//
//  1. Drop the interval when depth ≥ MaxIterations or its width is below
//     Epsilon (termination guards).
//  2. Score the midpoint; |score − target| < Epsilon is accepted
//     immediately and returned.
//  3. Otherwise remember the best midpoint seen so far as the fallback.
//  4. Score the two quarter points and push only the half whose quarter
//     point lands closer to the target; ties descend into the right
//     (looser) half.
//
// The single-branch descent is deliberate: it trades completeness for a
// hard bound of three simplification passes per level, and its pruning
// and tie-break are part of the output contract — do not swap in a
// textbook bisection. The fallback starts at HighBound, so an empty or
// immediately exhausted search still yields a usable tolerance.
//
// FindTolerance is a pure function of (c, opts): it owns its stack and
// keeps no state between calls. Non-convergence is not an error; callers
// needing a guaranteed similarity must re-score the result themselves.
func FindTolerance(c curve.Curve, opts Options) (float64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	if err := c.Validate(); err != nil {
		return 0, err
	}

	score := func(tol float64) (float64, error) {
		reduced, err := Simplify(c, tol)
		if err != nil {
			return 0, err
		}

		return ncc.Score(c, reduced)
	}

	best := opts.HighBound
	bestDiff := math.Inf(1)

	stack := make([]interval, 0, opts.MaxIterations)
	stack = append(stack, interval{Low: opts.LowBound, High: opts.HighBound})

	for len(stack) > 0 {
		iv := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if iv.Depth >= opts.MaxIterations || iv.High-iv.Low < opts.Epsilon {
			continue
		}

		mid := (iv.Low + iv.High) / 2
		s, err := score(mid)
		if err != nil {
			return 0, err
		}

		diff := math.Abs(opts.TargetSimilarity - s)
		if diff < opts.Epsilon {
			return mid, nil // exact enough: early exit
		}
		if diff < bestDiff {
			best, bestDiff = mid, diff
		}

		left, err := score((iv.Low + mid) / 2)
		if err != nil {
			return 0, err
		}
		right, err := score((mid + iv.High) / 2)
		if err != nil {
			return 0, err
		}

		if math.Abs(left-opts.TargetSimilarity) < math.Abs(right-opts.TargetSimilarity) {
			stack = append(stack, interval{Low: iv.Low, High: mid, Depth: iv.Depth + 1})
		} else {
			stack = append(stack, interval{Low: mid, High: iv.High, Depth: iv.Depth + 1})
		}
	}

	return best, nil
}
