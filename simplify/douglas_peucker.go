package simplify

import "github.com/katalvlaran/curvath/curve"

// indexRange is one pending [Start, End] span on the work stack.
type indexRange struct {
	Start int
	End   int
}

// SimplifyIndices runs one iterative Douglas–Peucker pass over c and
// returns the indices of the retained key points, ascending and unique.
//
// Algorithm (explicit LIFO stack instead of recursion, so auxiliary
// memory is O(splits) and call depth never grows with input size):
//
//  1. Seed the stack with [0, N−1] and retain both endpoints.
//  2. Pop a range; skip it when it has no interior points.
//  3. Compute the perpendicular distance of every interior point to the
//     chord through the range endpoints (ChordDistances).
//  4. If the maximum distance (first occurrence wins on ties) exceeds
//     tolerance, retain that index and push both sub-ranges; otherwise
//     the whole range is within tolerance and contributes nothing more.
//
// Guarantees: the result is a subset of input indices, always contains 0
// and N−1, and is deterministic for fixed input and tolerance. A larger
// tolerance never retains more points. Curves with ≤ 2 points keep every
// index.
func SimplifyIndices(c curve.Curve, tolerance float64) ([]int, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if tolerance < 0 {
		return nil, ErrBadTolerance
	}

	n := c.Len()
	if n < curve.MinSimplifyPoints {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}

		return all, nil
	}

	keep := make([]bool, n)
	keep[0], keep[n-1] = true, true
	kept := 2

	// Scratch buffer reused across every popped range.
	scratch := make([]float64, n-2)

	stack := make([]indexRange, 0, 32)
	stack = append(stack, indexRange{Start: 0, End: n - 1})

	for len(stack) > 0 {
		rng := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if rng.End-rng.Start <= 1 {
			continue // no interior points to test
		}

		dists := ChordDistances(
			scratch,
			c.X[rng.Start+1:rng.End],
			c.Y[rng.Start+1:rng.End],
			c.At(rng.Start),
			c.At(rng.End),
		)

		// First occurrence of the maximum wins (strict > keeps it stable).
		dmax, offset := dists[0], 0
		for i := 1; i < len(dists); i++ {
			if dists[i] > dmax {
				dmax, offset = dists[i], i
			}
		}

		if dmax > tolerance {
			split := rng.Start + 1 + offset
			keep[split] = true
			kept++
			stack = append(stack,
				indexRange{Start: rng.Start, End: split},
				indexRange{Start: split, End: rng.End},
			)
		}
	}

	indices := make([]int, 0, kept)
	for i, k := range keep {
		if k {
			indices = append(indices, i)
		}
	}

	return indices, nil
}

// Simplify reduces c with a fixed tolerance and returns a new curve made
// of the retained key points; c itself is never mutated. Curves with
// fewer than 3 points are returned unchanged (as a copy).
func Simplify(c curve.Curve, tolerance float64) (curve.Curve, error) {
	indices, err := SimplifyIndices(c, tolerance)
	if err != nil {
		return curve.Curve{}, err
	}

	return c.Select(indices), nil
}
