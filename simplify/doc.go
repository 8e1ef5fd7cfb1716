// Package simplify reduces dense 2-D curves to a minimal ordered subset
// of key points that preserves their shape, using an iterative
// Douglas–Peucker pass whose tolerance can be tuned automatically against
// a target similarity.
//
// 🚀 What it does
//
//	Given a curve of N points and a tolerance ε, the engine keeps both
//	endpoints and every point whose perpendicular distance to its local
//	chord exceeds ε. When no tolerance is supplied, an adaptive search
//	finds the loosest ε whose simplified output still scores at least the
//	target normalized cross-correlation (default 0.995) against the
//	original — maximal compression subject to quality.
//
// ✨ Key properties
//
//   - Non-recursive: both the point-reduction pass and the tolerance
//     search run on explicit LIFO work stacks, so call depth never grows
//     with input size.
//   - Deterministic: fixed tie-breaks (first occurrence of the maximum
//     distance; ties in the search descend toward the right half) make
//     output reproducible for identical inputs.
//   - Monotone: a larger tolerance never retains more points, which is
//     what lets the search steer by similarity.
//   - Output always contains both original endpoints, is a subset of the
//     input indices in ascending order, and is stable under re-running
//     with the same tolerance.
//
// Curves with fewer than 3 points pass through unchanged.
//
// ⚙️ Usage
//
//	s, err := simplify.NewSimplifier(simplify.WithTargetSimilarity(0.998))
//	if err != nil { ... }
//	compact, err := s.Simplify(dense) // resolves and caches the tolerance
//
// or, stateless:
//
//	tol, err := simplify.FindTolerance(dense, simplify.DefaultOptions())
//	compact, err := simplify.Simplify(dense, tol)
//
// The cached tolerance on a Simplifier is derived from the first curve it
// sees and is configuration state, not per-curve state: callers needing
// per-curve tolerances should use FindTolerance directly or separate
// Simplifier instances. A Simplifier is not safe for concurrent use while
// the first call is still resolving the tolerance.
//
// Complexity: O(N log N) typical, O(N²) worst case per simplification
// pass; the search performs at most 3·MaxIterations passes.
package simplify
