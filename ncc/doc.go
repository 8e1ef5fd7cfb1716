// Package ncc scores how faithfully one curve reproduces another using
// normalized cross-correlation (NCC) over the reference curve's grid.
//
// 🚀 How it works
//
//	1. The candidate curve is resampled at every x-coordinate of the
//	   reference via linear interpolation; queries outside the candidate's
//	   range are linearly extrapolated from the nearest edge segment, so a
//	   simplified curve whose tails shrank slightly is still comparable.
//	2. Both y-series are centered and scaled by their population standard
//	   deviations, and the mean product of the centered values is the
//	   score — Pearson-style correlation in [-1, 1].
//
// Degenerate inputs are defined, not fatal: a constant curve (zero
// standard deviation) has no similarity signal and scores exactly 0.
// A candidate with fewer than 2 points cannot be interpolated and is a
// precondition violation (ErrTooFewPoints).
//
// The simplify package drives this scorer to self-calibrate its tolerance;
// Score(c, c) == 1 for any non-constant curve.
//
// Complexity: O(len(ref) · log len(cand)) time, O(len(ref)) memory.
package ncc
