// Package curvath turns dense, noisy 2-D measurement curves into compact
// key-point series without losing their shape — and ships the plumbing a
// measurement pipeline needs around that core.
//
// 🚀 What is curvath?
//
//	A small, focused toolkit for curve compression and analysis:
//		• curve/     — the shared 2-D series model (x/y pairs, point views)
//		• simplify/  — iterative Douglas–Peucker key-point extraction with
//		               an adaptive, NCC-driven tolerance search
//		• ncc/       — normalized cross-correlation between curves via
//		               resampling onto a reference grid
//		• stats/     — descriptive statistics (quantiles, box-plot stats,
//		               outliers, correlation, regression)
//		• table/     — CSV ingestion into clean, x-sorted numeric series
//		• report/    — box / scatter / distribution payloads with JSON and
//		               YAML encoders
//		• curvegen/  — deterministic synthetic curves for tests and demos
//
// ✨ Why choose curvath?
//
//   - Quality-controlled compression – the simplification tolerance is
//     tuned against a target similarity, not guessed
//   - Non-recursive algorithms – explicit work stacks, safe on curves with
//     hundreds of thousands of points
//   - Deterministic – identical inputs always produce identical outputs
//
// Typical flow: read a cumulative distribution from CSV (table), simplify
// it to a handful of key points (simplify), attach statistics (stats) and
// emit a standardized payload (report).
//
//	go get github.com/katalvlaran/curvath
package curvath
