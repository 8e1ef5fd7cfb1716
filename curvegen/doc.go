// Package curvegen builds deterministic synthetic curves for tests,
// benchmarks and demos.
//
// Every generator is a pure function of its arguments: the noisy variants
// take an explicit seed and draw from a local rand.Rand, so fixtures are
// reproducible across runs and packages (golden-friendly).
//
// Generators:
//
//   - Line       — y = slope·x + intercept on an integer grid
//   - Spike      — flat baseline with a single sharp excursion
//   - LogisticCDF — smooth monotonic 0→scale cumulative curve, the shape
//     of a typical particle-size distribution
//   - NoisyLogisticCDF — the same with additive Gaussian noise
//
// All generators are O(n) time and memory with tiny constant factors.
package curvegen
