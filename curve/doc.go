// Package curve defines the shared 2-D series model used across curvath.
//
// A Curve is a pair of equal-length float64 slices: X carries the sample
// coordinates (diameters, strains, timestamps, ...) and Y carries the
// measured values (cumulative percentage, stress, ...). The pair at index
// i is geometrically point i of the curve; consumers treat the series as
// a path, typically with X ascending.
//
// Design rules:
//
//   - Curves are immutable by convention: algorithms read them and return
//     new instances (Select, Clone) instead of mutating in place.
//   - The point-pair view (Points, At) is always derived from X/Y on
//     demand — it is never stored, so there is a single source of truth.
//   - len(X) == len(Y) is the one structural invariant; New enforces it
//     and Validate re-checks it for curves built by hand.
//
// Simplification is only meaningful from 3 points up; shorter curves pass
// through downstream algorithms unchanged.
package curve
