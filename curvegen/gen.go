package curvegen

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/curvath/curve"
)

// defScale is the default upper plateau of the cumulative generators,
// matching the 0–100 % convention of cumulative distributions.
const defScale = 100.0

// Line returns n points of y = slope·x + intercept with x = 0..n-1.
func Line(n int, slope, intercept float64) curve.Curve {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = slope*float64(i) + intercept
	}

	return curve.Curve{X: x, Y: y}
}

// Spike returns n points of a flat zero baseline with a single excursion
// of the given height at index at.
func Spike(n, at int, height float64) curve.Curve {
	c := Line(n, 0, 0)
	if at >= 0 && at < n {
		c.Y[at] = height
	}

	return c
}

// LogisticCDF returns a smooth monotonic cumulative curve on x = 0..n-1:
// y = defScale / (1 + exp(-steep·(x − mid))). With mid near n/2 and a
// moderate steepness this is the classic S-shape of a cumulative
// particle-size distribution.
func LogisticCDF(n int, mid, steep float64) curve.Curve {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = defScale / (1 + math.Exp(-steep*(float64(i)-mid)))
	}

	return curve.Curve{X: x, Y: y}
}

// NoisyLogisticCDF is LogisticCDF plus additive Gaussian noise with the
// given sigma, drawn from a local generator seeded with seed. Sigma 0
// reproduces LogisticCDF exactly.
func NoisyLogisticCDF(n int, seed int64, sigma, mid, steep float64) curve.Curve {
	c := LogisticCDF(n, mid, steep)
	if sigma <= 0 {
		return c
	}

	rng := rand.New(rand.NewSource(seed))
	for i := range c.Y {
		c.Y[i] += rng.NormFloat64() * sigma
	}

	return c
}
