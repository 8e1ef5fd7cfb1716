package ncc

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/curvath/curve"
)

// Sentinel errors returned by the scorer.
var (
	// ErrTooFewPoints indicates a candidate curve with fewer than 2 points,
	// which cannot be linearly interpolated.
	ErrTooFewPoints = errors.New("ncc: candidate curve needs at least 2 points to interpolate")

	// ErrEmptyReference indicates a reference curve with no points.
	ErrEmptyReference = errors.New("ncc: reference curve must be non-empty")
)

// Resample evaluates cand at every coordinate in xs using linear
// interpolation between neighbouring points. Coordinates left of the first
// point or right of the last are linearly extrapolated from the nearest
// edge segment — never clipped or rejected.
//
// cand.X is assumed ascending (the pipeline contract); cand must have at
// least 2 points.
func Resample(cand curve.Curve, xs []float64) ([]float64, error) {
	if err := cand.Validate(); err != nil {
		return nil, err
	}
	if cand.Len() < 2 {
		return nil, ErrTooFewPoints
	}

	out := make([]float64, len(xs))
	n := cand.Len()
	for k, x := range xs {
		// Locate the segment [i, i+1] whose span covers x; edge segments
		// double as extrapolation lines beyond the range.
		i := sort.SearchFloat64s(cand.X, x) - 1
		if i < 0 {
			i = 0
		} else if i > n-2 {
			i = n - 2
		}

		x0, x1 := cand.X[i], cand.X[i+1]
		y0, y1 := cand.Y[i], cand.Y[i+1]
		if x1 == x0 {
			// Duplicate abscissa: the segment carries no slope information.
			out[k] = y0
			continue
		}
		out[k] = y0 + (y1-y0)*(x-x0)/(x1-x0)
	}

	return out, nil
}

// Score computes the normalized cross-correlation between ref and cand,
// sampled on ref's x-grid. Result is in [-1, 1]; 1 means cand reproduces
// ref's values exactly at every reference coordinate.
//
// A zero population standard deviation on either side makes correlation
// undefined; Score reports 0 in that case (no similarity signal), so
// callers iterating toward a target can still terminate.
func Score(ref, cand curve.Curve) (float64, error) {
	if err := ref.Validate(); err != nil {
		return 0, err
	}
	if ref.Len() == 0 {
		return 0, ErrEmptyReference
	}

	resampled, err := Resample(cand, ref.X)
	if err != nil {
		return 0, err
	}

	mean1, std1 := meanPopStd(ref.Y)
	mean2, std2 := meanPopStd(resampled)
	if std1 == 0 || std2 == 0 {
		return 0, nil
	}

	var sum float64
	for i, y := range ref.Y {
		sum += (y - mean1) * (resampled[i] - mean2)
	}

	return sum / (std1 * std2 * float64(len(ref.Y))), nil
}

// meanPopStd returns the mean and population standard deviation of vs.
// Population (not sample) scaling keeps Score(c, c) == 1 exactly.
func meanPopStd(vs []float64) (mean, std float64) {
	n := float64(len(vs))
	for _, v := range vs {
		mean += v
	}
	mean /= n

	var sq float64
	for _, v := range vs {
		d := v - mean
		sq += d * d
	}

	return mean, math.Sqrt(sq / n)
}
