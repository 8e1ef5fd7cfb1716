package stats

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors returned by the statistics layer.
var (
	// ErrEmptyInput indicates an empty value slice.
	ErrEmptyInput = errors.New("stats: values must be non-empty")

	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("stats: x and y must have the same length")

	// ErrTooFewPoints indicates fewer points than the estimator needs.
	ErrTooFewPoints = errors.New("stats: not enough points for this estimator")

	// ErrUnknownMethod indicates an unsupported method selector.
	ErrUnknownMethod = errors.New("stats: unknown method")
)

// whiskerFactor is the classic Tukey fence multiplier.
const whiskerFactor = 1.5

// BasicStats are the aggregates attached to every reported series.
type BasicStats struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"` // population
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Median float64 `json:"median" yaml:"median"`
	Count  int     `json:"count" yaml:"count"`
}

// BoxPlotStats describe one box of a box plot.
type BoxPlotStats struct {
	Q1       float64   `json:"q1" yaml:"q1"`
	Q2       float64   `json:"q2" yaml:"q2"` // median
	Q3       float64   `json:"q3" yaml:"q3"`
	IQR      float64   `json:"iqr" yaml:"iqr"`
	Lower    float64   `json:"lower" yaml:"lower"` // Q1 − 1.5·IQR
	Upper    float64   `json:"upper" yaml:"upper"` // Q3 + 1.5·IQR
	Outliers []float64 `json:"outliers" yaml:"outliers"`
}

// Regression is an ordinary-least-squares line fit.
type Regression struct {
	Slope     float64 `json:"slope" yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
	RSquared  float64 `json:"r_squared" yaml:"r_squared"`
}

// Basic computes the standard aggregates of values.
func Basic(values []float64) (BasicStats, error) {
	if len(values) == 0 {
		return BasicStats{}, ErrEmptyInput
	}

	sorted := sortedCopy(values)

	return BasicStats{
		Mean:   stat.Mean(values, nil),
		Std:    stat.PopStdDev(values, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		Count:  len(values),
	}, nil
}

// Quantile returns the p-quantile (p in [0, 1]) of values using linear
// interpolation between order statistics.
func Quantile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}

	return stat.Quantile(p, stat.LinInterp, sortedCopy(values), nil), nil
}

// Summary extends Basic with the requested quantiles, keyed by their
// probability (e.g. 0.25). Nil percentiles default to the quartiles.
func Summary(values []float64, percentiles []float64) (BasicStats, map[float64]float64, error) {
	basic, err := Basic(values)
	if err != nil {
		return BasicStats{}, nil, err
	}

	if percentiles == nil {
		percentiles = []float64{0.25, 0.5, 0.75}
	}

	sorted := sortedCopy(values)
	qs := make(map[float64]float64, len(percentiles))
	for _, p := range percentiles {
		qs[p] = stat.Quantile(p, stat.LinInterp, sorted, nil)
	}

	return basic, qs, nil
}

// BoxPlot computes quartiles, Tukey fences and the values beyond them.
func BoxPlot(values []float64) (BoxPlotStats, error) {
	if len(values) == 0 {
		return BoxPlotStats{}, ErrEmptyInput
	}

	sorted := sortedCopy(values)
	q1 := stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	q2 := stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	q3 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)
	iqr := q3 - q1
	lower := q1 - whiskerFactor*iqr
	upper := q3 + whiskerFactor*iqr

	outliers := make([]float64, 0)
	for _, v := range sorted {
		if v < lower || v > upper {
			outliers = append(outliers, v)
		}
	}

	return BoxPlotStats{
		Q1:       q1,
		Q2:       q2,
		Q3:       q3,
		IQR:      iqr,
		Lower:    lower,
		Upper:    upper,
		Outliers: outliers,
	}, nil
}

// OutlierMethod selects the outlier detection rule.
type OutlierMethod int

const (
	// ZScore flags values whose |z| exceeds the threshold (default 3).
	ZScore OutlierMethod = iota

	// IQR flags values beyond threshold·IQR from the quartiles
	// (threshold 1.5 gives the Tukey fences).
	IQR
)

// Outliers returns a mask marking the values the chosen rule flags.
func Outliers(values []float64, method OutlierMethod, threshold float64) ([]bool, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	mask := make([]bool, len(values))
	switch method {
	case ZScore:
		mean := stat.Mean(values, nil)
		std := stat.PopStdDev(values, nil)
		if std == 0 {
			return mask, nil // constant data has no outliers
		}
		for i, v := range values {
			mask[i] = math.Abs((v-mean)/std) > threshold
		}
	case IQR:
		sorted := sortedCopy(values)
		q1 := stat.Quantile(0.25, stat.LinInterp, sorted, nil)
		q3 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)
		iqr := q3 - q1
		for i, v := range values {
			mask[i] = v < q1-threshold*iqr || v > q3+threshold*iqr
		}
	default:
		return nil, ErrUnknownMethod
	}

	return mask, nil
}

// CorrelationMethod selects the correlation coefficient.
type CorrelationMethod int

const (
	// Pearson is the linear product-moment coefficient.
	Pearson CorrelationMethod = iota

	// Spearman is Pearson over rank-transformed data.
	Spearman

	// Kendall is the tau rank coefficient.
	Kendall
)

// Correlation computes the chosen coefficient between x and y.
func Correlation(x, y []float64, method CorrelationMethod) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, ErrTooFewPoints
	}

	switch method {
	case Pearson:
		return stat.Correlation(x, y, nil), nil
	case Spearman:
		return stat.Correlation(ranks(x), ranks(y), nil), nil
	case Kendall:
		return stat.Kendall(x, y, nil), nil
	default:
		return 0, ErrUnknownMethod
	}
}

// LinearRegression fits y = Slope·x + Intercept by ordinary least squares.
func LinearRegression(x, y []float64) (Regression, error) {
	if len(x) != len(y) {
		return Regression{}, ErrLengthMismatch
	}
	if len(x) < 2 {
		return Regression{}, ErrTooFewPoints
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	return Regression{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(x, y, nil, intercept, slope),
	}, nil
}

// Histogram bins values into bins equal-width buckets spanning
// [min, max] and returns the counts and the bin edges (len bins+1).
func Histogram(values []float64, bins int) (counts []float64, edges []float64, err error) {
	if len(values) == 0 {
		return nil, nil, ErrEmptyInput
	}
	if bins < 1 {
		return nil, nil, ErrUnknownMethod
	}

	sorted := sortedCopy(values)
	min, max := sorted[0], sorted[len(sorted)-1]
	if min == max {
		// All values identical: one bucket holding everything.
		return []float64{float64(len(values))}, []float64{min, max}, nil
	}

	edges = make([]float64, bins+1)
	floats.Span(edges, min, max)
	// gonum buckets are half-open [edge, nextEdge); nudge the last edge up
	// so the maximum lands in the final bucket instead of panicking.
	edges[bins] = math.Nextafter(max, math.Inf(1))
	counts = stat.Histogram(nil, edges, sorted, nil)
	edges[bins] = max

	return counts, edges, nil
}

// DistributionShape captures the third and fourth moments of a sample.
type DistributionShape struct {
	Skewness float64 `json:"skewness" yaml:"skewness"`
	Kurtosis float64 `json:"kurtosis" yaml:"kurtosis"` // excess kurtosis
}

// Shape computes sample skewness and excess kurtosis.
func Shape(values []float64) (DistributionShape, error) {
	if len(values) < 3 {
		return DistributionShape{}, ErrTooFewPoints
	}

	return DistributionShape{
		Skewness: stat.Skew(values, nil),
		Kurtosis: stat.ExKurtosis(values, nil),
	}, nil
}

// sortedCopy returns values sorted ascending without touching the input.
func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)

	return out
}

// ranks maps each value to its fractional rank (ties averaged), the
// transform under Spearman correlation.
func ranks(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	out := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Average rank for the tie group [i, j].
		r := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = r
		}
		i = j + 1
	}

	return out
}
