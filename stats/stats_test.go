package stats_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/curvath/stats"
)

// TestBasic verifies the aggregates on a hand-checkable sample.
func TestBasic(t *testing.T) {
	got, err := stats.Basic([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)

	want := stats.BasicStats{
		Mean:   5,
		Std:    2, // population std of the classic textbook sample
		Min:    2,
		Max:    9,
		Median: 4.5,
		Count:  8,
	}
	assert.Empty(t, cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)))
}

// TestBasic_Empty fails fast.
func TestBasic_Empty(t *testing.T) {
	_, err := stats.Basic(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
}

// TestQuantile uses linear interpolation between order statistics.
func TestQuantile(t *testing.T) {
	q, err := stats.Quantile([]float64{3, 1, 2, 4}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, q, 1e-12)
}

// TestSummary returns the default quartiles when none are requested.
func TestSummary_DefaultQuartiles(t *testing.T) {
	basic, qs, err := stats.Summary([]float64{1, 2, 3, 4, 5}, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, basic.Count)
	require.Len(t, qs, 3)
	assert.InDelta(t, 2.0, qs[0.25], 1e-12)
	assert.InDelta(t, 3.0, qs[0.5], 1e-12)
	assert.InDelta(t, 4.0, qs[0.75], 1e-12)
}

// TestBoxPlot flags the single far value as an outlier.
func TestBoxPlot(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 100}

	box, err := stats.BoxPlot(values)
	require.NoError(t, err)
	assert.InDelta(t, box.Q3-box.Q1, box.IQR, 1e-12)
	assert.Less(t, box.Lower, box.Q1)
	assert.Greater(t, box.Upper, box.Q3)
	assert.Equal(t, []float64{100}, box.Outliers)
}

// TestOutliers_ZScoreConstant: constant data has no outliers, not NaNs.
func TestOutliers_ZScoreConstant(t *testing.T) {
	mask, err := stats.Outliers([]float64{5, 5, 5, 5}, stats.ZScore, 3)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, false}, mask)
}

// TestOutliers_IQR flags values beyond the Tukey fences.
func TestOutliers_IQR(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 4, 5, 100}

	mask, err := stats.Outliers(values, stats.IQR, 1.5)
	require.NoError(t, err)
	assert.True(t, mask[len(mask)-1], "the far value must be flagged")
	for _, flagged := range mask[:len(mask)-1] {
		assert.False(t, flagged)
	}
}

// TestOutliers_UnknownMethod rejects bad selectors.
func TestOutliers_UnknownMethod(t *testing.T) {
	_, err := stats.Outliers([]float64{1, 2}, stats.OutlierMethod(99), 3)
	assert.ErrorIs(t, err, stats.ErrUnknownMethod)
}

// TestCorrelation covers all three coefficients on a monotone pair.
func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}

	for _, method := range []stats.CorrelationMethod{stats.Pearson, stats.Spearman, stats.Kendall} {
		r, err := stats.Correlation(x, y, method)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, r, 1e-12, "method=%v", method)
	}
}

// TestCorrelation_SpearmanNonlinear: a monotone but nonlinear relation is
// a perfect rank correlation while Pearson stays below 1.
func TestCorrelation_SpearmanNonlinear(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 8, 27, 64, 125}

	spearman, err := stats.Correlation(x, y, stats.Spearman)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, spearman, 1e-12)

	pearson, err := stats.Correlation(x, y, stats.Pearson)
	require.NoError(t, err)
	assert.Less(t, pearson, 1.0)
}

// TestCorrelation_Preconditions.
func TestCorrelation_Preconditions(t *testing.T) {
	_, err := stats.Correlation([]float64{1, 2}, []float64{1}, stats.Pearson)
	assert.ErrorIs(t, err, stats.ErrLengthMismatch)

	_, err = stats.Correlation([]float64{1}, []float64{1}, stats.Pearson)
	assert.ErrorIs(t, err, stats.ErrTooFewPoints)
}

// TestLinearRegression recovers an exact line.
func TestLinearRegression(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7} // y = 2x + 1

	reg, err := stats.LinearRegression(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, reg.Slope, 1e-12)
	assert.InDelta(t, 1.0, reg.Intercept, 1e-12)
	assert.InDelta(t, 1.0, reg.RSquared, 1e-12)
}

// TestHistogram bins values and keeps the total count.
func TestHistogram(t *testing.T) {
	values := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}

	counts, edges, err := stats.Histogram(values, 4)
	require.NoError(t, err)
	require.Len(t, counts, 4)
	require.Len(t, edges, 5)
	assert.Equal(t, 0.0, edges[0])
	assert.Equal(t, 4.0, edges[4])

	var total float64
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, float64(len(values)), total, "every value lands in some bucket")
}

// TestHistogram_ConstantData degrades to a single bucket.
func TestHistogram_ConstantData(t *testing.T) {
	counts, edges, err := stats.Histogram([]float64{3, 3, 3}, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, counts)
	assert.Equal(t, []float64{3, 3}, edges)
}

// TestShape: a symmetric sample has (near) zero skewness.
func TestShape(t *testing.T) {
	shape, err := stats.Shape([]float64{-2, -1, 0, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, shape.Skewness, 1e-12)

	_, err = stats.Shape([]float64{1, 2})
	assert.ErrorIs(t, err, stats.ErrTooFewPoints)
}
