package ncc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/curvath/curve"
	"github.com/katalvlaran/curvath/ncc"
)

func mustCurve(t *testing.T, x, y []float64) curve.Curve {
	t.Helper()
	c, err := curve.New(x, y)
	require.NoError(t, err)

	return c
}

// TestResample_TooFewPoints verifies the 2-point interpolation precondition.
func TestResample_TooFewPoints(t *testing.T) {
	cand := mustCurve(t, []float64{1}, []float64{1})
	_, err := ncc.Resample(cand, []float64{0.5})
	assert.ErrorIs(t, err, ncc.ErrTooFewPoints)
}

// TestResample_Interior verifies exact hits and midpoints on the grid.
func TestResample_Interior(t *testing.T) {
	cand := mustCurve(t, []float64{0, 1, 2}, []float64{0, 10, 40})

	got, err := ncc.Resample(cand, []float64{0, 0.5, 1, 1.5, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 5, 10, 25, 40}, got, 1e-12)
}

// TestResample_Extrapolation verifies linear extension from the edge
// segments on both sides, never clipping.
func TestResample_Extrapolation(t *testing.T) {
	cand := mustCurve(t, []float64{1, 2, 3}, []float64{10, 20, 40})

	got, err := ncc.Resample(cand, []float64{0, 4})
	require.NoError(t, err)
	// Left edge slope 10/unit, right edge slope 20/unit.
	assert.InDelta(t, 0.0, got[0], 1e-12)
	assert.InDelta(t, 60.0, got[1], 1e-12)
}

// TestResample_DuplicateAbscissa: a zero-width segment contributes its
// left value instead of dividing by zero.
func TestResample_DuplicateAbscissa(t *testing.T) {
	cand := mustCurve(t, []float64{0, 1, 1, 2}, []float64{0, 5, 7, 9})

	got, err := ncc.Resample(cand, []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, got[0])
}

// TestScore_SelfIsOne: a curve compared against itself scores exactly 1.
func TestScore_SelfIsOne(t *testing.T) {
	c := mustCurve(t, []float64{0, 1, 2, 3, 4}, []float64{1, 3, 2, 5, 4})

	s, err := ncc.Score(c, c)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)
}

// TestScore_ConstantCurveIsZero: zero variance means no similarity signal.
func TestScore_ConstantCurveIsZero(t *testing.T) {
	flat := mustCurve(t, []float64{0, 1, 2}, []float64{7, 7, 7})
	ramp := mustCurve(t, []float64{0, 1, 2}, []float64{0, 1, 2})

	s, err := ncc.Score(flat, ramp)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "constant reference must score 0")

	s, err = ncc.Score(ramp, flat)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "constant candidate must score 0")
}

// TestScore_AntiCorrelated: a mirrored curve scores -1.
func TestScore_AntiCorrelated(t *testing.T) {
	up := mustCurve(t, []float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
	down := mustCurve(t, []float64{0, 1, 2, 3}, []float64{3, 2, 1, 0})

	s, err := ncc.Score(up, down)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, s, 1e-12)
}

// TestScore_EmptyReference fails fast rather than returning NaN.
func TestScore_EmptyReference(t *testing.T) {
	empty := curve.Curve{}
	cand := mustCurve(t, []float64{0, 1}, []float64{0, 1})

	_, err := ncc.Score(empty, cand)
	assert.ErrorIs(t, err, ncc.ErrEmptyReference)
}

// TestScore_SimplifiedTails: a candidate whose range shrank at the tails
// is still scored (via extrapolation) and stays close to 1 for a line.
func TestScore_SimplifiedTails(t *testing.T) {
	ref := mustCurve(t,
		[]float64{0, 1, 2, 3, 4, 5},
		[]float64{0, 2, 4, 6, 8, 10})
	cand := mustCurve(t, []float64{1, 4}, []float64{2, 8})

	s, err := ncc.Score(ref, cand)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)
}
