package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/curvath/curvegen"
	"github.com/katalvlaran/curvath/ncc"
	"github.com/katalvlaran/curvath/simplify"
)

// TestFindTolerance_SmoothCurve runs the documented scenario: a smooth
// monotonic curve of 1000 points and a 0.995 target. The returned
// tolerance must compress the curve while keeping the achieved similarity
// at or above target−epsilon (best-effort when the target itself is
// unreachable inside the search bounds).
func TestFindTolerance_SmoothCurve(t *testing.T) {
	c := curvegen.LogisticCDF(1000, 500, 0.015)
	opts := simplify.DefaultOptions()

	tol, err := simplify.FindTolerance(c, opts)
	require.NoError(t, err)
	assert.Greater(t, tol, 0.0)
	assert.LessOrEqual(t, tol, opts.HighBound)

	reduced, err := simplify.Simplify(c, tol)
	require.NoError(t, err)
	assert.Less(t, reduced.Len(), c.Len(), "search must enable real compression")

	score, err := ncc.Score(c, reduced)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, score, opts.TargetSimilarity-opts.Epsilon,
		"achieved similarity must not fall below the target by more than epsilon")
}

// TestFindTolerance_Deterministic: the search is a pure function of its
// inputs.
func TestFindTolerance_Deterministic(t *testing.T) {
	c := curvegen.NoisyLogisticCDF(1000, 21, 1.0, 500, 0.015)
	opts := simplify.DefaultOptions()

	a, err := simplify.FindTolerance(c, opts)
	require.NoError(t, err)
	b, err := simplify.FindTolerance(c, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestFindTolerance_BadOptions surfaces every configuration error.
func TestFindTolerance_BadOptions(t *testing.T) {
	c := curvegen.Line(10, 1, 0)

	cases := []struct {
		name string
		mut  func(*simplify.Options)
		want error
	}{
		{"negative tolerance", func(o *simplify.Options) { o.Tolerance = -1 }, simplify.ErrBadTolerance},
		{"target too high", func(o *simplify.Options) { o.TargetSimilarity = 1.5 }, simplify.ErrBadTarget},
		{"target at -1", func(o *simplify.Options) { o.TargetSimilarity = -1 }, simplify.ErrBadTarget},
		{"zero low bound", func(o *simplify.Options) { o.LowBound = 0 }, simplify.ErrBadBounds},
		{"inverted bounds", func(o *simplify.Options) { o.LowBound = 2; o.HighBound = 1 }, simplify.ErrBadBounds},
		{"zero iterations", func(o *simplify.Options) { o.MaxIterations = 0 }, simplify.ErrBadMaxIterations},
		{"zero epsilon", func(o *simplify.Options) { o.Epsilon = 0 }, simplify.ErrBadEpsilon},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := simplify.DefaultOptions()
			tc.mut(&opts)
			_, err := simplify.FindTolerance(c, opts)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFindTolerance_NarrowBounds: when the interval is already below the
// epsilon width the fallback (the high bound) comes back untouched.
func TestFindTolerance_NarrowBounds(t *testing.T) {
	c := curvegen.LogisticCDF(100, 50, 0.1)
	opts := simplify.DefaultOptions()
	opts.LowBound = 0.5
	opts.HighBound = 0.5 + opts.Epsilon/2

	tol, err := simplify.FindTolerance(c, opts)
	require.NoError(t, err)
	assert.Equal(t, opts.HighBound, tol)
}

// TestSimplifier_CachesTolerance: one instance resolves once and reuses.
func TestSimplifier_CachesTolerance(t *testing.T) {
	s, err := simplify.NewSimplifier()
	require.NoError(t, err)

	_, ok := s.ResolvedTolerance()
	assert.False(t, ok, "no tolerance before the first curve")

	c := curvegen.NoisyLogisticCDF(1000, 5, 1.0, 500, 0.015)
	_, err = s.Simplify(c)
	require.NoError(t, err)

	tol1, ok := s.ResolvedTolerance()
	require.True(t, ok)

	// A very different second curve reuses the cached value.
	_, err = s.Simplify(curvegen.Line(50, 3, 1))
	require.NoError(t, err)
	tol2, _ := s.ResolvedTolerance()
	assert.Equal(t, tol1, tol2, "cached tolerance is configuration state, not per-curve")
}

// TestSimplifier_Reset re-arms the adaptive search.
func TestSimplifier_Reset(t *testing.T) {
	s, err := simplify.NewSimplifier()
	require.NoError(t, err)

	_, err = s.Simplify(curvegen.LogisticCDF(500, 250, 0.03))
	require.NoError(t, err)
	_, ok := s.ResolvedTolerance()
	require.True(t, ok)

	s.Reset()
	_, ok = s.ResolvedTolerance()
	assert.False(t, ok)
}

// TestSimplifier_FixedTolerance bypasses the search and survives Reset.
func TestSimplifier_FixedTolerance(t *testing.T) {
	s, err := simplify.NewSimplifier(simplify.WithTolerance(0.5))
	require.NoError(t, err)

	tol, ok := s.ResolvedTolerance()
	require.True(t, ok)
	assert.Equal(t, 0.5, tol)

	out, err := s.Simplify(curvegen.Line(11, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len(), "straight line reduces to its endpoints")

	s.Reset()
	tol, ok = s.ResolvedTolerance()
	assert.True(t, ok, "a fixed tolerance is restored, not discarded")
	assert.Equal(t, 0.5, tol)
}

// TestNewSimplifier_BadOptions rejects invalid configuration up front.
func TestNewSimplifier_BadOptions(t *testing.T) {
	_, err := simplify.NewSimplifier(simplify.WithTargetSimilarity(2))
	assert.ErrorIs(t, err, simplify.ErrBadTarget)

	_, err = simplify.NewSimplifier(simplify.WithBounds(1, 0.5))
	assert.ErrorIs(t, err, simplify.ErrBadBounds)
}
