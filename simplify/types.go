package simplify

import "errors"

// Sentinel errors returned by the simplification engine and the search.
var (
	// ErrBadTolerance indicates a negative fixed tolerance.
	ErrBadTolerance = errors.New("simplify: tolerance must be non-negative")

	// ErrBadTarget indicates a target similarity outside (-1, 1].
	ErrBadTarget = errors.New("simplify: target similarity must be in (-1, 1]")

	// ErrBadBounds indicates search bounds with low <= 0 or low >= high.
	ErrBadBounds = errors.New("simplify: search bounds must satisfy 0 < low < high")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("simplify: max iterations must be positive")

	// ErrBadEpsilon indicates a non-positive convergence epsilon.
	ErrBadEpsilon = errors.New("simplify: epsilon must be positive")
)

// Defaults for Options; see DefaultOptions.
const (
	// DefaultTargetSimilarity is the NCC threshold the adaptive search
	// aims for when no explicit target is configured.
	DefaultTargetSimilarity = 0.995

	// DefaultLowBound and DefaultHighBound delimit the initial tolerance
	// search interval.
	DefaultLowBound  = 1e-6
	DefaultHighBound = 1.0

	// DefaultMaxIterations caps the depth of the interval search.
	DefaultMaxIterations = 50

	// DefaultEpsilon is both the interval-width floor and the acceptable
	// |similarity - target| gap for an early exit.
	DefaultEpsilon = 1e-4
)

// Options configures simplification and the adaptive tolerance search.
//
// Tolerance        – fixed tolerance; > 0 bypasses the search entirely.
// TargetSimilarity – NCC the search aims for, in (-1, 1] (practically (0, 1]).
// LowBound/HighBound – initial search interval for the tolerance.
// MaxIterations    – depth guard: intervals deeper than this are dropped.
// Epsilon          – convergence guard: interval-width floor and the
//
//	|similarity − target| gap accepted as an exact-enough hit.
type Options struct {
	Tolerance        float64
	TargetSimilarity float64
	LowBound         float64
	HighBound        float64
	MaxIterations    int
	Epsilon          float64
}

// Option is a functional option for configuring simplification.
type Option func(*Options)

// WithTolerance fixes the simplification tolerance, bypassing the
// adaptive search. Zero (the default) means "search".
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithTargetSimilarity sets the NCC the adaptive search aims for.
func WithTargetSimilarity(target float64) Option {
	return func(o *Options) { o.TargetSimilarity = target }
}

// WithBounds overrides the initial search interval [low, high].
func WithBounds(low, high float64) Option {
	return func(o *Options) {
		o.LowBound = low
		o.HighBound = high
	}
}

// WithMaxIterations overrides the search depth cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithEpsilon overrides the convergence epsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// DefaultOptions returns the documented defaults: adaptive search toward
// 0.995 similarity over [1e-6, 1.0], at most 50 levels deep, epsilon 1e-4.
func DefaultOptions() Options {
	return Options{
		Tolerance:        0,
		TargetSimilarity: DefaultTargetSimilarity,
		LowBound:         DefaultLowBound,
		HighBound:        DefaultHighBound,
		MaxIterations:    DefaultMaxIterations,
		Epsilon:          DefaultEpsilon,
	}
}

// Validate reports the first configuration error, if any.
func (o Options) Validate() error {
	if o.Tolerance < 0 {
		return ErrBadTolerance
	}
	if o.TargetSimilarity <= -1 || o.TargetSimilarity > 1 {
		return ErrBadTarget
	}
	if o.LowBound <= 0 || o.LowBound >= o.HighBound {
		return ErrBadBounds
	}
	if o.MaxIterations < 1 {
		return ErrBadMaxIterations
	}
	if o.Epsilon <= 0 {
		return ErrBadEpsilon
	}

	return nil
}

// apply folds functional options over the defaults.
func apply(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
