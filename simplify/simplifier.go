package simplify

import "github.com/katalvlaran/curvath/curve"

// Simplifier bundles simplification options with a cached resolved
// tolerance, for callers that feed many curves through one configuration.
//
// The tolerance is resolved by the adaptive search on the first curve a
// Simplifier sees and reused verbatim for every subsequent call: it is
// configuration state, not per-curve state. Callers that need a tolerance
// tuned to each individual curve should call FindTolerance themselves or
// use one Simplifier per curve. Reset discards the cached value.
//
// A Simplifier is safe for concurrent reads only after the tolerance has
// been resolved; concurrent first calls must be serialized by the caller.
type Simplifier struct {
	opts     Options
	resolved float64
	haveTol  bool
}

// NewSimplifier builds a Simplifier from the defaults plus opts.
// A fixed WithTolerance(> 0) disables the adaptive search entirely.
func NewSimplifier(opts ...Option) (*Simplifier, error) {
	o := apply(opts)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	s := &Simplifier{opts: o}
	if o.Tolerance > 0 {
		s.resolved = o.Tolerance
		s.haveTol = true
	}

	return s, nil
}

// Simplify reduces c to its key points. The first call with no fixed
// tolerance resolves one via FindTolerance and caches it.
func (s *Simplifier) Simplify(c curve.Curve) (curve.Curve, error) {
	if !s.haveTol {
		tol, err := FindTolerance(c, s.opts)
		if err != nil {
			return curve.Curve{}, err
		}
		s.resolved = tol
		s.haveTol = true
	}

	return Simplify(c, s.resolved)
}

// ResolvedTolerance reports the cached tolerance and whether one has been
// fixed or resolved yet.
func (s *Simplifier) ResolvedTolerance() (float64, bool) {
	return s.resolved, s.haveTol
}

// Reset invalidates the cached tolerance so the next Simplify call
// re-runs the adaptive search (unless a fixed tolerance is configured,
// which is restored instead).
func (s *Simplifier) Reset() {
	s.resolved = s.opts.Tolerance
	s.haveTol = s.opts.Tolerance > 0
}
