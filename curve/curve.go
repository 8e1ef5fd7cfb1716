package curve

import "errors"

// Sentinel errors returned by curve constructors and validators.
var (
	// ErrLengthMismatch indicates len(X) != len(Y).
	ErrLengthMismatch = errors.New("curve: x and y must have the same length")
)

// MinSimplifyPoints is the smallest curve length for which geometric
// simplification is meaningful; shorter curves are returned unchanged by
// the simplification engine.
const MinSimplifyPoints = 3

// Point is a single (x, y) sample of a curve.
type Point struct {
	X float64
	Y float64
}

// Curve is an ordered 2-D series: the pair (X[i], Y[i]) is point i.
//
// Curve values are cheap to copy (two slice headers) and are treated as
// read-only by every curvath algorithm; derived curves always get fresh
// backing arrays.
type Curve struct {
	X []float64 // sample coordinates, typically ascending
	Y []float64 // measured values, same length as X
}

// New builds a Curve from x and y, which must have the same length.
// The slices are referenced, not copied; callers who keep mutating the
// originals should pass copies or use Clone.
func New(x, y []float64) (Curve, error) {
	if len(x) != len(y) {
		return Curve{}, ErrLengthMismatch
	}

	return Curve{X: x, Y: y}, nil
}

// Validate re-checks the structural invariant for hand-built curves.
func (c Curve) Validate() error {
	if len(c.X) != len(c.Y) {
		return ErrLengthMismatch
	}

	return nil
}

// Len reports the number of points.
func (c Curve) Len() int { return len(c.X) }

// At returns point i. The caller is responsible for bounds.
func (c Curve) At(i int) Point { return Point{X: c.X[i], Y: c.Y[i]} }

// Points materializes the derived point-pair view as a fresh slice.
// Intended for geometric computation and display; never persisted.
func (c Curve) Points() []Point {
	pts := make([]Point, len(c.X))
	for i := range c.X {
		pts[i] = Point{X: c.X[i], Y: c.Y[i]}
	}

	return pts
}

// Select returns a new Curve containing the points at the given indices,
// in the given order, backed by fresh arrays. Indices must be in range.
func (c Curve) Select(indices []int) Curve {
	x := make([]float64, len(indices))
	y := make([]float64, len(indices))
	for k, i := range indices {
		x[k] = c.X[i]
		y[k] = c.Y[i]
	}

	return Curve{X: x, Y: y}
}

// Clone returns a deep copy of the curve.
func (c Curve) Clone() Curve {
	x := make([]float64, len(c.X))
	y := make([]float64, len(c.Y))
	copy(x, c.X)
	copy(y, c.Y)

	return Curve{X: x, Y: y}
}
