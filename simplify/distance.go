package simplify

import (
	"math"

	"github.com/katalvlaran/curvath/curve"
)

// ChordDistances writes into dst, for every point (px[i], py[i]), the
// shortest Euclidean distance to the infinite line through a and b, and
// returns dst. px and py must have equal length; dst must be at least
// that long.
//
// Degenerate chord (a == b): the distance to the single coincident point
// is used instead.
//
// The formula |dy·px − dx·py − x0·dy + y0·dx| / sqrt(dx²+dy²) never
// divides by dx or dy alone, so nearly-vertical and nearly-horizontal
// chords are numerically stable.
//
// This is the hot loop of the engine — it runs once per popped range —
// so it works on raw slices and allocates nothing.
func ChordDistances(dst []float64, px, py []float64, a, b curve.Point) []float64 {
	dst = dst[:len(px)]

	if a == b {
		for i := range px {
			ddx := px[i] - a.X
			ddy := py[i] - a.Y
			dst[i] = math.Sqrt(ddx*ddx + ddy*ddy)
		}

		return dst
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	// Constant term of the line equation, hoisted out of the loop.
	c0 := a.Y*dx - a.X*dy
	invNorm := 1.0 / math.Sqrt(dx*dx+dy*dy)

	for i := range px {
		d := dy*px[i] - dx*py[i] + c0
		if d < 0 {
			d = -d
		}
		dst[i] = d * invNorm
	}

	return dst
}
