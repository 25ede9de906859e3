package vecpath

import (
	"math"

	"github.com/go2d/vecpath/internal/spline"
)

// defaultTolerance is the maximum deviation, in coordinate units, of
// decomposed circle geometry from the ideal circle.
const defaultTolerance = 0.5

// AddCircle adds a closed contour approximating the circle with the
// given center and radius. The contour starts at the point
// (center.X+radius, center.Y) and runs in the direction of increasing
// angle.
//
// AddCircle panics if radius is not a positive finite number.
func (b *Builder) AddCircle(center Point, radius float64) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		panic("vecpath: circle radius must be positive and finite")
	}

	b.MoveTo(center.X+radius, center.Y)
	spline.DecomposeArc(
		spline.Point{X: center.X, Y: center.Y},
		radius, defaultTolerance, 0, 2*math.Pi,
		func(_, p1, p2, p3 spline.Point) bool {
			b.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
			return true
		})
	b.Close()
}
