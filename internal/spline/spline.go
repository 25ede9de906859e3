// Package spline provides tolerance-bounded decomposition of circular
// arcs into cubic Bezier segments.
package spline

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// DecomposeArc approximates the arc of the circle around center with the
// given radius, from startAngle to endAngle (radians, counterclockwise
// for endAngle > startAngle), by a finite sequence of cubic Bezier
// segments whose maximum deviation from the true circle stays within
// tolerance.
//
// yield is called once per segment with the segment's four control
// points, the first being the segment's start point on the circle.
// Returning false stops the decomposition early. The decomposition is
// deterministic: equal inputs produce equal segment sequences.
func DecomposeArc(center Point, radius, tolerance, startAngle, endAngle float64, yield func(p0, p1, p2, p3 Point) bool) {
	sweep := endAngle - startAngle
	if sweep == 0 {
		return
	}

	// Segments per full turn from the error model err ~ r/(1.1163*n^6);
	// four quarter-turn segments already satisfy any practical tolerance.
	scaledErr := math.Abs(radius) / tolerance
	perTurn := math.Max(math.Ceil(math.Pow(1.1163*scaledErr, 1.0/6.0)), 4)
	n := int(math.Max(math.Ceil(perTurn*math.Abs(sweep)/(2*math.Pi)), 1))

	dTheta := sweep / float64(n)
	arm := (4.0 / 3.0) * math.Tan(dTheta/4)

	sin1, cos1 := math.Sincos(startAngle)
	for i := 0; i < n; i++ {
		sin0, cos0 := sin1, cos1
		sin1, cos1 = math.Sincos(startAngle + float64(i+1)*dTheta)

		p0 := Point{center.X + radius*cos0, center.Y + radius*sin0}
		p1 := Point{
			center.X + radius*(cos0-arm*sin0),
			center.Y + radius*(sin0+arm*cos0),
		}
		p3 := Point{center.X + radius*cos1, center.Y + radius*sin1}
		p2 := Point{
			center.X + radius*(cos1+arm*sin1),
			center.Y + radius*(sin1-arm*cos1),
		}

		if !yield(p0, p1, p2, p3) {
			return
		}
	}
}
