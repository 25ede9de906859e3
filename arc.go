package vecpath

import "math"

// svgArcSegment emits one cubic Bezier segment approximating an arc span
// of the ellipse centered at (cx, cy) with radii rx, ry and axis rotation
// given by sinPhi/cosPhi. th0 and th1 are the span's boundary angles on
// the unit circle, t the tangent length for the control points.
func (b *Builder) svgArcSegment(cx, cy, rx, ry,
	sinPhi, cosPhi,
	sinTh0, cosTh0,
	sinTh1, cosTh1, t float64) {

	x1 := rx * (cosTh0 - t*sinTh0)
	y1 := ry * (sinTh0 + t*cosTh0)
	x3 := rx * cosTh1
	y3 := ry * sinTh1
	x2 := x3 + rx*(t*sinTh1)
	y2 := y3 + ry*(-t*cosTh1)

	b.CubicTo(
		cx+cosPhi*x1-sinPhi*y1,
		cy+sinPhi*x1+cosPhi*y1,
		cx+cosPhi*x2-sinPhi*y2,
		cy+sinPhi*x2+cosPhi*y2,
		cx+cosPhi*x3-sinPhi*y3,
		cy+sinPhi*x3+cosPhi*y3)
}

// SVGArcTo adds an SVG-style elliptical arc from the current point
// to (x, y).
//
// rx and ry are the ellipse radii and xAxisRotation the rotation of its
// axes in degrees. Of the four candidate arcs connecting the two points,
// largeArc selects the pair spanning more than half the ellipse and
// positiveSweep the one traversed in the direction of increasing angle,
// following the SVG arc parameterization. Radii too small to span the
// chord are scaled up proportionally until they fit.
//
// The arc is approximated by cubic Bezier segments of at most a quarter
// turn each. Numerically degenerate requests (such as an arc whose start
// and end point coincide) emit no operations and leave the current point
// unchanged.
func (b *Builder) SVGArcTo(rx, ry, xAxisRotation float64, largeArc, positiveSweep bool, x, y float64) {
	x1, y1 := b.current.X, b.current.Y
	x2, y2 := x, y

	phi := xAxisRotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	rx = math.Abs(rx)
	ry = math.Abs(ry)

	midX := (x1 - x2) / 2
	midY := (y1 - y2) / 2

	// Rotate the chord midpoint into the ellipse's local frame.
	x1_ := cosPhi*midX + sinPhi*midY
	y1_ := -sinPhi*midX + cosPhi*midY

	// Scale the radii up if they cannot span the chord.
	lambda := (x1_/rx)*(x1_/rx) + (y1_/ry)*(y1_/ry)
	if lambda > 1 {
		lambda = math.Sqrt(lambda)
		rx *= lambda
		ry *= lambda
	}

	d := (rx*y1_)*(rx*y1_) + (ry*x1_)*(ry*x1_)
	if d == 0 {
		logger().Debug("skipping degenerate arc", "reason", "zero chord discriminant")
		return
	}

	// Solve for the center in local coordinates. The sign of the root
	// picks between the two candidate centers per the flag combination.
	k := math.Sqrt(math.Abs((rx*ry)*(rx*ry)/d - 1))
	if positiveSweep == largeArc {
		k = -k
	}

	cx_ := k * rx * y1_ / ry
	cy_ := -k * ry * x1_ / rx

	cx := cosPhi*cx_ - sinPhi*cy_ + (x1+x2)/2
	cy := sinPhi*cx_ + cosPhi*cy_ + (y1+y2)/2

	// Start angle from the unit vector pointing at the start point.
	ux := (x1_ - cx_) / rx
	uy := (y1_ - cy_) / ry
	uLen := math.Sqrt(ux*ux + uy*uy)
	if uLen == 0 {
		logger().Debug("skipping degenerate arc", "reason", "zero-length start vector")
		return
	}

	cosTheta1 := clamp(ux/uLen, -1, 1)
	theta1 := math.Acos(cosTheta1)
	if uy < 0 {
		theta1 = -theta1
	}

	vx := (-x1_ - cx_) / rx
	vy := (-y1_ - cy_) / ry
	vLen := math.Sqrt(vx*vx + vy*vy)
	if vLen == 0 {
		logger().Debug("skipping degenerate arc", "reason", "zero-length end vector")
		return
	}

	// Signed sweep between the start and end vectors, wrapped so that a
	// positive sweep is non-negative and a negative one non-positive.
	dpUV := ux*vx + uy*vy
	cosDeltaTheta := clamp(dpUV/(uLen*vLen), -1, 1)
	deltaTheta := math.Acos(cosDeltaTheta)
	if ux*vy-uy*vx < 0 {
		deltaTheta = -deltaTheta
	}
	if positiveSweep && deltaTheta < 0 {
		deltaTheta += 2 * math.Pi
	} else if !positiveSweep && deltaTheta > 0 {
		deltaTheta -= 2 * math.Pi
	}

	// Quarter-turn segments bound the cubic approximation error; the
	// epsilon keeps an exact quarter turn from splitting in two.
	nSegs := int(math.Ceil(math.Abs(deltaTheta / (math.Pi/2 + 0.001))))
	dTheta := deltaTheta / float64(nSegs)
	sinTh1, cosTh1 := math.Sincos(theta1)

	thHalf := dTheta / 2
	t := (8.0 / 3.0) * math.Sin(thHalf/2) * math.Sin(thHalf/2) / math.Sin(thHalf)

	for i := 0; i < nSegs; i++ {
		theta1 += dTheta
		sinTh0, cosTh0 := sinTh1, cosTh1
		sinTh1, cosTh1 = math.Sincos(theta1)
		b.svgArcSegment(cx, cy, rx, ry,
			sinPhi, cosPhi,
			sinTh0, cosTh0,
			sinTh1, cosTh1, t)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
