package vecpath

import (
	"math"
	"slices"
	"testing"
)

// evalCubic evaluates a cubic Bezier at parameter t.
func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	ab := p0.Lerp(p1, t)
	bc := p1.Lerp(p2, t)
	cd := p2.Lerp(p3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	return abc.Lerp(bcd, t)
}

// sampleCurves walks a contour's cubic segments and calls f with sampled
// points on each curve.
func sampleCurves(c *Contour, f func(p Point)) {
	var cur Point
	for elem := range c.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			cur = e.Point
		case LineTo:
			cur = e.Point
		case CubicTo:
			for i := 0; i <= 16; i++ {
				f(evalCubic(cur, e.Control1, e.Control2, e.Point, float64(i)/16))
			}
			cur = e.Point
		}
	}
}

func TestSVGArcTo_CircularArcWithinTolerance(t *testing.T) {
	// rx == ry with zero rotation reduces to a circular arc. The start
	// point (10,5) and end point (0,5) lie on the circle of radius 5
	// around (5,5); every sampled point must stay within tolerance.
	var b Builder
	b.MoveTo(10, 5)
	b.SVGArcTo(5, 5, 0, false, true, 0, 5)
	path := b.Path()

	if path.NumContours() != 1 {
		t.Fatalf("expected 1 contour, got %d", path.NumContours())
	}
	c := path.Contour(0)
	if c.Flat() {
		t.Error("arc contour must not be flat")
	}

	center := Pt(5, 5)
	const radius = 5.0
	maxDev := 0.0
	sampleCurves(c, func(p Point) {
		dev := math.Abs(p.Distance(center) - radius)
		maxDev = math.Max(maxDev, dev)
	})
	if maxDev > 0.01 {
		t.Errorf("max deviation from circle = %g, want <= 0.01", maxDev)
	}
}

func TestSVGArcTo_EndsAtTarget(t *testing.T) {
	tests := []struct {
		name               string
		largeArc, positive bool
	}{
		{"small negative", false, false},
		{"small positive", false, true},
		{"large negative", true, false},
		{"large positive", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Builder
			b.MoveTo(0, 0)
			b.SVGArcTo(8, 4, 30, tt.largeArc, tt.positive, 10, 2)
			end := b.CurrentPoint()
			if end.Distance(Pt(10, 2)) > 1e-6 {
				t.Errorf("arc ends at %v, want (10,2)", end)
			}
		})
	}
}

func TestSVGArcTo_FlagsPickOppositeSweeps(t *testing.T) {
	// The two sweep directions must produce different geometry between
	// the same endpoints.
	build := func(positive bool) *Path {
		var b Builder
		b.MoveTo(0, 0)
		b.SVGArcTo(5, 5, 0, false, positive, 8, 0)
		return b.Path()
	}
	up := build(false).Bounds()
	down := build(true).Bounds()
	if up == down {
		t.Errorf("sweep flags produced identical bounds %v", up)
	}
}

func TestSVGArcTo_TooSmallRadiiAreScaled(t *testing.T) {
	// Radii far too small for the chord get scaled up until feasible;
	// the arc must still reach the end point.
	var b Builder
	b.MoveTo(0, 0)
	b.SVGArcTo(1, 1, 0, false, true, 100, 0)
	if got := b.CurrentPoint(); got.Distance(Pt(100, 0)) > 1e-6 {
		t.Errorf("arc ends at %v, want (100,0)", got)
	}
}

func TestSVGArcTo_DegenerateRequestEmitsNothing(t *testing.T) {
	var b Builder
	b.MoveTo(3, 4)
	b.SVGArcTo(5, 5, 0, true, true, 3, 4) // start == end

	if got := b.CurrentPoint(); got != Pt(3, 4) {
		t.Errorf("current point = %v, want unchanged (3,4)", got)
	}
	path := b.Path()
	c := path.Contour(0)
	if got := c.NumOps(); got != 1 {
		t.Errorf("expected only the move op, got %d ops", got)
	}
}

func TestSVGArcTo_SegmentsSpanAtMostQuarterTurn(t *testing.T) {
	// A full half circle of radius 5 needs at least two cubic segments.
	var b Builder
	b.MoveTo(10, 5)
	b.SVGArcTo(5, 5, 0, false, true, 0, 5)
	c := b.Path().Contour(0)

	cubics := 0
	for elem := range c.Elements() {
		if _, ok := elem.(CubicTo); ok {
			cubics++
		}
	}
	if cubics < 2 {
		t.Errorf("half circle decomposed into %d cubics, want >= 2", cubics)
	}
}

func TestSVGArcTo_RotationIsApplied(t *testing.T) {
	build := func(rotation float64) []PathElement {
		var b Builder
		b.MoveTo(0, 0)
		b.SVGArcTo(8, 2, rotation, false, true, 4, 0)
		return slices.Collect(b.Path().Elements())
	}
	if diffElements(build(0), build(90)) {
		return
	}
	t.Error("axis rotation had no effect on arc geometry")
}

// diffElements reports whether two element slices differ anywhere.
func diffElements(a, b []PathElement) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}
