package vecpath

import "fmt"

// RawOp identifies a segment in a [RawPath].
type RawOp uint8

// Raw path segment tags. The set is closed: external producers emit
// moves, lines, cubics and closes only (quadratics never occur).
const (
	RawMoveTo RawOp = iota
	RawLineTo
	RawCubicTo
	RawClosePath
)

// PointCount returns the number of points a raw segment carries:
// 1 for moves and lines, 3 for cubics, 0 for closes.
func (op RawOp) PointCount() int {
	switch op {
	case RawMoveTo, RawLineTo:
		return 1
	case RawCubicTo:
		return 3
	case RawClosePath:
		return 0
	default:
		return 0
	}
}

// RawSegment is one tagged segment of a foreign path. Points is filled
// up to Op.PointCount(); for cubics the order is control 1, control 2,
// end point.
type RawSegment struct {
	Op     RawOp
	Points [3]Point
}

// RawPath is a foreign fixed-format path: a flat, ordered sequence of
// tagged segments, as produced by external path sources such as glyph
// outline extractors.
type RawPath []RawSegment

// AddRawPath replays a foreign path into the builder, each segment as
// the corresponding drawing call, preserving order exactly.
//
// The segment tag set is closed by construction, so an unrecognized tag
// indicates corrupted input rather than a recoverable error: AddRawPath
// panics on it.
func (b *Builder) AddRawPath(raw RawPath) {
	for _, seg := range raw {
		switch seg.Op {
		case RawMoveTo:
			b.MoveTo(seg.Points[0].X, seg.Points[0].Y)
		case RawLineTo:
			b.LineTo(seg.Points[0].X, seg.Points[0].Y)
		case RawCubicTo:
			b.CubicTo(
				seg.Points[0].X, seg.Points[0].Y,
				seg.Points[1].X, seg.Points[1].Y,
				seg.Points[2].X, seg.Points[2].Y)
		case RawClosePath:
			b.Close()
		default:
			panic(fmt.Sprintf("vecpath: corrupt raw path: unknown segment tag %d", seg.Op))
		}
	}
}

// AddPath appends all of path's contours to the builder, in order. The
// current point moves to the last contour's end point.
func (b *Builder) AddPath(path *Path) {
	for _, c := range path.contours {
		b.AddContour(c)
	}
}

// AddReversePath appends path's contours in reverse order, each contour
// reversed: point order flipped and curve direction inverted. The current
// point moves to the end point of the last inserted reversed contour.
func (b *Builder) AddReversePath(path *Path) {
	for i := len(path.contours) - 1; i >= 0; i-- {
		b.AddContour(path.contours[i].Reverse())
	}
}
