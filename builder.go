package vecpath

// Builder incrementally constructs a [Path] from drawing commands.
//
// The zero value is ready to use. A Builder owns an in-progress contour
// (operation and point buffers plus a current point) and the list of
// contours finished so far. Starting a new contour — explicitly with
// [Builder.MoveTo], implicitly through [Builder.Close] or any of the
// shape-insertion calls — finalizes the one in progress.
//
// A Builder is single-owner: callers must serialize all mutating calls.
// The paths it produces are immutable and freely shareable.
type Builder struct {
	contours []*Contour

	ops     []verbOp
	points  []Point
	current Point
	flat    bool
	closed  bool
}

// NewBuilder creates a new empty Builder. The current point starts
// at (0, 0).
func NewBuilder() *Builder {
	return &Builder{}
}

// CurrentPoint returns the current point: the point all drawing commands
// start from, updated after every operation.
func (b *Builder) CurrentPoint() Point {
	return b.current
}

// ensureCurrent starts a contour at the current point if none is active.
// len(ops) == 0 is the "no active contour" state.
func (b *Builder) ensureCurrent() {
	if len(b.ops) != 0 {
		return
	}
	b.flat = true
	b.closed = false
	b.ops = append(b.ops, verbOp{VerbMove, 0})
	b.points = append(b.points, b.current)
}

// appendCurrent encodes one operation and its points into the active
// contour and advances the current point to the last appended point.
func (b *Builder) appendCurrent(verb Verb, pts ...Point) {
	b.ensureCurrent()
	b.ops = append(b.ops, verbOp{verb, len(b.points)})
	b.points = append(b.points, pts...)
	b.current = pts[len(pts)-1]
}

// endCurrent freezes the active contour, if any, into the finished list
// and resets the working buffers. The current point is left unchanged.
func (b *Builder) endCurrent() {
	if len(b.ops) == 0 {
		return
	}
	b.contours = append(b.contours, newContour(b.ops, b.points, b.closed, b.flat))
	b.ops = b.ops[:0]
	b.points = b.points[:0]
}

// MoveTo starts a new contour by placing the pen at (x, y).
//
// Calling MoveTo twice in succession leaves a contour made up of a single
// point from the first call, then starts another contour.
func (b *Builder) MoveTo(x, y float64) {
	b.endCurrent()
	b.current = Pt(x, y)
	b.ensureCurrent()
}

// RelMoveTo starts a new contour at (x, y) relative to the current point.
func (b *Builder) RelMoveTo(x, y float64) {
	b.MoveTo(b.current.X+x, b.current.Y+y)
}

// LineTo draws a line from the current point to (x, y) and makes it the
// new current point. A line to the current point itself is a no-op.
func (b *Builder) LineTo(x, y float64) {
	if b.current == Pt(x, y) {
		return
	}
	b.appendCurrent(VerbLine, Pt(x, y))
}

// RelLineTo draws a line to a point offset from the current point
// by (x, y).
func (b *Builder) RelLineTo(x, y float64) {
	b.LineTo(b.current.X+x, b.current.Y+y)
}

// QuadTo adds a quadratic Bezier curve from the current point to (x, y)
// with (cx, cy) as the control point. (x, y) becomes the current point.
func (b *Builder) QuadTo(cx, cy, x, y float64) {
	b.ensureCurrent()
	b.flat = false
	b.appendCurrent(VerbQuad, Pt(cx, cy), Pt(x, y))
}

// RelQuadTo adds a quadratic Bezier curve with both points given relative
// to the current point.
func (b *Builder) RelQuadTo(cx, cy, x, y float64) {
	b.QuadTo(b.current.X+cx, b.current.Y+cy, b.current.X+x, b.current.Y+y)
}

// CubicTo adds a cubic Bezier curve from the current point to (x, y) with
// (c1x, c1y) and (c2x, c2y) as the control points. (x, y) becomes the
// current point.
func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.ensureCurrent()
	b.flat = false
	b.appendCurrent(VerbCubic, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
}

// RelCubicTo adds a cubic Bezier curve with all points given relative to
// the current point.
func (b *Builder) RelCubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.CubicTo(
		b.current.X+c1x, b.current.Y+c1y,
		b.current.X+c2x, b.current.Y+c2y,
		b.current.X+x, b.current.Y+y)
}

// Close ends the active contour with a line back to its start point and
// marks it closed. With no active contour Close is a no-op.
//
// This differs from a LineTo to the start point: when stroking a closed
// contour, start and end are joined instead of capped.
func (b *Builder) Close() {
	if len(b.ops) == 0 {
		return
	}
	b.closed = true
	b.ops = append(b.ops, verbOp{VerbClose, 0})
	b.current = b.points[0]
	b.endCurrent()
}

// AddContour finalizes the active contour, then appends an already
// finished contour to the path under construction. The current point
// moves to the inserted contour's end point.
func (b *Builder) AddContour(c *Contour) {
	b.endCurrent()
	b.contours = append(b.contours, c)
	b.current = c.End()
}

// AddRect adds a closed rectangle contour with corner (x, y) and the
// given width and height as a new contour.
//
// If the width or height is negative, the start point is on the right or
// bottom, respectively. If the width or height is 0, the contour collapses
// to a closed horizontal or vertical line; if both are 0, to a closed dot.
func (b *Builder) AddRect(x, y, w, h float64) {
	b.MoveTo(x, y)
	switch {
	case w == 0 && h == 0:
		// closed dot
	case w == 0:
		b.LineTo(x, y+h)
	case h == 0:
		b.LineTo(x+w, y)
	default:
		b.LineTo(x+w, y)
		b.LineTo(x+w, y+h)
		b.LineTo(x, y+h)
	}
	b.Close()
}

// Path finalizes the active contour and returns the accumulated contours
// as an immutable Path. The builder is reset to its initial empty state
// and may be reused.
func (b *Builder) Path() *Path {
	b.endCurrent()
	path := newPath(b.contours)
	b.contours = nil
	b.current = Point{}
	return path
}
