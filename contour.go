package vecpath

import "iter"

// Contour is one connected sub-path: an ordered run of operations with a
// start point, optional lines and curves, and an open/closed state.
// Contours are immutable once built and safe for concurrent readers.
type Contour struct {
	ops    []verbOp
	points []Point
	closed bool
	flat   bool
}

// newContour freezes operation and point buffers into a Contour.
// The slices are copied so the caller may reuse its buffers.
func newContour(ops []verbOp, points []Point, closed, flat bool) *Contour {
	c := &Contour{
		ops:    make([]verbOp, len(ops)),
		points: make([]Point, len(points)),
		closed: closed,
		flat:   flat,
	}
	copy(c.ops, ops)
	copy(c.points, points)
	return c
}

// Closed reports whether the contour was ended with a close operation.
func (c *Contour) Closed() bool {
	return c.closed
}

// Flat reports whether the contour contains no curve operations.
func (c *Contour) Flat() bool {
	return c.flat
}

// NumOps returns the number of operations, including the initial move.
func (c *Contour) NumOps() int {
	return len(c.ops)
}

// NumPoints returns the number of stored points.
func (c *Contour) NumPoints() int {
	return len(c.points)
}

// Start returns the contour's start point.
func (c *Contour) Start() Point {
	return c.points[0]
}

// End returns the contour's end point. For a closed contour this is the
// start point.
func (c *Contour) End() Point {
	if c.closed {
		return c.points[0]
	}
	return c.points[len(c.points)-1]
}

// Bounds returns the axis-aligned bounding rectangle of the contour's
// points. Curve control points are included, so the bounds may exceed the
// drawn geometry but never undercut it.
func (c *Contour) Bounds() Rect {
	r := rectAround(c.points[0])
	for _, p := range c.points[1:] {
		r = r.unionPoint(p)
	}
	return r
}

// Elements iterates over the contour's operations as path elements.
func (c *Contour) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, op := range c.ops {
			var elem PathElement
			switch op.verb {
			case VerbMove:
				elem = MoveTo{Point: c.points[op.index]}
			case VerbLine:
				elem = LineTo{Point: c.points[op.index]}
			case VerbQuad:
				elem = QuadTo{Control: c.points[op.index], Point: c.points[op.index+1]}
			case VerbCubic:
				elem = CubicTo{
					Control1: c.points[op.index],
					Control2: c.points[op.index+1],
					Point:    c.points[op.index+2],
				}
			case VerbClose:
				elem = Close{}
			}
			if !yield(elem) {
				return
			}
		}
	}
}

// Reverse returns a new contour with the point order reversed and the
// direction of every curve flipped. A closed contour stays closed; its
// close edge becomes the reverse of the original close edge.
func (c *Contour) Reverse() *Contour {
	n := len(c.points)
	points := make([]Point, n)
	for i, p := range c.points {
		points[n-1-i] = p
	}

	// Reversing the point buffer maps every operation's point block
	// [start, controls..., end] onto [end, ...controls, start], so the
	// reversed operation list is the original verbs walked backwards
	// with freshly assigned offsets.
	ops := make([]verbOp, 0, len(c.ops))
	ops = append(ops, verbOp{VerbMove, 0})
	written := 1
	for i := len(c.ops) - 1; i >= 1; i-- {
		op := c.ops[i]
		if op.verb == VerbClose {
			continue
		}
		ops = append(ops, verbOp{op.verb, written})
		written += op.verb.PointCount()
	}
	if c.closed {
		ops = append(ops, verbOp{VerbClose, 0})
	}

	return &Contour{
		ops:    ops,
		points: points,
		closed: c.closed,
		flat:   c.flat,
	}
}
