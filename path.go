package vecpath

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current contour.
type Close struct{}

func (Close) isPathElement() {}

// Path is an immutable, ordered collection of contours representing
// complete vector geometry. A Path is never mutated after construction
// and may be shared freely between concurrent readers.
type Path struct {
	contours []*Contour
}

// newPath wraps a contour list. The slice is owned by the new path.
func newPath(contours []*Contour) *Path {
	return &Path{contours: contours}
}

// IsEmpty reports whether the path contains no contours.
func (p *Path) IsEmpty() bool {
	return len(p.contours) == 0
}

// NumContours returns the number of contours.
func (p *Path) NumContours() int {
	return len(p.contours)
}

// Contour returns the i-th contour.
func (p *Path) Contour(i int) *Contour {
	return p.contours[i]
}

// Bounds returns the bounding rectangle of all contours. For an empty
// path it returns the zero Rect.
func (p *Path) Bounds() Rect {
	if len(p.contours) == 0 {
		return Rect{}
	}
	r := p.contours[0].Bounds()
	for _, c := range p.contours[1:] {
		r = r.Union(c.Bounds())
	}
	return r
}

// Elements iterates over all contours' elements in order.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, c := range p.contours {
			for elem := range c.Elements() {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// String serializes the path as SVG path data.
func (p *Path) String() string {
	var sb strings.Builder
	for elem := range p.Elements() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			fmt.Fprintf(&sb, "M %s %s", fmtCoord(e.Point.X), fmtCoord(e.Point.Y))
		case LineTo:
			fmt.Fprintf(&sb, "L %s %s", fmtCoord(e.Point.X), fmtCoord(e.Point.Y))
		case QuadTo:
			fmt.Fprintf(&sb, "Q %s %s, %s %s",
				fmtCoord(e.Control.X), fmtCoord(e.Control.Y),
				fmtCoord(e.Point.X), fmtCoord(e.Point.Y))
		case CubicTo:
			fmt.Fprintf(&sb, "C %s %s, %s %s, %s %s",
				fmtCoord(e.Control1.X), fmtCoord(e.Control1.Y),
				fmtCoord(e.Control2.X), fmtCoord(e.Control2.Y),
				fmtCoord(e.Point.X), fmtCoord(e.Point.Y))
		case Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
