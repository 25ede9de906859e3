package vecpath

// Verb identifies a contour operation.
type Verb uint8

// Contour operation verbs.
const (
	// VerbMove starts a contour at a point without drawing.
	VerbMove Verb = iota
	// VerbLine draws a line to a point.
	VerbLine
	// VerbQuad draws a quadratic Bezier curve.
	VerbQuad
	// VerbCubic draws a cubic Bezier curve.
	VerbCubic
	// VerbClose closes the contour with a line back to its start point.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v Verb) String() string {
	switch v {
	case VerbMove:
		return "Move"
	case VerbLine:
		return "Line"
	case VerbQuad:
		return "Quad"
	case VerbCubic:
		return "Cubic"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// PointCount returns the number of points the verb appends to the
// contour's point buffer. Close appends none: it reuses the contour's
// start point.
func (v Verb) PointCount() int {
	switch v {
	case VerbMove, VerbLine:
		return 1
	case VerbQuad:
		return 2
	case VerbCubic:
		return 3
	case VerbClose:
		return 0
	default:
		return 0
	}
}

// verbOp is one encoded contour operation. index is the offset of the
// operation's first appended point in the contour's point buffer (for
// Close it is 0, the contour start point). Storing offsets instead of
// positions keeps operations valid while the point buffer grows.
type verbOp struct {
	verb  Verb
	index int
}
