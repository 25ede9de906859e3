// Package vecpath builds immutable vector paths from a sequence of
// drawing commands.
//
// # Overview
//
// A [Path] is an ordered collection of contours, each contour an ordered
// run of line and Bezier-curve operations. Paths are constructed through a
// [Builder], which tracks a current point across absolute and relative
// drawing commands and converts shapes (rectangles, circles, SVG-style
// elliptical arcs) into contour operations:
//
//	var b vecpath.Builder
//	b.MoveTo(0, 0)
//	b.LineTo(100, 0)
//	b.LineTo(100, 100)
//	b.Close()
//	path := b.Path()
//
// Finished paths are immutable and safe for concurrent readers. The
// Builder itself is single-owner: callers must serialize mutating calls.
//
// # Shapes and imports
//
// Besides the low-level MoveTo/LineTo/QuadTo/CubicTo/Close commands the
// Builder offers whole-contour insertion: [Builder.AddRect],
// [Builder.AddCircle], [Builder.SVGArcTo] for endpoint-parameterized
// elliptical arcs, [Builder.AddRawPath] for replaying externally produced
// path data, and [Builder.AddPath]/[Builder.AddReversePath] for merging
// finished paths.
//
// SVG path data strings can be parsed with [Parse] and serialized with
// [Path.String].
package vecpath
