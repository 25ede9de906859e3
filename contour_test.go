package vecpath

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// pointNear compares points within a floating-point tolerance, for use
// as a cmp option on element slices.
var pointNear = cmp.Comparer(func(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
})

func buildContour(build func(b *Builder)) *Contour {
	var b Builder
	build(&b)
	return b.Path().Contour(0)
}

func TestContour_Elements(t *testing.T) {
	c := buildContour(func(b *Builder) {
		b.MoveTo(0, 0)
		b.LineTo(10, 0)
		b.QuadTo(15, 5, 10, 10)
		b.CubicTo(5, 15, 0, 15, 0, 10)
		b.Close()
	})

	got := slices.Collect(c.Elements())
	want := []PathElement{
		MoveTo{Pt(0, 0)},
		LineTo{Pt(10, 0)},
		QuadTo{Pt(15, 5), Pt(10, 10)},
		CubicTo{Pt(5, 15), Pt(0, 15), Pt(0, 10)},
		Close{},
	}
	if diff := cmp.Diff(want, got, pointNear); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
}

func TestContour_StartEnd(t *testing.T) {
	open := buildContour(func(b *Builder) {
		b.MoveTo(1, 2)
		b.LineTo(3, 4)
	})
	if open.Start() != Pt(1, 2) || open.End() != Pt(3, 4) {
		t.Errorf("open contour start/end = %v/%v, want (1,2)/(3,4)", open.Start(), open.End())
	}

	closed := buildContour(func(b *Builder) {
		b.MoveTo(1, 2)
		b.LineTo(3, 4)
		b.Close()
	})
	if closed.End() != Pt(1, 2) {
		t.Errorf("closed contour end = %v, want start (1,2)", closed.End())
	}
}

func TestContour_ReverseOpen(t *testing.T) {
	c := buildContour(func(b *Builder) {
		b.MoveTo(0, 0)
		b.LineTo(10, 0)
		b.CubicTo(12, 5, 12, 10, 10, 15)
	})
	rev := c.Reverse()

	got := slices.Collect(rev.Elements())
	want := []PathElement{
		MoveTo{Pt(10, 15)},
		CubicTo{Pt(12, 10), Pt(12, 5), Pt(10, 0)},
		LineTo{Pt(0, 0)},
	}
	if diff := cmp.Diff(want, got, pointNear); diff != "" {
		t.Errorf("reversed elements mismatch (-want +got):\n%s", diff)
	}
	if rev.Flat() {
		t.Error("reversed contour with a cubic must not be flat")
	}
}

func TestContour_ReverseClosed(t *testing.T) {
	c := buildContour(func(b *Builder) {
		b.MoveTo(0, 0)
		b.LineTo(10, 0)
		b.LineTo(10, 10)
		b.Close()
	})
	rev := c.Reverse()

	if !rev.Closed() {
		t.Error("reversing a closed contour must keep it closed")
	}
	got := slices.Collect(rev.Elements())
	want := []PathElement{
		MoveTo{Pt(10, 10)},
		LineTo{Pt(10, 0)},
		LineTo{Pt(0, 0)},
		Close{},
	}
	if diff := cmp.Diff(want, got, pointNear); diff != "" {
		t.Errorf("reversed elements mismatch (-want +got):\n%s", diff)
	}
}

func TestContour_ReverseTwiceIsIdentity(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
	}{
		{"open polyline", func(b *Builder) {
			b.MoveTo(0, 0)
			b.LineTo(10, 0)
			b.LineTo(10, 10)
		}},
		{"closed triangle", func(b *Builder) {
			b.MoveTo(0, 0)
			b.LineTo(10, 0)
			b.LineTo(10, 10)
			b.Close()
		}},
		{"mixed curves", func(b *Builder) {
			b.MoveTo(0, 0)
			b.QuadTo(5, 10, 10, 0)
			b.CubicTo(15, -5, 20, 5, 25, 0)
			b.LineTo(30, 0)
			b.Close()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := buildContour(tt.build)
			twice := c.Reverse().Reverse()

			got := slices.Collect(twice.Elements())
			want := slices.Collect(c.Elements())
			if diff := cmp.Diff(want, got, pointNear); diff != "" {
				t.Errorf("double reverse diverges (-want +got):\n%s", diff)
			}
			if twice.Closed() != c.Closed() || twice.Flat() != c.Flat() {
				t.Errorf("flags changed: closed %v→%v, flat %v→%v",
					c.Closed(), twice.Closed(), c.Flat(), twice.Flat())
			}
		})
	}
}

func TestContour_Bounds(t *testing.T) {
	c := buildContour(func(b *Builder) {
		b.MoveTo(2, 3)
		b.LineTo(-1, 7)
		b.LineTo(4, -2)
	})
	want := Rect{Min: Point{-1, -2}, Max: Point{4, 7}}
	if got := c.Bounds(); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
}
