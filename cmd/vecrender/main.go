// Command vecrender renders an SVG path data string to a PNG image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/go2d/vecpath"
	"github.com/go2d/vecpath/colorspace"
)

func main() {
	var (
		fillRule = flag.String("fill", "winding", "fill rule (winding, even-odd)")
		fgColor  = flag.String("fg", "#000000", "foreground color")
		bgColor  = flag.String("bg", "#ffffff", "background color")
		output   = flag.String("output", "path.png", "output file")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: vecrender [flags] PATH\n\nRender the path to a png image.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "vecrender: no path specified")
		os.Exit(1)
	}
	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "vecrender: can only render a single path")
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *fillRule, *fgColor, *bgColor, *output); err != nil {
		fmt.Fprintf(os.Stderr, "vecrender: %v\n", err)
		os.Exit(1)
	}

	log.Printf("Output written to %s", *output)
}

func run(pathData, fillRule, fgColor, bgColor, output string) error {
	switch fillRule {
	case "winding":
		// the only rule the raster backend accumulates
	case "even-odd":
		return fmt.Errorf("even-odd fill rule is not supported by the raster backend")
	default:
		return fmt.Errorf("invalid fill rule %q (expected winding or even-odd)", fillRule)
	}

	path, err := vecpath.Parse(pathData)
	if err != nil {
		return err
	}
	if path.IsEmpty() {
		return fmt.Errorf("path %q contains no contours", pathData)
	}

	srgb := colorspace.SRGB()
	fg, err := srgb.ParseHex(fgColor)
	if err != nil {
		return fmt.Errorf("invalid foreground color %q: %w", fgColor, err)
	}
	bg, err := srgb.ParseHex(bgColor)
	if err != nil {
		return fmt.Errorf("invalid background color %q: %w", bgColor, err)
	}

	img := render(path, fg, bg)

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("saving png to %q failed: %w", output, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("saving png to %q failed: %w", output, err)
	}
	return f.Close()
}

// render fills path in fg over a bg background, with a 10 unit margin
// around the path bounds.
func render(path *vecpath.Path, fg, bg colorful.Color) *image.RGBA {
	bounds := path.Bounds().Inset(-10)
	w := max(int(math.Ceil(bounds.Width())), 1)
	h := max(int(math.Ceil(bounds.Height())), 1)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	// The rasterizer wants closed contours; open ones are closed with an
	// implicit line back to their start, which matches how a fill treats
	// them anyway.
	r := vector.NewRasterizer(w, h)
	ox, oy := bounds.Min.X, bounds.Min.Y
	open := false
	for elem := range path.Elements() {
		switch e := elem.(type) {
		case vecpath.MoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(e.Point.X-ox), float32(e.Point.Y-oy))
			open = true
		case vecpath.LineTo:
			r.LineTo(float32(e.Point.X-ox), float32(e.Point.Y-oy))
		case vecpath.QuadTo:
			r.QuadTo(
				float32(e.Control.X-ox), float32(e.Control.Y-oy),
				float32(e.Point.X-ox), float32(e.Point.Y-oy))
		case vecpath.CubicTo:
			r.CubeTo(
				float32(e.Control1.X-ox), float32(e.Control1.Y-oy),
				float32(e.Control2.X-ox), float32(e.Control2.Y-oy),
				float32(e.Point.X-ox), float32(e.Point.Y-oy))
		case vecpath.Close:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
	r.Draw(img, img.Bounds(), image.NewUniform(fg), image.Point{})
	return img
}
