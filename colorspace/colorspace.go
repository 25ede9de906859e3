// Package colorspace describes the color spaces that vector paths are
// rendered in.
//
// A [ColorSpace] is an opaque, immutable comparator and validator for
// colors; color management itself is delegated to the wrapped color
// library. ColorSpace values are immutable and therefore safe for
// concurrent use.
package colorspace

import (
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorSpace identifies a color space and validates colors against it.
type ColorSpace struct {
	name string
}

var (
	srgbOnce sync.Once
	srgb     *ColorSpace
)

// SRGB returns the default sRGB color space. The instance is created on
// first use and shared process-wide; concurrent first access is safe.
func SRGB() *ColorSpace {
	srgbOnce.Do(func() {
		srgb = &ColorSpace{name: "sRGB"}
	})
	return srgb
}

// Name returns the color space's name.
func (cs *ColorSpace) Name() string {
	return cs.name
}

// Equal reports whether two color spaces describe the same space.
func (cs *ColorSpace) Equal(other *ColorSpace) bool {
	if cs == nil || other == nil {
		return cs == other
	}
	return cs.name == other.name
}

// Valid reports whether c is representable in the color space, that is,
// whether all of its channels lie inside the space's gamut.
func (cs *ColorSpace) Valid(c colorful.Color) bool {
	return c.IsValid()
}

// Clamp returns c with every channel clamped into the space's gamut.
// Colors that are already valid are returned unchanged.
func (cs *ColorSpace) Clamp(c colorful.Color) colorful.Color {
	if c.IsValid() {
		return c
	}
	return c.Clamped()
}

// ParseHex parses a hex color like "#ff0080" and validates it against
// the color space.
func (cs *ColorSpace) ParseHex(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, err
	}
	return cs.Clamp(c), nil
}
