package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is a straight (non-premultiplied) RGBA colour with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque colour from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// ParseHex parses "#rrggbb" and attaches the given alpha.
func ParseHex(hex string, alpha float64) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, errors.Wrapf(err, "parse colour %q", hex)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// WithAlpha returns c with its alpha scaled by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(c.A * a)
	return c
}

// NRGBA converts to an 8-bit straight-alpha colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
