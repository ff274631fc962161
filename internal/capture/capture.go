// Package capture writes rendered frames to PNG files and animated GIFs.
package capture

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"

	"github.com/pkg/errors"
)

// WritePNGFile writes img to path, creating or truncating it.
func WritePNGFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create png")
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

// GIFRecorder collects frames into a looping animated GIF.
type GIFRecorder struct {
	anim gif.GIF
	// delay per frame in 1/100 s
	delay int
}

func NewGIFRecorder(delay int) *GIFRecorder {
	if delay < 1 {
		delay = 1
	}
	return &GIFRecorder{delay: delay}
}

// Add quantises img to the Plan9 palette and appends it.
func (g *GIFRecorder) Add(img image.Image) {
	b := img.Bounds()
	pal := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pal, b, img, b.Min)
	g.anim.Image = append(g.anim.Image, pal)
	g.anim.Delay = append(g.anim.Delay, g.delay)
}

func (g *GIFRecorder) Len() int { return len(g.anim.Image) }

func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.anim.Image) == 0 {
		return errors.New("gif: no frames")
	}
	g.anim.LoopCount = 0
	return errors.Wrap(gif.EncodeAll(w, &g.anim), "encode gif")
}
