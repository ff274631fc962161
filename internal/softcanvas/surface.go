// Package softcanvas implements render.Surface on the tfriedel6/canvas
// software backend, which renders into an in-memory RGBA image without a
// window or GPU.
package softcanvas

import (
	"image"
	"math"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	"github.com/iburimskiy/electric-network/internal/render"
)

type Surface struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	hidden  bool

	background    render.Color
	hasBackground bool
}

// New creates a surface with a w x h pixel store. The viewport manager
// normally resizes it right away.
func New(w, h int) *Surface {
	s := &Surface{}
	s.SetBackingSize(w, h)
	return s
}

func (s *Surface) SetBackingSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if s.backend != nil {
		b := s.backend.Image.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
	}
	s.backend = softwarebackend.New(w, h)
	s.cv = canvas.New(s.backend)
}

func (s *Surface) SetTransform(a, b, c, d, e, f float64) {
	s.cv.SetTransform(a, b, c, d, e, f)
}

func (s *Surface) SetHidden(hidden bool) { s.hidden = hidden }

func (s *Surface) Hidden() bool { return s.hidden }

func (s *Surface) ClearRect(x, y, w, h float64) {
	if s.hidden {
		return
	}
	s.cv.ClearRect(x, y, w, h)
	if s.hasBackground {
		s.cv.SetFillStyle(style(s.background))
		s.cv.FillRect(x, y, w, h)
	}
}

// SetBackground makes ClearRect paint c instead of leaving transparent
// pixels. Exported frames need it: GIF has no partial transparency.
func (s *Surface) SetBackground(c render.Color) {
	s.background, s.hasBackground = c, true
}

func (s *Surface) StrokePath(path []render.Point, st render.Stroke) {
	if s.hidden || len(path) < 2 || st.Alpha <= 0 {
		return
	}
	s.cv.Save()
	defer s.cv.Restore()

	s.cv.SetGlobalAlpha(clamp01(st.Alpha))
	s.cv.SetStrokeStyle(style(st.Color))
	s.cv.SetLineWidth(st.Width)
	s.cv.SetShadowColor(style(st.Shadow))
	s.cv.SetShadowBlur(st.Blur)
	if st.Join == render.JoinBevel {
		s.cv.SetLineJoin(canvas.Bevel)
	} else {
		s.cv.SetLineJoin(canvas.Miter)
	}
	s.cv.BeginPath()
	s.cv.MoveTo(path[0].X, path[0].Y)
	for _, p := range path[1:] {
		s.cv.LineTo(p.X, p.Y)
	}
	s.cv.Stroke()
}

func (s *Surface) FillRadial(x, y, r float64, inner, outer render.Color) {
	if s.hidden || r <= 0 {
		return
	}
	grad := s.cv.CreateRadialGradient(x, y, 0, x, y, r)
	grad.AddColorStop(0, style(inner))
	grad.AddColorStop(1, style(outer))
	s.cv.SetFillStyle(grad)
	s.cv.FillRect(x-r, y-r, 2*r, 2*r)
}

func (s *Surface) FillCircle(x, y, r float64, c render.Color) {
	if s.hidden || r <= 0 {
		return
	}
	s.cv.BeginPath()
	s.cv.Arc(x, y, r, 0, 2*math.Pi, false)
	s.cv.SetFillStyle(style(c))
	s.cv.Fill()
}

// Image is the backing store. It is replaced when the backing size changes.
func (s *Surface) Image() *image.RGBA { return s.backend.Image }

// style hands a colour to the canvas as straight 8-bit RGBA. The canvas
// blends its colours as straight alpha, and a color.Color would arrive
// premultiplied by its RGBA method.
func style(c render.Color) [4]uint8 {
	n := c.NRGBA()
	return [4]uint8{n.R, n.G, n.B, n.A}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
