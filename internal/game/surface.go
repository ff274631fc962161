package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/electric-network/internal/render"
)

const (
	shadowLayers = 3
	radialSpokes = 24
	miterLimit   = 10
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Surface draws on the ebiten screen. The screen handed to Draw is the
// backing store; logical coordinates go through the current transform.
// Shadow blur is approximated with widening translucent strokes, and radial
// gradients with a vertex-coloured triangle fan.
type Surface struct {
	target       *ebiten.Image
	backW, backH int
	geo          ebiten.GeoM
	scale        float64
	hidden       bool

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewSurface() *Surface {
	return &Surface{scale: 1}
}

// Bind points the surface at this frame's screen.
func (s *Surface) Bind(screen *ebiten.Image) { s.target = screen }

func (s *Surface) SetBackingSize(w, h int) { s.backW, s.backH = w, h }

// BackingSize is what Layout reports back to ebiten.
func (s *Surface) BackingSize() (int, int) { return s.backW, s.backH }

func (s *Surface) SetTransform(a, b, c, d, e, f float64) {
	s.geo.Reset()
	s.geo.SetElement(0, 0, a)
	s.geo.SetElement(1, 0, b)
	s.geo.SetElement(0, 1, c)
	s.geo.SetElement(1, 1, d)
	s.geo.SetElement(0, 2, e)
	s.geo.SetElement(1, 2, f)
	s.scale = transformScale(a, b, c, d)
}

func (s *Surface) SetHidden(hidden bool) { s.hidden = hidden }

func (s *Surface) ready() bool { return s.target != nil && !s.hidden }

func (s *Surface) ClearRect(x, y, w, h float64) {
	if !s.ready() {
		return
	}
	x0, y0 := s.geo.Apply(x, y)
	x1, y1 := s.geo.Apply(x+w, y+h)
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	if r.Intersect(s.target.Bounds()) == s.target.Bounds() {
		s.target.Clear()
		return
	}
	s.target.SubImage(r).(*ebiten.Image).Clear()
}

func (s *Surface) StrokePath(path []render.Point, st render.Stroke) {
	if !s.ready() || len(path) < 2 || st.Alpha <= 0 {
		return
	}
	var p vector.Path
	x, y := s.geo.Apply(path[0].X, path[0].Y)
	p.MoveTo(float32(x), float32(y))
	for _, pt := range path[1:] {
		x, y = s.geo.Apply(pt.X, pt.Y)
		p.LineTo(float32(x), float32(y))
	}

	width := st.Width * s.scale
	if st.Blur > 0 && st.Shadow.A > 0 {
		shadow := st.Shadow.WithAlpha(st.Alpha / (shadowLayers + 1))
		for i := shadowLayers; i >= 1; i-- {
			spread := st.Blur * s.scale * float64(i) / shadowLayers
			s.stroke(&p, width+spread, st.Join, shadow)
		}
	}
	s.stroke(&p, width, st.Join, st.Color.WithAlpha(st.Alpha))
}

func (s *Surface) stroke(p *vector.Path, width float64, join render.LineJoin, c render.Color) {
	op := &vector.StrokeOptions{
		Width:      float32(width),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: miterLimit,
	}
	if join == render.JoinBevel {
		op.LineJoin = vector.LineJoinBevel
	}
	s.vertices, s.indices = p.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], op)
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		setVertexColor(&s.vertices[i], c)
	}
	s.draw()
}

func (s *Surface) FillRadial(x, y, r float64, inner, outer render.Color) {
	if !s.ready() || r <= 0 {
		return
	}
	cx, cy := s.geo.Apply(x, y)
	rr := r * s.scale

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	center := ebiten.Vertex{DstX: float32(cx), DstY: float32(cy), SrcX: 1, SrcY: 1}
	setVertexColor(&center, inner)
	s.vertices = append(s.vertices, center)
	for i := 0; i < radialSpokes; i++ {
		a := 2 * math.Pi * float64(i) / radialSpokes
		v := ebiten.Vertex{
			DstX: float32(cx + rr*math.Cos(a)),
			DstY: float32(cy + rr*math.Sin(a)),
			SrcX: 1,
			SrcY: 1,
		}
		setVertexColor(&v, outer)
		s.vertices = append(s.vertices, v)
		next := uint16(1 + (i+1)%radialSpokes)
		s.indices = append(s.indices, 0, uint16(1+i), next)
	}
	s.draw()
}

func (s *Surface) FillCircle(x, y, r float64, c render.Color) {
	if !s.ready() || r <= 0 {
		return
	}
	cx, cy := s.geo.Apply(x, y)
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r*s.scale), c.NRGBA(), true)
}

func (s *Surface) draw() {
	s.target.DrawTriangles(s.vertices, s.indices, white(), &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	})
}

func setVertexColor(v *ebiten.Vertex, c render.Color) {
	v.ColorR = float32(clamp01(c.R))
	v.ColorG = float32(clamp01(c.G))
	v.ColorB = float32(clamp01(c.B))
	v.ColorA = float32(clamp01(c.A))
}
