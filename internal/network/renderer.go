package network

import (
	"math"

	"github.com/iburimskiy/electric-network/internal/config"
	"github.com/iburimskiy/electric-network/internal/field"
	"github.com/iburimskiy/electric-network/internal/render"
	"github.com/iburimskiy/electric-network/internal/rng"
)

// Renderer draws connections and nodes. It keeps one path buffer that is
// rewritten for every arc.
type Renderer struct {
	rnd     rng.Source
	palette render.Palette
	maxDist float64
	path    []render.Point
	glow    render.Stroke
	core    render.Stroke
}

func NewRenderer(rnd rng.Source, palette render.Palette, maxDist float64) *Renderer {
	return &Renderer{
		rnd:     rnd,
		palette: palette,
		maxDist: maxDist,
		path:    make([]render.Point, 0, int(maxDist/config.ArcSegmentLength)+2),
		glow: render.Stroke{
			Color:  palette.ArcGlow,
			Width:  config.ArcGlowWidth,
			Shadow: palette.ArcGlowShadow,
			Blur:   config.ArcGlowBlur,
			Join:   render.JoinMiter,
		},
		core: render.Stroke{
			Color:  palette.ArcCore,
			Width:  config.ArcCoreWidth,
			Shadow: palette.ArcCoreShadow,
			Blur:   config.ArcCoreBlur,
			Join:   render.JoinBevel,
		},
	}
}

// DrawArcs draws every visible connection in ps and returns how many were
// drawn. ps must already be sorted far to near.
func (r *Renderer) DrawArcs(s render.Surface, ps []field.Projected) int {
	drawn := 0
	EachConnection(ps, r.maxDist, config.ArcAlphaCeiling, config.ArcAlphaFloor, func(a, b field.Projected, _, alpha float64) {
		r.DrawArc(s, render.Point{X: a.X, Y: a.Y}, render.Point{X: b.X, Y: b.Y}, alpha)
		drawn++
	})
	return drawn
}

// DrawArc strokes a freshly jagged path between p1 and p2 twice: a wide dim
// glow and a thin bright core.
func (r *Renderer) DrawArc(s render.Surface, p1, p2 render.Point, alpha float64) {
	r.path = ArcPath(r.path, p1, p2, r.rnd)

	glow := r.glow
	glow.Alpha = alpha * config.ArcGlowAlpha
	s.StrokePath(r.path, glow)

	core := r.core
	core.Alpha = alpha * config.ArcCoreAlpha
	s.StrokePath(r.path, core)
}

// NodeAlpha is depth scale times pulse brightness.
func NodeAlpha(s, pulse float64) float64 {
	return s * (config.PulseBase + config.PulseAmplitude*math.Sin(pulse))
}

// DrawNodes draws a halo and a core for every node bright enough to see,
// in the order of ps, and returns how many were drawn.
func (r *Renderer) DrawNodes(s render.Surface, ps []field.Projected, nodes []field.Node) int {
	drawn := 0
	for _, p := range ps {
		n := nodes[p.Index]
		alpha := NodeAlpha(p.S, n.Pulse)
		if alpha < config.NodeAlphaFloor {
			continue
		}
		radius := n.Size * p.S

		s.FillRadial(p.X, p.Y, radius*config.NodeHaloFactor,
			r.palette.NodeHaloInner.WithAlpha(alpha*config.NodeHaloAlpha),
			r.palette.NodeHaloOuter)
		s.FillCircle(p.X, p.Y, math.Max(config.NodeMinRadius, radius),
			r.palette.NodeCore.WithAlpha(alpha*config.NodeCoreAlpha))
		drawn++
	}
	return drawn
}
