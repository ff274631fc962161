// Package viewport owns the logical and backing-store size of the drawing
// surface and the one-shot capability gate.
package viewport

import (
	"math"

	"github.com/iburimskiy/electric-network/internal/config"
	"github.com/iburimskiy/electric-network/internal/render"
)

// Container reports the current layout size of the element hosting the
// surface.
type Container interface {
	LayoutSize() (w, h float64)
}

// Size is a fixed Container, handy for headless hosts.
type Size struct {
	W, H float64
}

func (s Size) LayoutSize() (float64, float64) { return s.W, s.H }

type Manager struct {
	container Container
	surface   render.Surface
	factor    float64

	width, height float64
}

// New sizes the surface from the container right away.
func New(c Container, s render.Surface) *Manager {
	m := &Manager{container: c, surface: s, factor: config.SupersampleFactor}
	m.Resize()
	return m
}

// Resize re-reads the container, sets the backing store to exactly
// SupersampleFactor times the logical size and resets the transform so
// callers keep drawing in logical units.
func (m *Manager) Resize() {
	w, h := m.container.LayoutSize()
	m.width, m.height = clampLogical(w), clampLogical(h)
	bw, bh := m.BackingSize()
	m.surface.SetBackingSize(bw, bh)
	m.surface.SetTransform(m.factor, 0, 0, m.factor, 0, 0)
}

func (m *Manager) Size() (w, h float64) { return m.width, m.height }

func (m *Manager) Center() (x, y float64) { return m.width / 2, m.height / 2 }

func (m *Manager) BackingSize() (w, h int) {
	return int(m.width * m.factor), int(m.height * m.factor)
}

func (m *Manager) Factor() float64 { return m.factor }

// Capable reports whether a viewport of the given logical width should run
// the animation at all. Widths at or below maxWidth are treated as small
// devices.
func Capable(viewportWidth, maxWidth float64) bool {
	return viewportWidth > maxWidth
}

// clampLogical rounds to whole layout units, the way offset sizes are
// reported, and keeps degenerate sizes out of the projector.
func clampLogical(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return config.MinLogicalSize
	}
	v = math.Round(v)
	if v < config.MinLogicalSize {
		return config.MinLogicalSize
	}
	return v
}
