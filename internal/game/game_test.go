package game

import (
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/electric-network/internal/config"
)

func newTestGame(t *testing.T, viewportWidth float64) *Game {
	t.Helper()
	g, err := NewGame(Options{
		Width:         800,
		Height:        400,
		ViewportWidth: viewportWidth,
		Tuning:        config.DefaultTuning(),
		Seed:          3,
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func TestLayoutReportsSupersampledBacking(t *testing.T) {
	g := newTestGame(t, 1920)
	if w, h := g.Layout(800, 400); w != 1600 || h != 800 {
		t.Fatalf("layout=%dx%d want 1600x800", w, h)
	}
	if w, h := g.Layout(1200, 600); w != 2400 || h != 1200 {
		t.Fatalf("layout=%dx%d want 2400x1200", w, h)
	}
	if cx, cy := g.engine.Viewport().Center(); cx != 600 || cy != 300 {
		t.Fatalf("center=(%f,%f) want (600,300)", cx, cy)
	}
}

func TestSmallMonitorDisablesGame(t *testing.T) {
	g := newTestGame(t, 700)
	if g.Enabled() || g.Start() {
		t.Fatalf("game enabled on a 700px viewport")
	}
	if !g.surface.hidden {
		t.Fatalf("surface not hidden")
	}
	if g.frames.Pending() {
		t.Fatalf("frame requested while disabled")
	}
	if w, h := g.Layout(700, 300); w != 1400 || h != 600 {
		t.Fatalf("layout=%dx%d", w, h)
	}
}

func TestFrameQueueDrivesEngine(t *testing.T) {
	g := newTestGame(t, 1920)
	if !g.Start() {
		t.Fatalf("Start failed")
	}
	// without a bound screen the surface drops draw calls but the
	// simulation still advances
	for i := 0; i < 3; i++ {
		if !g.frames.Fire(g.timestamp()) {
			t.Fatalf("frame %d not pending", i)
		}
	}
	if st := g.engine.Stats(); st.Frames != 3 {
		t.Fatalf("frames=%d want 3", st.Frames)
	}
	g.engine.Stop()
	if g.frames.Pending() {
		t.Fatalf("frame pending after stop")
	}
}

func TestSurfaceTransformScale(t *testing.T) {
	s := NewSurface()
	s.SetTransform(2, 0, 0, 2, 0, 0)
	if s.scale != 2 {
		t.Fatalf("scale=%f want 2", s.scale)
	}
	x, y := s.geo.Apply(10, 5)
	if x != 20 || y != 10 {
		t.Fatalf("apply=(%f,%f) want (20,10)", x, y)
	}
	if s.ready() {
		t.Fatalf("surface ready without a target")
	}
	s.SetBackingSize(640, 480)
	if w, h := s.BackingSize(); w != 640 || h != 480 {
		t.Fatalf("backing=%dx%d", w, h)
	}
}

func TestHelpers(t *testing.T) {
	if got := formatDuration(83 * time.Second); got != "01:23" {
		t.Fatalf("formatDuration=%q", got)
	}
	if clamp01(-1) != 0 || clamp01(2) != 1 || clamp01(0.25) != 0.25 {
		t.Fatalf("clamp01 broken")
	}
	if got := transformScale(3, 0, 0, 3); math.Abs(got-3) > 1e-12 {
		t.Fatalf("transformScale=%f want 3", got)
	}
}

func TestStatusMentionsStats(t *testing.T) {
	g := newTestGame(t, 1920)
	g.Start()
	g.frames.Fire(0)
	if s := g.status(); len(s) == 0 {
		t.Fatalf("empty status")
	}
}
