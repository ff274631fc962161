// Package heartbeat spawns the sporadic full-width bolt that crosses the hero
// like an ECG trace.
package heartbeat

import (
	"github.com/iburimskiy/electric-network/internal/config"
	"github.com/iburimskiy/electric-network/internal/render"
	"github.com/iburimskiy/electric-network/internal/rng"
)

// Bolt is the current heartbeat trace. Its path is fixed at spawn; Life only
// ever goes down.
type Bolt struct {
	Points []render.Point
	Life   float64
	Decay  float64
}

// Visible reports whether the bolt still draws.
func (b *Bolt) Visible() bool { return b != nil && b.Life > 0 }

// Spawner counts frames and replaces the bolt once the counter passes a
// threshold redrawn from [BoltMinInterval, BoltMinInterval+BoltIntervalRange)
// at every spawn.
type Spawner struct {
	rnd       rng.Source
	palette   render.Palette
	timer     int
	threshold float64
	bolt      *Bolt
	spawns    int
}

func NewSpawner(rnd rng.Source, palette render.Palette) *Spawner {
	s := &Spawner{rnd: rnd, palette: palette}
	s.threshold = s.nextThreshold()
	return s
}

func (s *Spawner) nextThreshold() float64 {
	return rng.Range(s.rnd, config.BoltMinInterval, config.BoltIntervalRange)
}

// Tick advances the frame counter and spawns a bolt across a w x h viewport
// when it passes the threshold. It reports whether a spawn happened.
func (s *Spawner) Tick(w, h float64) bool {
	s.timer++
	if float64(s.timer) <= s.threshold {
		return false
	}
	s.Spawn(w, h)
	return true
}

// Spawn replaces the current bolt unconditionally, even if it is still fading.
func (s *Spawner) Spawn(w, h float64) {
	s.bolt = &Bolt{
		Points: Path(s.rnd, w, h),
		Life:   1,
		Decay:  config.BoltDecay,
	}
	s.timer = 0
	s.threshold = s.nextThreshold()
	s.spawns++
}

// Path builds an ECG-like trace from x=0 to at least x=w along a band
// between 25% and 75% of h, with occasional large spikes.
func Path(rnd rng.Source, w, h float64) []render.Point {
	y := h * rng.Range(rnd, config.BoltBandMin, config.BoltBandRange)
	points := []render.Point{{X: 0, Y: y}}
	for cx := 0.0; cx < w; {
		cx += rng.Range(rnd, config.BoltStepMin, config.BoltStepRange)
		var jy float64
		if rnd.Float64() < config.SpikeChance {
			jy = rng.Sign(rnd) * rng.Range(rnd, config.SpikeMin, config.SpikeRange)
		} else {
			jy = rng.Centered(rnd, config.BoltJitter)
		}
		points = append(points, render.Point{X: cx, Y: y + jy})
	}
	return points
}

// Draw strokes the bolt if it is still alive, then decays it. Decay is not
// clamped; a dead bolt stays in place until the next spawn. It reports
// whether anything was drawn.
func (s *Spawner) Draw(surface render.Surface) bool {
	b := s.bolt
	if b == nil {
		return false
	}
	drawn := false
	if b.Visible() {
		surface.StrokePath(b.Points, render.Stroke{
			Color:  s.palette.BoltGlow,
			Width:  config.BoltGlowWidth,
			Alpha:  b.Life * config.BoltGlowAlpha,
			Shadow: s.palette.BoltGlowShadow,
			Blur:   config.BoltGlowBlur,
			Join:   render.JoinMiter,
		})
		surface.StrokePath(b.Points, render.Stroke{
			Color:  s.palette.BoltCore,
			Width:  config.BoltCoreWidth,
			Alpha:  b.Life * config.BoltCoreAlpha,
			Shadow: s.palette.BoltCoreShadow,
			Blur:   config.BoltCoreBlur,
			Join:   render.JoinBevel,
		})
		drawn = true
	}
	b.Life -= b.Decay
	return drawn
}

// Bolt returns the current bolt, nil before the first spawn.
func (s *Spawner) Bolt() *Bolt { return s.bolt }

// Spawns counts bolts spawned so far.
func (s *Spawner) Spawns() int { return s.spawns }

// Threshold is the frame count the timer must exceed for the next spawn.
func (s *Spawner) Threshold() float64 { return s.threshold }
