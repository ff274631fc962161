// Package game hosts the hero animation in an ebiten window. ebiten's Layout
// is the resize notification and Draw is the per-refresh frame callback.
package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/errors"

	"github.com/iburimskiy/electric-network/internal/config"
	"github.com/iburimskiy/electric-network/internal/engine"
	"github.com/iburimskiy/electric-network/internal/log"
	"github.com/iburimskiy/electric-network/internal/rng"
)

// window is the container: its layout size is whatever ebiten last reported.
type window struct {
	w, h float64
}

func (c *window) LayoutSize() (float64, float64) { return c.w, c.h }

type Options struct {
	Width, Height int
	// ViewportWidth is the capability signal, usually the monitor width.
	ViewportWidth float64
	Tuning        config.Tuning
	Seed          int64
	Debug         bool
	Logger        *log.Logger
}

type Game struct {
	engine  *engine.Engine
	surface *Surface
	frames  *engine.FrameQueue
	window  *window
	log     *log.Logger

	start time.Time
	debug bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	snapshotPath string
	lastErr      error
}

// NewGame builds the engine behind the window. A disabled engine (small
// viewport) is not an error; check Enabled.
func NewGame(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	g := &Game{
		surface: NewSurface(),
		frames:  &engine.FrameQueue{},
		window:  &window{w: float64(opts.Width), h: float64(opts.Height)},
		log:     opts.Logger.Named("game"),
		debug:   opts.Debug,
		prevKey: map[ebiten.Key]bool{},
	}
	e, err := engine.New(engine.Options{
		Surface:       g.surface,
		Container:     g.window,
		Scheduler:     g.frames,
		ViewportWidth: opts.ViewportWidth,
		Tuning:        opts.Tuning,
		Rand:          rng.New(opts.Seed),
		Logger:        opts.Logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "start hero engine")
	}
	g.engine = e
	return g, nil
}

func (g *Game) Enabled() bool { return !g.engine.Disabled() }

// Start begins the frame loop; ebiten.RunGame presents it.
func (g *Game) Start() bool {
	g.start = time.Now()
	return g.engine.Start()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.engine.Stop()
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	if justPressed(ebiten.KeyS) {
		path, err := chooseSnapshotPath()
		if err != nil {
			g.fail(err)
		} else if path != "" {
			g.snapshotPath = path
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.frames.Fire(g.timestamp())

	if g.snapshotPath != "" {
		if err := writeSnapshot(screen, g.snapshotPath); err != nil {
			g.fail(err)
		} else {
			g.log.Infof("snapshot saved to %s", g.snapshotPath)
		}
		g.snapshotPath = ""
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

// Layout forwards size changes to the engine and reports the supersampled
// backing store as the screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.window.w || h != g.window.h {
		g.window.w, g.window.h = w, h
		g.engine.Resize()
	}
	bw, bh := g.surface.BackingSize()
	if bw == 0 || bh == 0 {
		return outsideWidth * config.SupersampleFactor, outsideHeight * config.SupersampleFactor
	}
	return bw, bh
}

func (g *Game) timestamp() float64 {
	return float64(time.Since(g.start).Microseconds()) / 1000
}

func (g *Game) fail(err error) {
	g.lastErr = err
	g.log.Errorf("%v", err)
}

func (g *Game) status() string {
	st := g.engine.Stats()
	status := fmt.Sprintf("FPS %.1f  TPS %.1f  up %s\nframes %d  arcs %d  nodes %d  bolts %d (life %.2f)",
		ebiten.ActualFPS(), ebiten.ActualTPS(), formatDuration(time.Since(g.start)),
		st.Frames, st.Arcs, st.Nodes, st.BoltSpawns, clamp01(st.BoltLife))
	if g.lastErr != nil {
		status += "\nError: " + g.lastErr.Error()
	}
	return status
}
