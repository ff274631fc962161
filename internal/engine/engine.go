// Package engine ties the viewport, the node field, the connection renderer
// and the heartbeat spawner into one animation that a Scheduler drives frame
// by frame.
package engine

import (
	"github.com/pkg/errors"

	"github.com/iburimskiy/electric-network/internal/config"
	"github.com/iburimskiy/electric-network/internal/field"
	"github.com/iburimskiy/electric-network/internal/heartbeat"
	"github.com/iburimskiy/electric-network/internal/log"
	"github.com/iburimskiy/electric-network/internal/network"
	"github.com/iburimskiy/electric-network/internal/render"
	"github.com/iburimskiy/electric-network/internal/rng"
	"github.com/iburimskiy/electric-network/internal/viewport"
)

var (
	ErrMissingSurface   = errors.New("engine: no drawing surface")
	ErrMissingContainer = errors.New("engine: no container")
	ErrMissingScheduler = errors.New("engine: no frame scheduler")
)

type Options struct {
	Surface   render.Surface
	Container viewport.Container
	Scheduler Scheduler

	// ViewportWidth is the capability signal, read once here.
	ViewportWidth float64

	// Tuning defaults to config.DefaultTuning when NodeCount is zero.
	Tuning config.Tuning
	// Rand defaults to an unseeded source.
	Rand   rng.Source
	Logger *log.Logger
}

// Stats describes the last frame and the engine's lifetime counters.
type Stats struct {
	Frames     int
	Arcs       int
	Nodes      int
	BoltSpawns int
	BoltLife   float64
	LastTS     float64
}

type Engine struct {
	surface render.Surface
	sched   Scheduler
	log     *log.Logger
	tuning  config.Tuning

	disabled bool
	running  bool
	handle   int

	vp        *viewport.Manager
	field     *field.Field
	net       *network.Renderer
	beat      *heartbeat.Spawner
	projected []field.Projected

	stats Stats
}

// New builds an engine. On a small viewport the surface is hidden and the
// returned engine never starts.
func New(opts Options) (*Engine, error) {
	switch {
	case opts.Surface == nil:
		return nil, ErrMissingSurface
	case opts.Container == nil:
		return nil, ErrMissingContainer
	case opts.Scheduler == nil:
		return nil, ErrMissingScheduler
	}
	if opts.Tuning.NodeCount == 0 {
		opts.Tuning = config.DefaultTuning()
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, errors.Wrap(err, "engine tuning")
	}
	palette, err := opts.Tuning.Palette.Resolve()
	if err != nil {
		return nil, errors.Wrap(err, "engine palette")
	}
	if opts.Rand == nil {
		opts.Rand = rng.New(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}

	e := &Engine{
		surface: opts.Surface,
		sched:   opts.Scheduler,
		log:     opts.Logger.Named("engine"),
		tuning:  opts.Tuning,
	}

	if !viewport.Capable(opts.ViewportWidth, opts.Tuning.MobileMaxWidth) {
		e.disabled = true
		e.surface.SetHidden(true)
		e.log.Debugf("viewport width %.0f <= %.0f, animation disabled", opts.ViewportWidth, opts.Tuning.MobileMaxWidth)
		return e, nil
	}

	e.vp = viewport.New(opts.Container, opts.Surface)
	w, h := e.vp.Size()

	params := field.DefaultParams()
	params.Count = opts.Tuning.NodeCount
	params.Depth = opts.Tuning.Depth
	e.field = field.New(params, opts.Rand, w, h)
	e.net = network.NewRenderer(opts.Rand, palette, opts.Tuning.ConnectionDist)
	e.beat = heartbeat.NewSpawner(opts.Rand, palette)
	e.projected = make([]field.Projected, 0, e.field.Params().Count)

	bw, bh := e.vp.BackingSize()
	e.log.Debugf("engine ready: %d nodes over %.0fx%.0f, backing %dx%d (x%g)", e.field.Len(), w, h, bw, bh, e.vp.Factor())
	return e, nil
}

// Start requests the first frame. It returns false if the capability gate
// disabled the engine.
func (e *Engine) Start() bool {
	if e.disabled {
		return false
	}
	if e.running {
		return true
	}
	e.running = true
	e.handle = e.sched.RequestFrame(e.tick)
	return true
}

// Stop cancels the pending frame. The engine can be started again.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.sched.CancelFrame(e.handle)
}

func (e *Engine) Running() bool { return e.running }

func (e *Engine) Disabled() bool { return e.disabled }

func (e *Engine) tick(ts float64) {
	if !e.running {
		return
	}
	e.Frame(ts)
	if e.running {
		e.handle = e.sched.RequestFrame(e.tick)
	}
}

// Resize handles a container size change. The next frame uses the new size.
func (e *Engine) Resize() {
	if e.disabled {
		return
	}
	e.vp.Resize()
	w, h := e.vp.Size()
	e.log.Debugf("resized to %.0fx%.0f", w, h)
}

// Frame renders one complete frame: clear, simulate, project and sort, arcs,
// nodes, heartbeat.
func (e *Engine) Frame(ts float64) {
	if e.disabled {
		return
	}
	w, h := e.vp.Size()
	e.surface.ClearRect(0, 0, w, h)

	e.field.Update(w, h)

	cx, cy := e.vp.Center()
	e.projected = e.field.ProjectAll(e.projected, cx, cy, e.tuning.FOV)

	e.stats.Arcs = e.net.DrawArcs(e.surface, e.projected)
	e.stats.Nodes = e.net.DrawNodes(e.surface, e.projected, e.field.Nodes())

	if e.beat.Tick(w, h) {
		e.log.Debugf("heartbeat bolt #%d at frame %d", e.beat.Spawns(), e.stats.Frames)
	}
	e.beat.Draw(e.surface)

	e.stats.Frames++
	e.stats.BoltSpawns = e.beat.Spawns()
	if b := e.beat.Bolt(); b != nil {
		e.stats.BoltLife = b.Life
	}
	e.stats.LastTS = ts
}

func (e *Engine) Stats() Stats { return e.stats }

// Viewport is nil when the engine is disabled.
func (e *Engine) Viewport() *viewport.Manager { return e.vp }

func (e *Engine) Field() *field.Field { return e.field }

func (e *Engine) Heartbeat() *heartbeat.Spawner { return e.beat }
