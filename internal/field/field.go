// Package field simulates the pool of drifting 3D nodes and projects them
// onto the screen.
package field

import (
	"math"

	"github.com/iburimskiy/electric-network/internal/config"
	"github.com/iburimskiy/electric-network/internal/rng"
)

type Node struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	Size       float64
	Pulse      float64
}

type Params struct {
	Count     int
	Depth     float64
	RecycleZ  float64
	Spread    float64
	PulseStep float64
}

func DefaultParams() Params {
	return Params{
		Count:     config.NodeCount,
		Depth:     config.Depth,
		RecycleZ:  config.RecycleZ,
		Spread:    config.WorldSpread,
		PulseStep: config.PulseStep,
	}
}

// Field is a fixed-size node pool. Nodes are recycled, never added or
// removed.
type Field struct {
	params Params
	rnd    rng.Source
	nodes  []Node
}

// New seeds Count nodes over a viewport of w x h logical units.
func New(p Params, rnd rng.Source, w, h float64) *Field {
	f := &Field{params: p, rnd: rnd, nodes: make([]Node, p.Count)}
	for i := range f.nodes {
		f.nodes[i] = f.spawn(w, h)
	}
	return f
}

func (f *Field) spawn(w, h float64) Node {
	return Node{
		X:     rng.Centered(f.rnd, w*f.params.Spread),
		Y:     rng.Centered(f.rnd, h*f.params.Spread),
		Z:     f.rnd.Float64() * f.params.Depth,
		VX:    rng.Centered(f.rnd, config.MaxDrift),
		VY:    rng.Centered(f.rnd, config.MaxDrift),
		VZ:    -config.MinApproach - f.rnd.Float64()*config.ApproachRange,
		Size:  rng.Range(f.rnd, config.MinNodeSize, config.NodeSizeRange),
		Pulse: f.rnd.Float64() * 2 * math.Pi,
	}
}

// Update advances every node by one frame. A node that passes the recycle
// plane goes back to the far plane at a fresh x/y inside the current
// viewport's world extent.
func (f *Field) Update(w, h float64) {
	for i := range f.nodes {
		n := &f.nodes[i]
		n.X += n.VX
		n.Y += n.VY
		n.Z += n.VZ
		n.Pulse += f.params.PulseStep

		if n.Z < f.params.RecycleZ {
			n.Z = f.params.Depth
			n.X = rng.Centered(f.rnd, w*f.params.Spread)
			n.Y = rng.Centered(f.rnd, h*f.params.Spread)
		}
	}
}

// Nodes exposes the pool. Callers must not resize it.
func (f *Field) Nodes() []Node { return f.nodes }

func (f *Field) Len() int { return len(f.nodes) }

func (f *Field) Params() Params { return f.params }
