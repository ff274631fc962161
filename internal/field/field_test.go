package field

import (
	"math"
	"testing"

	"github.com/iburimskiy/electric-network/internal/rng"
)

func TestNewSeedsWithinRanges(t *testing.T) {
	const w, h = 1000.0, 600.0
	p := DefaultParams()
	f := New(p, rng.New(7), w, h)
	if f.Len() != 55 {
		t.Fatalf("pool size=%d want 55", f.Len())
	}
	for i, n := range f.Nodes() {
		switch {
		case math.Abs(n.X) > 0.7*w || math.Abs(n.Y) > 0.7*h:
			t.Fatalf("node %d outside world extent: (%f,%f)", i, n.X, n.Y)
		case n.Z < 0 || n.Z >= p.Depth:
			t.Fatalf("node %d depth %f outside [0,%f)", i, n.Z, p.Depth)
		case math.Abs(n.VX) > 0.15 || math.Abs(n.VY) > 0.15:
			t.Fatalf("node %d drift too fast: (%f,%f)", i, n.VX, n.VY)
		case n.VZ > -0.15 || n.VZ <= -0.4:
			t.Fatalf("node %d vz=%f outside (-0.4,-0.15]", i, n.VZ)
		case n.Size < 1 || n.Size >= 3:
			t.Fatalf("node %d size=%f", i, n.Size)
		case n.Pulse < 0 || n.Pulse >= 2*math.Pi:
			t.Fatalf("node %d pulse=%f", i, n.Pulse)
		}
	}
}

func TestUpdateKeepsDepthInvariant(t *testing.T) {
	const w, h = 800.0, 400.0
	p := DefaultParams()
	f := New(p, rng.New(3), w, h)
	for step := 0; step < 6000; step++ {
		before := make([]Node, f.Len())
		copy(before, f.Nodes())
		f.Update(w, h)
		for i, n := range f.Nodes() {
			if n.Z < p.RecycleZ || n.Z > p.Depth {
				t.Fatalf("step %d node %d z=%f outside [%f,%f]", step, i, n.Z, p.RecycleZ, p.Depth)
			}
			if before[i].Z+before[i].VZ < p.RecycleZ {
				if n.Z != p.Depth {
					t.Fatalf("recycled node %d z=%f want %f", i, n.Z, p.Depth)
				}
				if math.Abs(n.X) > 0.7*w || math.Abs(n.Y) > 0.7*h {
					t.Fatalf("recycled node %d at (%f,%f) outside extent", i, n.X, n.Y)
				}
			}
		}
	}
}

func TestUpdateRecyclesIntoCurrentExtent(t *testing.T) {
	p := DefaultParams()
	p.Count = 1
	f := New(p, rng.Constant(0.5), 100, 100)
	n := &f.Nodes()[0]
	n.Z = p.RecycleZ + 0.1
	n.VZ = -0.2
	n.X, n.Y = 999, 999

	src := &rng.Cycle{Values: []float64{1, 0}}
	f.rnd = src
	f.Update(2000, 1000)
	if n.Z != p.Depth {
		t.Fatalf("z=%f want %f", n.Z, p.Depth)
	}
	// (1-0.5)*2000*1.4 and (0-0.5)*1000*1.4
	if math.Abs(n.X-1400) > 1e-9 || math.Abs(n.Y+700) > 1e-9 {
		t.Fatalf("recycled at (%f,%f) want (1400,-700)", n.X, n.Y)
	}
}

func TestUpdateAdvancesKinematics(t *testing.T) {
	p := DefaultParams()
	p.Count = 1
	f := New(p, rng.Constant(0.5), 100, 100)
	n := f.Nodes()[0]
	f.Update(100, 100)
	got := f.Nodes()[0]
	if got.X != n.X+n.VX || got.Y != n.Y+n.VY || got.Z != n.Z+n.VZ {
		t.Fatalf("position not advanced by velocity: %+v -> %+v", n, got)
	}
	if math.Abs(got.Pulse-n.Pulse-0.02) > 1e-12 {
		t.Fatalf("pulse step=%f want 0.02", got.Pulse-n.Pulse)
	}
}
