package viewport

import (
	"math"
	"testing"

	"github.com/iburimskiy/electric-network/internal/render"
)

type box struct{ w, h float64 }

func (b *box) LayoutSize() (float64, float64) { return b.w, b.h }

func TestResizeDoublesBackingStore(t *testing.T) {
	b := &box{800, 400}
	var s render.Recorder
	m := New(b, &s)
	if s.BackingW != 1600 || s.BackingH != 800 {
		t.Fatalf("backing=%dx%d want 1600x800", s.BackingW, s.BackingH)
	}

	b.w, b.h = 1200, 600
	m.Resize()
	if s.BackingW != 2400 || s.BackingH != 1200 {
		t.Fatalf("backing=%dx%d want 2400x1200", s.BackingW, s.BackingH)
	}
	if cx, cy := m.Center(); cx != 600 || cy != 300 {
		t.Fatalf("center=(%f,%f) want (600,300)", cx, cy)
	}
	want := [6]float64{2, 0, 0, 2, 0, 0}
	if s.Transform != want {
		t.Fatalf("transform=%v want %v", s.Transform, want)
	}
	// transform reset follows the backing resize
	last := s.Ops[len(s.Ops)-1]
	if last.Kind != render.OpTransform || s.Ops[len(s.Ops)-2].Kind != render.OpBacking {
		t.Fatalf("resize order: %v then %v", s.Ops[len(s.Ops)-2].Kind, last.Kind)
	}
}

func TestResizeClampsDegenerateSizes(t *testing.T) {
	cases := []struct {
		name string
		w, h float64
	}{
		{"zero", 0, 0},
		{"negative", -10, -3},
		{"nan", math.NaN(), math.NaN()},
		{"inf", math.Inf(1), math.Inf(-1)},
	}
	for _, tc := range cases {
		var s render.Recorder
		m := New(&box{tc.w, tc.h}, &s)
		w, h := m.Size()
		if w != 1 || h != 1 {
			t.Fatalf("%s: size=%fx%f want 1x1", tc.name, w, h)
		}
		if s.BackingW != 2 || s.BackingH != 2 {
			t.Fatalf("%s: backing=%dx%d want 2x2", tc.name, s.BackingW, s.BackingH)
		}
	}
}

func TestResizeRoundsFractionalLayout(t *testing.T) {
	var s render.Recorder
	m := New(Size{W: 640.4, H: 359.6}, &s)
	if w, h := m.Size(); w != 640 || h != 360 {
		t.Fatalf("size=%fx%f want 640x360", w, h)
	}
	if bw, bh := m.BackingSize(); bw != 1280 || bh != 720 {
		t.Fatalf("backing=%dx%d", bw, bh)
	}
}

func TestCapable(t *testing.T) {
	cases := []struct {
		width float64
		want  bool
	}{
		{500, false},
		{768, false},
		{769, true},
		{1920, true},
	}
	for _, tc := range cases {
		if got := Capable(tc.width, 768); got != tc.want {
			t.Fatalf("Capable(%v)=%v want %v", tc.width, got, tc.want)
		}
	}
}
