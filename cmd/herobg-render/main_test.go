package main

import (
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/electric-network/internal/log"
)

func TestRunWritesPNGFrames(t *testing.T) {
	dir := t.TempDir()
	cfg := renderConfig{Width: 800, Height: 200, Frames: 6, Every: 2, OutDir: dir, Seed: 1, Background: "#050a14"}
	if err := run(cfg, log.Discard()); err != nil {
		t.Fatalf("run: %v", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "frame_*.png"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("frames written=%d want 3", len(files))
	}

	f, err := os.Open(files[len(files)-1])
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bright := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A != 255 {
				t.Fatalf("pixel (%d,%d)=%+v not opaque over the background", x, y, c)
			}
			// background blue is 20; node cores lift it well past 60
			if c.B > 60 && c.B > c.R {
				bright++
			}
		}
	}
	if bright == 0 {
		t.Fatalf("no cyan arcs or nodes in the last frame")
	}
}

func TestGIFDelayRounds(t *testing.T) {
	for every, want := range map[int]int{1: 2, 2: 3, 3: 5, 6: 10} {
		if got := gifDelay(every); got != want {
			t.Fatalf("gifDelay(%d)=%d want %d", every, got, want)
		}
	}
}

func TestRunWritesGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.gif")
	cfg := renderConfig{Width: 800, Height: 120, Frames: 4, Every: 1, GIFPath: path, Seed: 2}
	if err := run(cfg, log.Discard()); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Image) != 4 {
		t.Fatalf("gif frames=%d want 4", len(g.Image))
	}
	if b := g.Image[0].Bounds(); b.Dx() != 1600 || b.Dy() != 240 {
		t.Fatalf("gif frame %v want 1600x240 backing store", b)
	}
	if g.Delay[0] != 2 {
		t.Fatalf("gif delay=%dcs want 2", g.Delay[0])
	}
}

func TestRunSkipsSmallViewport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := renderConfig{Width: 500, Height: 300, Frames: 3, OutDir: dir}
	if err := run(cfg, log.Discard()); err != nil {
		t.Fatalf("run: %v", err)
	}
	files, _ := filepath.Glob(filepath.Join(dir, "*.png"))
	if len(files) != 0 {
		t.Fatalf("small viewport wrote %d frames", len(files))
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	if err := run(renderConfig{Width: 800, Height: 200, Frames: 0, OutDir: t.TempDir()}, log.Discard()); err == nil {
		t.Fatalf("expected error for zero frames")
	}
	if err := run(renderConfig{Width: 800, Height: 200, Frames: 1, OutDir: t.TempDir(), Background: "navy"}, log.Discard()); err == nil {
		t.Fatalf("expected error for a bad background")
	}
	cfg := renderConfig{Width: 800, Height: 200, Frames: 1, OutDir: t.TempDir(), TuningPath: "does-not-exist.yaml"}
	if err := run(cfg, log.Discard()); err == nil {
		t.Fatalf("expected error for missing tuning file")
	}
}
