package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestGIFRecorder(t *testing.T) {
	rec := NewGIFRecorder(2)
	if err := rec.Encode(&bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for empty gif")
	}
	rec.Add(solid(16, 16, color.RGBA{A: 255}))
	rec.Add(solid(16, 16, color.RGBA{R: 255, G: 255, B: 255, A: 255}))
	if rec.Len() != 2 {
		t.Fatalf("len=%d want 2", rec.Len())
	}

	var buf bytes.Buffer
	if err := rec.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(g.Image) != 2 || g.Delay[0] != 2 || g.LoopCount != 0 {
		t.Fatalf("frames=%d delay=%v loop=%d", len(g.Image), g.Delay, g.LoopCount)
	}
}

func TestGIFRecorderMinimumDelay(t *testing.T) {
	if rec := NewGIFRecorder(0); rec.delay != 1 {
		t.Fatalf("delay=%d want 1", rec.delay)
	}
}

func TestWritePNGFile(t *testing.T) {
	img := solid(8, 8, color.RGBA{R: 0, G: 180, B: 216, A: 255})
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNGFile(path, img); err != nil {
		t.Fatalf("WritePNGFile: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, g, b, _ := got.At(3, 3).RGBA(); r>>8 != 0 || g>>8 != 180 || b>>8 != 216 {
		t.Fatalf("pixel=(%d,%d,%d)", r>>8, g>>8, b>>8)
	}
	if err := WritePNGFile(filepath.Join(t.TempDir(), "missing", "x.png"), img); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
