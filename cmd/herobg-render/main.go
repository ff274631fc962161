// Command herobg-render runs the hero animation without a window and writes
// the frames as PNG files or a looping GIF.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/iburimskiy/electric-network/internal/capture"
	"github.com/iburimskiy/electric-network/internal/config"
	"github.com/iburimskiy/electric-network/internal/engine"
	"github.com/iburimskiy/electric-network/internal/log"
	"github.com/iburimskiy/electric-network/internal/render"
	"github.com/iburimskiy/electric-network/internal/rng"
	"github.com/iburimskiy/electric-network/internal/softcanvas"
	"github.com/iburimskiy/electric-network/internal/viewport"
)

type renderConfig struct {
	Width, Height int
	Frames        int
	Every         int
	OutDir        string
	GIFPath       string
	TuningPath    string
	Background    string
	Seed          int64
	LogLevel      string
}

func main() {
	var cfg renderConfig
	flag.IntVar(&cfg.Width, "width", config.WindowWidth, "logical width")
	flag.IntVar(&cfg.Height, "height", config.WindowHeight, "logical height")
	flag.IntVar(&cfg.Frames, "frames", 240, "number of frames to simulate")
	flag.IntVar(&cfg.Every, "every", 1, "keep every n-th frame")
	flag.StringVar(&cfg.OutDir, "out", "", "directory for PNG frames")
	flag.StringVar(&cfg.GIFPath, "gif", "", "path of an animated GIF to write")
	flag.StringVar(&cfg.TuningPath, "tuning", "", "path to a YAML tuning file")
	flag.StringVar(&cfg.Background, "background", "#050a14", "opaque background colour, empty for transparent frames")
	flag.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time based)")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, error, none")
	flag.Parse()

	logger := log.New(os.Stderr, log.LevelFromString(cfg.LogLevel))
	if cfg.OutDir == "" && cfg.GIFPath == "" {
		flag.Usage()
		logger.Errorf("one of -out or -gif is required")
		os.Exit(2)
	}
	if err := run(cfg, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg renderConfig, logger *log.Logger) error {
	if cfg.Frames <= 0 {
		return errors.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if cfg.Every < 1 {
		cfg.Every = 1
	}
	tuning, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		return err
	}
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return errors.Wrap(err, "create output directory")
		}
	}

	surface := softcanvas.New(cfg.Width, cfg.Height)
	if cfg.Background != "" {
		bg, err := render.ParseHex(cfg.Background, 1)
		if err != nil {
			return errors.Wrap(err, "background")
		}
		surface.SetBackground(bg)
	}
	frames := &engine.FrameQueue{}
	e, err := engine.New(engine.Options{
		Surface:       surface,
		Container:     viewport.Size{W: float64(cfg.Width), H: float64(cfg.Height)},
		Scheduler:     frames,
		ViewportWidth: float64(cfg.Width),
		Tuning:        tuning,
		Rand:          rng.New(cfg.Seed),
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	if !e.Start() {
		logger.Infof("width %dpx is at or below %.0fpx, nothing to render", cfg.Width, tuning.MobileMaxWidth)
		return nil
	}
	defer e.Stop()

	var anim *capture.GIFRecorder
	if cfg.GIFPath != "" {
		anim = capture.NewGIFRecorder(gifDelay(cfg.Every))
	}

	frameMS := 1000.0 / config.FrameRate
	written := 0
	for i := 0; i < cfg.Frames; i++ {
		frames.Fire(float64(i) * frameMS)
		if i%cfg.Every != 0 {
			continue
		}
		if cfg.OutDir != "" {
			path := filepath.Join(cfg.OutDir, fmt.Sprintf("frame_%05d.png", i))
			if err := capture.WritePNGFile(path, surface.Image()); err != nil {
				return err
			}
		}
		if anim != nil {
			anim.Add(surface.Image())
		}
		written++
		if logger.Enabled(log.LevelDebug) {
			st := e.Stats()
			logger.Debugf("frame %d/%d: %d arcs, bolt life %.2f", i+1, cfg.Frames, st.Arcs, st.BoltLife)
		}
	}

	if anim != nil {
		if err := writeGIF(cfg.GIFPath, anim); err != nil {
			return err
		}
	}
	st := e.Stats()
	logger.Infof("rendered %d frames (%d kept), %d heartbeat bolts", st.Frames, written, st.BoltSpawns)
	return nil
}

// gifDelay converts a frame stride at FrameRate into a GIF delay. GIF
// delays are whole centiseconds, so 60 Hz cannot be hit exactly; the
// nearest value wins (2cs for every frame, 3cs for every second frame).
func gifDelay(every int) int {
	return int(math.Round(100 * float64(every) / config.FrameRate))
}

func writeGIF(path string, anim *capture.GIFRecorder) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create gif")
	}
	if err := anim.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
