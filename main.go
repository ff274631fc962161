package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/electric-network/internal/config"
	"github.com/iburimskiy/electric-network/internal/engine"
	"github.com/iburimskiy/electric-network/internal/game"
	"github.com/iburimskiy/electric-network/internal/log"
)

func main() {
	flag.Parse()
	logger := log.New(os.Stderr, log.LevelFromString(*logLevelFlag))

	tuning, err := config.LoadTuning(*tuningFlag)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	viewportWidth := *viewportFlag
	if viewportWidth <= 0 {
		w := *widthFlag
		if m := ebiten.Monitor(); m != nil {
			if mw, _ := m.Size(); mw > 0 {
				w = mw
			}
		}
		viewportWidth = float64(w)
	}

	g, err := game.NewGame(game.Options{
		Width:         *widthFlag,
		Height:        *heightFlag,
		ViewportWidth: viewportWidth,
		Tuning:        tuning,
		Seed:          *seedFlag,
		Debug:         *debugFlag,
		Logger:        logger,
	})
	if err != nil {
		// a missing surface or container is not worth reporting
		if errors.Is(err, engine.ErrMissingSurface) || errors.Is(err, engine.ErrMissingContainer) {
			logger.Debugf("%v", err)
			return
		}
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	if !g.Enabled() {
		logger.Infof("viewport %.0fpx is at or below %.0fpx, hero animation disabled", viewportWidth, tuning.MobileMaxWidth)
		return
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Electric Network - S: snapshot, D: stats, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g.Start()
	logger.Infof("hero animation running at %dx%d", *widthFlag, *heightFlag)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Errorf("ebiten: %v", err)
		os.Exit(1)
	}
}
