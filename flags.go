package main

import (
	"flag"

	"github.com/iburimskiy/electric-network/internal/config"
)

// Command-line flags for the desktop host.
var (
	// widthFlag and heightFlag set the initial logical window size.
	widthFlag  = flag.Int("width", config.WindowWidth, "initial window width in logical pixels")
	heightFlag = flag.Int("height", config.WindowHeight, "initial window height in logical pixels")

	// tuningFlag points at an optional YAML file overriding node count, depth, FOV and palette.
	tuningFlag = flag.String("tuning", "", "path to a YAML tuning file")

	// seedFlag fixes the random source; 0 seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed (0 = time based)")

	logLevelFlag = flag.String("log-level", "info", "log level: debug, info, error, none")

	// debugFlag enables the FPS and engine stats overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and engine stats overlay")

	// viewportFlag overrides the monitor width used for the small-device check.
	viewportFlag = flag.Float64("viewport-width", 0, "viewport width for the small-device check (0 = monitor width)")
)
