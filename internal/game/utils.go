package game

import (
	"fmt"
	"math"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// transformScale is the uniform scale an affine matrix applies to lengths.
func transformScale(a, b, c, d float64) float64 {
	return math.Sqrt(math.Abs(a*d - b*c))
}
