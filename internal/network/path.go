package network

import (
	"math"

	"github.com/iburimskiy/electric-network/internal/config"
	"github.com/iburimskiy/electric-network/internal/render"
	"github.com/iburimskiy/electric-network/internal/rng"
)

// Segments is the number of pieces an arc of length dist is cut into.
func Segments(dist float64) int {
	n := int(math.Floor(dist / config.ArcSegmentLength))
	if n < config.MinArcSegments {
		return config.MinArcSegments
	}
	return n
}

// Jag is the full width of the random offset applied to interior points.
func Jag(dist float64) float64 {
	return config.ArcJagBase + dist*config.ArcJagPerUnit
}

// ArcPath appends a jagged path from p1 to p2 to dst[:0]: the two endpoints
// plus Segments-1 interior points, each pushed by up to ±Jag/2 in x and y.
func ArcPath(dst []render.Point, p1, p2 render.Point, rnd rng.Source) []render.Point {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	dist := math.Hypot(dx, dy)
	segments := Segments(dist)
	jag := Jag(dist)

	dst = append(dst[:0], p1)
	for i := 1; i < segments; i++ {
		t := float64(i) / float64(segments)
		dst = append(dst, render.Point{
			X: p1.X + dx*t + rng.Centered(rnd, jag),
			Y: p1.Y + dy*t + rng.Centered(rnd, jag),
		})
	}
	return append(dst, p2)
}
