// Package network derives the per-frame proximity graph between projected
// nodes and draws it as flickering electric arcs, followed by the nodes
// themselves.
package network

import (
	"math"

	"github.com/iburimskiy/electric-network/internal/field"
)

// Alpha is the opacity of a connection: distance fade times the dimmer of
// the two depth scales times ceiling. It is 0 at or beyond maxDist.
func Alpha(dist, sA, sB, maxDist, ceiling float64) float64 {
	if dist >= maxDist {
		return 0
	}
	return (1 - dist/maxDist) * math.Min(sA, sB) * ceiling
}

// EachConnection visits every unordered pair of ps whose screen distance is
// below maxDist and whose alpha exceeds floor. Pairs are visited in slice
// order (i < j), so a far-to-near sorted slice yields far arcs first.
func EachConnection(ps []field.Projected, maxDist, ceiling, floor float64, fn func(a, b field.Projected, dist, alpha float64)) {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			a, b := ps[i], ps[j]
			dist := math.Hypot(a.X-b.X, a.Y-b.Y)
			if dist >= maxDist {
				continue
			}
			alpha := Alpha(dist, a.S, b.S, maxDist, ceiling)
			if alpha <= floor {
				continue
			}
			fn(a, b, dist, alpha)
		}
	}
}
