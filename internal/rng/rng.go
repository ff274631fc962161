// Package rng provides the random source injected into the simulation, the
// arc renderer and the bolt spawner.
package rng

import (
	"math/rand"
	"time"
)

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// New returns a seeded source. Seed 0 picks a time-based seed.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Range returns a uniform value in [lo, lo+span).
func Range(src Source, lo, span float64) float64 {
	return lo + src.Float64()*span
}

// Centered returns a uniform value in [-span/2, span/2).
func Centered(src Source, span float64) float64 {
	return (src.Float64() - 0.5) * span
}

// Sign returns -1 or 1 with equal probability.
func Sign(src Source) float64 {
	if src.Float64() > 0.5 {
		return -1
	}
	return 1
}

// Constant always returns the same value.
type Constant float64

func (c Constant) Float64() float64 { return float64(c) }

// Cycle replays Values in order, wrapping around.
type Cycle struct {
	Values []float64
	next   int
}

func (c *Cycle) Float64() float64 {
	if len(c.Values) == 0 {
		return 0
	}
	v := c.Values[c.next%len(c.Values)]
	c.next++
	return v
}
