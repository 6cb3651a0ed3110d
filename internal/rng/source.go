// Package rng provides the random source injected into the animation engines.
package rng

import (
	"math/rand"
	"time"
)

// Source is the set of draw primitives the engines use.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// New returns a source seeded with seed. The same seed reproduces the same
// sequence of draws.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewUnseeded returns a source seeded from the wall clock.
func NewUnseeded() Source {
	return New(time.Now().UnixNano())
}

// Between draws uniformly from [min, max).
func Between(src Source, min, max float64) float64 {
	return src.Float64()*(max-min) + min
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
