package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// Each owner constructs its own RNG; there is no shared process-wide source.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p. Values at or below zero never
// succeed and values at or above one always do.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}
