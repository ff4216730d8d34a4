package core

import "math/rand/v2"

// Rand is the randomness a simulation needs for tie-breaking. Tests swap in
// scripted implementations to force specific outcomes.
type Rand interface {
	Bool() bool
	IntN(n int) int
	Seed(seed int64)
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed reinitialises the generator.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Sign returns +1 or -1 with equal probability.
func Sign(r Rand) int {
	if r.Bool() {
		return 1
	}
	return -1
}
