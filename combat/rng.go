package combat

import (
	"math/rand"
	"time"
)

// Rand is the randomness source for AI triggers and jitter.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source. Seed 0 seeds from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// chance runs one Bernoulli trial.
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}

// jitter returns a uniform offset in [-amount, amount).
func jitter(rng Rand, amount float64) float64 {
	return (rng.Float64()*2 - 1) * amount
}
