package input

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidRange is returned by Unique when the requested shape cannot be
// satisfied.
var ErrInvalidRange = errors.New("invalid range")

// Unique returns count distinct integers drawn from 1..max in random order.
func Unique(count, max int, rng *rand.Rand) ([]int, error) {
	if count <= 0 || max <= 0 {
		return nil, fmt.Errorf("%w: count and max must be > 0", ErrInvalidRange)
	}
	if count > max {
		return nil, fmt.Errorf("%w: count must be <= max (unique constraint)", ErrInvalidRange)
	}

	pool := make([]int, max)
	for i := range pool {
		pool[i] = i + 1
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:count:count], nil
}

// Random returns size integers in [0, bound). Duplicates are allowed.
func Random(size, bound int, rng *rand.Rand) []int {
	out := make([]int, size)
	if bound <= 0 {
		return out
	}
	for i := range out {
		out[i] = rng.IntN(bound)
	}
	return out
}

// NewRand returns a deterministic generator for seed, or a randomly seeded
// one when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
