package core

import "math/rand"

// Rand is the randomness capability handed to engines at construction.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a deterministic source seeded with seed.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
