package game

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source a Session draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>8|3))
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// randRange returns a uniform integer in [lo, hi].
func randRange(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
