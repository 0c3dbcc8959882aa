package quiz

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source used for distractor sampling, option shuffling
// and coin flips. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed source. A zero seed picks a time-based seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample returns up to k distinct elements of items chosen uniformly at
// random. items is not modified.
func Sample(r Rand, items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	pool := make([]string, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := i + r.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Choice returns a random element of items. items must not be empty.
func Choice(r Rand, items []string) string {
	return items[r.IntN(len(items))]
}

// ShuffleStrings shuffles s in place.
func ShuffleStrings(r Rand, s []string) {
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
