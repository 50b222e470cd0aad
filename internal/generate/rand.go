// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"math/rand"
	"time"
)

// Rand is the randomness source behind caption and hashtag sampling.
// It is injected rather than drawn from a process-wide generator so
// that tests can seed it for reproducible output.
type Rand interface {
	// Intn returns a uniform value in [0, n). Panics if n <= 0.
	Intn(n int) int
}

// NewRand returns a seeded source. The same seed and the same call
// sequence produce the same choices.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTimeRand returns a clock-seeded source for production use.
func NewTimeRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// sample picks n distinct entries from pool, uniformly without
// replacement, preserving no particular order. When n exceeds the pool
// size the whole pool is returned in sampled order.
func sample(rng Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		picked = append(picked, pool[idx[i]])
	}
	return picked
}
