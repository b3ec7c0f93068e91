// Package binpack - RNG utilities for the genetic solver.
//
// This file centralizes random generation so that reproducibility is a policy,
// not an accident:
//
// Goals:
//   - Determinism: same positive seed ⇒ identical runs across platforms.
//   - Encapsulation: a single RNG factory; no ambient global generator.
//   - Explicit entropy: seed==0 is the one documented opt-in to clock-derived
//     randomness; everything else is reproducible by construction.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each solver call owns its RNG and
//     never shares it; create separate seeds for concurrent runs.
package binpack

import (
	"math/rand"
	"time"
)

// rngFromSeed returns the solver's random source.
// Policy: seed != 0 ⇒ reproducible stream from that exact seed;
// seed == 0 ⇒ clock-derived, explicitly non-reproducible.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = mixSeed(time.Now().UnixNano())
	}

	return rand.New(rand.NewSource(s))
}

// mixSeed applies a SplitMix64-style avalanche to a raw clock value so that
// nearby nanosecond readings still produce well-distributed seeds.
// Constants are the canonical SplitMix64 multipliers/finalizer (Vigna 2014).
//
// Complexity: O(1).
func mixSeed(raw int64) int64 {
	var x uint64
	x = uint64(raw) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// sampleDistinct writes k distinct values from 0..n-1 into out using a partial
// Fisher–Yates pass over scratch (a reusable permutation buffer of length n).
// The buffer may arrive in any order from previous calls; a partial shuffle of
// an arbitrary permutation still samples k-subsets uniformly.
//
// Contracts: len(scratch) == n, 0 < k ≤ n, len(out) ≥ k.
//
// Complexity: O(k) time, O(1) extra space.
func sampleDistinct(scratch []int, k int, out []int, rng *rand.Rand) {
	var (
		n = len(scratch)
		i int
		j int
	)
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
		out[i] = scratch[i]
	}
}
