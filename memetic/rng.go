// RNG utilities shared by every randomized step of a solve session.
//
// Goals:
//   - Determinism: same seed ⇒ identical colorings across runs and platforms.
//   - Single ownership: one *rand.Rand per Solver, passed explicitly; nothing
//     here reseeds from the clock.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Batch drivers derive one seed per
//     session with DeriveSeed instead of sharing a generator.
package memetic

import "math/rand"

// defaultRNGSeed is the fixed seed used when Options.Seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed,
// giving batch drivers decorrelated, reproducible per-session streams.
//
// The mix is the SplitMix64 finalizer; small input changes flip about half of
// the output bits.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// randomColoring draws every node's color uniformly from [1..k].
//
// Complexity: O(n).
func randomColoring(n, k int, rng *rand.Rand) Coloring {
	c := make(Coloring, n)
	for i := range c {
		c[i] = 1 + rng.Intn(k)
	}
	return c
}

// pick returns a uniformly random element of xs, which must be non-empty.
// Every element has probability exactly 1/len(xs).
func pick[T any](xs []T, rng *rand.Rand) T {
	return xs[rng.Intn(len(xs))]
}
