// RNG utilities shared by the stochastic generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical edge sets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Independence: parallel Kronecker chunks each own a derived stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share one across goroutines.
//   - Use chunkRNG to create independent streams for workers.
package builder

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer (Vigna 2014 constants).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// chunkRNG returns the stream owned by chunk k of a run whose parent seed
// was drawn once from the coordinator stream.
func chunkRNG(parent int64, k int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(parent, uint64(k))))
}
