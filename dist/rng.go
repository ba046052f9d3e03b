// SPDX-License-Identifier: MIT
// Package: udsp/dist
//
// rng.go - deterministic random streams.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Independent substreams for parallel workers, derived from one parent seed.
//
// Concurrency:
//   - A rand.Source is NOT goroutine-safe. Never share one across goroutines;
//     use DeriveSource to create one stream per worker.

package dist

import "math/rand/v2"

// DefaultSeed is the fixed seed used when callers pass seed == 0.
const DefaultSeed uint64 = 1

// pcgIncrement is the fixed second PCG word; streams differ by seed only.
const pcgIncrement uint64 = 0xda3e39cb94b95bdb

// NewSource returns a deterministic PCG source.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.NewPCG(seed, pcgIncrement)
}

// RandomSeed returns a non-deterministic seed from the runtime generator.
func RandomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// DeriveSource returns the stream-th independent source under parent.
// Equal (parent, stream) pairs always yield identical sequences.
func DeriveSource(parent, stream uint64) rand.Source {
	return NewSource(deriveSeed(parent, stream))
}
