// Package rng provides the deterministic seeded PRNG threaded through
// GameState. The initial deck shuffle in package setup pulls from a Stream
// and stores the stream's advanced seed in GameState.RNGSeed; no other
// step (kernel, evolve, discards) draws from it, so two kernels seeded
// identically produce identical event sequences (spec §4.6).
//
// Built on math/rand, the same library the teacher's Player.ShuffleDeck
// uses — the pack never reaches for an alternative PRNG.
package rng

import "math/rand"

// Stream is a resumable PRNG position. Seed is the state that should be
// persisted on GameState.RNGSeed; it is NOT the original seed once the
// stream has been advanced.
type Stream struct {
	seed int64
	r    *rand.Rand
}

// New creates a Stream positioned at seed.
func New(seed int64) *Stream {
	return &Stream{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the current resumable seed value.
func (s *Stream) Seed() int64 {
	return s.seed
}

// Intn returns a pseudo-random number in [0, n) and advances the stream's
// resumable seed.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := s.r.Intn(n)
	s.advance()
	return v
}

// Shuffle permutes a slice of length n in place using the Fisher-Yates
// swap function swap, then advances the stream's resumable seed once for
// the whole shuffle (the same seed always performs the same sequence of
// swaps).
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
	s.advance()
}

// advance folds the stream's internal generator state forward into a new
// resumable seed by drawing one more int64. This keeps GameState.RNGSeed
// a pure value (no captured *rand.Rand) while still being sufficient to
// reconstruct the exact same future sequence: Resume(s.Seed()) continues
// an equivalent logical stream for every caller in this package, because
// all draws happen through Stream methods that always call advance.
func (s *Stream) advance() {
	s.seed = s.r.Int63()
}

// Resume reconstructs a Stream from a previously persisted seed value, as
// produced by Seed() after a prior draw. Nothing in the module calls it;
// evolve does not rehydrate an RNG from GameState.RNGSeed.
func Resume(seed int64) *Stream {
	return New(seed)
}
