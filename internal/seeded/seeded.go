// Package seeded implements the deterministic pseudo-random source that
// drives painting sampling and the daily shuffle. The generator is a
// 32-bit linear-congruential generator with fixed constants; given the
// same seed it produces the same draw sequence on every platform, which
// is what makes "everyone gets the same paintings today" work.
package seeded

import "math/rand/v2"

// Source is a deterministic LCG. Not safe for concurrent use; each
// sampling run owns its own Source.
type Source struct {
	state uint32
}

// New returns a Source seeded with the given value.
func New(seed uint32) *Source {
	return &Source{state: seed}
}

// NewRandom returns a Source seeded from process entropy, for unseeded
// "endless" rounds where reproducibility is not wanted.
func NewRandom() *Source {
	return &Source{state: rand.Uint32()}
}

// Float64 advances the generator and returns a draw in [0, 1].
// The upper bound is reachable only on one of the 2^32 states.
// The update is state = state*1664525 + 1013904223 with unsigned 32-bit
// wraparound; the draw divides by 0xffffffff. Both constants and the
// divisor are part of the cross-implementation contract and must not be
// changed.
func (s *Source) Float64() float64 {
	s.state = s.state*1664525 + 1013904223
	return float64(s.state) / float64(0xffffffff)
}

// IntN returns a draw in [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	v := int(s.Float64() * float64(n))
	if v >= n {
		// Only reachable on the single state value that makes Float64
		// return exactly 1.
		v = n - 1
	}
	return v
}

// Shuffle permutes [0, n) with Fisher-Yates, walking from the last index
// down and swapping with a drawn index in [0, i]. The permutation is a
// pure function of the seed and n.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntN(i + 1)
		swap(i, j)
	}
}
