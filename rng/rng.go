// Package rng provides a seeded, platform-independent pseudo-random sequence.
//
// The generator is mulberry32: a 32-bit state advanced by a fixed additive
// constant and scrambled with xor-shift and multiply steps. Only uint32
// arithmetic is used, so the sequence for a seed is identical on every
// platform and in every language that implements the same steps.
package rng

// Algorithm names the generator. Datasets are only reproducible across
// builds reporting the same name.
const Algorithm = "mulberry32"

const (
	increment = 0x6D2B79F5
	twoTo32   = 4294967296.0
)

// Source is a deterministic sequence of floats in [0, 1).
// A Source is not safe for concurrent use.
type Source struct {
	state uint32
}

// New returns a Source seeded with the low 32 bits of seed.
// Seed 0 is valid: the additive step moves the state off zero before the
// first scramble.
func New(seed int64) *Source {
	return &Source{state: uint32(seed)}
}

// Uint32 advances the state and returns the next raw 32-bit value.
func (s *Source) Uint32() uint32 {
	s.state += increment
	t := s.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	return float64(s.Uint32()) / twoTo32
}

// Intn returns floor(Float64() * n). It consumes exactly one draw.
// Intn panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	return int(s.Float64() * float64(n))
}

// Range returns a value in [min, min+span). It consumes exactly one draw.
func (s *Source) Range(min, span float64) float64 {
	return min + s.Float64()*span
}

// Pick returns an element of items chosen with one draw.
func Pick[T any](s *Source, items []T) T {
	return items[s.Intn(len(items))]
}
