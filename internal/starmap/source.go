package starmap

import (
	"math"
	"math/bits"
)

// Source is a SplitMix64 generator. The output sequence depends only on the
// seed, so populations are identical on every platform.
//
// Source implements math/rand/v2.Source.
type Source struct {
	state uint64
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	return &Source{state: seed}
}

// Uint64 returns the next 64 bits of the sequence.
func (s *Source) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Float64 returns a uniform value in [0,1) built from the top 53 bits of
// one Uint64.
func (s *Source) Float64() float64 {
	return float64(s.Uint64()>>11) * (1.0 / (1 << 53))
}

// IntN returns a uniform index in [0,n) from the high word of Uint64()*n.
// n must be positive.
func (s *Source) IntN(n int) int {
	hi, _ := bits.Mul64(s.Uint64(), uint64(n))
	return int(hi)
}

// Normal returns one Box-Muller sample with the given mean and standard
// deviation. It always consumes exactly two Uint64 values.
func (s *Source) Normal(mean, stddev float64) float64 {
	u1 := 1 - s.Float64() // (0,1], keeps Log finite
	u2 := s.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stddev*z
}
