// Package starmap generates reproducible star populations from a 64-bit seed.
package starmap

import (
	"math"
	"math/rand/v2"
)

// MaxStars is the size of a full population.
const MaxStars = 512

// Planet count distribution.
const (
	PlanetMean   = 7.0
	PlanetStdDev = 4.0
)

// Point is a normalized position; both axes are in [0,1).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Star is one generated star.
type Star struct {
	Name    string `json:"name"`
	Class   Class  `json:"class"`
	Planets uint8  `json:"planets"`
	Pos     Point  `json:"pos"`
}

// Generate returns the first count stars of the population for seed.
// count is clamped to [0, MaxStars].
//
// Each star consumes six values from the Source, in this order: name,
// class, planet count (two), X, Y. A shorter population is therefore
// always a prefix of a longer one with the same seed.
func Generate(seed uint64, count int) []Star {
	if count < 0 {
		count = 0
	}
	if count > MaxStars {
		count = MaxStars
	}

	src := NewSource(seed)
	stars := make([]Star, 0, count)
	for i := 0; i < count; i++ {
		stars = append(stars, generateStar(src))
	}
	return stars
}

// GenerateRandom picks a seed from the runtime's entropy-seeded generator
// and returns the full population for it along with the seed.
func GenerateRandom() ([]Star, uint64) {
	seed := rand.Uint64()
	return Generate(seed, MaxStars), seed
}

func generateStar(src *Source) Star {
	name := names[src.IntN(len(names))]
	class := pickClass(src)
	planets := planetCount(src.Normal(PlanetMean, PlanetStdDev))
	x := src.Float64()
	y := src.Float64()
	return Star{
		Name:    name,
		Class:   class,
		Planets: planets,
		Pos:     Point{X: x, Y: y},
	}
}

// planetCount rounds a normal sample and clamps it to the uint8 range.
func planetCount(sample float64) uint8 {
	r := math.Round(sample)
	switch {
	case r < 0:
		return 0
	case r > math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(r)
	}
}

// NamePool returns a copy of the name pool in draw order.
func NamePool() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
