package starmap

import "math"

// Jump line defaults. Distances are in light years; Scale converts a
// normalized distance into light years.
const (
	DefaultJumpDistance = 10.0
	MaxJumpDistance     = 100.0
	DefaultScale        = 50.0
)

// JumpLine connects two stars by index.
type JumpLine struct {
	From int
	To   int
	// Distance in light years.
	Distance float64
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// JumpLines returns every pair of stars closer than maxDistance light years
// once scaled. Each pair appears once with From < To.
func JumpLines(stars []Star, maxDistance, scale float64) []JumpLine {
	if maxDistance <= 0 || scale <= 0 {
		return nil
	}

	var lines []JumpLine
	for i := 0; i < len(stars); i++ {
		for j := i + 1; j < len(stars); j++ {
			d := Distance(stars[i].Pos, stars[j].Pos) * scale
			if d < maxDistance {
				lines = append(lines, JumpLine{From: i, To: j, Distance: d})
			}
		}
	}
	return lines
}
