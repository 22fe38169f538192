package starmap

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// PopulationExport is the JSON-serializable representation of a population.
type PopulationExport struct {
	Seed       string        `json:"seed"`
	Count      int           `json:"count"`
	Stars      []StarExport  `json:"stars"`
	ClassCount map[Class]int `json:"class_count"`
}

// StarExport is a JSON-friendly star with its index.
type StarExport struct {
	Index   int     `json:"index"`
	Name    string  `json:"name"`
	Class   Class   `json:"class"`
	Planets uint8   `json:"planets"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// ExportPopulation converts a population to an exportable format.
func ExportPopulation(seed uint64, stars []Star) *PopulationExport {
	export := &PopulationExport{
		Seed:       FormatSeed(seed),
		Count:      len(stars),
		Stars:      make([]StarExport, 0, len(stars)),
		ClassCount: make(map[Class]int),
	}
	for i, s := range stars {
		export.Stars = append(export.Stars, StarExport{
			Index:   i,
			Name:    s.Name,
			Class:   s.Class,
			Planets: s.Planets,
			X:       s.Pos.X,
			Y:       s.Pos.Y,
		})
		export.ClassCount[s.Class]++
	}
	return export
}

// WriteJSON writes the population as indented JSON.
func (p *PopulationExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteSummaryTable writes a text table of the stars to w.
func WriteSummaryTable(w io.Writer, seed uint64, stars []Star) {
	fmt.Fprintf(w, "Starmap %s\n", FormatSeed(seed))
	fmt.Fprintln(w, strings.Repeat("─", 52))

	if len(stars) == 0 {
		fmt.Fprintln(w, "No stars")
		return
	}

	fmt.Fprintf(w, "%-4s %-14s %-5s %-7s %-9s %-9s\n",
		"#", "Name", "Class", "Planets", "X", "Y")
	fmt.Fprintln(w, strings.Repeat("─", 52))

	counts := make(map[Class]int)
	for i, s := range stars {
		fmt.Fprintf(w, "%-4d %-14s %-5s %-7d %-9.4f %-9.4f\n",
			i,
			truncateStr(s.Name, 14),
			s.Class,
			s.Planets,
			s.Pos.X,
			s.Pos.Y,
		)
		counts[s.Class]++
	}

	var parts []string
	for _, cw := range classWeights {
		if n := counts[cw.Class]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", cw.Class, n))
		}
	}
	fmt.Fprintf(w, "\nTotal: %d stars (%s)\n", len(stars), strings.Join(parts, " "))
}

// MiniMapConfig sizes the ASCII mini map.
type MiniMapConfig struct {
	Width        int
	Height       int
	JumpDistance float64 // 0 disables jump lines
	Scale        float64
	Legend       bool
}

// DefaultMiniMapConfig returns a 60x24 map with jump lines and a legend.
func DefaultMiniMapConfig() MiniMapConfig {
	return MiniMapConfig{
		Width:        60,
		Height:       24,
		JumpDistance: DefaultJumpDistance,
		Scale:        DefaultScale,
		Legend:       true,
	}
}

// WriteMiniMap draws the stars into a boxed ASCII grid. Stars are plotted
// as their class letter; jump lines as dots.
func WriteMiniMap(w io.Writer, stars []Star, cfg MiniMapConfig) {
	if len(stars) == 0 {
		fmt.Fprintln(w, "No stars to map")
		return
	}
	if cfg.Width < 4 {
		cfg.Width = 4
	}
	if cfg.Height < 2 {
		cfg.Height = 2
	}

	grid := make([][]rune, cfg.Height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", cfg.Width))
	}

	cell := func(p Point) (int, int) {
		return clampIndex(int(p.X*float64(cfg.Width)), cfg.Width),
			clampIndex(int(p.Y*float64(cfg.Height)), cfg.Height)
	}

	if cfg.JumpDistance > 0 {
		for _, l := range JumpLines(stars, cfg.JumpDistance, cfg.Scale) {
			x0, y0 := cell(stars[l.From].Pos)
			x1, y1 := cell(stars[l.To].Pos)
			for _, pt := range LinePoints(x0, y0, x1, y1) {
				if pt[0] >= 0 && pt[0] < cfg.Width && pt[1] >= 0 && pt[1] < cfg.Height {
					grid[pt[1]][pt[0]] = '·'
				}
			}
		}
	}

	for _, s := range stars {
		x, y := cell(s.Pos)
		grid[y][x] = rune(s.Class)
	}

	fmt.Fprintf(w, "┌%s┐\n", strings.Repeat("─", cfg.Width))
	for _, row := range grid {
		fmt.Fprintf(w, "│%s│\n", string(row))
	}
	fmt.Fprintf(w, "└%s┘\n", strings.Repeat("─", cfg.Width))

	if !cfg.Legend {
		return
	}
	for i, s := range stars {
		fmt.Fprintf(w, "  %s %-14s %2d planets  (%.3f, %.3f)\n", s.Class, s.Name, s.Planets, s.Pos.X, s.Pos.Y)
		if i >= 9 && len(stars) > 10 {
			fmt.Fprintf(w, "  ... %d more\n", len(stars)-10)
			break
		}
	}
}

// LinePoints returns the grid cells on the Bresenham line between two
// cells, endpoints included.
func LinePoints(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	var pts [][2]int
	e := dx + dy
	for {
		pts = append(pts, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
