package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starmap/internal/render"
	"github.com/litescript/ls-starmap/internal/starmap"
	"github.com/litescript/ls-starmap/internal/state"
	"github.com/litescript/ls-starmap/internal/theme"
)

const (
	// Star glyphs by class
	glyphStarHot     = '✶' // O, B
	glyphStarWarm    = '✸' // A, F
	glyphStarCool    = '•' // G, K, M
	glyphStarFocused = '◆'
	glyphJumpLine    = '·'

	colorFocused = "229" // bright gold
)

// LabelMode controls how star labels are displayed.
type LabelMode int

const (
	LabelAll     LabelMode = iota // All stars
	LabelFocused                  // Only focused star
	LabelNone                     // No labels
)

func (l LabelMode) String() string {
	switch l {
	case LabelFocused:
		return "focus"
	case LabelNone:
		return "off"
	default:
		return "all"
	}
}

// MapViewModel renders the visible stars onto a character grid.
type MapViewModel struct {
	width  int
	height int

	stars    []starmap.Star // visible stars only
	settings state.Settings

	focusIdx  int
	labelMode LabelMode
}

// NewMapViewModel creates a new map view model.
func NewMapViewModel() MapViewModel {
	return MapViewModel{labelMode: LabelAll}
}

// SetSize updates the viewport size.
func (m MapViewModel) SetSize(width, height int) MapViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData takes the visible stars and settings from a snapshot.
func (m MapViewModel) UpdateData(snapshot state.Snapshot) MapViewModel {
	m.stars = snapshot.Visible()
	m.settings = snapshot.Settings
	if m.focusIdx >= len(m.stars) {
		m.focusIdx = 0
	}
	return m
}

// Update handles messages.
func (m MapViewModel) Update(msg tea.Msg) (MapViewModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "n", "down":
			m = m.focusNext()
		case "N", "up":
			m = m.focusPrev()
		case "l":
			m.labelMode = (m.labelMode + 1) % 3
		}
	}
	return m, nil
}

func (m MapViewModel) focusNext() MapViewModel {
	if len(m.stars) == 0 {
		return m
	}
	m.focusIdx = (m.focusIdx + 1) % len(m.stars)
	return m
}

func (m MapViewModel) focusPrev() MapViewModel {
	if len(m.stars) == 0 {
		return m
	}
	m.focusIdx--
	if m.focusIdx < 0 {
		m.focusIdx = len(m.stars) - 1
	}
	return m
}

// Focused returns the focused star, if any stars are visible.
func (m MapViewModel) Focused() (starmap.Star, bool) {
	if m.focusIdx < 0 || m.focusIdx >= len(m.stars) {
		return starmap.Star{}, false
	}
	return m.stars[m.focusIdx], true
}

// View renders the map.
func (m MapViewModel) View() string {
	if m.width < 20 || m.height < 8 {
		return "Map view requires larger terminal"
	}
	return m.renderCanvas(m.width, m.height)
}

// cell maps a normalized position onto the grid.
func cell(p starmap.Point, width, height int) (int, int) {
	x := int(p.X * float64(width))
	y := int(p.Y * float64(height))
	if x >= width {
		x = width - 1
	}
	if y >= height {
		y = height - 1
	}
	return x, y
}

// starPos tracks a star's cell for label rendering.
type starPos struct {
	x, y      int
	label     string
	isFocused bool
}

func (m MapViewModel) renderCanvas(width, height int) string {
	palette := m.settings.Palette
	bg := lipgloss.Color(palette.Background.Hex())

	canvas := make([][]rune, height)
	colors := make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		canvas[y] = make([]rune, width)
		colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			canvas[y][x] = ' '
			colors[y][x] = bg
		}
	}

	if m.settings.JumpLines {
		lineColor := lipgloss.Color(palette.JumpLines.Hex())
		for _, l := range starmap.JumpLines(m.stars, m.settings.JumpDistance, starmap.DefaultScale) {
			x0, y0 := cell(m.stars[l.From].Pos, width, height)
			x1, y1 := cell(m.stars[l.To].Pos, width, height)
			for _, pt := range starmap.LinePoints(x0, y0, x1, y1) {
				canvas[pt[1]][pt[0]] = glyphJumpLine
				colors[pt[1]][pt[0]] = lineColor
			}
		}
	}

	var positions []starPos
	for i, s := range m.stars {
		x, y := cell(s.Pos, width, height)
		isFocused := i == m.focusIdx

		glyph, color := starGlyph(s.Class, palette.Star)
		if isFocused {
			glyph = glyphStarFocused
			color = colorFocused
		}
		canvas[y][x] = glyph
		colors[y][x] = color

		positions = append(positions, starPos{
			x:         x,
			y:         y,
			label:     render.Label(s, m.settings.DisplayClass),
			isFocused: isFocused,
		})
	}

	m.renderLabels(canvas, colors, width, positions)

	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			style := lipgloss.NewStyle().Foreground(colors[y][x]).Background(bg)
			b.WriteString(style.Render(string(canvas[y][x])))
		}
		if y < height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderLabels writes labels to the right of each star. Labels never
// overwrite star glyphs, and the focused label is drawn last so it wins
// over overlapping ones.
func (m MapViewModel) renderLabels(canvas [][]rune, colors [][]lipgloss.Color, width int, positions []starPos) {
	if m.labelMode == LabelNone || len(positions) == 0 {
		return
	}

	occupied := make(map[[2]int]bool, len(positions))
	for _, pos := range positions {
		occupied[[2]int{pos.x, pos.y}] = true
	}

	nameColor := lipgloss.Color(m.settings.Palette.Names.Hex())

	draw := func(pos starPos) {
		text := pos.label
		color := nameColor
		if pos.isFocused {
			text = "◄ " + text
			color = colorFocused
		}
		for i, r := range []rune(text) {
			x := pos.x + 2 + i
			if x >= width {
				return
			}
			if occupied[[2]int{x, pos.y}] {
				continue
			}
			canvas[pos.y][x] = r
			colors[pos.y][x] = color
		}
	}

	var focused *starPos
	for i := range positions {
		if positions[i].isFocused {
			focused = &positions[i]
			continue
		}
		if m.labelMode == LabelAll {
			draw(positions[i])
		}
	}
	if focused != nil {
		draw(*focused)
	}
}

// starGlyph returns the glyph and color for a star of the given class.
func starGlyph(class starmap.Class, sc theme.StarColor) (rune, lipgloss.Color) {
	color := lipgloss.Color(sc.Resolve(class).Hex())
	switch class {
	case starmap.ClassO, starmap.ClassB:
		return glyphStarHot, color
	case starmap.ClassA, starmap.ClassF:
		return glyphStarWarm, color
	default:
		return glyphStarCool, color
	}
}
