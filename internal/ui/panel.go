package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/litescript/ls-starmap/internal/starmap"
)

// Panel colors
const (
	colorPanelAccent = "#9D4EDD"
	colorOn          = "#7CFC00"
	colorOff         = "#FF6347"
)

func onOff(v bool) string {
	if v {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorOn)).Render("on")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorOff)).Render("off")
}

// renderPanel renders the settings and focused star details.
func (m Model) renderPanel() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorPanelAccent)).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	s := m.snapshot.Settings
	visible := m.snapshot.Visible()

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-10s", label)) + " " + value
	}

	var lines []string
	lines = append(lines, titleStyle.Render("SETTINGS"))
	lines = append(lines, row("Seed", valueStyle.Render(starmap.FormatSeed(m.snapshot.Seed))))
	lines = append(lines, row("Stars", valueStyle.Render(fmt.Sprintf("%d / %d", len(visible), starmap.MaxStars))))
	lines = append(lines, row("Theme", valueStyle.Render(cases.Title(language.English).String(s.Palette.Name))))
	lines = append(lines, row("Jumps", onOff(s.JumpLines)+dimStyle.Render(fmt.Sprintf(" < %.1f ly", s.JumpDistance))))
	lines = append(lines, row("Class", onOff(s.DisplayClass)))
	lines = append(lines, row("Labels", valueStyle.Render(m.mapView.labelMode.String())))
	if s.JumpLines {
		n := len(starmap.JumpLines(visible, s.JumpDistance, starmap.DefaultScale))
		lines = append(lines, row("Routes", valueStyle.Render(fmt.Sprintf("%d", n))))
	}
	lines = append(lines, "")

	lines = append(lines, titleStyle.Render("FOCUS"))
	if star, ok := m.mapView.Focused(); ok {
		color := lipgloss.Color(s.Palette.Star.Resolve(star.Class).Hex())
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(colorFocused)).Bold(true).Render(star.Name))
		lines = append(lines, row("Class", lipgloss.NewStyle().Foreground(color).Render(star.Class.String())))
		lines = append(lines, row("Planets", valueStyle.Render(fmt.Sprintf("%d", star.Planets))))
		lines = append(lines, row("Position", valueStyle.Render(fmt.Sprintf("%.3f, %.3f", star.Pos.X, star.Pos.Y))))
	} else {
		lines = append(lines, dimStyle.Render("No stars visible"))
	}
	lines = append(lines, "")

	lines = append(lines, titleStyle.Render("CLASSES"))
	counts := make(map[starmap.Class]int)
	for _, st := range visible {
		counts[st.Class]++
	}
	var parts []string
	for _, cw := range starmap.Classes() {
		c := cw.Class
		if counts[c] == 0 {
			continue
		}
		color := lipgloss.Color(s.Palette.Star.Resolve(c).Hex())
		parts = append(parts, lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%s:%d", c, counts[c])))
	}
	if len(parts) == 0 {
		lines = append(lines, dimStyle.Render("-"))
	} else {
		lines = append(lines, strings.Join(parts, " "))
	}

	if len(m.snapshot.History) > 0 {
		lines = append(lines, "")
		lines = append(lines, dimStyle.Render(fmt.Sprintf("%d previous seed(s), b to go back", len(m.snapshot.History))))
	}

	return lipgloss.NewStyle().Width(panelWidth).Render(strings.Join(lines, "\n"))
}
