// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starmap/internal/logging"
	"github.com/litescript/ls-starmap/internal/render"
	"github.com/litescript/ls-starmap/internal/starmap"
	"github.com/litescript/ls-starmap/internal/state"
	"github.com/litescript/ls-starmap/internal/version"
)

// InputMode represents what keystrokes are routed to.
type InputMode int

const (
	ModeMap InputMode = iota
	ModeSeedEntry
)

const (
	countStep      = 1
	countStepLarge = 10
	distanceStep   = 0.2

	panelWidth   = 34
	headerHeight = 3
	footerHeight = 2
)

// Msg types for Bubble Tea
type (
	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// printDoneMsg reports the result of a poster print.
	printDoneMsg struct {
		path string
		err  error
	}
)

// Options configures the root model.
type Options struct {
	PrintDir   string
	PosterSize int
	Logger     *logging.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state  *state.Manager
	logger *logging.Logger
	opts   Options

	// UI state
	mode      InputMode
	seedInput string
	width     int
	height    int
	ready     bool
	statusMsg string
	errMsg    string
	printing  bool
	animTick  int

	// Sub-models
	mapView MapViewModel

	snapshot state.Snapshot
}

// New creates a new root UI model.
func New(stateMgr *state.Manager, opts Options) Model {
	if opts.PrintDir == "" {
		opts.PrintDir = "."
	}
	if opts.PosterSize <= 0 {
		opts.PosterSize = render.DefaultOptions().Width
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	m := Model{
		state:   stateMgr,
		logger:  opts.Logger.With("ui"),
		opts:    opts,
		mapView: NewMapViewModel(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return animTickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode == ModeSeedEntry {
			return m.updateSeedEntry(msg)
		}
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.mapView = m.mapView.SetSize(m.mapWidth(), m.contentHeight())

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case printDoneMsg:
		m.printing = false
		if msg.err != nil {
			m.logger.Error("print failed: %v", msg.err)
			m.errMsg = fmt.Sprintf("Print failed: %v", msg.err)
		} else {
			m.logger.Info("poster written to %s", msg.path)
			m.statusMsg = "Saved " + msg.path
		}
	}

	return m, tea.Batch(cmds...)
}

// handleKey applies a map-mode key. The second result reports a quit request.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	m.errMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return nil, true

	case "r":
		seed := m.state.Regenerate()
		m.logger.Debug("regenerated with seed %s", starmap.FormatSeed(seed))
		m.statusMsg = "New seed " + starmap.FormatSeed(seed)

	case "e":
		m.mode = ModeSeedEntry
		m.seedInput = starmap.FormatSeed(m.state.Seed())
		m.statusMsg = ""

	case "b":
		if m.state.PreviousSeed() {
			m.statusMsg = "Restored seed " + starmap.FormatSeed(m.state.Seed())
		} else {
			m.statusMsg = "No previous seed"
		}

	case "+", "=":
		m.state.AdjustStarCount(countStep)
	case "-", "_":
		m.state.AdjustStarCount(-countStep)
	case "}":
		m.state.AdjustStarCount(countStepLarge)
	case "{":
		m.state.AdjustStarCount(-countStepLarge)

	case "j":
		m.state.ToggleJumpLines()
	case "]":
		m.state.AdjustJumpDistance(distanceStep)
	case "[":
		m.state.AdjustJumpDistance(-distanceStep)

	case "c":
		m.state.ToggleDisplayClass()
	case "t":
		p := m.state.CyclePalette()
		m.statusMsg = "Theme " + p.Name

	case "p":
		if m.printing {
			return nil, false
		}
		m.printing = true
		m.statusMsg = ""
		return printCmd(m.snapshot, m.opts), false

	default:
		var cmd tea.Cmd
		m.mapView, cmd = m.mapView.Update(msg)
		return cmd, false
	}

	m.refresh()
	return nil, false
}

// updateSeedEntry edits the seed text buffer.
func (m Model) updateSeedEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = ModeMap
		m.seedInput = ""
	case tea.KeyEnter:
		m.mode = ModeMap
		text := m.seedInput
		m.seedInput = ""
		seed, err := m.state.ApplySeedText(text)
		if err != nil {
			m.logger.Warn("rejected seed %q: %v", text, err)
			m.errMsg = fmt.Sprintf("Invalid Seed: %q (use hexadecimal, e.g. 0x1f)", strings.TrimSpace(text))
			return m, nil
		}
		m.errMsg = ""
		m.statusMsg = "Seed " + starmap.FormatSeed(seed)
		m.refresh()
	case tea.KeyBackspace:
		if r := []rune(m.seedInput); len(r) > 0 {
			m.seedInput = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		m.seedInput = ""
	case tea.KeyRunes, tea.KeySpace:
		m.seedInput += string(msg.Runes)
	}
	return m, nil
}

// refresh pulls a fresh snapshot from the state manager.
func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.mapView = m.mapView.UpdateData(m.snapshot)
}

func (m Model) contentHeight() int {
	h := m.height - headerHeight - footerHeight - 1
	if h < 0 {
		return 0
	}
	return h
}

func (m Model) mapWidth() int {
	w := m.width - panelWidth - 1
	if w < 0 {
		return 0
	}
	return w
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		m.mapView.View(),
		" ",
		m.renderPanel(),
	)
	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := "  LS-STARMAP"
	runes := []rune(title)

	var b strings.Builder
	b.WriteString("\n")
	for col, r := range runes {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradientColor(col, 0, len(runes), 1))).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  procedural starfield · v%s", version.Version)))
	b.WriteString("\n")
	return b.String()
}

// gradientColor returns a hex color for a position in the title gradient.
// Blue -> purple -> magenta -> pink, darker toward the bottom.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	if xRatio < 0.33 {
		t := xRatio / 0.33
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else if xRatio < 0.66 {
		t := (xRatio - 0.33) / 0.33
		r = 139 + t*(217-139)
		g = 92 + t*(70-92)
		b = 246 + t*(239-246)
	} else {
		t := (xRatio - 0.66) / 0.34
		r = 217 + t*(236-217)
		g = 70 + t*(72-70)
		b = 239 + t*(153-239)
	}

	brightness := 1.0 - (yRatio * 0.5)
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r*brightness), clampByte(g*brightness), clampByte(b*brightness))
}

func clampByte(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return int(v)
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	inputStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)

	var status string
	switch {
	case m.mode == ModeSeedEntry:
		status = accentStyle.Render("Seed: ") + inputStyle.Render(m.seedInput+"█") +
			dimStyle.Render("  enter: apply | esc: cancel")
	case m.errMsg != "":
		status = errorStyle.Render(m.errMsg)
	case m.printing:
		spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		status = accentStyle.Render(spinnerFrames[m.animTick%len(spinnerFrames)]) + " " +
			m.renderShimmerText("Printing poster...")
	default:
		status = dimStyle.Render(m.statusMsg)
	}

	help := dimStyle.Render("r: new | e: seed | b: back | +/-/{/}: stars | j/[/]: jumps | c: class | t: theme | n/N: focus | l: labels | p: print | q: quit")
	return "  " + status + "\n  " + help
}

// renderShimmerText renders text with a subtle moving shine effect.
func (m Model) renderShimmerText(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	pos := m.animTick % (len(runes) + 8)

	var result strings.Builder
	for i, r := range runes {
		dist := i - pos + 4
		if dist < 0 {
			dist = -dist
		}

		var r8, g8, b8 int
		switch {
		case dist <= 1:
			r8, g8, b8 = 180, 160, 220
		case dist <= 3:
			r8, g8, b8 = 140, 120, 180
		case dist <= 5:
			r8, g8, b8 = 110, 90, 150
		default:
			r8, g8, b8 = 80, 70, 120
		}

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r8, g8, b8)))
		result.WriteString(style.Render(string(r)))
	}
	return result.String()
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// posterPath is the file a print of seed is written to.
func posterPath(dir string, seed uint64) string {
	return filepath.Join(dir, fmt.Sprintf("starmap-%016x.png", seed))
}

// PosterOptions converts view settings into size x size poster options.
func PosterOptions(s state.Settings, size int) render.Options {
	opts := render.DefaultOptions()
	opts.Width = size
	opts.Height = size
	opts.Palette = s.Palette
	opts.StarCount = s.StarCount
	opts.JumpLines = s.JumpLines
	opts.JumpDistance = s.JumpDistance
	opts.DisplayClass = s.DisplayClass
	opts.FontPath = s.FontPath
	if s.FontSize > 0 {
		opts.FontSize = s.FontSize
	}
	return opts
}

// printCmd renders the snapshot to a PNG in the background.
func printCmd(snapshot state.Snapshot, opts Options) tea.Cmd {
	path := posterPath(opts.PrintDir, snapshot.Seed)
	ropts := PosterOptions(snapshot.Settings, opts.PosterSize)
	stars := snapshot.Stars
	return func() tea.Msg {
		return printDoneMsg{path: path, err: render.SavePNG(path, stars, ropts)}
	}
}
