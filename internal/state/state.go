// Package state provides thread-safe state management for the application.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/litescript/ls-starmap/internal/starmap"
	"github.com/litescript/ls-starmap/internal/theme"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventRegenerated  EventType = "REGENERATED"
	EventSeedApplied  EventType = "SEED_APPLIED"
	EventSeedRejected EventType = "SEED_REJECTED"
	EventSeedRestored EventType = "SEED_RESTORED"
)

// Event records a change of population or a rejected seed.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Seed      uint64    `json:"seed"`
	Input     string    `json:"input,omitempty"`
}

// Settings are the view options applied to the current population.
type Settings struct {
	StarCount    int
	JumpLines    bool
	JumpDistance float64
	DisplayClass bool
	Palette      theme.Palette
	FontPath     string
	FontSize     float64
}

// DefaultSettings returns 32 stars on the dark palette with jump lines
// at 10 ly.
func DefaultSettings() Settings {
	return Settings{
		StarCount:    32,
		JumpLines:    true,
		JumpDistance: starmap.DefaultJumpDistance,
		Palette:      theme.Dark,
		FontSize:     12,
	}
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current population
	seed        uint64
	stars       []starmap.Star
	generatedAt time.Time

	settings Settings

	// Seeds replaced by regeneration, most recent last
	history       []uint64
	maxHistoryLen int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	now func() time.Time
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen int
	MaxEvents     int
	Settings      Settings
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen: 32,
		MaxEvents:     50,
		Settings:      DefaultSettings(),
	}
}

// NewManager creates a state manager holding the population for seed.
func NewManager(cfg Config, seed uint64) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	m := &Manager{
		maxHistoryLen: cfg.MaxHistoryLen,
		maxEvents:     maxEvents,
		events:        make([]Event, 0, maxEvents),
		settings:      cfg.Settings,
		now:           time.Now,
	}
	m.settings.StarCount = clampCount(m.settings.StarCount)
	m.settings.JumpDistance = clampDistance(m.settings.JumpDistance)
	m.replace(seed, starmap.Generate(seed, starmap.MaxStars))
	return m
}

// replace swaps in a new population. Callers hold mu.
func (m *Manager) replace(seed uint64, stars []starmap.Star) {
	m.seed = seed
	m.stars = stars
	m.generatedAt = m.now()
}

// pushHistory records the current seed before it is replaced.
func (m *Manager) pushHistory() {
	if m.maxHistoryLen <= 0 {
		return
	}
	m.history = append(m.history, m.seed)
	if len(m.history) > m.maxHistoryLen {
		m.history = m.history[1:]
	}
}

// Regenerate replaces the population with one from a fresh random seed and
// returns that seed.
func (m *Manager) Regenerate() uint64 {
	stars, seed := starmap.GenerateRandom()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pushHistory()
	m.replace(seed, stars)
	m.addEvent(Event{Type: EventRegenerated, Timestamp: m.generatedAt, Seed: seed})
	return seed
}

// SetSeed replaces the population with the one for seed.
func (m *Manager) SetSeed(seed uint64) {
	stars := starmap.Generate(seed, starmap.MaxStars)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pushHistory()
	m.replace(seed, stars)
	m.addEvent(Event{Type: EventSeedApplied, Timestamp: m.generatedAt, Seed: seed})
}

// ApplySeedText parses hex seed text and regenerates from it. Malformed
// text leaves the population untouched and returns an error wrapping
// starmap.ErrMalformedSeed.
func (m *Manager) ApplySeedText(text string) (uint64, error) {
	seed, err := starmap.ParseSeed(text)
	if err != nil {
		m.mu.Lock()
		m.addEvent(Event{Type: EventSeedRejected, Timestamp: m.now(), Seed: m.seed, Input: text})
		m.mu.Unlock()
		return 0, err
	}
	m.SetSeed(seed)
	return seed, nil
}

// PreviousSeed restores the seed that was replaced most recently. It
// returns false when there is no history.
func (m *Manager) PreviousSeed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.history) == 0 {
		return false
	}
	seed := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.replace(seed, starmap.Generate(seed, starmap.MaxStars))
	m.addEvent(Event{Type: EventSeedRestored, Timestamp: m.generatedAt, Seed: seed})
	return true
}

// SetStarCount sets the number of visible stars, clamped to
// [0, starmap.MaxStars].
func (m *Manager) SetStarCount(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.StarCount = clampCount(n)
}

// AdjustStarCount changes the visible star count by delta.
func (m *Manager) AdjustStarCount(delta int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.StarCount = clampCount(m.settings.StarCount + delta)
	return m.settings.StarCount
}

// SetJumpDistance sets the jump line threshold in light years, clamped to
// [0, starmap.MaxJumpDistance].
func (m *Manager) SetJumpDistance(d float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.JumpDistance = clampDistance(d)
}

// AdjustJumpDistance changes the jump line threshold by delta.
func (m *Manager) AdjustJumpDistance(delta float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.JumpDistance = clampDistance(m.settings.JumpDistance + delta)
	return m.settings.JumpDistance
}

// ToggleJumpLines flips the jump line overlay and returns the new value.
func (m *Manager) ToggleJumpLines() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.JumpLines = !m.settings.JumpLines
	return m.settings.JumpLines
}

// ToggleDisplayClass flips star class labels and returns the new value.
func (m *Manager) ToggleDisplayClass() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.DisplayClass = !m.settings.DisplayClass
	return m.settings.DisplayClass
}

// SetPalette selects a preset by name.
func (m *Manager) SetPalette(name string) error {
	p, err := theme.ByName(name)
	if err != nil {
		return fmt.Errorf("set palette: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.Palette = p
	return nil
}

// CyclePalette switches to the next preset and returns it.
func (m *Manager) CyclePalette() theme.Palette {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings.Palette = theme.Next(m.settings.Palette.Name)
	return m.settings.Palette
}

// Snapshot is a point-in-time copy of the application state.
type Snapshot struct {
	Seed        uint64
	Stars       []starmap.Star // full population
	GeneratedAt time.Time
	Settings    Settings
	History     []uint64
	Events      []Event
}

// Visible returns the stars currently shown.
func (s Snapshot) Visible() []starmap.Star {
	n := s.Settings.StarCount
	if n > len(s.Stars) {
		n = len(s.Stars)
	}
	return s.Stars[:n]
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stars := make([]starmap.Star, len(m.stars))
	copy(stars, m.stars)

	history := make([]uint64, len(m.history))
	copy(history, m.history)

	return Snapshot{
		Seed:        m.seed,
		Stars:       stars,
		GeneratedAt: m.generatedAt,
		Settings:    m.settings,
		History:     history,
		Events:      m.getEventsOrdered(),
	}
}

// Seed returns the current seed.
func (m *Manager) Seed() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.seed
}

// Settings returns the current view settings.
func (m *Manager) Settings() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}

func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// getEventsOrdered returns events in chronological order. Callers hold mu.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Buffer is full, oldest entry is at eventWriteAt
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > starmap.MaxStars {
		return starmap.MaxStars
	}
	return n
}

func clampDistance(d float64) float64 {
	if d < 0 {
		return 0
	}
	if d > starmap.MaxJumpDistance {
		return starmap.MaxJumpDistance
	}
	return d
}
