// Package theme holds the light and dark style palettes and the toggle
// logic, with optional persistence of the user's choice.
package theme

import (
	"log/slog"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Name identifies a theme.
type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
	Auto  Name = "auto"
)

// ValidName reports whether n is a recognized theme name.
func ValidName(n Name) bool {
	switch n {
	case Light, Dark, Auto:
		return true
	}
	return false
}

// Palette is the set of styles the presentation layer renders with.
type Palette struct {
	Name Name

	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	Subtitle    lipgloss.Style
	Metadata    lipgloss.Style
	Query       lipgloss.Style
	Error       lipgloss.Style
	Dim         lipgloss.Style
	Border      lipgloss.Style
}

// DarkPalette returns the palette for dark terminal backgrounds.
func DarkPalette() Palette {
	return Palette{
		Name:        Dark,
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")),
		InactiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("237")),
		Normal:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Metadata:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Query:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	}
}

// LightPalette returns the palette for light terminal backgrounds.
func LightPalette() Palette {
	return Palette{
		Name:        Light,
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("25")),
		InactiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("254")),
		Normal:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Metadata:    lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Query:       lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		Border:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")),
	}
}

// PaletteFor resolves a concrete palette for a theme name. Auto consults the
// terminal background.
func PaletteFor(n Name) Palette {
	switch n {
	case Light:
		return LightPalette()
	case Dark:
		return DarkPalette()
	default:
		return PaletteFor(detectBackground())
	}
}

// detectBackground asks the terminal which background it draws on. When the
// query fails (no TTY, dumb terminal) dark is assumed.
func detectBackground() Name {
	if termenv.HasDarkBackground() {
		return Dark
	}
	return Light
}

// PrefStore persists the user's theme choice across runs.
type PrefStore interface {
	ThemePref() (string, error)
	SetThemePref(string) error
}

// Manager resolves and toggles the active theme.
type Manager struct {
	mu      sync.Mutex
	current Palette
	store   PrefStore
	persist bool
	logger  *slog.Logger
}

// NewManager resolves the initial theme. A persisted preference, when
// present and valid, wins over the configured default.
func NewManager(def Name, store PrefStore, persist bool, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if !ValidName(def) {
		def = Auto
	}

	name := def
	if store != nil && persist {
		if saved, err := store.ThemePref(); err != nil {
			logger.Warn("failed to read theme preference", "error", err)
		} else if saved != "" && ValidName(Name(saved)) && Name(saved) != Auto {
			name = Name(saved)
		}
	}

	return &Manager{
		current: PaletteFor(name),
		store:   store,
		persist: persist,
		logger:  logger,
	}
}

// Current returns the active palette.
func (m *Manager) Current() Palette {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Toggle flips between light and dark, saving the choice when persistence
// is enabled. Returns the new palette.
func (m *Manager) Toggle() Palette {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current.Name == Dark {
		m.current = LightPalette()
	} else {
		m.current = DarkPalette()
	}

	if m.store != nil && m.persist {
		if err := m.store.SetThemePref(string(m.current.Name)); err != nil {
			m.logger.Warn("failed to persist theme preference", "error", err)
		}
	}
	return m.current
}
