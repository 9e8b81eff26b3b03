// Package tui renders the search widget in the terminal with Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runger/finsearch/internal/records"
	"github.com/runger/finsearch/internal/results"
	"github.com/runger/finsearch/internal/theme"
	"github.com/runger/finsearch/internal/widget"
)

// tabDef pairs a tab filter with its display label.
type tabDef struct {
	tab   records.Tab
	label string
}

var tabDefs = []tabDef{
	{records.TabAll, "All"},
	{records.TabAccount, "Accounts"},
	{records.TabCustomer, "Customers"},
	{records.TabTransaction, "Transactions"},
}

// debounceMsg fires after the debounce timer expires.
type debounceMsg struct {
	id uint64 // Must match current debounceID to be accepted
}

// Model is the Bubble Tea model hosting the search widget.
type Model struct {
	ctrl   *widget.Controller
	themes *theme.Manager
	input  textinput.Model

	activeTab int
	width     int
	height    int

	// debounceID tracks the latest debounce timer; only a matching
	// debounceMsg triggers a search.
	debounceID    uint64
	debounceDelay time.Duration

	chosen    results.Result
	hasChosen bool
	quitting  bool
}

// NewModel creates the TUI model around an already-constructed controller.
func NewModel(ctrl *widget.Controller, themes *theme.Manager, debounceDelay time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = ctrl.Placeholder()
	ti.Prompt = "> "
	ti.Focus()

	if debounceDelay <= 0 {
		debounceDelay = 300 * time.Millisecond
	}

	return Model{
		ctrl:          ctrl,
		themes:        themes,
		input:         ti,
		debounceDelay: debounceDelay,
	}
}

// Selected returns the committed result, if any.
func (m Model) Selected() (results.Result, bool) {
	return m.chosen, m.hasChosen
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case debounceMsg:
		if msg.id != m.debounceID {
			return m, nil // Stale debounce timer; ignore.
		}
		m.ctrl.Search(m.input.Value())
		if m.ctrl.Query() != "" && !m.ctrl.IsOpen() {
			m.ctrl.OpenDropdown()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		m.ctrl.Close()
		return m, tea.Quit

	case "esc":
		if m.ctrl.IsOpen() {
			m.ctrl.CloseDropdown()
			return m, nil
		}
		m.quitting = true
		m.ctrl.Close()
		return m, tea.Quit

	case "enter":
		if chosen, ok := m.ctrl.SelectCurrent(); ok {
			m.chosen = chosen
			m.hasChosen = true
			m.quitting = true
			m.ctrl.Close()
			return m, tea.Quit
		}
		return m, nil

	case "tab":
		m.activeTab = (m.activeTab + 1) % len(tabDefs)
		m.ctrl.SetActiveTab(tabDefs[m.activeTab].tab)
		return m, nil

	case "shift+tab":
		m.activeTab = (m.activeTab + len(tabDefs) - 1) % len(tabDefs)
		m.ctrl.SetActiveTab(tabDefs[m.activeTab].tab)
		return m, nil

	case "down":
		if !m.ctrl.IsOpen() {
			m.ctrl.OpenDropdown()
		}
		m.ctrl.Navigate(+1)
		return m, nil

	case "up":
		m.ctrl.Navigate(-1)
		return m, nil

	case "ctrl+t":
		m.themes.Toggle()
		return m, nil
	}

	// Everything else edits the query.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.startDebounce())
	}
	return m, cmd
}

// startDebounce increments the debounce counter and returns a tea.Tick
// command that fires after the configured delay.
func (m *Model) startDebounce() tea.Cmd {
	m.debounceID++
	id := m.debounceID
	return tea.Tick(m.debounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{id: id}
	})
}

// --- View rendering ---

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.themes.Current()
	var b strings.Builder

	b.WriteString(m.viewTabBar(p))
	b.WriteRune('\n')
	b.WriteString(m.input.View())
	b.WriteRune('\n')
	b.WriteString(m.viewDropdown(p))

	return b.String()
}

// viewTabBar renders the tab bar.
func (m Model) viewTabBar(p theme.Palette) string {
	var parts []string
	for i, td := range tabDefs {
		label := " " + td.label + " "
		if i == m.activeTab {
			parts = append(parts, p.ActiveTab.Render(label))
		} else {
			parts = append(parts, p.InactiveTab.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// viewDropdown renders the result list, or a status line when closed.
func (m Model) viewDropdown(p theme.Palette) string {
	if !m.ctrl.IsOpen() {
		return p.Dim.Render("tab: switch  ctrl+t: theme  esc: quit")
	}

	rs := m.ctrl.Results()
	if len(rs) == 0 {
		return p.Dim.Render(fmt.Sprintf("No results for %q", m.ctrl.Query()))
	}

	selected := m.ctrl.SelectedIndex()
	var b strings.Builder
	for i, r := range rs {
		b.WriteString(m.viewRow(p, r, i == selected))
		if i < len(rs)-1 {
			b.WriteRune('\n')
		}
	}
	b.WriteRune('\n')
	b.WriteString(p.Dim.Render(fmt.Sprintf("%d result(s)", len(rs))))
	return b.String()
}

// viewRow renders one result row.
func (m Model) viewRow(p theme.Palette, r results.Result, selected bool) string {
	line := fmt.Sprintf("%s %s · %s", iconGlyph(r.Icon), r.Title, r.Subtitle)
	if r.Metadata != "" {
		line += "  " + r.Metadata
	}
	if m.width > 4 {
		line = MiddleTruncate(line, m.width-4)
	}

	if selected {
		return p.Selected.Render("> " + line)
	}
	return p.Normal.Render("  " + line)
}

// iconGlyph maps a result icon reference to a terminal glyph.
func iconGlyph(icon string) string {
	switch icon {
	case results.IconAccount:
		return "◈"
	case results.IconCustomer:
		return "◉"
	case results.IconTransaction:
		return "◇"
	default:
		return "·"
	}
}
