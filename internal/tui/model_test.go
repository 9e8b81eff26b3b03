package tui

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/finsearch/internal/records"
	"github.com/runger/finsearch/internal/theme"
	"github.com/runger/finsearch/internal/widget"
)

func testDataset() *records.Dataset {
	return &records.Dataset{
		Accounts: []records.Account{
			{ID: "acc-1", AccountNumber: "1001", Title: "Primary Checking", Type: "Checking", Status: "Active", Balance: 2500.75},
			{ID: "acc-2", AccountNumber: "2002", Title: "Vacation Savings", Type: "Savings", Status: "Active", Balance: 9100.00},
		},
		Customers: []records.Customer{
			{ID: "cus-1", CustomerID: "CUST-123", FirstName: "Ada", LastName: "Byron", Email: "ada@example.com", AccountType: "Premium", TotalAccounts: 3},
		},
		Transactions: []records.Transaction{
			{ID: "txn-1", TransactionID: "TXN-555", Merchant: "Acme Hardware", Category: "tools", Amount: 89.99, Type: "debit", Date: "2026-01-09"},
		},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	ctrl := widget.New(testDataset(), widget.Options{
		Placeholder: "Search...",
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(ctrl.Close)
	themes := theme.NewManager(theme.Dark, nil, false, nil)
	m := NewModel(ctrl, themes, 50*time.Millisecond)
	m.width = 80
	m.height = 24
	return m
}

// typeQuery feeds runes into the model and fires the resulting debounce
// message synchronously.
func typeQuery(t *testing.T, m Model, query string) Model {
	t.Helper()
	for _, r := range query {
		res, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = res.(Model)
	}
	res, _ := m.Update(debounceMsg{id: m.debounceID})
	return res.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m Model, k string) (Model, tea.Cmd) {
	res, cmd := m.Update(key(k))
	return res.(Model), cmd
}

func TestTypingSearchesAfterDebounce(t *testing.T) {
	m := newTestModel(t)
	m = typeQuery(t, m, "check")

	view := m.View()
	assert.Contains(t, view, "Primary Checking")
}

func TestStaleDebounceIgnored(t *testing.T) {
	m := newTestModel(t)

	res, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = res.(Model)

	// A timer from an older keystroke must not trigger a search.
	res, _ = m.Update(debounceMsg{id: m.debounceID - 1})
	m = res.(Model)
	assert.Empty(t, m.ctrl.Query())
}

func TestTabCycling(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(m, "tab")
	assert.Equal(t, records.TabAccount, m.ctrl.ActiveTab())

	m, _ = press(m, "tab")
	assert.Equal(t, records.TabCustomer, m.ctrl.ActiveTab())

	m, _ = press(m, "shift+tab")
	assert.Equal(t, records.TabAccount, m.ctrl.ActiveTab())

	// Wraps back around to All.
	m, _ = press(m, "shift+tab")
	assert.Equal(t, records.TabAll, m.ctrl.ActiveTab())
}

func TestNavigateAndCommit(t *testing.T) {
	m := newTestModel(t)
	m = typeQuery(t, m, "a")
	require.True(t, m.ctrl.IsOpen())

	m, _ = press(m, "down")
	m, cmd := press(m, "enter")

	chosen, ok := m.Selected()
	require.True(t, ok)
	assert.NotEmpty(t, chosen.ID)
	assert.NotNil(t, cmd, "enter on a highlighted row quits")
}

func TestEnterWithoutHighlightIsNoOp(t *testing.T) {
	m := newTestModel(t)
	m = typeQuery(t, m, "check")

	m, cmd := press(m, "enter")
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Nil(t, cmd)
}

func TestEscClosesDropdownThenQuits(t *testing.T) {
	m := newTestModel(t)
	m = typeQuery(t, m, "check")
	require.True(t, m.ctrl.IsOpen())

	m, cmd := press(m, "esc")
	assert.False(t, m.ctrl.IsOpen())
	assert.Nil(t, cmd, "first esc only closes the dropdown")

	m, cmd = press(m, "esc")
	assert.NotNil(t, cmd, "second esc quits")
	assert.True(t, m.quitting)
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, theme.Dark, m.themes.Current().Name)

	m, _ = press(m, "ctrl+t")
	assert.Equal(t, theme.Light, m.themes.Current().Name)
}

func TestViewShowsNoResults(t *testing.T) {
	m := newTestModel(t)
	m = typeQuery(t, m, "zzzzzz")

	// Empty results auto-close the dropdown; reopen via down arrow to see
	// the status, or check the idle hint line.
	view := m.View()
	assert.False(t, m.ctrl.IsOpen())
	assert.Contains(t, view, "esc: quit")
}

func TestViewTabBarShowsAllTabs(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, label := range []string{"All", "Accounts", "Customers", "Transactions"} {
		assert.Contains(t, view, label)
	}
}

func TestViewTruncatesLongRows(t *testing.T) {
	m := newTestModel(t)
	m.width = 30
	m = typeQuery(t, m, "check")

	view := m.View()
	assert.Contains(t, view, "…")
}

func TestQuittingViewIsEmpty(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, "ctrl+c")
	assert.Empty(t, m.View())
}
