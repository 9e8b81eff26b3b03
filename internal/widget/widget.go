// Package widget exposes the embeddable search controller: the public
// surface a host (TUI, test harness, or any other presentation layer) drives
// and observes. It wires the engine, the selection state machine, and the
// debouncer together and emits the semantic events hosts render.
package widget

import (
	"log/slog"
	"sync"
	"time"

	"github.com/runger/finsearch/internal/cache"
	"github.com/runger/finsearch/internal/debounce"
	"github.com/runger/finsearch/internal/engine"
	"github.com/runger/finsearch/internal/event"
	"github.com/runger/finsearch/internal/match"
	"github.com/runger/finsearch/internal/records"
	"github.com/runger/finsearch/internal/results"
	"github.com/runger/finsearch/internal/selection"
)

// Options configures a Controller. Zero values get sane defaults; invalid
// numerics are clamped by the engine and debouncer rather than rejected.
type Options struct {
	Placeholder    string
	MinQueryLength int
	DebounceDelay  time.Duration
	MaxResults     int
	Cache          cache.Config
	Logger         *slog.Logger
	Sink           event.Sink
}

// Controller is the widget core. All operations are mutex-serialized and run
// to completion atomically, so a deferred render always observes a
// consistent snapshot; the debounce timer drives searches from its own
// goroutine through the same lock. Sinks are invoked synchronously at
// transition points and must not call back into the controller.
type Controller struct {
	mu sync.Mutex

	engine *engine.Engine
	sel    *selection.Controller
	deb    *debounce.Debouncer
	sink   event.Sink
	logger *slog.Logger

	placeholder string
	activeTab   records.Tab
	query       string // last normalized query
	results     []results.Result
	closed      bool
}

// New creates a controller over an already-loaded dataset snapshot.
func New(ds *records.Dataset, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sink := opts.Sink
	if sink == nil {
		sink = event.NopSink{}
	}
	eng := engine.New(ds, engine.Config{
		MinQueryLength: opts.MinQueryLength,
		MaxResults:     opts.MaxResults,
		Cache:          opts.Cache,
		Logger:         logger,
	})
	return &Controller{
		engine:      eng,
		sel:         selection.New(),
		deb:         debounce.New(opts.DebounceDelay),
		sink:        sink,
		logger:      logger,
		placeholder: opts.Placeholder,
		activeTab:   records.TabAll,
	}
}

// --- Input surface ---

// OnInputChanged is the debounced live-typing path: rapid keystrokes
// coalesce into a single trailing search.
func (c *Controller) OnInputChanged(raw string) {
	c.deb.Schedule(func() {
		c.Search(raw)
	})
}

// Search runs a query synchronously, bypassing the debounce. This is the
// programmatic and test-driven path.
func (c *Controller) Search(raw string) []results.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	return c.searchLocked(raw)
}

// SetActiveTab switches the category filter. The whole cache is cleared
// (tab-scoped keys notwithstanding) and any current query re-runs against
// the new tab.
func (c *Controller) SetActiveTab(tab records.Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !records.ValidTab(tab) || tab == c.activeTab {
		return
	}
	c.activeTab = tab
	c.engine.ClearCache()

	ev := event.New(event.KindTabChanged)
	ev.TabChanged = &event.TabChanged{ActiveTab: tab}
	c.sink.Emit(ev)

	if c.query != "" {
		c.searchLocked(c.query)
	}
}

// Navigate moves the dropdown highlight by +1/-1 with clamping.
func (c *Controller) Navigate(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.Navigate(delta)
}

// HoverResult preview-selects a row without committing it.
func (c *Controller) HoverResult(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.Hover(index)
}

// SelectCurrent commits the highlighted result, closing the dropdown and
// emitting result-selected. Returns false when nothing is highlighted.
func (c *Controller) SelectCurrent() (results.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx, ok := c.sel.Current()
	if !ok {
		return results.Result{}, false
	}
	return c.commitLocked(idx)
}

// ClickResult commits a row directly (mouse click).
func (c *Controller) ClickResult(index int) (results.Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.results) {
		return results.Result{}, false
	}
	if !c.sel.IsOpen() {
		return results.Result{}, false
	}
	return c.commitLocked(index)
}

// OpenDropdown opens the dropdown when there is a query or results to show.
// Re-opening with a non-empty query re-runs it so the host never renders
// stale results.
func (c *Controller) OpenDropdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.sel.IsOpen() {
		return
	}
	if !c.sel.Open(c.query != "" || len(c.results) > 0) {
		return
	}
	c.sink.Emit(event.New(event.KindDropdownOpened))
	if c.query != "" {
		c.searchLocked(c.query)
	}
}

// CloseDropdown closes the dropdown (escape / click outside), resetting the
// selection.
func (c *Controller) CloseDropdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.sel.IsOpen() {
		return
	}
	c.sel.Close()
	c.sink.Emit(event.New(event.KindDropdownClosed))
}

// ReplaceDataset swaps the record snapshot wholesale (full reload) and
// re-runs any current query against it.
func (c *Controller) ReplaceDataset(ds *records.Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.engine.ReplaceDataset(ds)
	if c.query != "" {
		c.searchLocked(c.query)
	}
}

// Close tears the controller down: pending debounce timers are cancelled so
// no search fires afterwards.
func (c *Controller) Close() {
	c.deb.Stop()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// --- Output surface ---

// Results returns a defensive copy of the current result snapshot.
func (c *Controller) Results() []results.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return results.Copy(c.results)
}

// ActiveTab returns the current tab filter.
func (c *Controller) ActiveTab() records.Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeTab
}

// Query returns the last executed normalized query.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SelectedIndex returns the highlighted index, or -1.
func (c *Controller) SelectedIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel.Index()
}

// IsOpen reports whether the dropdown is open.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel.IsOpen()
}

// Placeholder returns the configured input placeholder (pass-through for
// the presentation layer).
func (c *Controller) Placeholder() string {
	return c.placeholder
}

// --- internals ---

// searchLocked executes a query and re-syncs selection state. Caller holds
// the lock.
func (c *Controller) searchLocked(raw string) []results.Result {
	normalized := match.Normalize(raw)
	c.query = normalized
	c.results = c.engine.Query(normalized, c.activeTab)

	closedNow := c.sel.SetResults(len(c.results))

	if normalized == "" {
		c.sink.Emit(event.New(event.KindSearchCleared))
	} else {
		ev := event.New(event.KindSearchPerformed)
		ev.SearchPerformed = &event.SearchPerformed{
			Query:       normalized,
			ResultCount: len(c.results),
			ActiveTab:   c.activeTab,
		}
		c.sink.Emit(ev)
	}
	if closedNow {
		c.sink.Emit(event.New(event.KindDropdownClosed))
	}
	return results.Copy(c.results)
}

// commitLocked commits index, emitting result-selected then
// dropdown-closed. Caller holds the lock and has validated the index.
func (c *Controller) commitLocked(index int) (results.Result, bool) {
	idx, ok := c.sel.Select(index)
	if !ok {
		return results.Result{}, false
	}
	chosen := c.results[idx]

	ev := event.New(event.KindResultSelected)
	ev.ResultSelected = &event.ResultSelected{Result: chosen}
	c.sink.Emit(ev)
	c.sink.Emit(event.New(event.KindDropdownClosed))
	return chosen, true
}
