// Package event defines the semantic events the widget emits for the
// presentation layer. Events are payload-only and transport-agnostic: a host
// renders or announces them however it likes.
package event

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/runger/finsearch/internal/records"
	"github.com/runger/finsearch/internal/results"
)

// Kind names one semantic event.
type Kind string

const (
	KindSearchPerformed Kind = "search-performed"
	KindResultSelected  Kind = "result-selected"
	KindTabChanged      Kind = "tab-changed"
	KindDropdownOpened  Kind = "dropdown-opened"
	KindDropdownClosed  Kind = "dropdown-closed"
	KindSearchCleared   Kind = "search-cleared"
)

// Event is the envelope around one semantic payload. Exactly one payload
// field is set, matching Kind.
type Event struct {
	ID   string
	Time time.Time
	Kind Kind

	SearchPerformed *SearchPerformed
	ResultSelected  *ResultSelected
	TabChanged      *TabChanged
}

// SearchPerformed is emitted after every executed search.
type SearchPerformed struct {
	Query       string
	ResultCount int
	ActiveTab   records.Tab
}

// ResultSelected is emitted when a result is committed.
type ResultSelected struct {
	Result results.Result
}

// TabChanged is emitted when the active tab switches.
type TabChanged struct {
	ActiveTab records.Tab
}

// Sink receives emitted events. Implementations must not block; delivery is
// synchronous at the transition point.
type Sink interface {
	Emit(Event)
}

// New stamps an envelope with a fresh ID and timestamp.
func New(kind Kind) Event {
	return Event{ID: uuid.NewString(), Time: time.Now(), Kind: kind}
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Emit(Event) {}

// LogSink writes events to a structured logger at debug level.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Emit(e Event) {
	if s.Logger == nil {
		return
	}
	attrs := []any{"id", e.ID, "kind", string(e.Kind)}
	switch {
	case e.SearchPerformed != nil:
		attrs = append(attrs,
			"query", e.SearchPerformed.Query,
			"results", e.SearchPerformed.ResultCount,
			"tab", string(e.SearchPerformed.ActiveTab))
	case e.ResultSelected != nil:
		attrs = append(attrs,
			"result_id", e.ResultSelected.Result.ID,
			"category", string(e.ResultSelected.Result.Category))
	case e.TabChanged != nil:
		attrs = append(attrs, "tab", string(e.TabChanged.ActiveTab))
	}
	s.Logger.Debug("widget event", attrs...)
}
