// Package engine orchestrates matching, result building, capping, and
// caching across the three record categories. It is the only component that
// reads or writes the query cache.
package engine

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/runger/finsearch/internal/cache"
	"github.com/runger/finsearch/internal/match"
	"github.com/runger/finsearch/internal/records"
	"github.com/runger/finsearch/internal/results"
)

// Defaults applied when Config fields are zero.
const (
	DefaultMinQueryLength = 1
	DefaultMaxResults     = 20
)

// Config configures a search engine.
type Config struct {
	// MinQueryLength is the minimum normalized query length; shorter
	// queries return an empty list without touching the cache or matcher.
	MinQueryLength int

	// MaxResults caps the combined result list (after category
	// concatenation, not per category).
	MaxResults int

	Cache  cache.Config
	Logger *slog.Logger
}

// matchFunc decides whether a record's fields match a normalized query.
type matchFunc func(fields []records.Field, query string) bool

// Engine owns the dataset snapshot and the query cache. Queries are
// deterministic for a given (snapshot, query, tab): category order is always
// accounts, customers, transactions.
type Engine struct {
	mu      sync.RWMutex
	dataset *records.Dataset

	cache      *cache.Cache
	logger     *slog.Logger
	minQuery   int
	maxResults int

	matchFn    matchFunc
	matchCalls atomic.Int64
}

// New creates an engine over the given dataset snapshot. A nil dataset is
// treated as empty; zero config fields get defaults.
func New(ds *records.Dataset, cfg Config) *Engine {
	if ds == nil {
		ds = &records.Dataset{}
	}
	if cfg.MinQueryLength < 1 {
		cfg.MinQueryLength = DefaultMinQueryLength
	}
	if cfg.MaxResults < 1 {
		cfg.MaxResults = DefaultMaxResults
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		dataset:    ds,
		cache:      cache.New(cfg.Cache),
		logger:     logger,
		minQuery:   cfg.MinQueryLength,
		maxResults: cfg.MaxResults,
		matchFn:    match.Matches,
	}
}

// Query normalizes raw and returns the capped, ordered result list for the
// tab. It never returns an error: failures degrade to skipped records or an
// empty list, with a logged diagnostic.
func (e *Engine) Query(raw string, tab records.Tab) []results.Result {
	query := match.Normalize(raw)
	if len([]rune(query)) < e.minQuery {
		// Too-short queries are a distinct state from "no matches": the
		// cache and matcher are bypassed entirely.
		return []results.Result{}
	}
	if !records.ValidTab(tab) {
		e.logger.Warn("unknown tab, falling back to all", "tab", string(tab))
		tab = records.TabAll
	}

	if cached, ok := e.cache.Get(query, tab); ok {
		e.logger.Debug("cache hit", "query", query, "tab", string(tab))
		return cached
	}

	e.mu.RLock()
	ds := e.dataset
	e.mu.RUnlock()

	out := make([]results.Result, 0, e.maxResults)
	for _, cat := range tab.Categories() {
		e.scanCategory(ds, cat, query, &out)
		if len(out) >= e.maxResults {
			break
		}
	}
	if len(out) > e.maxResults {
		out = out[:e.maxResults]
	}

	e.cache.Put(query, tab, out)
	e.logger.Debug("query executed", "query", query, "tab", string(tab), "results", len(out))
	return results.Copy(out)
}

// scanCategory appends matching results for one category, stopping at the
// combined cap.
func (e *Engine) scanCategory(ds *records.Dataset, cat records.Category, query string, out *[]results.Result) {
	switch cat {
	case records.CategoryAccount:
		for i := range ds.Accounts {
			if len(*out) >= e.maxResults {
				return
			}
			a := ds.Accounts[i]
			e.consider(out, cat, a.ID, query, a.SearchFields, func() results.Result { return results.FromAccount(a) })
		}
	case records.CategoryCustomer:
		for i := range ds.Customers {
			if len(*out) >= e.maxResults {
				return
			}
			c := ds.Customers[i]
			e.consider(out, cat, c.ID, query, c.SearchFields, func() results.Result { return results.FromCustomer(c) })
		}
	case records.CategoryTransaction:
		for i := range ds.Transactions {
			if len(*out) >= e.maxResults {
				return
			}
			t := ds.Transactions[i]
			e.consider(out, cat, t.ID, query, t.SearchFields, func() results.Result { return results.FromTransaction(t) })
		}
	}
}

// consider matches and builds a single record with per-record panic
// isolation: one malformed record is skipped and logged, never zeroing the
// whole result set.
func (e *Engine) consider(out *[]results.Result, cat records.Category, id, query string, fields func() []records.Field, build func() results.Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("record skipped",
				"category", string(cat), "id", id, "reason", r)
		}
	}()

	e.matchCalls.Add(1)
	if !e.matchFn(fields(), query) {
		return
	}
	*out = append(*out, build())
}

// ClearCache drops all cached queries. The controller calls this on every
// tab switch: keys are tab-scoped already, but the wholesale clear avoids
// serving stale cross-tab artifacts (a deliberate policy, not an accident).
func (e *Engine) ClearCache() {
	e.cache.Clear()
}

// PruneCache eagerly drops expired cache entries.
func (e *Engine) PruneCache() int {
	return e.cache.PruneExpired()
}

// ReplaceDataset swaps the snapshot wholesale and invalidates the cache.
// In-flight queries against the old snapshot are stale once this returns.
func (e *Engine) ReplaceDataset(ds *records.Dataset) {
	if ds == nil {
		ds = &records.Dataset{}
	}
	e.mu.Lock()
	e.dataset = ds
	e.mu.Unlock()
	e.cache.Clear()
}

// Dataset returns the current snapshot.
func (e *Engine) Dataset() *records.Dataset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.dataset
}

// MatchCalls reports how many records have been offered to the matcher.
// Tests use it to verify that cache hits and short queries bypass matching.
func (e *Engine) MatchCalls() int64 {
	return e.matchCalls.Load()
}

// MaxResults returns the configured result cap.
func (e *Engine) MaxResults() int {
	return e.maxResults
}

// MinQueryLength returns the configured minimum query length.
func (e *Engine) MinQueryLength() int {
	return e.minQuery
}
