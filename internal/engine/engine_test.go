package engine

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/finsearch/internal/cache"
	"github.com/runger/finsearch/internal/records"
)

func testDataset() *records.Dataset {
	return &records.Dataset{
		Accounts: []records.Account{
			{ID: "acc-1", AccountNumber: "1001", Title: "Primary Checking", Type: "Checking", Status: "Active", Balance: 2500.75},
			{ID: "acc-2", AccountNumber: "2002", Title: "Vacation Savings", Type: "Savings", Status: "Active", Balance: 9100.00},
		},
		Customers: []records.Customer{
			{ID: "cus-1", CustomerID: "CUST-123", FirstName: "Ada", LastName: "Byron", Email: "ada@example.com", AccountType: "Premium", TotalAccounts: 3},
			{ID: "cus-2", CustomerID: "CUST-456", FirstName: "Charles", LastName: "Babbage", Email: "charles@example.com", AccountType: "Basic", TotalAccounts: 1},
		},
		Transactions: []records.Transaction{
			{ID: "txn-1", TransactionID: "TXN-555", Merchant: "Acme Hardware", Category: "tools", Description: "checkout order", Amount: 89.99, Type: "debit", Date: "2026-01-09"},
			{ID: "txn-2", TransactionID: "TXN-556", Merchant: "Corner Grocery", Category: "groceries", Description: "weekly shop", Amount: 54.20, Type: "debit", Date: "2026-01-11"},
		},
	}
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return New(testDataset(), cfg)
}

func TestShortQueryBypassesCacheAndMatcher(t *testing.T) {
	e := newTestEngine(t, Config{MinQueryLength: 2})

	got := e.Query("a", records.TabAll)
	assert.Empty(t, got)
	assert.Equal(t, int64(0), e.MatchCalls())

	got = e.Query("   ", records.TabAll)
	assert.Empty(t, got)
	assert.Equal(t, int64(0), e.MatchCalls())
}

func TestScenarioCheckQuery(t *testing.T) {
	e := newTestEngine(t, Config{})

	got := e.Query("check", records.TabAll)
	// "check" word-prefix-matches the account title and substring-matches
	// the transaction description "checkout order".
	require.NotEmpty(t, got)
	assert.Equal(t, records.CategoryAccount, got[0].Category)
	assert.Equal(t, "Primary Checking", got[0].Title)
}

func TestScenarioSingleAccountDataset(t *testing.T) {
	ds := &records.Dataset{Accounts: []records.Account{
		{ID: "acc-1", AccountNumber: "1001", Title: "Primary Checking", Type: "Checking", Status: "Active"},
	}}
	e := New(ds, Config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	got := e.Query("check", records.TabAll)
	require.Len(t, got, 1)
	assert.Equal(t, records.CategoryAccount, got[0].Category)
	assert.Equal(t, "Primary Checking", got[0].Title)

	got = e.Query("1001", records.TabAll)
	require.Len(t, got, 1)
	assert.Equal(t, "acc-1", got[0].ID)
}

func TestSecondIdenticalQueryServedFromCache(t *testing.T) {
	e := newTestEngine(t, Config{})

	first := e.Query("ada", records.TabAll)
	calls := e.MatchCalls()
	require.Greater(t, calls, int64(0))

	second := e.Query("ada", records.TabAll)
	assert.Equal(t, calls, e.MatchCalls(), "cache hit must not consult the matcher")
	assert.Equal(t, first, second)
}

func TestNormalizationStabilizesCacheKeys(t *testing.T) {
	e := newTestEngine(t, Config{})

	e.Query("Ada", records.TabAll)
	calls := e.MatchCalls()
	e.Query("  ada  ", records.TabAll)
	assert.Equal(t, calls, e.MatchCalls())
}

func TestClearCacheForcesRecompute(t *testing.T) {
	e := newTestEngine(t, Config{})

	e.Query("ada", records.TabAll)
	calls := e.MatchCalls()
	e.ClearCache()
	e.Query("ada", records.TabAll)
	assert.Greater(t, e.MatchCalls(), calls)
}

func TestTabFiltering(t *testing.T) {
	e := newTestEngine(t, Config{})

	got := e.Query("cust", records.TabCustomer)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, records.CategoryCustomer, r.Category)
	}

	// The same query on the transaction tab matches nothing.
	got = e.Query("cust", records.TabTransaction)
	assert.Empty(t, got)
}

func TestAllTabOrderingIsCategoryConcatenation(t *testing.T) {
	ds := &records.Dataset{
		Accounts:     []records.Account{{ID: "acc-1", Title: "Shared Name"}},
		Customers:    []records.Customer{{ID: "cus-1", FirstName: "Shared", LastName: "Name", Email: "s@example.com"}},
		Transactions: []records.Transaction{{ID: "txn-1", Merchant: "Shared Name Co"}},
	}
	e := New(ds, Config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	got := e.Query("shared", records.TabAll)
	require.Len(t, got, 3)
	assert.Equal(t, records.CategoryAccount, got[0].Category)
	assert.Equal(t, records.CategoryCustomer, got[1].Category)
	assert.Equal(t, records.CategoryTransaction, got[2].Category)
}

func TestResultCapAppliesToCombinedList(t *testing.T) {
	ds := &records.Dataset{}
	for i := 0; i < 5; i++ {
		ds.Accounts = append(ds.Accounts, records.Account{
			ID: fmt.Sprintf("acc-%d", i), Title: "Match Me", AccountNumber: fmt.Sprintf("9%03d", i),
		})
		ds.Customers = append(ds.Customers, records.Customer{
			ID: fmt.Sprintf("cus-%d", i), FirstName: "Match", LastName: "Me", Email: "m@example.com",
		})
	}
	e := New(ds, Config{MaxResults: 7, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	got := e.Query("match", records.TabAll)
	require.Len(t, got, 7)
	// Accounts fill first; the cap cuts into the customer block.
	for i := 0; i < 5; i++ {
		assert.Equal(t, records.CategoryAccount, got[i].Category)
	}
	assert.Equal(t, records.CategoryCustomer, got[5].Category)
	assert.Equal(t, records.CategoryCustomer, got[6].Category)
}

func TestMalformedRecordIsSkippedNotFatal(t *testing.T) {
	e := newTestEngine(t, Config{})
	real := e.matchFn
	e.matchFn = func(fields []records.Field, query string) bool {
		for _, f := range fields {
			if f.Value == "Acme Hardware" {
				panic("malformed record")
			}
		}
		return real(fields, query)
	}

	got := e.Query("corner", records.TabAll)
	require.Len(t, got, 1, "healthy records must survive a malformed sibling")
	assert.Equal(t, "Corner Grocery", got[0].Title)
}

func TestReplaceDatasetClearsCache(t *testing.T) {
	e := newTestEngine(t, Config{})

	got := e.Query("ada", records.TabAll)
	require.Len(t, got, 1)

	e.ReplaceDataset(&records.Dataset{})
	got = e.Query("ada", records.TabAll)
	assert.Empty(t, got, "stale cached results must not survive a reload")
}

func TestReturnedSliceIsDefensiveCopy(t *testing.T) {
	e := newTestEngine(t, Config{})

	got := e.Query("ada", records.TabAll)
	require.Len(t, got, 1)
	got[0].Title = "mutated"

	again := e.Query("ada", records.TabAll)
	assert.Equal(t, "Ada Byron", again[0].Title)
}

func TestUnknownTabFallsBackToAll(t *testing.T) {
	e := newTestEngine(t, Config{})
	got := e.Query("ada", records.Tab("bogus"))
	assert.Len(t, got, 1)
}

func TestEngineCacheIsFIFOBounded(t *testing.T) {
	e := newTestEngine(t, Config{Cache: cache.Config{TTL: time.Minute, Capacity: 2}})

	e.Query("ada", records.TabAll)     // key A
	e.Query("charles", records.TabAll) // key B
	e.Query("acme", records.TabAll)    // key C evicts A

	calls := e.MatchCalls()
	e.Query("charles", records.TabAll) // still cached
	assert.Equal(t, calls, e.MatchCalls())

	e.Query("ada", records.TabAll) // evicted, recomputed
	assert.Greater(t, e.MatchCalls(), calls)
}
