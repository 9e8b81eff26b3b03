// Package results maps raw records into the normalized result shape the
// dropdown renders. Each category has a fixed formatting rule; formatting
// never fails, it degrades to raw values.
package results

import (
	"fmt"

	"github.com/runger/finsearch/internal/records"
)

// Result is the ephemeral, render-ready view over a record. ID plus Category
// uniquely identify a result; Title and Subtitle are non-empty for valid
// records.
type Result struct {
	ID       string
	Category records.Category
	Title    string
	Subtitle string
	Metadata string
	Icon     string
	Record   any
}

// Icon references resolved by the presentation layer.
const (
	IconAccount     = "account"
	IconCustomer    = "customer"
	IconTransaction = "transaction"
)

// FromAccount builds the result view for an account record.
func FromAccount(a records.Account) Result {
	return Result{
		ID:       a.ID,
		Category: records.CategoryAccount,
		Title:    a.Title,
		Subtitle: fmt.Sprintf("%s · %s", a.AccountNumber, Currency(a.Balance)),
		Metadata: fmt.Sprintf("%s · %s", a.Type, a.Status),
		Icon:     IconAccount,
		Record:   a,
	}
}

// FromCustomer builds the result view for a customer record.
func FromCustomer(c records.Customer) Result {
	return Result{
		ID:       c.ID,
		Category: records.CategoryCustomer,
		Title:    fmt.Sprintf("%s %s", c.FirstName, c.LastName),
		Subtitle: c.Email,
		Metadata: fmt.Sprintf("%s · %d accounts", c.AccountType, c.TotalAccounts),
		Icon:     IconCustomer,
		Record:   c,
	}
}

// FromTransaction builds the result view for a transaction record.
func FromTransaction(t records.Transaction) Result {
	return Result{
		ID:       t.ID,
		Category: records.CategoryTransaction,
		Title:    t.Merchant,
		Subtitle: fmt.Sprintf("%s · %s", Currency(t.Amount), t.Category),
		Metadata: fmt.Sprintf("%s · %s", t.Type, ShortDate(t.Date)),
		Icon:     IconTransaction,
		Record:   t,
	}
}

// Copy returns a fresh slice with the same results. Results hold no shared
// mutable state beyond the slice itself, so a shallow copy is a safe
// defensive snapshot.
func Copy(rs []Result) []Result {
	if rs == nil {
		return nil
	}
	out := make([]Result, len(rs))
	copy(out, rs)
	return out
}
