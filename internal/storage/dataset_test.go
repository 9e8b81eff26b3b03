package storage

import (
	"context"
	"testing"

	"github.com/runger/finsearch/internal/records"
)

func TestSaveAndLoadDataset(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	in := &records.Dataset{
		Accounts: []records.Account{
			{ID: "a1", AccountNumber: "1001", Title: "Primary Checking", Type: "Checking", Status: "Active", Balance: 100.50, Currency: "USD"},
		},
		Customers: []records.Customer{
			{ID: "c1", CustomerID: "CUST-1", FirstName: "Ada", LastName: "Byron", Email: "ada@example.com", AccountType: "Premium", TotalAccounts: 2},
		},
		Transactions: []records.Transaction{
			{ID: "t1", TransactionID: "TXN-1", Merchant: "Acme", Category: "Tools", Description: "drill", Amount: 59.99, Type: "debit", Date: "2026-08-01"},
		},
	}

	if err := store.SaveDataset(ctx, in); err != nil {
		t.Fatalf("SaveDataset() error = %v", err)
	}

	out, err := store.LoadDataset(ctx)
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}

	if out.Total() != 3 {
		t.Fatalf("Expected 3 records, got %d", out.Total())
	}
	if out.Accounts[0].Title != "Primary Checking" || out.Accounts[0].Balance != 100.50 {
		t.Errorf("Account round-trip mismatch: %+v", out.Accounts[0])
	}
	if out.Customers[0].Email != "ada@example.com" || out.Customers[0].TotalAccounts != 2 {
		t.Errorf("Customer round-trip mismatch: %+v", out.Customers[0])
	}
	if out.Transactions[0].Merchant != "Acme" || out.Transactions[0].Amount != 59.99 {
		t.Errorf("Transaction round-trip mismatch: %+v", out.Transactions[0])
	}
}

func TestSaveDataset_ReplacesExisting(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	first := &records.Dataset{
		Accounts: []records.Account{
			{ID: "a1", AccountNumber: "1001", Title: "Old", Type: "Checking", Status: "Active"},
			{ID: "a2", AccountNumber: "1002", Title: "Old Too", Type: "Savings", Status: "Active"},
		},
	}
	if err := store.SaveDataset(ctx, first); err != nil {
		t.Fatalf("SaveDataset() error = %v", err)
	}

	second := &records.Dataset{
		Accounts: []records.Account{
			{ID: "a3", AccountNumber: "2001", Title: "New", Type: "Savings", Status: "Active"},
		},
	}
	if err := store.SaveDataset(ctx, second); err != nil {
		t.Fatalf("SaveDataset() error = %v", err)
	}

	out, err := store.LoadDataset(ctx)
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if len(out.Accounts) != 1 || out.Accounts[0].Title != "New" {
		t.Errorf("Expected replacement dataset, got %+v", out.Accounts)
	}
}

func TestLoadDataset_Empty(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	out, err := store.LoadDataset(context.Background())
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}
	if out.Total() != 0 {
		t.Errorf("Expected empty dataset, got %d records", out.Total())
	}
}

func TestSeed(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.Seed(ctx, false)
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if n == 0 {
		t.Fatal("Expected seed to insert records into an empty store")
	}

	// Second non-overwrite seed is a no-op
	n, err = store.Seed(ctx, false)
	if err != nil {
		t.Fatalf("Second Seed() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Expected no-op on populated store, inserted %d", n)
	}

	// Overwrite re-seeds
	n, err = store.Seed(ctx, true)
	if err != nil {
		t.Fatalf("Overwrite Seed() error = %v", err)
	}
	if n == 0 {
		t.Error("Expected overwrite seed to insert records")
	}
}

func TestDemoDatasetFreshIDs(t *testing.T) {
	t.Parallel()

	a := DemoDataset()
	b := DemoDataset()
	if a.Accounts[0].ID == b.Accounts[0].ID {
		t.Error("Expected fresh IDs per call")
	}
	if a.Total() == 0 {
		t.Error("Demo dataset should not be empty")
	}
}
