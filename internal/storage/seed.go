package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/runger/finsearch/internal/records"
)

// DemoDataset returns the built-in sample collections. Record IDs are
// freshly generated on each call.
func DemoDataset() *records.Dataset {
	return &records.Dataset{
		Accounts: []records.Account{
			{ID: uuid.NewString(), AccountNumber: "1001", Title: "Primary Checking", Type: "Checking", Status: "Active", Balance: 5240.18, Currency: "USD"},
			{ID: uuid.NewString(), AccountNumber: "1002", Title: "Household Checking", Type: "Checking", Status: "Active", Balance: 1893.42, Currency: "USD"},
			{ID: uuid.NewString(), AccountNumber: "2001", Title: "Emergency Savings", Type: "Savings", Status: "Active", Balance: 15000.00, Currency: "USD"},
			{ID: uuid.NewString(), AccountNumber: "2002", Title: "Vacation Savings", Type: "Savings", Status: "Active", Balance: 3420.55, Currency: "USD"},
			{ID: uuid.NewString(), AccountNumber: "3001", Title: "Platinum Credit Card", Type: "Credit", Status: "Active", Balance: -742.31, Currency: "USD"},
			{ID: uuid.NewString(), AccountNumber: "4001", Title: "Retirement Brokerage", Type: "Investment", Status: "Active", Balance: 88210.90, Currency: "USD"},
			{ID: uuid.NewString(), AccountNumber: "5001", Title: "Old Student Account", Type: "Checking", Status: "Closed", Balance: 0, Currency: "USD"},
		},
		Customers: []records.Customer{
			{ID: uuid.NewString(), CustomerID: "CUST-101", FirstName: "Ada", LastName: "Byron", Email: "ada.byron@example.com", AccountType: "Premium", TotalAccounts: 3},
			{ID: uuid.NewString(), CustomerID: "CUST-102", FirstName: "Charles", LastName: "Babbage", Email: "cbabbage@example.com", AccountType: "Standard", TotalAccounts: 2},
			{ID: uuid.NewString(), CustomerID: "CUST-103", FirstName: "Grace", LastName: "Hopper", Email: "grace.hopper@example.com", AccountType: "Premium", TotalAccounts: 4},
			{ID: uuid.NewString(), CustomerID: "CUST-104", FirstName: "Alan", LastName: "Turing", Email: "aturing@example.com", AccountType: "Standard", TotalAccounts: 1},
			{ID: uuid.NewString(), CustomerID: "CUST-105", FirstName: "Margaret", LastName: "Hamilton", Email: "mhamilton@example.com", AccountType: "Business", TotalAccounts: 5},
		},
		Transactions: []records.Transaction{
			{ID: uuid.NewString(), TransactionID: "TXN-9001", Merchant: "Acme Hardware", Category: "Home Improvement", Description: "paint and brushes", Amount: 89.99, Type: "debit", Date: "2026-08-02"},
			{ID: uuid.NewString(), TransactionID: "TXN-9002", Merchant: "Corner Grocery", Category: "Groceries", Description: "weekly shop", Amount: 134.27, Type: "debit", Date: "2026-08-05"},
			{ID: uuid.NewString(), TransactionID: "TXN-9003", Merchant: "City Transit", Category: "Transport", Description: "monthly pass", Amount: 75.00, Type: "debit", Date: "2026-08-08"},
			{ID: uuid.NewString(), TransactionID: "TXN-9004", Merchant: "Northwind Payroll", Category: "Income", Description: "salary deposit", Amount: 4200.00, Type: "credit", Date: "2026-08-15"},
			{ID: uuid.NewString(), TransactionID: "TXN-9005", Merchant: "Streamflix", Category: "Entertainment", Description: "subscription", Amount: 14.99, Type: "debit", Date: "2026-08-17"},
			{ID: uuid.NewString(), TransactionID: "TXN-9006", Merchant: "Java Junction", Category: "Dining", Description: "coffee", Amount: 6.50, Type: "debit", Date: "2026-08-20"},
			{ID: uuid.NewString(), TransactionID: "TXN-9007", Merchant: "Corner Grocery", Category: "Groceries", Description: "weekly shop", Amount: 121.84, Type: "debit", Date: "2026-08-22"},
			{ID: uuid.NewString(), TransactionID: "TXN-9008", Merchant: "Mountain Outfitters", Category: "Sporting Goods", Description: "hiking boots", Amount: 189.95, Type: "debit", Date: "2026-08-25"},
		},
	}
}

// Seed writes the demo dataset to the store. Existing records are replaced
// only when overwrite is set or the store is empty.
func (s *Store) Seed(ctx context.Context, overwrite bool) (int, error) {
	if !overwrite {
		var count int
		err := s.db.QueryRowContext(ctx, `
			SELECT (SELECT COUNT(*) FROM accounts)
			     + (SELECT COUNT(*) FROM customers)
			     + (SELECT COUNT(*) FROM transactions)
		`).Scan(&count)
		if err != nil {
			return 0, fmt.Errorf("failed to count records: %w", err)
		}
		if count > 0 {
			return 0, nil
		}
	}

	ds := DemoDataset()
	if err := s.SaveDataset(ctx, ds); err != nil {
		return 0, err
	}
	return ds.Total(), nil
}
