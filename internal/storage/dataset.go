package storage

import (
	"context"
	"fmt"

	"github.com/runger/finsearch/internal/records"
)

// LoadDataset reads all three collections into an in-memory snapshot.
func (s *Store) LoadDataset(ctx context.Context) (*records.Dataset, error) {
	ds := &records.Dataset{}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_number, title, type, status, balance, currency
		FROM accounts ORDER BY account_number
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a records.Account
		if err := rows.Scan(&a.ID, &a.AccountNumber, &a.Title, &a.Type, &a.Status, &a.Balance, &a.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		ds.Accounts = append(ds.Accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	custRows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_id, first_name, last_name, email, account_type, total_accounts
		FROM customers ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer custRows.Close()
	for custRows.Next() {
		var c records.Customer
		if err := custRows.Scan(&c.ID, &c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &c.AccountType, &c.TotalAccounts); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		ds.Customers = append(ds.Customers, c)
	}
	if err := custRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	txnRows, err := s.db.QueryContext(ctx, `
		SELECT id, transaction_id, merchant, category, description, amount, type, date
		FROM transactions ORDER BY date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer txnRows.Close()
	for txnRows.Next() {
		var t records.Transaction
		if err := txnRows.Scan(&t.ID, &t.TransactionID, &t.Merchant, &t.Category, &t.Description, &t.Amount, &t.Type, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		ds.Transactions = append(ds.Transactions, t)
	}
	if err := txnRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return ds, nil
}

// SaveDataset replaces the stored collections with the given snapshot in a
// single transaction.
func (s *Store) SaveDataset(ctx context.Context, ds *records.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"accounts", "customers", "transactions"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, a := range ds.Accounts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO accounts (id, account_number, title, type, status, balance, currency)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, a.ID, a.AccountNumber, a.Title, a.Type, a.Status, a.Balance, a.Currency)
		if err != nil {
			return fmt.Errorf("failed to insert account %s: %w", a.ID, err)
		}
	}

	for _, c := range ds.Customers {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO customers (id, customer_id, first_name, last_name, email, account_type, total_accounts)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, c.ID, c.CustomerID, c.FirstName, c.LastName, c.Email, c.AccountType, c.TotalAccounts)
		if err != nil {
			return fmt.Errorf("failed to insert customer %s: %w", c.ID, err)
		}
	}

	for _, t := range ds.Transactions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (id, transaction_id, merchant, category, description, amount, type, date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, t.ID, t.TransactionID, t.Merchant, t.Category, t.Description, t.Amount, t.Type, t.Date)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}
