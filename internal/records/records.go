// Package records defines the three searchable record shapes and the
// in-memory dataset snapshot they are loaded into.
package records

// Category identifies which collection a record belongs to.
type Category string

const (
	CategoryAccount     Category = "account"
	CategoryCustomer    Category = "customer"
	CategoryTransaction Category = "transaction"
)

// Tab is a category filter. TabAll aggregates all three categories.
type Tab string

const (
	TabAll         Tab = "all"
	TabAccount     Tab = Tab(CategoryAccount)
	TabCustomer    Tab = Tab(CategoryCustomer)
	TabTransaction Tab = Tab(CategoryTransaction)
)

// ValidTab reports whether t is one of the four known tabs.
func ValidTab(t Tab) bool {
	switch t {
	case TabAll, TabAccount, TabCustomer, TabTransaction:
		return true
	default:
		return false
	}
}

// Categories returns the categories a tab spans, in the fixed scan order
// accounts, customers, transactions.
func (t Tab) Categories() []Category {
	if t == TabAll {
		return []Category{CategoryAccount, CategoryCustomer, CategoryTransaction}
	}
	return []Category{Category(t)}
}

// Field is a single searchable name/value pair exposed by a record.
// An empty Value never matches anything.
type Field struct {
	Name  string
	Value string
}

// Account is a deposit or credit account record.
type Account struct {
	ID            string
	AccountNumber string
	Title         string
	Type          string
	Status        string
	Balance       float64
	Currency      string
}

// SearchFields returns the fields the matcher scans for an account.
func (a Account) SearchFields() []Field {
	return []Field{
		{Name: "accountNumber", Value: a.AccountNumber},
		{Name: "title", Value: a.Title},
		{Name: "type", Value: a.Type},
	}
}

// Customer is a bank customer record.
type Customer struct {
	ID            string
	CustomerID    string
	FirstName     string
	LastName      string
	Email         string
	AccountType   string
	TotalAccounts int
}

// SearchFields returns the fields the matcher scans for a customer.
func (c Customer) SearchFields() []Field {
	return []Field{
		{Name: "firstName", Value: c.FirstName},
		{Name: "lastName", Value: c.LastName},
		{Name: "email", Value: c.Email},
		{Name: "customerId", Value: c.CustomerID},
	}
}

// Transaction is a single ledger transaction record.
type Transaction struct {
	ID            string
	TransactionID string
	Merchant      string
	Category      string
	Description   string
	Amount        float64
	Type          string
	Date          string
}

// SearchFields returns the fields the matcher scans for a transaction.
func (t Transaction) SearchFields() []Field {
	return []Field{
		{Name: "transactionId", Value: t.TransactionID},
		{Name: "merchant", Value: t.Merchant},
		{Name: "category", Value: t.Category},
		{Name: "description", Value: t.Description},
	}
}

// Dataset is an immutable snapshot of the three collections. The engine
// holds one snapshot at a time; a reload replaces it wholesale rather than
// mutating records in place.
type Dataset struct {
	Accounts     []Account
	Customers    []Customer
	Transactions []Transaction
}

// Count returns the number of records in the given category.
func (d *Dataset) Count(c Category) int {
	switch c {
	case CategoryAccount:
		return len(d.Accounts)
	case CategoryCustomer:
		return len(d.Customers)
	case CategoryTransaction:
		return len(d.Transactions)
	default:
		return 0
	}
}

// Total returns the number of records across all categories.
func (d *Dataset) Total() int {
	return len(d.Accounts) + len(d.Customers) + len(d.Transactions)
}
