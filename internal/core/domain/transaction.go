package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Frequency describes how often an income transaction repeats.
// Expenses are always one-time; the frequency field is only meaningful
// for income records.
type Frequency string

const (
	OneTime Frequency = "one-time"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// TransactionFilter narrows transaction listings. Zero values mean the
// dimension is not filtered.
type TransactionFilter struct {
	Type     TransactionType // income or expense
	Category string          // exact match
	Keyword  string          // case-insensitive match against note and category
	DateFrom *time.Time      // inclusive
	DateTo   *time.Time      // inclusive
}

// Transaction represents a single income or expense record owned by one user.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owning user
	Type          TransactionType `json:"type"`          // income or expense
	Category      string          `json:"category"`      // e.g. Food, Rent, Salary
	Amount        decimal.Decimal `json:"amount"`        // Non-negative
	Date          time.Time       `json:"date"`          // Calendar date the money moved
	Note          string          `json:"note"`          // Optional free text
	Frequency     Frequency       `json:"frequency"`     // Income only; expenses store one-time
	AuditFields
}
