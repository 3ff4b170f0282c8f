package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType for storage.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is the DB representation of one income or expense record.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Type          TransactionType `db:"type"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	Note          string          `db:"note"` // Nullable in DB, empty string here
	Frequency     string          `db:"frequency"`
	AuditFields
}
