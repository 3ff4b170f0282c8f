package domain

import "github.com/shopspring/decimal"

// NetWorthEntryType marks an entry as something owned or something owed.
type NetWorthEntryType string

const (
	Asset NetWorthEntryType = "asset"
	Debt  NetWorthEntryType = "debt"
)

// NetWorthEntry is one line of a user's net-worth statement.
type NetWorthEntry struct {
	EntryID string            `json:"entryID"` // Primary Key (UUID)
	UserID  string            `json:"userID"`  // Owning user
	Type    NetWorthEntryType `json:"type"`    // asset or debt
	Name    string            `json:"name"`    // e.g. "Savings", "Car Loan"
	Amount  decimal.Decimal   `json:"amount"`  // Non-negative
	AuditFields
}
