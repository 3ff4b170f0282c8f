package models

import "github.com/shopspring/decimal"

// NetWorthEntry is the DB representation of one asset or debt line.
type NetWorthEntry struct {
	EntryID string          `db:"entry_id"`
	UserID  string          `db:"user_id"`
	Type    string          `db:"type"` // asset or debt
	Name    string          `db:"name"`
	Amount  decimal.Decimal `db:"amount"`
	AuditFields
}
