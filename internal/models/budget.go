package models

import "github.com/shopspring/decimal"

// Budget is the DB representation of a category spending cap.
type Budget struct {
	BudgetID string          `db:"budget_id"`
	UserID   string          `db:"user_id"`
	Category string          `db:"category"`
	Amount   decimal.Decimal `db:"amount"`
	Period   string          `db:"period"` // monthly or weekly
	AuditFields
}
