package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is the DB representation of a payable with a due date.
type Bill struct {
	BillID  string          `db:"bill_id"`
	UserID  string          `db:"user_id"`
	Name    string          `db:"name"`
	Amount  decimal.Decimal `db:"amount"`
	DueDate time.Time       `db:"due_date"`
	AuditFields
}
