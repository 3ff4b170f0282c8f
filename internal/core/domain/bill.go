package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a payable with a due date, used to drive reminders.
type Bill struct {
	BillID  string          `json:"billID"` // Primary Key (UUID)
	UserID  string          `json:"userID"` // Owning user
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`  // Non-negative
	DueDate time.Time       `json:"dueDate"` // Calendar date
	AuditFields
}
