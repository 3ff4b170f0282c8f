package domain

import "github.com/shopspring/decimal"

// BudgetPeriod is the window a budget applies to.
type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "monthly"
	BudgetWeekly  BudgetPeriod = "weekly"
)

// Budget caps spending for one category over a weekly or monthly window.
// Storage permits duplicate (category, period) pairs; usage lookups resolve
// them deterministically by creation order.
type Budget struct {
	BudgetID string          `json:"budgetID"` // Primary Key (UUID)
	UserID   string          `json:"userID"`   // Owning user
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"` // Positive
	Period   BudgetPeriod    `json:"period"` // monthly or weekly
	AuditFields
}
