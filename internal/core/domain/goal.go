package domain

import "github.com/shopspring/decimal"

// Goal is a savings target. CurrentAmount only ever grows, via contributions;
// there is no withdraw operation.
type Goal struct {
	GoalID        string          `json:"goalID"` // Primary Key (UUID)
	UserID        string          `json:"userID"` // Owning user
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`  // Positive
	CurrentAmount decimal.Decimal `json:"currentAmount"` // Non-negative, defaults to 0
	AuditFields
}
