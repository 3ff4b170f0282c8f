package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severity classifies a derived metric for display.
type Severity string

const (
	SeverityOK      Severity = "ok"
	SeverityWarning Severity = "warning"
	SeverityOver    Severity = "over"
	SeverityNoData  Severity = "no_data"
)

// BudgetStatus pairs a human-readable label with a severity level.
type BudgetStatus struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// BudgetUsage is one row of the budget usage report: how much of a budget's
// window allowance has been spent. Percent is meaningless when HasData is
// false (budget amount zero or absent); it is never NaN or Inf.
type BudgetUsage struct {
	BudgetID     string          `json:"budgetID"`
	Category     string          `json:"category"`
	Period       BudgetPeriod    `json:"period"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	Spent        decimal.Decimal `json:"spent"`
	Percent      float64         `json:"percent"`
	HasData      bool            `json:"hasData"`
	Status       BudgetStatus    `json:"status"`
}

// BillReminder is a bill annotated with its urgency relative to today.
// Reminder lists are ordered by ascending DaysUntil, overdue first.
type BillReminder struct {
	BillID    string          `json:"billID"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	DueDate   time.Time       `json:"dueDate"`
	DaysUntil int             `json:"daysUntil"` // Negative when overdue
	Label     string          `json:"label"`
	Severity  Severity        `json:"severity"`
}

// CategoryTotal is the total spent in one expense category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SavingsSuggestion recommends trimming the biggest spending category by a
// tiered percentage. CutPercent is 0 when spending is already balanced and
// no numeric suggestion applies.
type SavingsSuggestion struct {
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"` // Current monthly spend in the category
	CutPercent       int64           `json:"cutPercent"`
	ProjectedSavings decimal.Decimal `json:"projectedSavings"`
	Message          string          `json:"message"`
}

// MonthlyReport is the month-to-date financial summary shown on the reports
// page: totals, a per-category breakdown, and a heuristic recommendation.
type MonthlyReport struct {
	Income          decimal.Decimal    `json:"income"`
	Expenses        decimal.Decimal    `json:"expenses"`
	Net             decimal.Decimal    `json:"net"`
	CategoryTotals  []CategoryTotal    `json:"categoryTotals"` // Largest first
	BiggestCategory *CategoryTotal     `json:"biggestCategory,omitempty"`
	Suggestion      *SavingsSuggestion `json:"suggestion,omitempty"`
	Advice          string             `json:"advice"`
}

// NetWorthSummary aggregates a user's net-worth entries. Ratios are
// percentages of assets+debts and are 0 (not NaN) when there are no entries.
type NetWorthSummary struct {
	TotalAssets decimal.Decimal `json:"totalAssets"`
	TotalDebts  decimal.Decimal `json:"totalDebts"`
	NetWorth    decimal.Decimal `json:"netWorth"`
	AssetRatio  float64         `json:"assetRatio"`
	DebtRatio   float64         `json:"debtRatio"`
}

// GoalProgress reports how far along a savings goal is. Percent is uncapped;
// presentation clamps bar widths to [0,100].
type GoalProgress struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Percent       float64         `json:"percent"`
	Achieved      bool            `json:"achieved"`
}
