package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Savings suggestion tiers: the bigger the top spending category, the more
// aggressive the suggested cut.
var suggestionTiers = []struct {
	threshold  decimal.Decimal
	cutPercent int64
}{
	{decimal.NewFromInt(400), 25},
	{decimal.NewFromInt(250), 20},
	{decimal.Zero, 15},
}

// balancedThreshold is the category spend below which no cut is suggested.
var balancedThreshold = decimal.NewFromInt(50)

// Totals holds windowed income and expense sums.
type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// CategorySpend sums expense amounts by category for transactions whose date
// falls within the window. Categories with no matching expenses are absent
// from the result, not present with a zero.
func CategorySpend(transactions []domain.Transaction, within Window) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != domain.Expense || !within(t.Date) {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return totals
}

// IncomeExpenseTotals sums income and expense amounts within the window.
// An empty snapshot yields zero totals.
func IncomeExpenseTotals(transactions []domain.Transaction, within Window) Totals {
	var totals Totals
	for _, t := range transactions {
		if !within(t.Date) {
			continue
		}
		switch t.Type {
		case domain.Income:
			totals.Income = totals.Income.Add(t.Amount)
		case domain.Expense:
			totals.Expenses = totals.Expenses.Add(t.Amount)
		}
	}
	return totals
}

// BudgetUsagePercent returns the share of the budget consumed, as a
// percentage. ok is false when the budget amount is zero: the division is
// undefined and callers must render a "no data" state instead of a number.
func BudgetUsagePercent(spent, budget decimal.Decimal) (percent float64, ok bool) {
	if budget.IsZero() {
		return 0, false
	}
	return spent.Div(budget).InexactFloat64() * 100, true
}

// BudgetStatusFor classifies a usage percentage. The branches are evaluated
// in this order: undefined or negative, over budget, nearing limit, on track.
func BudgetStatusFor(percent float64, ok bool) domain.BudgetStatus {
	switch {
	case !ok || percent < 0:
		return domain.BudgetStatus{Label: "No data", Severity: domain.SeverityNoData}
	case percent >= 100:
		return domain.BudgetStatus{Label: "Over budget", Severity: domain.SeverityOver}
	case percent >= 80:
		return domain.BudgetStatus{Label: "Nearing limit", Severity: domain.SeverityWarning}
	default:
		return domain.BudgetStatus{Label: "On track", Severity: domain.SeverityOK}
	}
}

// SpendForBudget picks the window matching the budget's period and returns
// the category's spend within it.
func SpendForBudget(budget domain.Budget, transactions []domain.Transaction, now time.Time) decimal.Decimal {
	within := MonthWindow(now)
	if budget.Period == domain.BudgetWeekly {
		within = WeekWindow(now)
	}
	spent := decimal.Zero
	for _, t := range transactions {
		if t.Type == domain.Expense && t.Category == budget.Category && within(t.Date) {
			spent = spent.Add(t.Amount)
		}
	}
	return spent
}

// BudgetUsageFor computes one budget's usage row against a transaction
// snapshot. When storage holds duplicate (category, period) budgets each gets
// its own row; resolving which one is authoritative is the caller's
// data-integrity concern.
func BudgetUsageFor(budget domain.Budget, transactions []domain.Transaction, now time.Time) domain.BudgetUsage {
	spent := SpendForBudget(budget, transactions, now)
	percent, ok := BudgetUsagePercent(spent, budget.Amount)
	return domain.BudgetUsage{
		BudgetID:     budget.BudgetID,
		Category:     budget.Category,
		Period:       budget.Period,
		BudgetAmount: budget.Amount,
		Spent:        spent,
		Percent:      percent,
		HasData:      ok,
		Status:       BudgetStatusFor(percent, ok),
	}
}

// BillReminderFor classifies a bill's urgency relative to today.
func BillReminderFor(bill domain.Bill, today time.Time) domain.BillReminder {
	days := DaysUntil(bill.DueDate, today)

	var label string
	var severity domain.Severity
	switch {
	case days < 0:
		label, severity = "Overdue", domain.SeverityOver
	case days == 0:
		label, severity = "Due Today", domain.SeverityWarning
	case days <= 3:
		label, severity = fmt.Sprintf("Due in %d day(s)", days), domain.SeverityWarning
	default:
		label, severity = fmt.Sprintf("Due in %d day(s)", days), domain.SeverityOK
	}

	return domain.BillReminder{
		BillID:    bill.BillID,
		Name:      bill.Name,
		Amount:    bill.Amount,
		DueDate:   bill.DueDate,
		DaysUntil: days,
		Label:     label,
		Severity:  severity,
	}
}

// BillReminders classifies every bill and orders the result by ascending
// days-until, overdue first.
func BillReminders(bills []domain.Bill, today time.Time) []domain.BillReminder {
	reminders := make([]domain.BillReminder, len(bills))
	for i, b := range bills {
		reminders[i] = BillReminderFor(b, today)
	}
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DaysUntil < reminders[j].DaysUntil
	})
	return reminders
}

// NetWorthSummaryOf totals assets and debts and derives the asset/debt split.
// Ratios are 0 when there are no entries; no division happens on a zero
// denominator.
func NetWorthSummaryOf(entries []domain.NetWorthEntry) domain.NetWorthSummary {
	assets, debts := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case domain.Asset:
			assets = assets.Add(e.Amount)
		case domain.Debt:
			debts = debts.Add(e.Amount)
		}
	}

	summary := domain.NetWorthSummary{
		TotalAssets: assets,
		TotalDebts:  debts,
		NetWorth:    assets.Sub(debts),
	}
	if total := assets.Add(debts); !total.IsZero() {
		summary.AssetRatio = assets.Div(total).InexactFloat64() * 100
		summary.DebtRatio = debts.Div(total).InexactFloat64() * 100
	}
	return summary
}

// GoalProgressFor derives a goal's completion percentage. The percentage is
// uncapped; a goal is achieved at 100% or beyond. A zero target yields 0%
// rather than a division error.
func GoalProgressFor(goal domain.Goal) domain.GoalProgress {
	progress := domain.GoalProgress{
		GoalID:        goal.GoalID,
		Name:          goal.Name,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
	}
	if !goal.TargetAmount.IsZero() {
		progress.Percent = goal.CurrentAmount.Div(goal.TargetAmount).InexactFloat64() * 100
	}
	progress.Achieved = progress.Percent >= 100
	return progress
}

// BiggestCategory returns the category with the highest total. The result is
// deterministic regardless of map iteration order: the larger amount wins,
// and equal amounts fall back to the lexicographically smaller name. ok is
// false when the map is empty.
func BiggestCategory(totals map[string]decimal.Decimal) (domain.CategoryTotal, bool) {
	var best domain.CategoryTotal
	found := false
	for category, amount := range totals {
		if !found ||
			amount.GreaterThan(best.Amount) ||
			(amount.Equal(best.Amount) && category < best.Category) {
			best = domain.CategoryTotal{Category: category, Amount: amount}
			found = true
		}
	}
	return best, found
}

// SavingsSuggestionFor turns the biggest spending category into advice. Small
// totals get a "balanced" message with no numeric cut; larger totals get a
// tiered cut percentage and the projected monthly savings.
func SavingsSuggestionFor(biggest domain.CategoryTotal) domain.SavingsSuggestion {
	if biggest.Amount.LessThan(balancedThreshold) {
		return domain.SavingsSuggestion{
			Category: biggest.Category,
			Amount:   biggest.Amount,
			Message:  "Your spending looks well balanced this month. Keep it up!",
		}
	}

	var cut int64
	for _, tier := range suggestionTiers {
		if biggest.Amount.GreaterThanOrEqual(tier.threshold) {
			cut = tier.cutPercent
			break
		}
	}
	projected := biggest.Amount.Mul(decimal.NewFromInt(cut)).Div(decimal.NewFromInt(100))

	return domain.SavingsSuggestion{
		Category:         biggest.Category,
		Amount:           biggest.Amount,
		CutPercent:       cut,
		ProjectedSavings: projected,
		Message: fmt.Sprintf("Your largest spending category is %s. Cutting it by %d%% would save about $%s per month.",
			biggest.Category, cut, projected.StringFixed(2)),
	}
}
