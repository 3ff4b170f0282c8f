package insights_test

import (
	"testing"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/pennywiseapp/pennywise_backend/internal/core/insights"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC) // Wednesday

func expense(category string, amount float64, d time.Time) domain.Transaction {
	return domain.Transaction{
		Type:     domain.Expense,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
		Date:     d,
	}
}

func income(amount float64, d time.Time) domain.Transaction {
	return domain.Transaction{
		Type:     domain.Income,
		Category: "Salary",
		Amount:   decimal.NewFromFloat(amount),
		Date:     d,
	}
}

func TestIncomeExpenseTotals_EmptyInput(t *testing.T) {
	totals := insights.IncomeExpenseTotals(nil, insights.MonthWindow(now))

	assert.True(t, totals.Income.IsZero())
	assert.True(t, totals.Expenses.IsZero())
	assert.Empty(t, insights.CategorySpend(nil, insights.MonthWindow(now)))
}

func TestIncomeExpenseTotals_WindowsOutOtherMonths(t *testing.T) {
	txns := []domain.Transaction{
		income(2000, date(2024, time.June, 1)),
		expense("Food", 120.50, date(2024, time.June, 5)),
		expense("Rent", 900, date(2024, time.June, 1)),
		expense("Food", 75, date(2024, time.May, 30)), // previous month, ignored
		income(500, date(2024, time.May, 15)),         // previous month, ignored
	}

	totals := insights.IncomeExpenseTotals(txns, insights.MonthWindow(now))

	assert.True(t, totals.Income.Equal(decimal.NewFromInt(2000)))
	assert.True(t, totals.Expenses.Equal(decimal.NewFromFloat(1020.50)))
}

func TestIncomeExpenseTotals_AllTimeCountsEverything(t *testing.T) {
	txns := []domain.Transaction{
		income(2000, date(2024, time.June, 1)),
		income(500, date(2023, time.January, 15)),
		expense("Food", 75, date(2024, time.May, 30)),
	}

	totals := insights.IncomeExpenseTotals(txns, insights.AllTime())

	assert.True(t, totals.Income.Equal(decimal.NewFromInt(2500)))
	assert.True(t, totals.Expenses.Equal(decimal.NewFromInt(75)))
}

func TestCategorySpend(t *testing.T) {
	txns := []domain.Transaction{
		expense("Food", 30, date(2024, time.June, 3)),
		expense("Food", 20, date(2024, time.June, 10)),
		expense("Transportation", 15, date(2024, time.June, 11)),
		income(100, date(2024, time.June, 11)), // income never counts as spend
	}

	byCategory := insights.CategorySpend(txns, insights.MonthWindow(now))

	require.Len(t, byCategory, 2)
	assert.True(t, byCategory["Food"].Equal(decimal.NewFromInt(50)))
	assert.True(t, byCategory["Transportation"].Equal(decimal.NewFromInt(15)))
	_, present := byCategory["Rent"]
	assert.False(t, present, "unmatched categories are absent, not zero")
}

func TestBudgetUsagePercent(t *testing.T) {
	percent, ok := insights.BudgetUsagePercent(decimal.Zero, decimal.NewFromInt(100))
	assert.True(t, ok)
	assert.Equal(t, 0.0, percent)
	assert.Equal(t, "On track", insights.BudgetStatusFor(percent, ok).Label)

	percent, ok = insights.BudgetUsagePercent(decimal.NewFromInt(80), decimal.NewFromInt(100))
	assert.True(t, ok)
	assert.InDelta(t, 80, percent, 1e-9)
	status := insights.BudgetStatusFor(percent, ok)
	assert.Equal(t, "Nearing limit", status.Label)
	assert.Equal(t, domain.SeverityWarning, status.Severity)

	percent, ok = insights.BudgetUsagePercent(decimal.NewFromInt(120), decimal.NewFromInt(100))
	assert.True(t, ok)
	assert.InDelta(t, 120, percent, 1e-9)
	status = insights.BudgetStatusFor(percent, ok)
	assert.Equal(t, "Over budget", status.Label)
	assert.Equal(t, domain.SeverityOver, status.Severity)

	// Zero budget: undefined, never NaN or Inf.
	percent, ok = insights.BudgetUsagePercent(decimal.NewFromInt(500), decimal.Zero)
	assert.False(t, ok)
	assert.Equal(t, 0.0, percent)
	status = insights.BudgetStatusFor(percent, ok)
	assert.Equal(t, "No data", status.Label)
	assert.Equal(t, domain.SeverityNoData, status.Severity)
}

func TestBudgetUsageFor_WeeklyVsMonthly(t *testing.T) {
	txns := []domain.Transaction{
		expense("Food", 40, date(2024, time.June, 11)), // this week
		expense("Food", 60, date(2024, time.June, 3)),  // earlier this month
	}

	weekly := insights.BudgetUsageFor(domain.Budget{
		Category: "Food",
		Amount:   decimal.NewFromInt(80),
		Period:   domain.BudgetWeekly,
	}, txns, now)
	assert.True(t, weekly.Spent.Equal(decimal.NewFromInt(40)))
	assert.InDelta(t, 50, weekly.Percent, 1e-9)
	assert.Equal(t, "On track", weekly.Status.Label)

	monthly := insights.BudgetUsageFor(domain.Budget{
		Category: "Food",
		Amount:   decimal.NewFromInt(100),
		Period:   domain.BudgetMonthly,
	}, txns, now)
	assert.True(t, monthly.Spent.Equal(decimal.NewFromInt(100)))
	assert.InDelta(t, 100, monthly.Percent, 1e-9)
	assert.Equal(t, "Over budget", monthly.Status.Label)
}

func TestBillReminderFor(t *testing.T) {
	today := now

	tests := []struct {
		name         string
		due          time.Time
		wantDays     int
		wantLabel    string
		wantSeverity domain.Severity
	}{
		{"due today", date(2024, time.June, 12), 0, "Due Today", domain.SeverityWarning},
		{"overdue yesterday", date(2024, time.June, 11), -1, "Overdue", domain.SeverityOver},
		{"due in two days warns", date(2024, time.June, 14), 2, "Due in 2 day(s)", domain.SeverityWarning},
		{"due in three days warns", date(2024, time.June, 15), 3, "Due in 3 day(s)", domain.SeverityWarning},
		{"due in four days is ok", date(2024, time.June, 16), 4, "Due in 4 day(s)", domain.SeverityOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := insights.BillReminderFor(domain.Bill{Name: "Rent", DueDate: tt.due}, today)
			assert.Equal(t, tt.wantDays, r.DaysUntil)
			assert.Equal(t, tt.wantLabel, r.Label)
			assert.Equal(t, tt.wantSeverity, r.Severity)
		})
	}
}

func TestBillReminders_SortedOverdueFirst(t *testing.T) {
	bills := []domain.Bill{
		{Name: "Internet", DueDate: date(2024, time.June, 20)},
		{Name: "Rent", DueDate: date(2024, time.June, 10)},
		{Name: "Power", DueDate: date(2024, time.June, 12)},
	}

	reminders := insights.BillReminders(bills, now)

	require.Len(t, reminders, 3)
	assert.Equal(t, "Rent", reminders[0].Name)
	assert.Equal(t, "Power", reminders[1].Name)
	assert.Equal(t, "Internet", reminders[2].Name)
	assert.True(t, sortedAscending(reminders))
}

func sortedAscending(rs []domain.BillReminder) bool {
	for i := 1; i < len(rs); i++ {
		if rs[i].DaysUntil < rs[i-1].DaysUntil {
			return false
		}
	}
	return true
}

func TestNetWorthSummaryOf(t *testing.T) {
	entries := []domain.NetWorthEntry{
		{Type: domain.Asset, Amount: decimal.NewFromInt(100)},
		{Type: domain.Debt, Amount: decimal.NewFromInt(40)},
	}

	summary := insights.NetWorthSummaryOf(entries)

	assert.True(t, summary.TotalAssets.Equal(decimal.NewFromInt(100)))
	assert.True(t, summary.TotalDebts.Equal(decimal.NewFromInt(40)))
	assert.True(t, summary.NetWorth.Equal(decimal.NewFromInt(60)))
	assert.InDelta(t, 71.43, summary.AssetRatio, 0.01)
	assert.InDelta(t, 28.57, summary.DebtRatio, 0.01)
}

func TestNetWorthSummaryOf_EmptyHasZeroRatios(t *testing.T) {
	summary := insights.NetWorthSummaryOf(nil)

	assert.True(t, summary.TotalAssets.IsZero())
	assert.True(t, summary.TotalDebts.IsZero())
	assert.True(t, summary.NetWorth.IsZero())
	assert.Equal(t, 0.0, summary.AssetRatio, "ratio is 0, not NaN, with no entries")
	assert.Equal(t, 0.0, summary.DebtRatio)
}

func TestGoalProgressFor(t *testing.T) {
	inProgress := insights.GoalProgressFor(domain.Goal{
		CurrentAmount: decimal.NewFromInt(50),
		TargetAmount:  decimal.NewFromInt(200),
	})
	assert.InDelta(t, 25, inProgress.Percent, 1e-9)
	assert.False(t, inProgress.Achieved)

	achieved := insights.GoalProgressFor(domain.Goal{
		CurrentAmount: decimal.NewFromInt(200),
		TargetAmount:  decimal.NewFromInt(200),
	})
	assert.InDelta(t, 100, achieved.Percent, 1e-9)
	assert.True(t, achieved.Achieved)

	// Percent is uncapped past the target.
	over := insights.GoalProgressFor(domain.Goal{
		CurrentAmount: decimal.NewFromInt(300),
		TargetAmount:  decimal.NewFromInt(200),
	})
	assert.InDelta(t, 150, over.Percent, 1e-9)

	zeroTarget := insights.GoalProgressFor(domain.Goal{TargetAmount: decimal.Zero})
	assert.Equal(t, 0.0, zeroTarget.Percent, "zero target must not divide")
	assert.False(t, zeroTarget.Achieved)
}

func TestBiggestCategory(t *testing.T) {
	_, ok := insights.BiggestCategory(nil)
	assert.False(t, ok)

	totals := map[string]decimal.Decimal{
		"Food":          decimal.NewFromInt(300),
		"Rent":          decimal.NewFromInt(900),
		"Entertainment": decimal.NewFromInt(900),
		"Utilities":     decimal.NewFromInt(120),
	}

	best, ok := insights.BiggestCategory(totals)
	require.True(t, ok)
	assert.True(t, best.Amount.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, "Entertainment", best.Category, "ties break to the lexicographically smaller name")
}

func TestSavingsSuggestionFor_Tiers(t *testing.T) {
	tests := []struct {
		amount        float64
		wantCut       int64
		wantProjected string
	}{
		{450, 25, "112.50"},
		{400, 25, "100.00"},
		{300, 20, "60.00"},
		{250, 20, "50.00"},
		{100, 15, "15.00"},
		{50, 15, "7.50"},
	}

	for _, tt := range tests {
		s := insights.SavingsSuggestionFor(domain.CategoryTotal{
			Category: "Food",
			Amount:   decimal.NewFromFloat(tt.amount),
		})
		assert.Equal(t, tt.wantCut, s.CutPercent)
		assert.Equal(t, tt.wantProjected, s.ProjectedSavings.StringFixed(2))
		assert.Contains(t, s.Message, "Food")
	}
}

func TestSavingsSuggestionFor_BalancedBelowThreshold(t *testing.T) {
	s := insights.SavingsSuggestionFor(domain.CategoryTotal{
		Category: "Entertainment",
		Amount:   decimal.NewFromInt(40),
	})

	assert.Zero(t, s.CutPercent)
	assert.True(t, s.ProjectedSavings.IsZero())
	assert.Contains(t, s.Message, "balanced")
}

func TestAggregationIsIdempotent(t *testing.T) {
	txns := []domain.Transaction{
		income(2000, date(2024, time.June, 1)),
		expense("Food", 120.50, date(2024, time.June, 5)),
		expense("Rent", 900, date(2024, time.June, 1)),
	}

	first := insights.IncomeExpenseTotals(txns, insights.MonthWindow(now))
	second := insights.IncomeExpenseTotals(txns, insights.MonthWindow(now))
	assert.True(t, first.Income.Equal(second.Income))
	assert.True(t, first.Expenses.Equal(second.Expenses))

	firstSpend := insights.CategorySpend(txns, insights.WeekWindow(now))
	secondSpend := insights.CategorySpend(txns, insights.WeekWindow(now))
	assert.Equal(t, len(firstSpend), len(secondSpend))
	for cat, amt := range firstSpend {
		assert.True(t, amt.Equal(secondSpend[cat]))
	}
}
