package services

import (
	"context"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
)

// InsightsSvcFacade exposes the derived views computed from a user's records:
// budget usage, bill reminders, goal progress, net worth and the monthly report.
// All computations are relative to the service's clock, never the database's.
type InsightsSvcFacade interface {
	// BudgetUsage reports spend against every budget for the current period.
	BudgetUsage(ctx context.Context, userID string) ([]domain.BudgetUsage, error)

	// BillReminders reports upcoming and overdue bills, most urgent first.
	BillReminders(ctx context.Context, userID string) ([]domain.BillReminder, error)

	// GoalProgress reports completion for every goal.
	GoalProgress(ctx context.Context, userID string) ([]domain.GoalProgress, error)

	// NetWorthSummary totals assets and debts and derives their ratios.
	NetWorthSummary(ctx context.Context, userID string) (*domain.NetWorthSummary, error)

	// MonthlyReport builds the current calendar month's income/expense report,
	// including the savings suggestion and advice line.
	MonthlyReport(ctx context.Context, userID string) (*domain.MonthlyReport, error)
}
