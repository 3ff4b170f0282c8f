package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/pennywiseapp/pennywise_backend/internal/core/insights"
	portsrepo "github.com/pennywiseapp/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywiseapp/pennywise_backend/internal/core/ports/services"
)

// Advice lines for the monthly report.
const (
	adviceOverspent = "You spent more than you earned this month. Consider reducing discretionary spending."
	adviceOnTrack   = "Great job staying on track this month!"
)

// insightsService composes the pure aggregation functions in the insights
// package with the repositories. All reads are scoped to one user; the
// reference time comes from the injected clock.
type insightsService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	budgetRepo      portsrepo.BudgetReader
	billRepo        portsrepo.BillReader
	goalRepo        portsrepo.GoalReader
	netWorthRepo    portsrepo.NetWorthReader
	now             Clock
}

// InsightsServiceOption is a functional option for configuring the insights service
type InsightsServiceOption func(*insightsService)

// WithInsightsClock overrides the service clock, mainly for tests.
func WithInsightsClock(now Clock) InsightsServiceOption {
	return func(s *insightsService) {
		s.now = now
	}
}

// NewInsightsService creates a new insights service with the provided options
func NewInsightsService(repos portsrepo.RepositoryProvider, options ...InsightsServiceOption) portssvc.InsightsSvcFacade {
	svc := &insightsService{
		transactionRepo: repos.TransactionRepo,
		budgetRepo:      repos.BudgetRepo,
		billRepo:        repos.BillRepo,
		goalRepo:        repos.GoalRepo,
		netWorthRepo:    repos.NetWorthRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure insightsService implements the InsightsSvcFacade interface
var _ portssvc.InsightsSvcFacade = (*insightsService)(nil)

// BudgetUsage reports spend against every budget for its current period.
// Weekly budgets count expenses since Monday; monthly budgets count the
// current calendar month.
func (s *insightsService) BudgetUsage(ctx context.Context, userID string) ([]domain.BudgetUsage, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets for usage report", slog.String("user_id", userID))
		return nil, err
	}

	now := s.now()
	// The widest window any budget can need starts at the earlier of
	// start-of-week and start-of-month.
	since := insights.StartOfWeek(now)
	if monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()); monthStart.Before(since) {
		since = monthStart
	}
	txns, err := s.transactionRepo.ListTransactionsSince(ctx, userID, since)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for usage report", slog.String("user_id", userID))
		return nil, err
	}

	usage := make([]domain.BudgetUsage, len(budgets))
	for i, budget := range budgets {
		usage[i] = insights.BudgetUsageFor(budget, txns, now)
	}
	return usage, nil
}

// BillReminders returns every bill annotated with urgency, most urgent first.
func (s *insightsService) BillReminders(ctx context.Context, userID string) ([]domain.BillReminder, error) {
	bills, err := s.billRepo.ListBills(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills for reminders", slog.String("user_id", userID))
		return nil, err
	}
	return insights.BillReminders(bills, s.now()), nil
}

// GoalProgress reports completion for every goal, in the stored order.
func (s *insightsService) GoalProgress(ctx context.Context, userID string) ([]domain.GoalProgress, error) {
	goals, err := s.goalRepo.ListGoals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals for progress report", slog.String("user_id", userID))
		return nil, err
	}

	progress := make([]domain.GoalProgress, len(goals))
	for i, goal := range goals {
		progress[i] = insights.GoalProgressFor(goal)
	}
	return progress, nil
}

// NetWorthSummary totals assets and debts and derives their share of the
// combined balance sheet.
func (s *insightsService) NetWorthSummary(ctx context.Context, userID string) (*domain.NetWorthSummary, error) {
	entries, err := s.netWorthRepo.ListNetWorthEntries(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list net worth entries", slog.String("user_id", userID))
		return nil, err
	}
	summary := insights.NetWorthSummaryOf(entries)
	return &summary, nil
}

// MonthlyReport builds the current calendar month's summary: totals, the
// per-category expense breakdown, the biggest category with a savings
// suggestion, and one advice line.
func (s *insightsService) MonthlyReport(ctx context.Context, userID string) (*domain.MonthlyReport, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	txns, err := s.transactionRepo.ListTransactionsSince(ctx, userID, monthStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for monthly report", slog.String("user_id", userID))
		return nil, err
	}

	window := insights.MonthWindow(now)
	totals := insights.IncomeExpenseTotals(txns, window)
	spend := insights.CategorySpend(txns, window)

	categoryTotals := make([]domain.CategoryTotal, 0, len(spend))
	for category, amount := range spend {
		categoryTotals = append(categoryTotals, domain.CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(categoryTotals, func(i, j int) bool {
		if !categoryTotals[i].Amount.Equal(categoryTotals[j].Amount) {
			return categoryTotals[i].Amount.GreaterThan(categoryTotals[j].Amount)
		}
		return categoryTotals[i].Category < categoryTotals[j].Category
	})

	report := domain.MonthlyReport{
		Income:         totals.Income,
		Expenses:       totals.Expenses,
		Net:            totals.Income.Sub(totals.Expenses),
		CategoryTotals: categoryTotals,
	}

	if biggest, ok := insights.BiggestCategory(spend); ok {
		report.BiggestCategory = &biggest
		suggestion := insights.SavingsSuggestionFor(biggest)
		report.Suggestion = &suggestion
	}

	switch {
	case report.Expenses.GreaterThan(report.Income):
		report.Advice = adviceOverspent
	case report.BiggestCategory != nil:
		report.Advice = "Your largest spending category is " + report.BiggestCategory.Category +
			". Try setting a lower budget for this category next month."
	default:
		report.Advice = adviceOnTrack
	}

	return &report, nil
}
