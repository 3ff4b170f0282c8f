package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywiseapp/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywiseapp/pennywise_backend/internal/core/ports/services"
	"github.com/pennywiseapp/pennywise_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// testClock pins "now" to Wednesday 2024-06-12; the containing week starts
// Monday 2024-06-10 and the month on 2024-06-01.

type InsightsServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockBudgetRepo   *MockBudgetRepository
	mockBillRepo     *MockBillRepository
	mockGoalRepo     *MockGoalRepository
	mockNetWorthRepo *MockNetWorthRepository
	service          portssvc.InsightsSvcFacade
	userID           string
}

func (suite *InsightsServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockGoalRepo = new(MockGoalRepository)
	suite.mockNetWorthRepo = new(MockNetWorthRepository)
	suite.service = services.NewInsightsService(portsrepo.RepositoryProvider{
		TransactionRepo: suite.mockTxnRepo,
		BudgetRepo:      suite.mockBudgetRepo,
		BillRepo:        suite.mockBillRepo,
		GoalRepo:        suite.mockGoalRepo,
		NetWorthRepo:    suite.mockNetWorthRepo,
	}, services.WithInsightsClock(testClock))
	suite.userID = uuid.NewString()
}

func expenseOn(userID, category string, amount int64, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          domain.Expense,
		Category:      category,
		Amount:        decimal.NewFromInt(amount),
		Date:          date,
		Frequency:     domain.OneTime,
	}
}

func incomeOn(userID string, amount int64, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          domain.Income,
		Category:      "Salary",
		Amount:        decimal.NewFromInt(amount),
		Date:          date,
		Frequency:     domain.Monthly,
	}
}

func (suite *InsightsServiceTestSuite) TestBudgetUsage_WeeklyAndMonthlyWindows() {
	ctx := context.Background()
	now := testClock()

	weekly := domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   suite.userID,
		Category: "Food",
		Amount:   decimal.NewFromInt(100),
		Period:   domain.BudgetWeekly,
	}
	monthly := domain.Budget{
		BudgetID: uuid.NewString(),
		UserID:   suite.userID,
		Category: "Rent",
		Amount:   decimal.NewFromInt(1000),
		Period:   domain.BudgetMonthly,
	}
	suite.mockBudgetRepo.On("ListBudgets", ctx, suite.userID).
		Return([]domain.Budget{weekly, monthly}, nil).Once()

	txns := []domain.Transaction{
		// In the current week, counts for both windows.
		expenseOn(suite.userID, "Food", 30, time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)),
		// Earlier in the month, outside the week.
		expenseOn(suite.userID, "Food", 20, time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)),
		expenseOn(suite.userID, "Rent", 500, time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)),
		// Income never counts as spend.
		incomeOn(suite.userID, 2000, time.Date(2024, time.June, 4, 0, 0, 0, 0, time.UTC)),
	}
	monthStart := time.Date(2024, time.June, 1, 0, 0, 0, 0, now.Location())
	suite.mockTxnRepo.On("ListTransactionsSince", ctx, suite.userID, monthStart).
		Return(txns, nil).Once()

	usage, err := suite.service.BudgetUsage(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(usage, 2)

	suite.True(usage[0].Spent.Equal(decimal.NewFromInt(30)), "weekly budget counts only this week")
	suite.InDelta(30.0, usage[0].Percent, 0.001)
	suite.Equal(domain.SeverityOK, usage[0].Status.Severity)

	suite.True(usage[1].Spent.Equal(decimal.NewFromInt(500)))
	suite.InDelta(50.0, usage[1].Percent, 0.001)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *InsightsServiceTestSuite) TestBillReminders_MostUrgentFirst() {
	ctx := context.Background()

	bills := []domain.Bill{
		{BillID: uuid.NewString(), UserID: suite.userID, Name: "Internet", Amount: decimal.NewFromInt(40), DueDate: time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)},
		{BillID: uuid.NewString(), UserID: suite.userID, Name: "Rent", Amount: decimal.NewFromInt(900), DueDate: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)},
		{BillID: uuid.NewString(), UserID: suite.userID, Name: "Power", Amount: decimal.NewFromInt(60), DueDate: time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockBillRepo.On("ListBills", ctx, suite.userID).Return(bills, nil).Once()

	reminders, err := suite.service.BillReminders(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(reminders, 3)
	suite.Equal("Rent", reminders[0].Name)
	suite.Equal(-2, reminders[0].DaysUntil)
	suite.Equal(domain.SeverityOver, reminders[0].Severity)
	suite.Equal("Power", reminders[1].Name)
	suite.Equal("Due Today", reminders[1].Label)
	suite.Equal("Internet", reminders[2].Name)
	suite.Equal(domain.SeverityOK, reminders[2].Severity)
}

func (suite *InsightsServiceTestSuite) TestMonthlyReport_OverspentAdvice() {
	ctx := context.Background()

	txns := []domain.Transaction{
		incomeOn(suite.userID, 1000, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
		expenseOn(suite.userID, "Rent", 900, time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)),
		expenseOn(suite.userID, "Food", 450, time.Date(2024, time.June, 8, 0, 0, 0, 0, time.UTC)),
	}
	suite.mockTxnRepo.On("ListTransactionsSince", ctx, suite.userID, mock.AnythingOfType("time.Time")).
		Return(txns, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(report.Income.Equal(decimal.NewFromInt(1000)))
	suite.True(report.Expenses.Equal(decimal.NewFromInt(1350)))
	suite.True(report.Net.Equal(decimal.NewFromInt(-350)))
	suite.Contains(report.Advice, "spent more than you earned")

	suite.Require().NotNil(report.BiggestCategory)
	suite.Equal("Rent", report.BiggestCategory.Category)
	suite.Require().NotNil(report.Suggestion)
	// 900 is in the top tier, so the suggested cut is 25%.
	suite.Equal(int64(25), report.Suggestion.CutPercent)
	suite.True(report.Suggestion.ProjectedSavings.Equal(decimal.NewFromInt(225)))
}

func (suite *InsightsServiceTestSuite) TestMonthlyReport_BiggestCategoryAdvice() {
	ctx := context.Background()

	txns := []domain.Transaction{
		incomeOn(suite.userID, 2000, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
		expenseOn(suite.userID, "Food", 300, time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)),
	}
	suite.mockTxnRepo.On("ListTransactionsSince", ctx, suite.userID, mock.AnythingOfType("time.Time")).
		Return(txns, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Contains(report.Advice, "largest spending category is Food")
}

func (suite *InsightsServiceTestSuite) TestMonthlyReport_NoExpenses() {
	ctx := context.Background()

	suite.mockTxnRepo.On("ListTransactionsSince", ctx, suite.userID, mock.AnythingOfType("time.Time")).
		Return([]domain.Transaction{}, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Nil(report.BiggestCategory)
	suite.Nil(report.Suggestion)
	suite.Empty(report.CategoryTotals)
	suite.Equal("Great job staying on track this month!", report.Advice)
}

func (suite *InsightsServiceTestSuite) TestNetWorthSummary() {
	ctx := context.Background()

	entries := []domain.NetWorthEntry{
		{EntryID: uuid.NewString(), UserID: suite.userID, Type: domain.Asset, Name: "Savings", Amount: decimal.NewFromInt(700)},
		{EntryID: uuid.NewString(), UserID: suite.userID, Type: domain.Debt, Name: "Loan", Amount: decimal.NewFromInt(300)},
	}
	suite.mockNetWorthRepo.On("ListNetWorthEntries", ctx, suite.userID).Return(entries, nil).Once()

	summary, err := suite.service.NetWorthSummary(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.True(summary.NetWorth.Equal(decimal.NewFromInt(400)))
	suite.InDelta(70.0, summary.AssetRatio, 0.001)
	suite.InDelta(30.0, summary.DebtRatio, 0.001)
}

func (suite *InsightsServiceTestSuite) TestGoalProgress() {
	ctx := context.Background()

	goals := []domain.Goal{
		{GoalID: uuid.NewString(), UserID: suite.userID, Name: "Fund", TargetAmount: decimal.NewFromInt(1000), CurrentAmount: decimal.NewFromInt(250)},
		{GoalID: uuid.NewString(), UserID: suite.userID, Name: "Done", TargetAmount: decimal.NewFromInt(100), CurrentAmount: decimal.NewFromInt(150)},
	}
	suite.mockGoalRepo.On("ListGoals", ctx, suite.userID).Return(goals, nil).Once()

	progress, err := suite.service.GoalProgress(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(progress, 2)
	suite.InDelta(25.0, progress[0].Percent, 0.001)
	suite.False(progress[0].Achieved)
	suite.InDelta(150.0, progress[1].Percent, 0.001)
	suite.True(progress[1].Achieved)
}

func TestInsightsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InsightsServiceTestSuite))
}
