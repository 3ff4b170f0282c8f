package services

import (
	portsrepo "github.com/pennywiseapp/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywiseapp/pennywise_backend/internal/core/ports/services"
	"github.com/pennywiseapp/pennywise_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo)
	container.Bill = NewBillService(repos.BillRepo)
	container.Goal = NewGoalService(repos.GoalRepo)
	container.NetWorth = NewNetWorthService(repos.NetWorthRepo)
	container.User = NewUserService(repos.UserRepo)

	// Insights reads across every record kind, so it takes the whole provider.
	container.Insights = NewInsightsService(repos)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.BillSvcFacade        = (*billService)(nil)
	_ portssvc.GoalSvcFacade        = (*goalService)(nil)
	_ portssvc.NetWorthSvcFacade    = (*netWorthService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.InsightsSvcFacade    = (*insightsService)(nil)
)
