package services

import (
	"context"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
)

// BudgetReaderSvc defines read operations for budget data
type BudgetReaderSvc interface {
	// GetBudgetByID retrieves a budget owned by the given user.
	GetBudgetByID(ctx context.Context, userID string, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves all budgets for the user.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
}

// BudgetWriterSvc defines write operations for budget data
type BudgetWriterSvc interface {
	// CreateBudget persists a new budget for the user.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// UpdateBudget updates an existing budget owned by the user.
	UpdateBudget(ctx context.Context, userID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes a budget owned by the user.
	DeleteBudget(ctx context.Context, userID string, budgetID string) error
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
