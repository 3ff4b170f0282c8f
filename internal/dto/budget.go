package dto

import (
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a spending budget.
type CreateBudgetRequest struct {
	Category string              `json:"category" binding:"required"`
	Amount   decimal.Decimal     `json:"amount" binding:"required,gt=0"`
	Period   domain.BudgetPeriod `json:"period" binding:"required,oneof=monthly weekly"`
}

// UpdateBudgetRequest defines the data allowed for updating a budget.
type UpdateBudgetRequest struct {
	Category *string              `json:"category"`
	Amount   *decimal.Decimal     `json:"amount" binding:"omitempty,gt=0"`
	Period   *domain.BudgetPeriod `json:"period" binding:"omitempty,oneof=monthly weekly"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID      string              `json:"budgetID"`
	Category      string              `json:"category"`
	Amount        decimal.Decimal     `json:"amount"`
	Period        domain.BudgetPeriod `json:"period"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		Category:      b.Category,
		Amount:        b.Amount,
		Period:        b.Period,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBudgetResponse converts a slice of domain.Budget to response DTOs
func ToListBudgetResponse(budgets []domain.Budget) ListBudgetsResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(&b)
	}
	return ListBudgetsResponse{Budgets: res}
}

// ListBudgetsResponse wraps the list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ListBudgetUsageResponse wraps the budget usage report.
type ListBudgetUsageResponse struct {
	Usage []domain.BudgetUsage `json:"usage"`
}
