package dto

import (
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name          string           `json:"name" binding:"required"`
	TargetAmount  decimal.Decimal  `json:"targetAmount" binding:"required,gt=0"`
	CurrentAmount *decimal.Decimal `json:"currentAmount" binding:"omitempty,gte=0"` // Optional starting amount
}

// UpdateGoalRequest defines the data allowed for updating a goal.
// Contributions go through the dedicated endpoint, not through update.
type UpdateGoalRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount" binding:"omitempty,gt=0"`
}

// ContributeToGoalRequest defines the amount to add towards a goal.
type ContributeToGoalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse DTO
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		CreatedAt:     g.CreatedAt,
		LastUpdatedAt: g.LastUpdatedAt,
	}
}

// ToListGoalResponse converts a slice of domain.Goal to response DTOs
func ToListGoalResponse(goals []domain.Goal) ListGoalsResponse {
	res := make([]GoalResponse, len(goals))
	for i, g := range goals {
		res[i] = ToGoalResponse(&g)
	}
	return ListGoalsResponse{Goals: res}
}

// ListGoalsResponse wraps the list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ListGoalProgressResponse wraps the goal progress report.
type ListGoalProgressResponse struct {
	Progress []domain.GoalProgress `json:"progress"`
}
