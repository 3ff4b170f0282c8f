package services

import (
	"context"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
)

// GoalReaderSvc defines read operations for goal data
type GoalReaderSvc interface {
	// GetGoalByID retrieves a goal owned by the given user.
	GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error)

	// ListGoals retrieves all goals for the user.
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriterSvc defines write operations for goal data
type GoalWriterSvc interface {
	// CreateGoal persists a new goal for the user.
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)

	// UpdateGoal updates an existing goal owned by the user.
	UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)

	// DeleteGoal removes a goal owned by the user.
	DeleteGoal(ctx context.Context, userID string, goalID string) error
}

// GoalContributorSvc defines the contribution operation
type GoalContributorSvc interface {
	// Contribute adds money towards a goal and returns the updated goal.
	Contribute(ctx context.Context, userID string, goalID string, req dto.ContributeToGoalRequest) (*domain.Goal, error)
}

// GoalSvcFacade combines all goal-related service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
	GoalContributorSvc
}
