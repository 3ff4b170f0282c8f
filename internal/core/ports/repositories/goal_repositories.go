package repositories

import (
	"context"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalReader defines read operations for goal data
type GoalReader interface {
	// FindGoalByID retrieves a specific goal by its unique identifier.
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoals retrieves all goals for a user, oldest first.
	ListGoals(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goal data
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal updates an existing goal's details.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal permanently.
	DeleteGoal(ctx context.Context, goalID string) error
}

// GoalContributionSupport defines the contribution operation, which must be
// atomic at the database level so concurrent contributions never lose money.
type GoalContributionSupport interface {
	// AddContribution increments the goal's saved amount in a single statement
	// and returns the updated goal.
	AddContribution(ctx context.Context, goalID string, amount decimal.Decimal, userID string, now time.Time) (*domain.Goal, error)
}

// GoalRepositoryFacade combines all goal-related repository interfaces
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
	GoalContributionSupport
}
