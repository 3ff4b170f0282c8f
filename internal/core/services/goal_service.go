package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/apperrors"
	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywiseapp/pennywise_backend/internal/core/ports/repositories"
	portssvc "github.com/pennywiseapp/pennywise_backend/internal/core/ports/services"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// goalService implements the GoalSvcFacade interface
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
	now      Clock
}

// GoalServiceOption is a functional option for configuring the goal service
type GoalServiceOption func(*goalService)

// WithGoalClock overrides the service clock, mainly for tests.
func WithGoalClock(now Clock) GoalServiceOption {
	return func(s *goalService) {
		s.now = now
	}
}

// NewGoalService creates a new goal service with the provided options
func NewGoalService(repo portsrepo.GoalRepositoryFacade, options ...GoalServiceOption) portssvc.GoalSvcFacade {
	svc := &goalService{
		goalRepo: repo,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure goalService implements the GoalSvcFacade interface
var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("goal target must be positive: %w", apperrors.ErrValidation)
	}

	current := decimal.Zero
	if req.CurrentAmount != nil {
		if req.CurrentAmount.IsNegative() {
			return nil, fmt.Errorf("starting amount must not be negative: %w", apperrors.ErrValidation)
		}
		current = *req.CurrentAmount
	}

	now := s.now()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: current,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal",
			slog.String("goal_id", goal.GoalID),
			slog.String("name", goal.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.GoalID))
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	return s.ownedGoal(ctx, userID, goalID)
}

func (s *goalService) ListGoals(ctx context.Context, userID string) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals", slog.String("user_id", userID))
		return nil, err
	}
	return goals, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, userID string, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goal, err := s.ownedGoal(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, fmt.Errorf("goal target must be positive: %w", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}

	goal.LastUpdatedAt = s.now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, err
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID string, goalID string) error {
	if _, err := s.ownedGoal(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.goalRepo.DeleteGoal(ctx, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return err
	}
	s.LogInfo(ctx, "Goal deleted", slog.String("goal_id", goalID))
	return nil
}

// Contribute adds money towards a goal. The increment happens in a single
// database statement so two concurrent contributions both count.
func (s *goalService) Contribute(ctx context.Context, userID string, goalID string, req dto.ContributeToGoalRequest) (*domain.Goal, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("contribution must be positive: %w", apperrors.ErrValidation)
	}

	if _, err := s.ownedGoal(ctx, userID, goalID); err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.AddContribution(ctx, goalID, req.Amount, userID, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to add contribution",
			slog.String("goal_id", goalID),
			slog.String("amount", req.Amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Contribution added",
		slog.String("goal_id", goalID),
		slog.String("amount", req.Amount.String()))
	return goal, nil
}

// ownedGoal fetches a goal and enforces that it belongs to userID.
func (s *goalService) ownedGoal(ctx context.Context, userID string, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find goal", slog.String("goal_id", goalID))
		}
		return nil, err
	}
	if goal.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return goal, nil
}
