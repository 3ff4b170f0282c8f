package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/apperrors"
	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/pennywiseapp/pennywise_backend/internal/core/services"
	portssvc "github.com/pennywiseapp/pennywise_backend/internal/core/ports/services"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testClock = func() time.Time {
	return time.Date(2024, time.June, 12, 10, 30, 0, 0, time.UTC)
}

type GoalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockGoalRepository
	service  portssvc.GoalSvcFacade
	userID   string
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGoalRepository)
	suite.service = services.NewGoalService(suite.mockRepo, services.WithGoalClock(testClock))
	suite.userID = uuid.NewString()
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Success() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:         "Emergency Fund",
		TargetAmount: decimal.NewFromInt(1000),
	}

	suite.mockRepo.On("SaveGoal", ctx, mock.AnythingOfType("domain.Goal")).Return(nil).Once()

	goal, err := suite.service.CreateGoal(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(goal)
	suite.NotEmpty(goal.GoalID)
	suite.Equal(suite.userID, goal.UserID)
	suite.Equal("Emergency Fund", goal.Name)
	suite.True(goal.CurrentAmount.IsZero())
	suite.Equal(testClock(), goal.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_RejectsNonPositiveTarget() {
	ctx := context.Background()
	req := dto.CreateGoalRequest{
		Name:         "Broken",
		TargetAmount: decimal.Zero,
	}

	goal, err := suite.service.CreateGoal(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(goal)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGoal")
}

func (suite *GoalServiceTestSuite) TestContribute_UsesAtomicIncrement() {
	ctx := context.Background()
	goalID := uuid.NewString()
	amount := decimal.NewFromInt(50)

	existing := &domain.Goal{
		GoalID:        goalID,
		UserID:        suite.userID,
		Name:          "Holiday",
		TargetAmount:  decimal.NewFromInt(500),
		CurrentAmount: decimal.NewFromInt(100),
	}
	updated := *existing
	updated.CurrentAmount = decimal.NewFromInt(150)

	suite.mockRepo.On("FindGoalByID", ctx, goalID).Return(existing, nil).Once()
	suite.mockRepo.On("AddContribution", ctx, goalID, amount, suite.userID, testClock()).
		Return(&updated, nil).Once()

	goal, err := suite.service.Contribute(ctx, suite.userID, goalID, dto.ContributeToGoalRequest{Amount: amount})

	suite.Require().NoError(err)
	suite.True(goal.CurrentAmount.Equal(decimal.NewFromInt(150)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestContribute_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.Contribute(ctx, suite.userID, uuid.NewString(), dto.ContributeToGoalRequest{
		Amount: decimal.NewFromInt(-5),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddContribution")
}

func (suite *GoalServiceTestSuite) TestContribute_ForbiddenForOtherUsersGoal() {
	ctx := context.Background()
	goalID := uuid.NewString()

	other := &domain.Goal{
		GoalID:       goalID,
		UserID:       uuid.NewString(),
		Name:         "Not yours",
		TargetAmount: decimal.NewFromInt(200),
	}
	suite.mockRepo.On("FindGoalByID", ctx, goalID).Return(other, nil).Once()

	_, err := suite.service.Contribute(ctx, suite.userID, goalID, dto.ContributeToGoalRequest{
		Amount: decimal.NewFromInt(10),
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddContribution")
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_DoesNotTouchCurrentAmount() {
	ctx := context.Background()
	goalID := uuid.NewString()
	newName := "Renamed"

	existing := &domain.Goal{
		GoalID:        goalID,
		UserID:        suite.userID,
		Name:          "Old",
		TargetAmount:  decimal.NewFromInt(500),
		CurrentAmount: decimal.NewFromInt(120),
	}
	suite.mockRepo.On("FindGoalByID", ctx, goalID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateGoal", ctx, mock.MatchedBy(func(g domain.Goal) bool {
		return g.Name == newName && g.CurrentAmount.Equal(decimal.NewFromInt(120))
	})).Return(nil).Once()

	goal, err := suite.service.UpdateGoal(ctx, suite.userID, goalID, dto.UpdateGoalRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal(newName, goal.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
