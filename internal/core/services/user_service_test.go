package services_test

import (
	"context"
	"testing"

	"github.com/pennywiseapp/pennywise_backend/internal/apperrors"
	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	portssvc "github.com/pennywiseapp/pennywise_backend/internal/core/ports/services"
	"github.com/pennywiseapp/pennywise_backend/internal/core/services"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
	"github.com/pennywiseapp/pennywise_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo, services.WithUserClock(testClock))
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPasswordAndDefaultsCurrency() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Email:    "amina@example.com",
		Password: "correct-horse",
		Name:     "Amina",
	}

	var saved domain.User
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("USD", user.PreferredCurrency)
	suite.NotEqual(req.Password, saved.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, saved.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "amina@example.com",
		PasswordHash: hash,
	}
	suite.mockRepo.On("FindUserByEmail", ctx, "amina@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "amina@example.com", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("s3cret-pass")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "amina@example.com",
		PasswordHash: hash,
	}
	suite.mockRepo.On("FindUserByEmail", ctx, "amina@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "amina@example.com", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailLooksLikeBadPassword() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyAccount() {
	ctx := context.Background()
	stored := &domain.User{
		UserID: uuid.NewString(),
		Email:  "oauth@example.com",
		// No password hash stored.
	}
	suite.mockRepo.On("FindUserByEmail", ctx, "oauth@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "oauth@example.com", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestUpdatePreferences() {
	ctx := context.Background()
	userID := uuid.NewString()

	stored := &domain.User{UserID: userID, Email: "amina@example.com", PreferredCurrency: "USD"}
	suite.mockRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.PreferredCurrency == "EUR"
	})).Return(nil).Once()

	user, err := suite.service.UpdatePreferences(ctx, userID, dto.UpdatePreferencesRequest{PreferredCurrency: "EUR"})

	suite.Require().NoError(err)
	suite.Equal("EUR", user.PreferredCurrency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_ForbiddenForOtherUser() {
	ctx := context.Background()
	name := "New Name"

	user, err := suite.service.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{Name: &name}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
