package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/apperrors"
	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	portssvc "github.com/pennywiseapp/pennywise_backend/internal/core/ports/services"
	"github.com/pennywiseapp/pennywise_backend/internal/core/services"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
	userID   string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo, services.WithTransactionClock(testClock))
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:     domain.Expense,
		Category: "Food",
		Amount:   decimal.NewFromInt(25),
		Date:     time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
		Note:     "groceries",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(suite.userID, txn.UserID)
	suite.Equal(domain.Expense, txn.Type)
	suite.Equal(testClock(), txn.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpenseForcesOneTime() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:      domain.Expense,
		Category:  "Rent",
		Amount:    decimal.NewFromInt(900),
		Date:      time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Frequency: domain.Monthly, // Ignored for expenses
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Frequency == domain.OneTime
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.OneTime, txn.Frequency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RejectsNegativeAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:     domain.Income,
		Category: "Salary",
		Amount:   decimal.NewFromInt(-100),
		Date:     time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction")
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_ForbiddenForOtherUser() {
	ctx := context.Background()
	txnID := uuid.NewString()

	other := &domain.Transaction{
		TransactionID: txnID,
		UserID:        uuid.NewString(),
		Type:          domain.Expense,
		Category:      "Food",
		Amount:        decimal.NewFromInt(10),
	}
	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(other, nil).Once()

	txn, err := suite.service.GetTransactionByID(ctx, suite.userID, txnID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	txnID := uuid.NewString()

	owned := &domain.Transaction{
		TransactionID: txnID,
		UserID:        suite.userID,
		Type:          domain.Expense,
		Category:      "Food",
		Amount:        decimal.NewFromInt(10),
	}
	suite.mockRepo.On("FindTransactionByID", ctx, txnID).Return(owned, nil).Once()
	suite.mockRepo.On("DeleteTransaction", ctx, txnID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, txnID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_PassesFilter() {
	ctx := context.Background()
	filter := domain.TransactionFilter{Type: domain.Expense, Category: "Food"}

	suite.mockRepo.On("ListTransactions", ctx, suite.userID, filter).
		Return([]domain.Transaction{}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, filter)

	suite.Require().NoError(err)
	suite.Empty(txns)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
