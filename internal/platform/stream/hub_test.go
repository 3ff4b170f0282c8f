package stream_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywiseapp/pennywise_backend/internal/core/ports/repositories"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
	"github.com/pennywiseapp/pennywise_backend/internal/platform/stream"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsSince(ctx context.Context, userID string, since time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

type HubTestSuite struct {
	suite.Suite
	txnRepo *MockTransactionRepository
	hub     *stream.Hub
	ctx     context.Context
}

func (s *HubTestSuite) SetupTest() {
	s.txnRepo = new(MockTransactionRepository)
	repos := portsrepo.RepositoryProvider{TransactionRepo: s.txnRepo}
	s.hub = stream.NewHub("", repos, slog.Default())
	s.ctx = context.Background()
}

func txnNamed(id string, userID string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		UserID:        userID,
		Type:          domain.Expense,
		Category:      "Food",
		Amount:        decimal.NewFromInt(20),
		Date:          time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		Frequency:     domain.OneTime,
	}
}

func (s *HubTestSuite) TestSubscribeDeliversInitialSnapshot() {
	s.txnRepo.On("ListTransactions", s.ctx, "user-1", domain.TransactionFilter{}).
		Return([]domain.Transaction{txnNamed("txn-1", "user-1")}, nil).Once()

	ch, unsubscribe, err := s.hub.Subscribe(s.ctx, "user-1", stream.CollectionTransactions)
	s.Require().NoError(err)
	defer unsubscribe()

	snap := requireReceive(s.T(), ch)
	s.Equal(stream.CollectionTransactions, snap.Collection)

	records, ok := snap.Records.(dto.ListTransactionsResponse)
	s.Require().True(ok)
	s.Require().Len(records.Transactions, 1)
	s.Equal("txn-1", records.Transactions[0].TransactionID)
	s.txnRepo.AssertExpectations(s.T())
}

func (s *HubTestSuite) TestUnknownCollectionRejected() {
	_, ok := stream.ParseCollection("ledgers")
	s.False(ok)

	col, ok := stream.ParseCollection("budgets")
	s.True(ok)
	s.Equal(stream.CollectionBudgets, col)
}

func (s *HubTestSuite) TestUnsubscribedChannelReceivesNothingFurther() {
	s.txnRepo.On("ListTransactions", s.ctx, "user-1", domain.TransactionFilter{}).
		Return([]domain.Transaction{}, nil).Once()

	ch, unsubscribe, err := s.hub.Subscribe(s.ctx, "user-1", stream.CollectionTransactions)
	s.Require().NoError(err)
	requireReceive(s.T(), ch)

	unsubscribe()

	select {
	case snap := <-ch:
		s.Failf("unexpected snapshot", "received %v after unsubscribe", snap)
	case <-time.After(50 * time.Millisecond):
	}
	s.txnRepo.AssertExpectations(s.T())
}

func requireReceive(t *testing.T, ch <-chan stream.Snapshot) stream.Snapshot {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(time.Second):
		require.FailNow(t, "timed out waiting for snapshot")
		return stream.Snapshot{}
	}
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}
