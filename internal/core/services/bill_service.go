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
)

// billService implements the BillSvcFacade interface
type billService struct {
	BaseService
	billRepo portsrepo.BillRepositoryFacade
	now      Clock
}

// BillServiceOption is a functional option for configuring the bill service
type BillServiceOption func(*billService)

// WithBillClock overrides the service clock, mainly for tests.
func WithBillClock(now Clock) BillServiceOption {
	return func(s *billService) {
		s.now = now
	}
}

// NewBillService creates a new bill service with the provided options
func NewBillService(repo portsrepo.BillRepositoryFacade, options ...BillServiceOption) portssvc.BillSvcFacade {
	svc := &billService{
		billRepo: repo,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure billService implements the BillSvcFacade interface
var _ portssvc.BillSvcFacade = (*billService)(nil)

func (s *billService) CreateBill(ctx context.Context, userID string, req dto.CreateBillRequest) (*domain.Bill, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("bill amount must not be negative: %w", apperrors.ErrValidation)
	}

	now := s.now()
	bill := domain.Bill{
		BillID:  uuid.NewString(),
		UserID:  userID,
		Name:    req.Name,
		Amount:  req.Amount,
		DueDate: req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to save bill",
			slog.String("bill_id", bill.BillID),
			slog.String("name", bill.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Bill created", slog.String("bill_id", bill.BillID))
	return &bill, nil
}

func (s *billService) GetBillByID(ctx context.Context, userID string, billID string) (*domain.Bill, error) {
	return s.ownedBill(ctx, userID, billID)
}

func (s *billService) ListBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	bills, err := s.billRepo.ListBills(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills", slog.String("user_id", userID))
		return nil, err
	}
	return bills, nil
}

func (s *billService) UpdateBill(ctx context.Context, userID string, billID string, req dto.UpdateBillRequest) (*domain.Bill, error) {
	bill, err := s.ownedBill(ctx, userID, billID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		bill.Name = *req.Name
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("bill amount must not be negative: %w", apperrors.ErrValidation)
		}
		bill.Amount = *req.Amount
	}
	if req.DueDate != nil {
		bill.DueDate = *req.DueDate
	}

	bill.LastUpdatedAt = s.now()
	bill.LastUpdatedBy = userID

	if err := s.billRepo.UpdateBill(ctx, *bill); err != nil {
		s.LogError(ctx, err, "Failed to update bill", slog.String("bill_id", billID))
		return nil, err
	}
	return bill, nil
}

func (s *billService) DeleteBill(ctx context.Context, userID string, billID string) error {
	if _, err := s.ownedBill(ctx, userID, billID); err != nil {
		return err
	}
	if err := s.billRepo.DeleteBill(ctx, billID); err != nil {
		s.LogError(ctx, err, "Failed to delete bill", slog.String("bill_id", billID))
		return err
	}
	s.LogInfo(ctx, "Bill deleted", slog.String("bill_id", billID))
	return nil
}

// ownedBill fetches a bill and enforces that it belongs to userID.
func (s *billService) ownedBill(ctx context.Context, userID string, billID string) (*domain.Bill, error) {
	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bill", slog.String("bill_id", billID))
		}
		return nil, err
	}
	if bill.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return bill, nil
}
