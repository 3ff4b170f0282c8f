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

// netWorthService implements the NetWorthSvcFacade interface
type netWorthService struct {
	BaseService
	netWorthRepo portsrepo.NetWorthRepositoryFacade
	now          Clock
}

// NetWorthServiceOption is a functional option for configuring the net worth service
type NetWorthServiceOption func(*netWorthService)

// WithNetWorthClock overrides the service clock, mainly for tests.
func WithNetWorthClock(now Clock) NetWorthServiceOption {
	return func(s *netWorthService) {
		s.now = now
	}
}

// NewNetWorthService creates a new net worth service with the provided options
func NewNetWorthService(repo portsrepo.NetWorthRepositoryFacade, options ...NetWorthServiceOption) portssvc.NetWorthSvcFacade {
	svc := &netWorthService{
		netWorthRepo: repo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure netWorthService implements the NetWorthSvcFacade interface
var _ portssvc.NetWorthSvcFacade = (*netWorthService)(nil)

func (s *netWorthService) CreateNetWorthEntry(ctx context.Context, userID string, req dto.CreateNetWorthEntryRequest) (*domain.NetWorthEntry, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("entry amount must not be negative: %w", apperrors.ErrValidation)
	}

	now := s.now()
	entry := domain.NetWorthEntry{
		EntryID: uuid.NewString(),
		UserID:  userID,
		Type:    req.Type,
		Name:    req.Name,
		Amount:  req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.netWorthRepo.SaveNetWorthEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save net worth entry",
			slog.String("entry_id", entry.EntryID),
			slog.String("type", string(entry.Type)))
		return nil, err
	}

	s.LogInfo(ctx, "Net worth entry created", slog.String("entry_id", entry.EntryID))
	return &entry, nil
}

func (s *netWorthService) GetNetWorthEntryByID(ctx context.Context, userID string, entryID string) (*domain.NetWorthEntry, error) {
	return s.ownedEntry(ctx, userID, entryID)
}

func (s *netWorthService) ListNetWorthEntries(ctx context.Context, userID string) ([]domain.NetWorthEntry, error) {
	entries, err := s.netWorthRepo.ListNetWorthEntries(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list net worth entries", slog.String("user_id", userID))
		return nil, err
	}
	return entries, nil
}

func (s *netWorthService) UpdateNetWorthEntry(ctx context.Context, userID string, entryID string, req dto.UpdateNetWorthEntryRequest) (*domain.NetWorthEntry, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		entry.Type = *req.Type
	}
	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("entry amount must not be negative: %w", apperrors.ErrValidation)
		}
		entry.Amount = *req.Amount
	}

	entry.LastUpdatedAt = s.now()
	entry.LastUpdatedBy = userID

	if err := s.netWorthRepo.UpdateNetWorthEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update net worth entry", slog.String("entry_id", entryID))
		return nil, err
	}
	return entry, nil
}

func (s *netWorthService) DeleteNetWorthEntry(ctx context.Context, userID string, entryID string) error {
	if _, err := s.ownedEntry(ctx, userID, entryID); err != nil {
		return err
	}
	if err := s.netWorthRepo.DeleteNetWorthEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete net worth entry", slog.String("entry_id", entryID))
		return err
	}
	s.LogInfo(ctx, "Net worth entry deleted", slog.String("entry_id", entryID))
	return nil
}

// ownedEntry fetches an entry and enforces that it belongs to userID.
func (s *netWorthService) ownedEntry(ctx context.Context, userID string, entryID string) (*domain.NetWorthEntry, error) {
	entry, err := s.netWorthRepo.FindNetWorthEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find net worth entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	if entry.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return entry, nil
}
