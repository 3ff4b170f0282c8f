package services

import (
	"context"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
)

// NetWorthReaderSvc defines read operations for net worth entries
type NetWorthReaderSvc interface {
	// GetNetWorthEntryByID retrieves an entry owned by the given user.
	GetNetWorthEntryByID(ctx context.Context, userID string, entryID string) (*domain.NetWorthEntry, error)

	// ListNetWorthEntries retrieves all asset and debt entries for the user.
	ListNetWorthEntries(ctx context.Context, userID string) ([]domain.NetWorthEntry, error)
}

// NetWorthWriterSvc defines write operations for net worth entries
type NetWorthWriterSvc interface {
	// CreateNetWorthEntry persists a new entry for the user.
	CreateNetWorthEntry(ctx context.Context, userID string, req dto.CreateNetWorthEntryRequest) (*domain.NetWorthEntry, error)

	// UpdateNetWorthEntry updates an existing entry owned by the user.
	UpdateNetWorthEntry(ctx context.Context, userID string, entryID string, req dto.UpdateNetWorthEntryRequest) (*domain.NetWorthEntry, error)

	// DeleteNetWorthEntry removes an entry owned by the user.
	DeleteNetWorthEntry(ctx context.Context, userID string, entryID string) error
}

// NetWorthSvcFacade combines all net worth service interfaces
type NetWorthSvcFacade interface {
	NetWorthReaderSvc
	NetWorthWriterSvc
}
