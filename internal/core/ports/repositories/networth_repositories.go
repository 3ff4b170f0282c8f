package repositories

import (
	"context"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
)

// NetWorthReader defines read operations for net worth entries
type NetWorthReader interface {
	// FindNetWorthEntryByID retrieves a specific entry by its unique identifier.
	FindNetWorthEntryByID(ctx context.Context, entryID string) (*domain.NetWorthEntry, error)

	// ListNetWorthEntries retrieves all asset and debt entries for a user, oldest first.
	ListNetWorthEntries(ctx context.Context, userID string) ([]domain.NetWorthEntry, error)
}

// NetWorthWriter defines write operations for net worth entries
type NetWorthWriter interface {
	// SaveNetWorthEntry persists a new entry.
	SaveNetWorthEntry(ctx context.Context, entry domain.NetWorthEntry) error

	// UpdateNetWorthEntry updates an existing entry's details.
	UpdateNetWorthEntry(ctx context.Context, entry domain.NetWorthEntry) error

	// DeleteNetWorthEntry removes an entry permanently.
	DeleteNetWorthEntry(ctx context.Context, entryID string) error
}

// NetWorthRepositoryFacade combines all net worth repository interfaces
type NetWorthRepositoryFacade interface {
	NetWorthReader
	NetWorthWriter
}
