package repositories

import (
	"context"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
)

// BillReader defines read operations for bill data
type BillReader interface {
	// FindBillByID retrieves a specific bill by its unique identifier.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBills retrieves all bills for a user ordered by due date ascending.
	ListBills(ctx context.Context, userID string) ([]domain.Bill, error)
}

// BillWriter defines write operations for bill data
type BillWriter interface {
	// SaveBill persists a new bill.
	SaveBill(ctx context.Context, bill domain.Bill) error

	// UpdateBill updates an existing bill's details.
	UpdateBill(ctx context.Context, bill domain.Bill) error

	// DeleteBill removes a bill permanently.
	DeleteBill(ctx context.Context, billID string) error
}

// BillRepositoryFacade combines all bill-related repository interfaces
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
