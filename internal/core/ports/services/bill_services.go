package services

import (
	"context"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
)

// BillReaderSvc defines read operations for bill data
type BillReaderSvc interface {
	// GetBillByID retrieves a bill owned by the given user.
	GetBillByID(ctx context.Context, userID string, billID string) (*domain.Bill, error)

	// ListBills retrieves all bills for the user ordered by due date.
	ListBills(ctx context.Context, userID string) ([]domain.Bill, error)
}

// BillWriterSvc defines write operations for bill data
type BillWriterSvc interface {
	// CreateBill persists a new bill for the user.
	CreateBill(ctx context.Context, userID string, req dto.CreateBillRequest) (*domain.Bill, error)

	// UpdateBill updates an existing bill owned by the user.
	UpdateBill(ctx context.Context, userID string, billID string, req dto.UpdateBillRequest) (*domain.Bill, error)

	// DeleteBill removes a bill owned by the user.
	DeleteBill(ctx context.Context, userID string, billID string) error
}

// BillSvcFacade combines all bill-related service interfaces
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
