package dto

import (
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the data needed to track an upcoming bill.
type CreateBillRequest struct {
	Name    string          `json:"name" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required,gt=0"`
	DueDate time.Time       `json:"dueDate" binding:"required" time_format:"2006-01-02"`
}

// UpdateBillRequest defines the data allowed for updating a bill.
type UpdateBillRequest struct {
	Name    *string          `json:"name"`
	Amount  *decimal.Decimal `json:"amount" binding:"omitempty,gt=0"`
	DueDate *time.Time       `json:"dueDate" time_format:"2006-01-02"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	BillID        string          `json:"billID"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToBillResponse converts a domain.Bill to BillResponse DTO
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:        b.BillID,
		Name:          b.Name,
		Amount:        b.Amount,
		DueDate:       b.DueDate,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToListBillResponse converts a slice of domain.Bill to response DTOs
func ToListBillResponse(bills []domain.Bill) ListBillsResponse {
	res := make([]BillResponse, len(bills))
	for i, b := range bills {
		res[i] = ToBillResponse(&b)
	}
	return ListBillsResponse{Bills: res}
}

// ListBillsResponse wraps the list of bills.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}

// ListBillRemindersResponse wraps the reminder report, most urgent first.
type ListBillRemindersResponse struct {
	Reminders []domain.BillReminder `json:"reminders"`
}
