package dto

import (
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record an income or expense.
type CreateTransactionRequest struct {
	Type      domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Category  string                 `json:"category" binding:"required"`
	Amount    decimal.Decimal        `json:"amount" binding:"required,gt=0"`
	Date      time.Time              `json:"date" binding:"required" time_format:"2006-01-02"`
	Note      string                 `json:"note"`                                              // Optional
	Frequency domain.Frequency       `json:"frequency" binding:"omitempty,oneof=one-time weekly monthly"` // Income only; defaults to one-time
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Type      *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Category  *string                 `json:"category"`
	Amount    *decimal.Decimal        `json:"amount" binding:"omitempty,gt=0"`
	Date      *time.Time              `json:"date" time_format:"2006-01-02"`
	Note      *string                 `json:"note"`
	Frequency *domain.Frequency       `json:"frequency" binding:"omitempty,oneof=one-time weekly monthly"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Type     string `form:"type" binding:"omitempty,oneof=income expense"`
	Category string `form:"category"`
	Keyword  string `form:"q"` // Matched against note and category, case-insensitive
	From     string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To       string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// ToFilter converts query parameters into the domain filter.
// Date parsing is safe to ignore here because the binding layer has already
// validated the format.
func (p ListTransactionsParams) ToFilter() domain.TransactionFilter {
	filter := domain.TransactionFilter{
		Type:     domain.TransactionType(p.Type),
		Category: p.Category,
		Keyword:  p.Keyword,
	}
	if p.From != "" {
		if t, err := time.Parse("2006-01-02", p.From); err == nil {
			filter.DateFrom = &t
		}
	}
	if p.To != "" {
		if t, err := time.Parse("2006-01-02", p.To); err == nil {
			filter.DateTo = &t
		}
	}
	return filter
}

// TransactionResponse defines the data returned for a transaction.
// Mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Type          domain.TransactionType `json:"type"`
	Category      string                 `json:"category"`
	Amount        decimal.Decimal        `json:"amount"`
	Date          time.Time              `json:"date"`
	Note          string                 `json:"note"`
	Frequency     domain.Frequency       `json:"frequency"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          txn.Type,
		Category:      txn.Category,
		Amount:        txn.Amount,
		Date:          txn.Date,
		Note:          txn.Note,
		Frequency:     txn.Frequency,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return ListTransactionsResponse{Transactions: res}
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
