package dto

import (
	"time"

	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateNetWorthEntryRequest defines the data needed to record an asset or debt.
type CreateNetWorthEntryRequest struct {
	Type   domain.NetWorthEntryType `json:"type" binding:"required,oneof=asset debt"`
	Name   string                   `json:"name" binding:"required"`
	Amount decimal.Decimal          `json:"amount" binding:"required,gt=0"`
}

// UpdateNetWorthEntryRequest defines the data allowed for updating an entry.
type UpdateNetWorthEntryRequest struct {
	Type   *domain.NetWorthEntryType `json:"type" binding:"omitempty,oneof=asset debt"`
	Name   *string                   `json:"name"`
	Amount *decimal.Decimal          `json:"amount" binding:"omitempty,gt=0"`
}

// NetWorthEntryResponse defines the data returned for an asset or debt entry.
type NetWorthEntryResponse struct {
	EntryID       string                   `json:"entryID"`
	Type          domain.NetWorthEntryType `json:"type"`
	Name          string                   `json:"name"`
	Amount        decimal.Decimal          `json:"amount"`
	CreatedAt     time.Time                `json:"createdAt"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
}

// ToNetWorthEntryResponse converts a domain.NetWorthEntry to its response DTO
func ToNetWorthEntryResponse(e *domain.NetWorthEntry) NetWorthEntryResponse {
	return NetWorthEntryResponse{
		EntryID:       e.EntryID,
		Type:          e.Type,
		Name:          e.Name,
		Amount:        e.Amount,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListNetWorthEntryResponse converts a slice of domain.NetWorthEntry to response DTOs
func ToListNetWorthEntryResponse(entries []domain.NetWorthEntry) ListNetWorthEntriesResponse {
	res := make([]NetWorthEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToNetWorthEntryResponse(&e)
	}
	return ListNetWorthEntriesResponse{Entries: res}
}

// ListNetWorthEntriesResponse wraps the list of entries.
type ListNetWorthEntriesResponse struct {
	Entries []NetWorthEntryResponse `json:"entries"`
}
