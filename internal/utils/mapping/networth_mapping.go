package mapping

import (
	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	"github.com/pennywiseapp/pennywise_backend/internal/models"
)

// ToModelNetWorthEntry converts a domain NetWorthEntry to a model NetWorthEntry
func ToModelNetWorthEntry(d domain.NetWorthEntry) models.NetWorthEntry {
	return models.NetWorthEntry{
		EntryID:     d.EntryID,
		UserID:      d.UserID,
		Type:        string(d.Type),
		Name:        d.Name,
		Amount:      d.Amount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainNetWorthEntry converts a model NetWorthEntry to a domain NetWorthEntry
func ToDomainNetWorthEntry(m models.NetWorthEntry) domain.NetWorthEntry {
	return domain.NetWorthEntry{
		EntryID:     m.EntryID,
		UserID:      m.UserID,
		Type:        domain.NetWorthEntryType(m.Type),
		Name:        m.Name,
		Amount:      m.Amount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainNetWorthEntrySlice converts a slice of model NetWorthEntries to domain NetWorthEntries
func ToDomainNetWorthEntrySlice(ms []models.NetWorthEntry) []domain.NetWorthEntry {
	ds := make([]domain.NetWorthEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNetWorthEntry(m)
	}
	return ds
}
