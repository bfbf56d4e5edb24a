package mapping

import (
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/models"
)

// ToModelCatalogItem converts a domain CatalogItem to a model CatalogItem
func ToModelCatalogItem(d domain.CatalogItem) models.CatalogItem {
	return models.CatalogItem{
		ItemID:          d.ItemID,
		SerialNo:        d.SerialNo,
		Title:           d.Title,
		Author:          d.Author,
		Kind:            string(d.Kind),
		Category:        d.Category,
		ISBN:            d.ISBN,
		Publisher:       d.Publisher,
		PublishedYear:   d.PublishedYear,
		TotalCopies:     d.TotalCopies,
		AvailableCopies: d.AvailableCopies,
		IsAvailable:     d.IsAvailable,
		ShelfLocation:   d.ShelfLocation,
		Status:          string(d.Status),
		Cost:            d.Cost,
		ProcurementDate: d.ProcurementDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCatalogItem converts a model CatalogItem to a domain CatalogItem
func ToDomainCatalogItem(m models.CatalogItem) domain.CatalogItem {
	return domain.CatalogItem{
		ItemID:          m.ItemID,
		SerialNo:        m.SerialNo,
		Title:           m.Title,
		Author:          m.Author,
		Kind:            domain.ItemKind(m.Kind),
		Category:        m.Category,
		ISBN:            m.ISBN,
		Publisher:       m.Publisher,
		PublishedYear:   m.PublishedYear,
		TotalCopies:     m.TotalCopies,
		AvailableCopies: m.AvailableCopies,
		IsAvailable:     m.IsAvailable,
		ShelfLocation:   m.ShelfLocation,
		Status:          domain.ItemStatus(m.Status),
		Cost:            m.Cost,
		ProcurementDate: m.ProcurementDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCatalogItemSlice converts model items to domain items
func ToDomainCatalogItemSlice(ms []models.CatalogItem) []domain.CatalogItem {
	ds := make([]domain.CatalogItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCatalogItem(m)
	}
	return ds
}

// ToDomainItemSummary converts a joined item reference to a domain summary.
func ToDomainItemSummary(m models.ItemRef) *domain.CatalogItemSummary {
	return &domain.CatalogItemSummary{
		ItemID:   m.ItemID,
		SerialNo: m.SerialNo,
		Title:    m.Title,
		Author:   m.Author,
		Kind:     domain.ItemKind(m.Kind),
		Category: m.Category,
	}
}
