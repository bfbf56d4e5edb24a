package dto

import (
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCatalogItemRequest defines the data needed to add a book or movie.
type CreateCatalogItemRequest struct {
	SerialNo        string            `json:"serialNo" binding:"required,max=64"`
	Title           string            `json:"title" binding:"required"`
	Author          string            `json:"author" binding:"required"`
	Kind            domain.ItemKind   `json:"kind" binding:"omitempty,itemkind"`
	Category        string            `json:"category" binding:"required"`
	ISBN            string            `json:"isbn"`
	Publisher       string            `json:"publisher"`
	PublishedYear   *int              `json:"publishedYear" binding:"omitempty,min=0,max=9999"`
	TotalCopies     *int              `json:"totalCopies" binding:"omitempty,min=1"`
	AvailableCopies *int              `json:"availableCopies" binding:"omitempty,min=0"`
	ShelfLocation   string            `json:"shelfLocation"`
	Status          domain.ItemStatus `json:"status" binding:"omitempty,itemstatus"`
	Cost            *decimal.Decimal  `json:"cost"`
	ProcurementDate *Date             `json:"procurementDate" swaggertype:"string" example:"2023-09-30"`
}

// UpdateCatalogItemRequest defines the fields an admin may edit.
// Pointers distinguish omitted fields from zero values.
type UpdateCatalogItemRequest struct {
	Title           *string            `json:"title" binding:"omitempty,min=1"`
	Author          *string            `json:"author" binding:"omitempty,min=1"`
	Kind            *domain.ItemKind   `json:"kind" binding:"omitempty,itemkind"`
	Category        *string            `json:"category" binding:"omitempty,min=1"`
	ISBN            *string            `json:"isbn"`
	Publisher       *string            `json:"publisher"`
	PublishedYear   *int               `json:"publishedYear" binding:"omitempty,min=0,max=9999"`
	TotalCopies     *int               `json:"totalCopies" binding:"omitempty,min=1"`
	ShelfLocation   *string            `json:"shelfLocation"`
	Status          *domain.ItemStatus `json:"status" binding:"omitempty,itemstatus"`
	Cost            *decimal.Decimal   `json:"cost"`
	ProcurementDate *Date              `json:"procurementDate" swaggertype:"string" example:"2023-09-30"`
}

// ListCatalogParams defines query parameters for listing the catalog.
type ListCatalogParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// SearchCatalogParams defines query parameters for catalog search.
type SearchCatalogParams struct {
	Title    string          `form:"title"`
	Author   string          `form:"author"`
	Category string          `form:"category"`
	SerialNo string          `form:"serialNo"`
	Kind     domain.ItemKind `form:"kind" binding:"omitempty,itemkind"`
	Limit    int             `form:"limit,default=20" binding:"min=1,max=100"`
	Offset   int             `form:"offset,default=0" binding:"min=0"`
}

// ToFilter converts the query parameters into a repository filter.
func (p SearchCatalogParams) ToFilter() domain.CatalogFilter {
	return domain.CatalogFilter{
		Title:    p.Title,
		Author:   p.Author,
		Category: p.Category,
		SerialNo: p.SerialNo,
		Kind:     p.Kind,
		Limit:    p.Limit,
		Offset:   p.Offset,
	}
}

// CatalogItemResponse defines the data returned for a catalog item.
type CatalogItemResponse struct {
	ItemID          string            `json:"itemID"`
	SerialNo        string            `json:"serialNo"`
	Title           string            `json:"title"`
	Author          string            `json:"author"`
	Kind            domain.ItemKind   `json:"kind"`
	Category        string            `json:"category"`
	ISBN            string            `json:"isbn,omitempty"`
	Publisher       string            `json:"publisher,omitempty"`
	PublishedYear   *int              `json:"publishedYear,omitempty"`
	TotalCopies     int               `json:"totalCopies"`
	AvailableCopies int               `json:"availableCopies"`
	IsAvailable     bool              `json:"isAvailable"`
	ShelfLocation   string            `json:"shelfLocation,omitempty"`
	Status          domain.ItemStatus `json:"status"`
	Cost            decimal.Decimal   `json:"cost"`
	ProcurementDate time.Time         `json:"procurementDate"`
	CreatedAt       time.Time         `json:"createdAt"`
	LastUpdatedAt   time.Time         `json:"lastUpdatedAt"`
}

// ListCatalogItemsResponse wraps a page of catalog items.
type ListCatalogItemsResponse struct {
	Items []CatalogItemResponse `json:"items"`
	Count int                   `json:"count"`
}

// ToCatalogItemResponse converts a domain.CatalogItem to its response DTO.
func ToCatalogItemResponse(item *domain.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ItemID:          item.ItemID,
		SerialNo:        item.SerialNo,
		Title:           item.Title,
		Author:          item.Author,
		Kind:            item.Kind,
		Category:        item.Category,
		ISBN:            item.ISBN,
		Publisher:       item.Publisher,
		PublishedYear:   item.PublishedYear,
		TotalCopies:     item.TotalCopies,
		AvailableCopies: item.AvailableCopies,
		IsAvailable:     item.IsAvailable,
		ShelfLocation:   item.ShelfLocation,
		Status:          item.Status,
		Cost:            item.Cost,
		ProcurementDate: item.ProcurementDate,
		CreatedAt:       item.CreatedAt,
		LastUpdatedAt:   item.LastUpdatedAt,
	}
}

// ToListCatalogItemsResponse converts a slice of items.
func ToListCatalogItemsResponse(items []domain.CatalogItem) ListCatalogItemsResponse {
	out := make([]CatalogItemResponse, len(items))
	for i := range items {
		out[i] = ToCatalogItemResponse(&items[i])
	}
	return ListCatalogItemsResponse{Items: out, Count: len(out)}
}
