package services

import (
	"context"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/dto"
)

// CatalogReaderSvc defines read operations on the catalog
type CatalogReaderSvc interface {
	GetItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	ListItems(ctx context.Context, limit, offset int) ([]domain.CatalogItem, error)
	SearchItems(ctx context.Context, params dto.SearchCatalogParams) ([]domain.CatalogItem, error)
}

// CatalogWriterSvc defines admin write operations on the catalog
type CatalogWriterSvc interface {
	CreateItem(ctx context.Context, req dto.CreateCatalogItemRequest, actorID string) (*domain.CatalogItem, error)
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateCatalogItemRequest, actorID string) (*domain.CatalogItem, error)
	DeleteItem(ctx context.Context, itemID string) error
}

// CatalogSvcFacade combines all catalog service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
