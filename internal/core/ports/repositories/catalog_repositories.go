package repositories

import (
	"context"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CatalogReader defines read operations for catalog items
type CatalogReader interface {
	// FindItemByID retrieves an item by its internal ID.
	FindItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error)
	// FindItemBySerialNo retrieves an item by its serial number.
	FindItemBySerialNo(ctx context.Context, serialNo string) (*domain.CatalogItem, error)
	// SearchItems retrieves the items matching filter, newest first.
	SearchItems(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error)
}

// CatalogWriter defines write operations for catalog items
type CatalogWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.CatalogItem) error
	// DeleteItem removes an item. Items still referenced by the ledger yield ErrConflict.
	DeleteItem(ctx context.Context, itemID string) error
}

// CatalogTxSupport defines operations that run inside a caller-owned transaction
type CatalogTxSupport interface {
	// FindItemForUpdate loads an item and locks its row until tx ends.
	FindItemForUpdate(ctx context.Context, tx pgx.Tx, itemID string) (*domain.CatalogItem, error)
	// UpdateItemInTx writes all mutable columns of item.
	UpdateItemInTx(ctx context.Context, tx pgx.Tx, item domain.CatalogItem) error
}

// CatalogRepositoryFacade combines all catalog repository interfaces
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
	CatalogTxSupport
	TransactionManager
}
