package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// catalogService implements portssvc.CatalogSvcFacade
type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
}

// CatalogServiceOption is a functional option for configuring the catalog service
type CatalogServiceOption func(*catalogService)

// WithCatalogClock overrides the time source.
func WithCatalogClock(clock Clock) CatalogServiceOption {
	return func(s *catalogService) {
		s.clock = clock
	}
}

// NewCatalogService creates a new catalog service with the provided options
func NewCatalogService(repo portsrepo.CatalogRepositoryFacade, options ...CatalogServiceOption) portssvc.CatalogSvcFacade {
	svc := &catalogService{catalogRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) GetItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	item, err := s.catalogRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog item %s: %w", itemID, err)
	}
	return item, nil
}

func (s *catalogService) ListItems(ctx context.Context, limit, offset int) ([]domain.CatalogItem, error) {
	items, err := s.catalogRepo.SearchItems(ctx, domain.CatalogFilter{Limit: limit, Offset: offset})
	if err != nil {
		s.LogError(ctx, err, "Failed to list catalog items")
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	return items, nil
}

func (s *catalogService) SearchItems(ctx context.Context, params dto.SearchCatalogParams) ([]domain.CatalogItem, error) {
	items, err := s.catalogRepo.SearchItems(ctx, params.ToFilter())
	if err != nil {
		s.LogError(ctx, err, "Failed to search catalog items")
		return nil, fmt.Errorf("failed to search catalog items: %w", err)
	}
	return items, nil
}

func (s *catalogService) CreateItem(ctx context.Context, req dto.CreateCatalogItemRequest, actorID string) (*domain.CatalogItem, error) {
	now := s.Now()

	item := domain.CatalogItem{
		ItemID:          uuid.NewString(),
		SerialNo:        req.SerialNo,
		Title:           req.Title,
		Author:          req.Author,
		Kind:            req.Kind,
		Category:        req.Category,
		ISBN:            req.ISBN,
		Publisher:       req.Publisher,
		PublishedYear:   req.PublishedYear,
		TotalCopies:     1,
		ShelfLocation:   req.ShelfLocation,
		Status:          req.Status,
		Cost:            decimal.Zero,
		ProcurementDate: now,
		AuditFields:     domain.NewAuditFields(actorID, now),
	}
	if item.Kind == "" {
		item.Kind = domain.ItemKindBook
	}
	if req.TotalCopies != nil {
		item.TotalCopies = *req.TotalCopies
	}
	item.AvailableCopies = item.TotalCopies
	if req.AvailableCopies != nil {
		item.AvailableCopies = *req.AvailableCopies
	}
	item.IsAvailable = item.AvailableCopies > 0
	if item.Status == "" {
		item.Status = domain.ItemStatusAvailable
		if !item.IsAvailable {
			item.Status = domain.ItemStatusIssued
		}
	}
	if req.Cost != nil {
		item.Cost = *req.Cost
	}
	if req.ProcurementDate != nil {
		item.ProcurementDate = req.ProcurementDate.Time
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.catalogRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save catalog item", slog.String("serial_no", item.SerialNo))
		return nil, fmt.Errorf("failed to create catalog item: %w", err)
	}

	s.LogInfo(ctx, "Catalog item created", slog.String("item_id", item.ItemID), slog.String("serial_no", item.SerialNo))
	return &item, nil
}

// UpdateItem edits metadata under a row lock so copy counts cannot race a concurrent issue or return.
func (s *catalogService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateCatalogItemRequest, actorID string) (*domain.CatalogItem, error) {
	tx, err := s.catalogRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := s.catalogRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back catalog update", slog.String("item_id", itemID))
		}
	}()

	item, err := s.catalogRepo.FindItemForUpdate(ctx, tx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog item %s: %w", itemID, err)
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Author != nil {
		item.Author = *req.Author
	}
	if req.Kind != nil {
		item.Kind = *req.Kind
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.ISBN != nil {
		item.ISBN = *req.ISBN
	}
	if req.Publisher != nil {
		item.Publisher = *req.Publisher
	}
	if req.PublishedYear != nil {
		item.PublishedYear = req.PublishedYear
	}
	if req.ShelfLocation != nil {
		item.ShelfLocation = *req.ShelfLocation
	}
	if req.Cost != nil {
		item.Cost = *req.Cost
	}
	if req.ProcurementDate != nil {
		item.ProcurementDate = req.ProcurementDate.Time
	}
	if req.TotalCopies != nil && *req.TotalCopies != item.TotalCopies {
		if err := item.Resize(*req.TotalCopies); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		item.Status = *req.Status
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.Touch(actorID, s.Now())

	if err := s.catalogRepo.UpdateItemInTx(ctx, tx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update catalog item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update catalog item %s: %w", itemID, err)
	}
	if err := s.catalogRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) DeleteItem(ctx context.Context, itemID string) error {
	if err := s.catalogRepo.DeleteItem(ctx, itemID); err != nil {
		s.LogError(ctx, err, "Failed to delete catalog item", slog.String("item_id", itemID))
		return fmt.Errorf("failed to delete catalog item %s: %w", itemID, err)
	}
	s.LogInfo(ctx, "Catalog item deleted", slog.String("item_id", itemID))
	return nil
}
