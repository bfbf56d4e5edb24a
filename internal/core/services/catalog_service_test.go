package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/core/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	repo    *MockCatalogRepository
	service portssvc.CatalogSvcFacade
	now     time.Time
	ctx     context.Context
}

func (s *CatalogServiceTestSuite) SetupTest() {
	s.repo = new(MockCatalogRepository)
	s.now = time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)
	s.ctx = context.Background()
	s.service = services.NewCatalogService(s.repo, services.WithCatalogClock(fixedClock(s.now)))
}

func (s *CatalogServiceTestSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (s *CatalogServiceTestSuite) TestCreateItem_Defaults() {
	req := dto.CreateCatalogItemRequest{
		SerialNo: "BK-100",
		Title:    "The Left Hand of Darkness",
		Author:   "Ursula K. Le Guin",
		Category: "Fiction",
	}
	s.repo.On("SaveItem", s.ctx, mock.MatchedBy(func(i domain.CatalogItem) bool {
		return i.ItemID != "" &&
			i.Kind == domain.ItemKindBook &&
			i.TotalCopies == 1 &&
			i.AvailableCopies == 1 &&
			i.IsAvailable &&
			i.Status == domain.ItemStatusAvailable &&
			i.Cost.IsZero() &&
			i.ProcurementDate.Equal(s.now) &&
			i.CreatedBy == "admin-1"
	})).Return(nil).Once()

	item, err := s.service.CreateItem(s.ctx, req, "admin-1")
	s.Require().NoError(err)
	s.Equal("BK-100", item.SerialNo)
}

func (s *CatalogServiceTestSuite) TestCreateItem_RejectsAvailableAboveTotal() {
	total, available := 2, 3
	req := dto.CreateCatalogItemRequest{
		SerialNo:        "BK-101",
		Title:           "Solaris",
		Author:          "Stanislaw Lem",
		Category:        "Fiction",
		TotalCopies:     &total,
		AvailableCopies: &available,
	}

	_, err := s.service.CreateItem(s.ctx, req, "admin-1")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.repo.AssertNotCalled(s.T(), "SaveItem", mock.Anything, mock.Anything)
}

func (s *CatalogServiceTestSuite) TestCreateItem_DuplicateSerial() {
	req := dto.CreateCatalogItemRequest{SerialNo: "BK-1", Title: "t", Author: "a", Category: "c"}
	s.repo.On("SaveItem", s.ctx, mock.Anything).Return(apperrors.NewDuplicateError("catalog item already exists")).Once()

	_, err := s.service.CreateItem(s.ctx, req, "admin-1")
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *CatalogServiceTestSuite) TestUpdateItem_ResizeKeepsLoans() {
	existing := &domain.CatalogItem{
		ItemID: "item-1", SerialNo: "BK-1", Title: "t", Author: "a", Category: "c",
		Kind: domain.ItemKindBook, TotalCopies: 3, AvailableCopies: 1, IsAvailable: true,
		Status: domain.ItemStatusAvailable, Cost: decimal.Zero,
	}
	total := 5
	cost := decimal.RequireFromString("19.99")

	s.repo.expectTx(true)
	s.repo.On("FindItemForUpdate", s.ctx, mock.Anything, "item-1").Return(existing, nil).Once()
	s.repo.On("UpdateItemInTx", s.ctx, mock.Anything, mock.MatchedBy(func(i domain.CatalogItem) bool {
		return i.TotalCopies == 5 && i.AvailableCopies == 3 && i.Cost.Equal(cost) && i.LastUpdatedBy == "admin-2"
	})).Return(nil).Once()

	item, err := s.service.UpdateItem(s.ctx, "item-1", dto.UpdateCatalogItemRequest{TotalCopies: &total, Cost: &cost}, "admin-2")
	s.Require().NoError(err)
	s.Equal(3, item.AvailableCopies)
}

func (s *CatalogServiceTestSuite) TestUpdateItem_ShrinkBelowLoans() {
	existing := &domain.CatalogItem{
		ItemID: "item-1", SerialNo: "BK-1", Title: "t", Author: "a", Category: "c",
		Kind: domain.ItemKindBook, TotalCopies: 3, AvailableCopies: 0,
		Status: domain.ItemStatusIssued,
	}
	total := 2

	s.repo.expectTx(false)
	s.repo.On("FindItemForUpdate", s.ctx, mock.Anything, "item-1").Return(existing, nil).Once()

	_, err := s.service.UpdateItem(s.ctx, "item-1", dto.UpdateCatalogItemRequest{TotalCopies: &total}, "admin-2")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.repo.AssertNotCalled(s.T(), "UpdateItemInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CatalogServiceTestSuite) TestSearchItems_PassesFilter() {
	params := dto.SearchCatalogParams{Title: "dune", Kind: domain.ItemKindBook, Limit: 10, Offset: 5}
	s.repo.On("SearchItems", s.ctx, domain.CatalogFilter{Title: "dune", Kind: domain.ItemKindBook, Limit: 10, Offset: 5}).
		Return([]domain.CatalogItem{{ItemID: "item-1"}}, nil).Once()

	items, err := s.service.SearchItems(s.ctx, params)
	s.Require().NoError(err)
	s.Len(items, 1)
}

func (s *CatalogServiceTestSuite) TestDeleteItem_Referenced() {
	s.repo.On("DeleteItem", s.ctx, "item-1").Return(apperrors.NewConflictError("catalog item is referenced")).Once()

	err := s.service.DeleteItem(s.ctx, "item-1")
	s.ErrorIs(err, apperrors.ErrConflict)
}
