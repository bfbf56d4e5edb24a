package mapping

import (
	"testing"
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCatalogItemMappingPreservesCostAndYear(t *testing.T) {
	year := 1999
	d := domain.CatalogItem{
		ItemID:          "item-1",
		SerialNo:        "BK-1",
		Title:           "Go",
		Author:          "Pike",
		Kind:            domain.ItemKindBook,
		Category:        "CS",
		PublishedYear:   &year,
		TotalCopies:     3,
		AvailableCopies: 2,
		IsAvailable:     true,
		Status:          domain.ItemStatusAvailable,
		Cost:            decimal.RequireFromString("499.90"),
	}

	back := ToDomainCatalogItem(ToModelCatalogItem(d))
	assert.Equal(t, d.ItemID, back.ItemID)
	assert.True(t, d.Cost.Equal(back.Cost))
	assert.Equal(t, 1999, *back.PublishedYear)
	assert.Equal(t, domain.ItemKindBook, back.Kind)
}

func TestTransactionWithRefsAttachesSummaries(t *testing.T) {
	now := time.Now()
	m := models.TransactionWithRefs{
		Transaction: models.Transaction{
			TransactionID: "TXN000001",
			ItemID:        "item-1",
			MemberID:      "member-1",
			Status:        "issued",
			IssueDate:     now,
			DueDate:       now.AddDate(0, 0, 7),
		},
		Item:   models.ItemRef{ItemID: "item-1", Title: "Go", Kind: "book"},
		Member: models.MemberRef{MemberID: "member-1", MembershipNo: "MEM00001", Name: "Ada"},
	}

	d := ToDomainTransactionWithRefs(m)
	assert.Equal(t, domain.TransactionStatusIssued, d.Status)
	if assert.NotNil(t, d.Item) && assert.NotNil(t, d.Member) {
		assert.Equal(t, "Go", d.Item.Title)
		assert.Equal(t, "MEM00001", d.Member.MembershipNo)
	}
	assert.True(t, d.IsOpen())
}
