package domain_test

import (
	"math/rand"
	"testing"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() domain.CatalogItem {
	return domain.CatalogItem{
		SerialNo:        "BK-SCI-010",
		Title:           "A Brief History of Time",
		Author:          "Stephen Hawking",
		Kind:            domain.ItemKindBook,
		Category:        "Science",
		TotalCopies:     3,
		AvailableCopies: 3,
		IsAvailable:     true,
		Status:          domain.ItemStatusAvailable,
		Cost:            decimal.RequireFromString("499.50"),
	}
}

func TestCatalogItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(i *domain.CatalogItem)
		wantErr bool
	}{
		{name: "valid", mutate: func(i *domain.CatalogItem) {}},
		{name: "missing title", mutate: func(i *domain.CatalogItem) { i.Title = "" }, wantErr: true},
		{name: "unknown kind", mutate: func(i *domain.CatalogItem) { i.Kind = "magazine" }, wantErr: true},
		{name: "unknown status", mutate: func(i *domain.CatalogItem) { i.Status = "Lost" }, wantErr: true},
		{name: "zero copies", mutate: func(i *domain.CatalogItem) { i.TotalCopies = 0; i.AvailableCopies = 0 }, wantErr: true},
		{name: "available above total", mutate: func(i *domain.CatalogItem) { i.AvailableCopies = 4 }, wantErr: true},
		{name: "negative available", mutate: func(i *domain.CatalogItem) { i.AvailableCopies = -1 }, wantErr: true},
		{name: "negative cost", mutate: func(i *domain.CatalogItem) { i.Cost = decimal.NewFromInt(-1) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			tt.mutate(&item)
			err := item.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogItem_AvailabilityConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	item := validItem()
	onLoan := 0

	for step := 0; step < 500; step++ {
		if rng.Intn(2) == 0 {
			err := item.CheckOut()
			if onLoan == item.TotalCopies {
				require.ErrorIs(t, err, apperrors.ErrUnavailable)
			} else {
				require.NoError(t, err)
				onLoan++
			}
		} else if onLoan > 0 {
			item.CheckIn()
			onLoan--
		}

		require.GreaterOrEqual(t, item.AvailableCopies, 0)
		require.LessOrEqual(t, item.AvailableCopies, item.TotalCopies)
		require.Equal(t, item.TotalCopies-onLoan, item.AvailableCopies)
		require.Equal(t, item.AvailableCopies > 0, item.IsAvailable)
	}
}

func TestCatalogItem_CheckInCappedAtTotal(t *testing.T) {
	item := validItem()
	item.CheckIn()
	assert.Equal(t, item.TotalCopies, item.AvailableCopies)
}

func TestCatalogItem_CheckInKeepsDamaged(t *testing.T) {
	item := validItem()
	item.TotalCopies, item.AvailableCopies = 1, 1
	item.Status = domain.ItemStatusDamaged

	require.NoError(t, item.CheckOut())
	assert.Equal(t, domain.ItemStatusDamaged, item.Status)

	item.CheckIn()
	assert.Equal(t, domain.ItemStatusDamaged, item.Status)
	assert.True(t, item.IsAvailable)
}

func TestCatalogItem_Resize(t *testing.T) {
	item := validItem()
	require.NoError(t, item.CheckOut())
	require.NoError(t, item.CheckOut())

	require.NoError(t, item.Resize(5))
	assert.Equal(t, 5, item.TotalCopies)
	assert.Equal(t, 3, item.AvailableCopies)

	require.NoError(t, item.Resize(2))
	assert.Equal(t, 0, item.AvailableCopies)
	assert.False(t, item.IsAvailable)
	assert.Equal(t, domain.ItemStatusIssued, item.Status)

	assert.ErrorIs(t, item.Resize(1), apperrors.ErrValidation)
	assert.ErrorIs(t, item.Resize(0), apperrors.ErrValidation)
}
