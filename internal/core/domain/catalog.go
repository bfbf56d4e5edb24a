package domain

import (
	"time"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ItemKind distinguishes the media held in the catalog.
type ItemKind string

const (
	ItemKindBook  ItemKind = "book"
	ItemKindMovie ItemKind = "movie"
)

// IsValid reports whether k is a known kind.
func (k ItemKind) IsValid() bool {
	return k == ItemKindBook || k == ItemKindMovie
}

// ItemStatus is the catalog-level status kept alongside AvailableCopies.
type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "Available"
	ItemStatusIssued    ItemStatus = "Issued"
	ItemStatusDamaged   ItemStatus = "Damaged"
)

// IsValid reports whether s is a known status.
func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusAvailable, ItemStatusIssued, ItemStatusDamaged:
		return true
	}
	return false
}

// CatalogItem is a book or movie with copy-availability counters.
type CatalogItem struct {
	ItemID          string          `json:"itemID"`
	SerialNo        string          `json:"serialNo"`
	Title           string          `json:"title"`
	Author          string          `json:"author"`
	Kind            ItemKind        `json:"kind"`
	Category        string          `json:"category"`
	ISBN            string          `json:"isbn,omitempty"`
	Publisher       string          `json:"publisher,omitempty"`
	PublishedYear   *int            `json:"publishedYear,omitempty"`
	TotalCopies     int             `json:"totalCopies"`
	AvailableCopies int             `json:"availableCopies"`
	IsAvailable     bool            `json:"isAvailable"`
	ShelfLocation   string          `json:"shelfLocation,omitempty"`
	Status          ItemStatus      `json:"status"`
	Cost            decimal.Decimal `json:"cost"`
	ProcurementDate time.Time       `json:"procurementDate"`
	AuditFields
}

// CatalogItemSummary is the slice of item data joined into ledger and report rows.
type CatalogItemSummary struct {
	ItemID   string   `json:"itemID"`
	SerialNo string   `json:"serialNo"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Kind     ItemKind `json:"kind"`
	Category string   `json:"category"`
}

// Summary returns the joined view of the item.
func (i CatalogItem) Summary() CatalogItemSummary {
	return CatalogItemSummary{
		ItemID:   i.ItemID,
		SerialNo: i.SerialNo,
		Title:    i.Title,
		Author:   i.Author,
		Kind:     i.Kind,
		Category: i.Category,
	}
}

// CatalogFilter narrows a catalog search. Empty fields do not filter.
type CatalogFilter struct {
	Title    string
	Author   string
	Category string
	SerialNo string
	Kind     ItemKind
	Limit    int
	Offset   int
}

// Validate checks the copy counters and enumerations.
func (i CatalogItem) Validate() error {
	if i.SerialNo == "" || i.Title == "" || i.Author == "" || i.Category == "" {
		return apperrors.NewValidationError("serialNo, title, author and category are required")
	}
	if !i.Kind.IsValid() {
		return apperrors.NewValidationError("kind must be book or movie")
	}
	if !i.Status.IsValid() {
		return apperrors.NewValidationError("status must be Available, Issued or Damaged")
	}
	if i.TotalCopies < 1 {
		return apperrors.NewValidationError("totalCopies must be at least 1")
	}
	if i.AvailableCopies < 0 || i.AvailableCopies > i.TotalCopies {
		return apperrors.NewValidationError("availableCopies must be between 0 and totalCopies")
	}
	if i.Cost.IsNegative() {
		return apperrors.NewValidationError("cost cannot be negative")
	}
	return nil
}

// EnsureAvailable fails with ErrUnavailable when no copy can be lent.
func (i CatalogItem) EnsureAvailable() error {
	if i.AvailableCopies <= 0 {
		return apperrors.ErrUnavailable
	}
	return nil
}

// CheckOut takes one copy off the shelf.
func (i *CatalogItem) CheckOut() error {
	if err := i.EnsureAvailable(); err != nil {
		return err
	}
	i.AvailableCopies--
	if i.AvailableCopies == 0 {
		i.IsAvailable = false
		if i.Status != ItemStatusDamaged {
			i.Status = ItemStatusIssued
		}
	}
	return nil
}

// CheckIn puts one copy back, never exceeding TotalCopies.
func (i *CatalogItem) CheckIn() {
	wasEmpty := i.AvailableCopies == 0
	if i.AvailableCopies < i.TotalCopies {
		i.AvailableCopies++
	}
	if i.AvailableCopies > 0 {
		i.IsAvailable = true
		if wasEmpty && i.Status == ItemStatusIssued {
			i.Status = ItemStatusAvailable
		}
	}
}

// Resize changes TotalCopies and shifts AvailableCopies by the same delta so the
// number of copies on loan stays unchanged.
func (i *CatalogItem) Resize(total int) error {
	if total < 1 {
		return apperrors.NewValidationError("totalCopies must be at least 1")
	}
	onLoan := i.TotalCopies - i.AvailableCopies
	if total < onLoan {
		return apperrors.NewValidationError("totalCopies cannot be lower than the copies currently on loan")
	}
	i.TotalCopies = total
	i.AvailableCopies = total - onLoan
	i.IsAvailable = i.AvailableCopies > 0
	switch {
	case i.AvailableCopies == 0 && i.Status == ItemStatusAvailable:
		i.Status = ItemStatusIssued
	case i.AvailableCopies > 0 && i.Status == ItemStatusIssued:
		i.Status = ItemStatusAvailable
	}
	return nil
}
