package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem is a row of the catalog_items table.
type CatalogItem struct {
	ItemID          string          `db:"item_id"`
	SerialNo        string          `db:"serial_no"`
	Title           string          `db:"title"`
	Author          string          `db:"author"`
	Kind            string          `db:"kind"`
	Category        string          `db:"category"`
	ISBN            string          `db:"isbn"`
	Publisher       string          `db:"publisher"`
	PublishedYear   *int            `db:"published_year"` // Nullable
	TotalCopies     int             `db:"total_copies"`
	AvailableCopies int             `db:"available_copies"`
	IsAvailable     bool            `db:"is_available"`
	ShelfLocation   string          `db:"shelf_location"`
	Status          string          `db:"status"`
	Cost            decimal.Decimal `db:"cost"`
	ProcurementDate time.Time       `db:"procurement_date"`
	AuditFields
}
