package pgsql

import (
	"context"
	"net/http"
	"strings"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	"github.com/debugger-rana/library-management-system/internal/models"
	"github.com/debugger-rana/library-management-system/internal/utils/mapping"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dialectPostgres = "postgres"

const catalogItemColumns = `item_id, serial_no, title, author, kind, category, isbn, publisher, published_year,
	total_copies, available_copies, is_available, shelf_location, status, cost, procurement_date,
	created_at, created_by, last_updated_at, last_updated_by`

var catalogItemSelect = []any{
	"item_id", "serial_no", "title", "author", "kind", "category", "isbn", "publisher", "published_year",
	"total_copies", "available_copies", "is_available", "shelf_location", "status", "cost", "procurement_date",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

type PgxCatalogRepository struct {
	BaseRepository
}

func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

func scanCatalogItem(row pgx.Row) (models.CatalogItem, error) {
	var m models.CatalogItem
	err := row.Scan(
		&m.ItemID,
		&m.SerialNo,
		&m.Title,
		&m.Author,
		&m.Kind,
		&m.Category,
		&m.ISBN,
		&m.Publisher,
		&m.PublishedYear,
		&m.TotalCopies,
		&m.AvailableCopies,
		&m.IsAvailable,
		&m.ShelfLocation,
		&m.Status,
		&m.Cost,
		&m.ProcurementDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCatalogRepository) findOne(ctx context.Context, q dbtx, where string, arg any) (*domain.CatalogItem, error) {
	query := `SELECT ` + catalogItemColumns + ` FROM catalog_items WHERE ` + where
	m, err := scanCatalogItem(q.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, translateError(err, "catalog item", "find catalog item")
	}
	item := mapping.ToDomainCatalogItem(m)
	return &item, nil
}

func (r *PgxCatalogRepository) FindItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	return r.findOne(ctx, r.Pool, "item_id = $1", itemID)
}

func (r *PgxCatalogRepository) FindItemBySerialNo(ctx context.Context, serialNo string) (*domain.CatalogItem, error) {
	return r.findOne(ctx, r.Pool, "serial_no = $1", serialNo)
}

func (r *PgxCatalogRepository) FindItemForUpdate(ctx context.Context, tx pgx.Tx, itemID string) (*domain.CatalogItem, error) {
	return r.findOne(ctx, tx, "item_id = $1 FOR UPDATE", itemID)
}

// buildSearchQuery renders the catalog search as a prepared statement.
func buildSearchQuery(filter domain.CatalogFilter) (string, []any, error) {
	ds := goqu.Dialect(dialectPostgres).
		From("catalog_items").
		Select(catalogItemSelect...).
		Prepared(true)

	conds := make([]goqu.Expression, 0, 5)
	if filter.Title != "" {
		conds = append(conds, goqu.C("title").ILike("%"+escapeLike(filter.Title)+"%"))
	}
	if filter.Author != "" {
		conds = append(conds, goqu.C("author").ILike("%"+escapeLike(filter.Author)+"%"))
	}
	if filter.Category != "" {
		conds = append(conds, goqu.C("category").ILike("%"+escapeLike(filter.Category)+"%"))
	}
	if filter.SerialNo != "" {
		conds = append(conds, goqu.C("serial_no").Eq(filter.SerialNo))
	}
	if filter.Kind != "" {
		conds = append(conds, goqu.C("kind").Eq(string(filter.Kind)))
	}
	if len(conds) > 0 {
		ds = ds.Where(conds...)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	ds = ds.Order(goqu.C("created_at").Desc(), goqu.C("item_id").Desc()).
		Limit(uint(limit)).
		Offset(uint(offset))

	return ds.ToSQL()
}

func (r *PgxCatalogRepository) SearchItems(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	query, args, err := buildSearchQuery(filter)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build catalog search", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "catalog item", "search catalog items")
	}
	defer rows.Close()

	items := make([]models.CatalogItem, 0)
	for rows.Next() {
		m, err := scanCatalogItem(rows)
		if err != nil {
			return nil, translateError(err, "catalog item", "scan catalog item")
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "catalog item", "iterate catalog items")
	}
	return mapping.ToDomainCatalogItemSlice(items), nil
}

func (r *PgxCatalogRepository) SaveItem(ctx context.Context, item domain.CatalogItem) error {
	m := mapping.ToModelCatalogItem(item)
	query := `
		INSERT INTO catalog_items (` + catalogItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.SerialNo,
		m.Title,
		m.Author,
		m.Kind,
		m.Category,
		m.ISBN,
		m.Publisher,
		m.PublishedYear,
		m.TotalCopies,
		m.AvailableCopies,
		m.IsAvailable,
		m.ShelfLocation,
		m.Status,
		m.Cost,
		m.ProcurementDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "catalog item with serial "+item.SerialNo, "save catalog item")
	}
	return nil
}

func (r *PgxCatalogRepository) UpdateItemInTx(ctx context.Context, tx pgx.Tx, item domain.CatalogItem) error {
	m := mapping.ToModelCatalogItem(item)
	query := `
		UPDATE catalog_items SET
			serial_no = $2, title = $3, author = $4, kind = $5, category = $6, isbn = $7,
			publisher = $8, published_year = $9, total_copies = $10, available_copies = $11,
			is_available = $12, shelf_location = $13, status = $14, cost = $15,
			procurement_date = $16, last_updated_at = $17, last_updated_by = $18
		WHERE item_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.ItemID,
		m.SerialNo,
		m.Title,
		m.Author,
		m.Kind,
		m.Category,
		m.ISBN,
		m.Publisher,
		m.PublishedYear,
		m.TotalCopies,
		m.AvailableCopies,
		m.IsAvailable,
		m.ShelfLocation,
		m.Status,
		m.Cost,
		m.ProcurementDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "catalog item", "update catalog item")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("catalog item")
	}
	return nil
}

func (r *PgxCatalogRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM catalog_items WHERE item_id = $1;`, itemID)
	if err != nil {
		return translateError(err, "catalog item", "delete catalog item")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("catalog item")
	}
	return nil
}

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
