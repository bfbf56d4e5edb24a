package pgsql

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	"github.com/debugger-rana/library-management-system/internal/models"
	"github.com/debugger-rana/library-management-system/internal/utils/mapping"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Columns of a ledger row joined with its item (c) and member (m).
var transactionJoinColumns = []string{
	"t.transaction_id", "t.item_id", "t.member_id", "t.serial_no", "t.type",
	"t.issue_date", "t.due_date", "t.return_date", "t.status", "t.fine", "t.fine_paid",
	"t.remarks", "t.issued_by", "t.returned_by",
	"t.created_at", "t.created_by", "t.last_updated_at", "t.last_updated_by",
	"c.item_id", "c.serial_no", "c.title", "c.author", "c.kind", "c.category",
	"m.member_id", "m.membership_no", "m.name", "m.email",
}

var transactionJoinSQL = `SELECT ` + strings.Join(transactionJoinColumns, ", ") + `
	FROM transactions t
	JOIN catalog_items c ON c.item_id = t.item_id
	JOIN members m ON m.member_id = t.member_id`

const transactionColumns = `transaction_id, item_id, member_id, serial_no, type, issue_date, due_date,
	return_date, status, fine, fine_paid, remarks, issued_by, returned_by,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func transactionScanTargets(m *models.Transaction) []any {
	return []any{
		&m.TransactionID,
		&m.ItemID,
		&m.MemberID,
		&m.SerialNo,
		&m.Type,
		&m.IssueDate,
		&m.DueDate,
		&m.ReturnDate,
		&m.Status,
		&m.Fine,
		&m.FinePaid,
		&m.Remarks,
		&m.IssuedBy,
		&m.ReturnedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	}
}

func scanTransactionWithRefs(row pgx.Row) (models.TransactionWithRefs, error) {
	var m models.TransactionWithRefs
	targets := transactionScanTargets(&m.Transaction)
	targets = append(targets,
		&m.Item.ItemID, &m.Item.SerialNo, &m.Item.Title, &m.Item.Author, &m.Item.Kind, &m.Item.Category,
		&m.Member.MemberID, &m.Member.MembershipNo, &m.Member.Name, &m.Member.Email,
	)
	err := row.Scan(targets...)
	return m, err
}

// queryTransactionsWithRefs runs a joined ledger query and maps every row.
func queryTransactionsWithRefs(ctx context.Context, q dbtx, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "transaction", "query transactions")
	}
	defer rows.Close()

	txns := make([]models.TransactionWithRefs, 0)
	for rows.Next() {
		m, err := scanTransactionWithRefs(rows)
		if err != nil {
			return nil, translateError(err, "transaction", "scan transaction")
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "transaction", "iterate transactions")
	}
	return mapping.ToDomainTransactionWithRefsSlice(txns), nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	m, err := scanTransactionWithRefs(r.Pool.QueryRow(ctx, transactionJoinSQL+` WHERE t.transaction_id = $1`, transactionID))
	if err != nil {
		return nil, translateError(err, "transaction", "find transaction")
	}
	txn := mapping.ToDomainTransactionWithRefs(m)
	return &txn, nil
}

// buildTransactionListQuery renders the filtered, keyset-paginated ledger listing.
func buildTransactionListQuery(filter domain.TransactionFilter) (string, []any, error) {
	cols := make([]any, len(transactionJoinColumns))
	for i, c := range transactionJoinColumns {
		cols[i] = goqu.I(c)
	}

	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T("transactions").As("t")).
		Join(goqu.T("catalog_items").As("c"), goqu.On(goqu.I("c.item_id").Eq(goqu.I("t.item_id")))).
		Join(goqu.T("members").As("m"), goqu.On(goqu.I("m.member_id").Eq(goqu.I("t.member_id")))).
		Select(cols...).
		Prepared(true)

	switch filter.Status {
	case "":
	case domain.TransactionStatusOverdue:
		// Overdue is derived: an open loan past its due date.
		ds = ds.Where(
			goqu.I("t.status").Neq(string(domain.TransactionStatusReturned)),
			goqu.I("t.due_date").Lt(filter.AsOf),
		)
	default:
		ds = ds.Where(goqu.I("t.status").Eq(string(filter.Status)))
	}
	if filter.MemberID != "" {
		ds = ds.Where(goqu.I("t.member_id").Eq(filter.MemberID))
	}
	if filter.ItemID != "" {
		ds = ds.Where(goqu.I("t.item_id").Eq(filter.ItemID))
	}
	if filter.AfterCreatedAt != nil {
		ds = ds.Where(goqu.Or(
			goqu.I("t.created_at").Lt(*filter.AfterCreatedAt),
			goqu.And(
				goqu.I("t.created_at").Eq(*filter.AfterCreatedAt),
				goqu.I("t.transaction_id").Lt(filter.AfterID),
			),
		))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	ds = ds.Order(goqu.I("t.created_at").Desc(), goqu.I("t.transaction_id").Desc()).
		Limit(uint(limit))

	return ds.ToSQL()
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	if filter.AsOf.IsZero() {
		filter.AsOf = time.Now()
	}
	query, args, err := buildTransactionListQuery(filter)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build transaction listing", err)
	}
	return queryTransactionsWithRefs(ctx, r.Pool, query, args...)
}

func (r *PgxTransactionRepository) FindActiveIssues(ctx context.Context) ([]domain.Transaction, error) {
	query := transactionJoinSQL + `
		WHERE t.status <> 'returned'
		ORDER BY t.issue_date DESC, t.transaction_id DESC`
	return queryTransactionsWithRefs(ctx, r.Pool, query)
}

func (r *PgxTransactionRepository) UpdateFinePayment(ctx context.Context, transactionID string, finePaid bool, remarks *string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE transactions SET
			fine_paid = $2,
			remarks = COALESCE($3, remarks),
			last_updated_at = $4,
			last_updated_by = $5
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, finePaid, remarks, updatedAt, updatedBy)
	if err != nil {
		return translateError(err, "transaction", "update fine payment")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction")
	}
	return nil
}

func (r *PgxTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.ItemID,
		m.MemberID,
		m.SerialNo,
		m.Type,
		m.IssueDate,
		m.DueDate,
		m.ReturnDate,
		m.Status,
		m.Fine,
		m.FinePaid,
		m.Remarks,
		m.IssuedBy,
		m.ReturnedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "transaction "+txn.TransactionID, "insert transaction")
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE`
	var m models.Transaction
	if err := tx.QueryRow(ctx, query, transactionID).Scan(transactionScanTargets(&m)...); err != nil {
		return nil, translateError(err, "transaction", "lock transaction")
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) UpdateReturnInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
		UPDATE transactions SET
			return_date = $2, status = $3, fine = $4, remarks = $5, returned_by = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE transaction_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		txn.TransactionID,
		txn.ReturnDate,
		string(txn.Status),
		txn.Fine,
		txn.Remarks,
		txn.ReturnedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "transaction", "record return")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction")
	}
	return nil
}
