package pgsql

import (
	"context"
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetDashboardStats collects all landing-page counters in one round trip.
func (r *reportingRepository) GetDashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM catalog_items),
			(SELECT COUNT(*) FROM catalog_items WHERE is_available),
			(SELECT COUNT(*) FROM members),
			(SELECT COUNT(*) FROM members WHERE is_active),
			(SELECT COUNT(*) FROM transactions WHERE status = 'issued'),
			(SELECT COUNT(*) FROM transactions WHERE status = 'issued' AND due_date < $1),
			(SELECT COALESCE(SUM(fine), 0) FROM transactions WHERE fine > 0),
			(SELECT COALESCE(SUM(fine), 0) FROM transactions WHERE fine > 0 AND NOT fine_paid)
	`

	var stats domain.DashboardStats
	err := r.Pool.QueryRow(ctx, query, now).Scan(
		&stats.Books.Total,
		&stats.Books.Available,
		&stats.Members.Total,
		&stats.Members.Active,
		&stats.Transactions.ActiveIssues,
		&stats.Transactions.OverdueBooks,
		&stats.Fines.Total,
		&stats.Fines.Unpaid,
	)
	if err != nil {
		return nil, translateError(err, "dashboard", "query dashboard stats")
	}
	stats.Books.Issued = stats.Books.Total - stats.Books.Available
	return &stats, nil
}

// FindOverdueTransactions lists open loans past due, oldest due date first.
func (r *reportingRepository) FindOverdueTransactions(ctx context.Context, now time.Time) ([]domain.Transaction, error) {
	query := transactionJoinSQL + `
		WHERE t.status = 'issued' AND t.due_date < $1
		ORDER BY t.due_date ASC, t.transaction_id ASC`
	return queryTransactionsWithRefs(ctx, r.Pool, query, now)
}

// CountIssuesByItem groups the ledger by item.
func (r *reportingRepository) CountIssuesByItem(ctx context.Context) ([]domain.PopularItem, error) {
	query := `
		SELECT c.item_id, c.serial_no, c.title, c.author, c.kind, c.category, COUNT(*) AS issue_count
		FROM transactions t
		JOIN catalog_items c ON c.item_id = t.item_id
		GROUP BY c.item_id, c.serial_no, c.title, c.author, c.kind, c.category
		ORDER BY issue_count DESC, c.item_id ASC
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, translateError(err, "popular items", "query popular items")
	}
	defer rows.Close()

	result := make([]domain.PopularItem, 0)
	for rows.Next() {
		var row domain.PopularItem
		var kind string
		if err := rows.Scan(
			&row.Item.ItemID,
			&row.Item.SerialNo,
			&row.Item.Title,
			&row.Item.Author,
			&kind,
			&row.Item.Category,
			&row.IssueCount,
		); err != nil {
			return nil, translateError(err, "popular items", "scan popular item")
		}
		row.Item.Kind = domain.ItemKind(kind)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "popular items", "iterate popular items")
	}
	return result, nil
}

// CountIssuesByMember groups the ledger by member.
func (r *reportingRepository) CountIssuesByMember(ctx context.Context) ([]domain.MemberActivity, error) {
	query := `
		SELECT m.member_id, m.membership_no, m.name, m.email, COUNT(*) AS total_issues
		FROM transactions t
		JOIN members m ON m.member_id = t.member_id
		GROUP BY m.member_id, m.membership_no, m.name, m.email
		ORDER BY total_issues DESC, m.member_id ASC
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, translateError(err, "member activity", "query member activity")
	}
	defer rows.Close()

	result := make([]domain.MemberActivity, 0)
	for rows.Next() {
		var row domain.MemberActivity
		if err := rows.Scan(
			&row.Member.MemberID,
			&row.Member.MembershipNo,
			&row.Member.Name,
			&row.Member.Email,
			&row.TotalIssues,
		); err != nil {
			return nil, translateError(err, "member activity", "scan member activity")
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "member activity", "iterate member activity")
	}
	return result, nil
}

// FindFinedTransactions lists loans carrying a fine, latest return first.
func (r *reportingRepository) FindFinedTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := transactionJoinSQL + `
		WHERE t.fine > 0
		ORDER BY t.return_date DESC NULLS LAST, t.transaction_id DESC`
	return queryTransactionsWithRefs(ctx, r.Pool, query)
}
