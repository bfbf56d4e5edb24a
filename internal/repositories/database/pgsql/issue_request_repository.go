package pgsql

import (
	"context"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	"github.com/debugger-rana/library-management-system/internal/models"
	"github.com/debugger-rana/library-management-system/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const issueRequestJoinSQL = `SELECT
		r.request_id, r.item_id, r.member_id, r.serial_no, r.request_date, r.status, r.remarks,
		r.processed_by, r.processed_date, r.created_at, r.created_by, r.last_updated_at, r.last_updated_by,
		c.item_id, c.serial_no, c.title, c.author, c.kind, c.category,
		m.member_id, m.membership_no, m.name, m.email
	FROM issue_requests r
	JOIN catalog_items c ON c.item_id = r.item_id
	JOIN members m ON m.member_id = r.member_id`

type PgxIssueRequestRepository struct {
	BaseRepository
}

func newPgxIssueRequestRepository(pool *pgxpool.Pool) portsrepo.IssueRequestRepositoryFacade {
	return &PgxIssueRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IssueRequestRepositoryFacade = (*PgxIssueRequestRepository)(nil)

func scanIssueRequestWithRefs(row pgx.Row) (models.IssueRequestWithRefs, error) {
	var m models.IssueRequestWithRefs
	err := row.Scan(
		&m.RequestID,
		&m.ItemID,
		&m.MemberID,
		&m.SerialNo,
		&m.RequestDate,
		&m.Status,
		&m.Remarks,
		&m.ProcessedBy,
		&m.ProcessedDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Item.ItemID, &m.Item.SerialNo, &m.Item.Title, &m.Item.Author, &m.Item.Kind, &m.Item.Category,
		&m.Member.MemberID, &m.Member.MembershipNo, &m.Member.Name, &m.Member.Email,
	)
	return m, err
}

func (r *PgxIssueRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.IssueRequest, error) {
	m, err := scanIssueRequestWithRefs(r.Pool.QueryRow(ctx, issueRequestJoinSQL+` WHERE r.request_id = $1`, requestID))
	if err != nil {
		return nil, translateError(err, "issue request", "find issue request")
	}
	req := mapping.ToDomainIssueRequestWithRefs(m)
	return &req, nil
}

func (r *PgxIssueRequestRepository) FindRequests(ctx context.Context, status domain.RequestStatus, limit int, offset int) ([]domain.IssueRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := issueRequestJoinSQL + `
		WHERE ($1 = '' OR r.status = $1)
		ORDER BY r.request_date DESC, r.request_id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.Pool.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, translateError(err, "issue request", "query issue requests")
	}
	defer rows.Close()

	reqs := make([]models.IssueRequestWithRefs, 0)
	for rows.Next() {
		m, err := scanIssueRequestWithRefs(rows)
		if err != nil {
			return nil, translateError(err, "issue request", "scan issue request")
		}
		reqs = append(reqs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "issue request", "iterate issue requests")
	}
	return mapping.ToDomainIssueRequestWithRefsSlice(reqs), nil
}

func (r *PgxIssueRequestRepository) SaveRequest(ctx context.Context, req domain.IssueRequest) error {
	m := mapping.ToModelIssueRequest(req)
	query := `
		INSERT INTO issue_requests (
			request_id, item_id, member_id, serial_no, request_date, status, remarks,
			processed_by, processed_date, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RequestID,
		m.ItemID,
		m.MemberID,
		m.SerialNo,
		m.RequestDate,
		m.Status,
		m.Remarks,
		m.ProcessedBy,
		m.ProcessedDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "issue request "+req.RequestID, "save issue request")
	}
	return nil
}

// UpdateRequestDecision only touches pending rows so concurrent deciders
// cannot both succeed.
func (r *PgxIssueRequestRepository) UpdateRequestDecision(ctx context.Context, req domain.IssueRequest) error {
	query := `
		UPDATE issue_requests SET
			status = $2, remarks = $3, processed_by = $4, processed_date = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE request_id = $1 AND status = 'pending';
	`
	tag, err := r.Pool.Exec(ctx, query,
		req.RequestID,
		string(req.Status),
		req.Remarks,
		req.ProcessedBy,
		req.ProcessedDate,
		req.LastUpdatedAt,
		req.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "issue request", "update issue request")
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM issue_requests WHERE request_id = $1)`, req.RequestID).Scan(&exists); err != nil {
			return translateError(err, "issue request", "check issue request")
		}
		if !exists {
			return apperrors.NewNotFoundError("issue request")
		}
		return apperrors.ErrAlreadyProcessed
	}
	return nil
}

func (r *PgxIssueRequestRepository) DeleteRequest(ctx context.Context, requestID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM issue_requests WHERE request_id = $1;`, requestID)
	if err != nil {
		return translateError(err, "issue request", "delete issue request")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("issue request")
	}
	return nil
}
