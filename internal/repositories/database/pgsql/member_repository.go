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

const memberColumns = `member_id, membership_no, name, email, phone, address, national_id, membership_class,
	start_date, expiry_date, is_active, books_issued, created_at, created_by, last_updated_at, last_updated_by`

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func scanMember(row pgx.Row) (models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID,
		&m.MembershipNo,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.NationalID,
		&m.MembershipClass,
		&m.StartDate,
		&m.ExpiryDate,
		&m.IsActive,
		&m.BooksIssued,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxMemberRepository) findOne(ctx context.Context, q dbtx, where string, arg any) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE ` + where
	m, err := scanMember(q.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, translateError(err, "member", "find member")
	}
	member := mapping.ToDomainMember(m)
	return &member, nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	return r.findOne(ctx, r.Pool, "member_id = $1", memberID)
}

func (r *PgxMemberRepository) FindMemberByNumber(ctx context.Context, membershipNo string) (*domain.Member, error) {
	return r.findOne(ctx, r.Pool, "membership_no = $1", membershipNo)
}

func (r *PgxMemberRepository) FindMemberForUpdate(ctx context.Context, tx pgx.Tx, memberID string) (*domain.Member, error) {
	return r.findOne(ctx, tx, "member_id = $1 FOR UPDATE", memberID)
}

func (r *PgxMemberRepository) FindMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + memberColumns + `
		FROM members
		ORDER BY created_at DESC, member_id DESC
		LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(err, "member", "query members")
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, translateError(err, "member", "scan member")
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(err, "member", "iterate members")
	}
	return mapping.ToDomainMemberSlice(members), nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MemberID,
		m.MembershipNo,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.NationalID,
		m.MembershipClass,
		m.StartDate,
		m.ExpiryDate,
		m.IsActive,
		m.BooksIssued,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "member "+member.MembershipNo, "save member")
	}
	return nil
}

func (r *PgxMemberRepository) UpdateMemberInTx(ctx context.Context, tx pgx.Tx, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		UPDATE members SET
			name = $2, email = $3, phone = $4, address = $5, national_id = $6,
			membership_class = $7, start_date = $8, expiry_date = $9, is_active = $10,
			books_issued = $11, last_updated_at = $12, last_updated_by = $13
		WHERE member_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.MemberID,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.NationalID,
		m.MembershipClass,
		m.StartDate,
		m.ExpiryDate,
		m.IsActive,
		m.BooksIssued,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return translateError(err, "member", "update member")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member")
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM members WHERE member_id = $1;`, memberID)
	if err != nil {
		return translateError(err, "member", "delete member")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("member")
	}
	return nil
}
