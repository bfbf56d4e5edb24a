package repositories

import (
	"context"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MemberReader defines read operations for members
type MemberReader interface {
	FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	FindMemberByNumber(ctx context.Context, membershipNo string) (*domain.Member, error)
	FindMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error)
}

// MemberWriter defines write operations for members
type MemberWriter interface {
	SaveMember(ctx context.Context, member domain.Member) error
	DeleteMember(ctx context.Context, memberID string) error
}

// MemberTxSupport defines operations that run inside a caller-owned transaction
type MemberTxSupport interface {
	// FindMemberForUpdate loads a member and locks its row until tx ends.
	FindMemberForUpdate(ctx context.Context, tx pgx.Tx, memberID string) (*domain.Member, error)
	// UpdateMemberInTx writes all mutable columns of member.
	UpdateMemberInTx(ctx context.Context, tx pgx.Tx, member domain.Member) error
}

// MemberRepositoryFacade combines all member repository interfaces
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
	MemberTxSupport
	TransactionManager
}
