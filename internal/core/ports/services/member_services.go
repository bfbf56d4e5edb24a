package services

import (
	"context"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/dto"
)

// MemberReaderSvc defines read operations on members
type MemberReaderSvc interface {
	GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error)
	GetMemberByNumber(ctx context.Context, membershipNo string) (*domain.Member, error)
	ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error)
}

// MemberWriterSvc defines registration and edits of members
type MemberWriterSvc interface {
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, actorID string) (*domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, actorID string) (*domain.Member, error)
	DeleteMember(ctx context.Context, memberID string) error
}

// MembershipLifecycleSvc defines extend and cancel of memberships
type MembershipLifecycleSvc interface {
	ExtendMembership(ctx context.Context, memberID string, months int, actorID string) (*domain.Member, error)
	CancelMembership(ctx context.Context, memberID string, actorID string) (*domain.Member, error)
}

// MemberSvcFacade combines all member service interfaces
type MemberSvcFacade interface {
	MemberReaderSvc
	MemberWriterSvc
	MembershipLifecycleSvc
}
