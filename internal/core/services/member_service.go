package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/google/uuid"
)

// memberService implements portssvc.MemberSvcFacade
type memberService struct {
	BaseService
	memberRepo   portsrepo.MemberRepositoryFacade
	sequenceRepo portsrepo.SequenceAllocator
}

// MemberServiceOption is a functional option for configuring the member service
type MemberServiceOption func(*memberService)

// WithMemberClock overrides the time source.
func WithMemberClock(clock Clock) MemberServiceOption {
	return func(s *memberService) {
		s.clock = clock
	}
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade, sequenceRepo portsrepo.SequenceAllocator, options ...MemberServiceOption) portssvc.MemberSvcFacade {
	svc := &memberService{memberRepo: memberRepo, sequenceRepo: sequenceRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
	}
	return member, nil
}

func (s *memberService) GetMemberByNumber(ctx context.Context, membershipNo string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByNumber(ctx, membershipNo)
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s: %w", membershipNo, err)
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	members, err := s.memberRepo.FindMembers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members")
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, actorID string) (*domain.Member, error) {
	now := s.Now()

	class := req.MembershipClass
	if class == "" {
		class = domain.MembershipSixMonths
	}
	start := req.StartDate.TimeOr(now)

	seq, err := s.sequenceRepo.NextValue(ctx, domain.SequenceMember)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate membership number")
		return nil, fmt.Errorf("failed to allocate membership number: %w", err)
	}

	member := domain.NewMember(uuid.NewString(), seq, class, start)
	member.Name = req.Name
	member.Email = req.Email
	member.Phone = req.Phone
	member.Address = req.Address
	member.NationalID = req.NationalID
	member.AuditFields = domain.NewAuditFields(actorID, now)

	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save member", slog.String("membership_no", member.MembershipNo))
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.LogInfo(ctx, "Member registered", slog.String("member_id", member.MemberID), slog.String("membership_no", member.MembershipNo))
	return &member, nil
}

// mutateMember applies fn to a locked member row and persists the result.
func (s *memberService) mutateMember(ctx context.Context, memberID, actorID, action string, fn func(*domain.Member) error) (*domain.Member, error) {
	tx, err := s.memberRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := s.memberRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back member "+action, slog.String("member_id", memberID))
		}
	}()

	member, err := s.memberRepo.FindMemberForUpdate(ctx, tx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member %s: %w", memberID, err)
	}
	if err := fn(member); err != nil {
		return nil, err
	}
	member.Touch(actorID, s.Now())

	if err := s.memberRepo.UpdateMemberInTx(ctx, tx, *member); err != nil {
		s.LogError(ctx, err, "Failed to persist member "+action, slog.String("member_id", memberID))
		return nil, fmt.Errorf("failed to %s member %s: %w", action, memberID, err)
	}
	if err := s.memberRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, actorID string) (*domain.Member, error) {
	return s.mutateMember(ctx, memberID, actorID, "update", func(m *domain.Member) error {
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Email != nil {
			m.Email = *req.Email
		}
		if req.Phone != nil {
			m.Phone = *req.Phone
		}
		if req.Address != nil {
			m.Address = *req.Address
		}
		if req.NationalID != nil {
			m.NationalID = *req.NationalID
		}
		if req.MembershipClass != nil {
			m.ChangeClass(*req.MembershipClass, s.Now())
		}
		return nil
	})
}

func (s *memberService) ExtendMembership(ctx context.Context, memberID string, months int, actorID string) (*domain.Member, error) {
	member, err := s.mutateMember(ctx, memberID, actorID, "extend", func(m *domain.Member) error {
		return m.Extend(months)
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Membership extended", slog.String("member_id", memberID), slog.Time("expiry_date", member.ExpiryDate))
	return member, nil
}

func (s *memberService) CancelMembership(ctx context.Context, memberID string, actorID string) (*domain.Member, error) {
	member, err := s.mutateMember(ctx, memberID, actorID, "cancel", func(m *domain.Member) error {
		m.Cancel()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Membership cancelled", slog.String("member_id", memberID))
	return member, nil
}

func (s *memberService) DeleteMember(ctx context.Context, memberID string) error {
	if err := s.memberRepo.DeleteMember(ctx, memberID); err != nil {
		s.LogError(ctx, err, "Failed to delete member", slog.String("member_id", memberID))
		return fmt.Errorf("failed to delete member %s: %w", memberID, err)
	}
	return nil
}
