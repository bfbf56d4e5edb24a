package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
)

// issueRequestService implements the request workflow. Requests are advisory:
// creating or approving one never changes item availability.
type issueRequestService struct {
	BaseService
	requestRepo  portsrepo.IssueRequestRepositoryFacade
	catalogRepo  portsrepo.CatalogReader
	memberRepo   portsrepo.MemberReader
	sequenceRepo portsrepo.SequenceAllocator
}

// IssueRequestServiceOption is a functional option for configuring the issue request service
type IssueRequestServiceOption func(*issueRequestService)

// WithIssueRequestClock overrides the time source.
func WithIssueRequestClock(clock Clock) IssueRequestServiceOption {
	return func(s *issueRequestService) {
		s.clock = clock
	}
}

// NewIssueRequestService creates a new issue request service
func NewIssueRequestService(
	requestRepo portsrepo.IssueRequestRepositoryFacade,
	catalogRepo portsrepo.CatalogReader,
	memberRepo portsrepo.MemberReader,
	sequenceRepo portsrepo.SequenceAllocator,
	options ...IssueRequestServiceOption,
) portssvc.IssueRequestSvcFacade {
	svc := &issueRequestService{
		requestRepo:  requestRepo,
		catalogRepo:  catalogRepo,
		memberRepo:   memberRepo,
		sequenceRepo: sequenceRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.IssueRequestSvcFacade = (*issueRequestService)(nil)

func (s *issueRequestService) CreateRequest(ctx context.Context, req dto.CreateIssueRequestRequest, actorID string) (*domain.IssueRequest, error) {
	item, err := s.catalogRepo.FindItemByID(ctx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog item %s: %w", req.ItemID, err)
	}
	if err := item.EnsureAvailable(); err != nil {
		return nil, err
	}

	member, err := s.memberRepo.FindMemberByID(ctx, req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member %s: %w", req.MemberID, err)
	}
	if err := member.EnsureActive(); err != nil {
		return nil, err
	}

	seq, err := s.sequenceRepo.NextValue(ctx, domain.SequenceIssueRequest)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate request id")
		return nil, fmt.Errorf("failed to allocate request id: %w", err)
	}

	request := domain.NewIssueRequest(seq, *item, *member, req.SerialNo, actorID, s.Now())
	if err := s.requestRepo.SaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save issue request", slog.String("request_id", request.RequestID))
		return nil, fmt.Errorf("failed to create issue request: %w", err)
	}

	s.LogInfo(ctx, "Issue request created",
		slog.String("request_id", request.RequestID),
		slog.String("item_id", item.ItemID),
		slog.String("member_id", member.MemberID))
	return &request, nil
}

func (s *issueRequestService) GetRequest(ctx context.Context, requestID string) (*domain.IssueRequest, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue request %s: %w", requestID, err)
	}
	return request, nil
}

func (s *issueRequestService) ListRequests(ctx context.Context, params dto.ListIssueRequestsParams) ([]domain.IssueRequest, error) {
	requests, err := s.requestRepo.FindRequests(ctx, params.Status, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list issue requests")
		return nil, fmt.Errorf("failed to list issue requests: %w", err)
	}
	return requests, nil
}

func (s *issueRequestService) ApproveRequest(ctx context.Context, requestID string, remarks string, actorID string) (*domain.IssueRequest, error) {
	return s.decide(ctx, requestID, actorID, "approve", func(r *domain.IssueRequest) error {
		return r.Approve(actorID, remarks, s.Now())
	})
}

func (s *issueRequestService) RejectRequest(ctx context.Context, requestID string, remarks string, actorID string) (*domain.IssueRequest, error) {
	return s.decide(ctx, requestID, actorID, "reject", func(r *domain.IssueRequest) error {
		return r.Reject(actorID, remarks, s.Now())
	})
}

func (s *issueRequestService) decide(ctx context.Context, requestID, actorID, action string, transition func(*domain.IssueRequest) error) (*domain.IssueRequest, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to load issue request %s: %w", requestID, err)
	}
	if err := transition(request); err != nil {
		return nil, err
	}
	// The store re-checks the pending state so a concurrent decision loses cleanly.
	if err := s.requestRepo.UpdateRequestDecision(ctx, *request); err != nil {
		return nil, fmt.Errorf("failed to %s issue request %s: %w", action, requestID, err)
	}

	s.LogInfo(ctx, "Issue request processed",
		slog.String("request_id", requestID),
		slog.String("status", string(request.Status)),
		slog.String("processed_by", actorID))
	return request, nil
}

func (s *issueRequestService) DeleteRequest(ctx context.Context, requestID string) error {
	if err := s.requestRepo.DeleteRequest(ctx, requestID); err != nil {
		return fmt.Errorf("failed to delete issue request %s: %w", requestID, err)
	}
	return nil
}
