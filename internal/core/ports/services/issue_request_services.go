package services

import (
	"context"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/dto"
)

// IssueRequestSvcFacade defines the pending -> approved | rejected workflow.
type IssueRequestSvcFacade interface {
	CreateRequest(ctx context.Context, req dto.CreateIssueRequestRequest, actorID string) (*domain.IssueRequest, error)
	GetRequest(ctx context.Context, requestID string) (*domain.IssueRequest, error)
	ListRequests(ctx context.Context, params dto.ListIssueRequestsParams) ([]domain.IssueRequest, error)
	ApproveRequest(ctx context.Context, requestID string, remarks string, actorID string) (*domain.IssueRequest, error)
	RejectRequest(ctx context.Context, requestID string, remarks string, actorID string) (*domain.IssueRequest, error)
	DeleteRequest(ctx context.Context, requestID string) error
}
