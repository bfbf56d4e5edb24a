package repositories

import (
	"context"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
)

// IssueRequestReader defines read operations for issue requests. Returned rows
// carry the joined item and member summaries.
type IssueRequestReader interface {
	FindRequestByID(ctx context.Context, requestID string) (*domain.IssueRequest, error)
	// FindRequests lists requests newest first. An empty status does not filter.
	FindRequests(ctx context.Context, status domain.RequestStatus, limit int, offset int) ([]domain.IssueRequest, error)
}

// IssueRequestWriter defines write operations for issue requests
type IssueRequestWriter interface {
	SaveRequest(ctx context.Context, req domain.IssueRequest) error
	// UpdateRequestDecision stores an approve/reject outcome. It only touches
	// pending rows and returns ErrAlreadyProcessed otherwise.
	UpdateRequestDecision(ctx context.Context, req domain.IssueRequest) error
	DeleteRequest(ctx context.Context, requestID string) error
}

// IssueRequestRepositoryFacade combines all issue request repository interfaces
type IssueRequestRepositoryFacade interface {
	IssueRequestReader
	IssueRequestWriter
}
