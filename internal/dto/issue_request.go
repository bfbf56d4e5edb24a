package dto

import (
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
)

// CreateIssueRequestRequest defines the data needed to ask for an item.
type CreateIssueRequestRequest struct {
	ItemID   string `json:"itemID" binding:"required"`
	MemberID string `json:"memberID" binding:"required"`
	SerialNo string `json:"serialNo"`
}

// ProcessIssueRequestRequest carries the remarks recorded on approve or reject.
type ProcessIssueRequestRequest struct {
	Remarks string `json:"remarks"`
}

// ListIssueRequestsParams defines query parameters for listing requests.
type ListIssueRequestsParams struct {
	Status domain.RequestStatus `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Limit  int                  `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int                  `form:"offset,default=0" binding:"min=0"`
}

// IssueRequestResponse defines the data returned for an issue request.
type IssueRequestResponse struct {
	RequestID     string                     `json:"requestID"`
	ItemID        string                     `json:"itemID"`
	MemberID      string                     `json:"memberID"`
	SerialNo      string                     `json:"serialNo"`
	RequestDate   time.Time                  `json:"requestDate"`
	Status        domain.RequestStatus       `json:"status"`
	Remarks       string                     `json:"remarks,omitempty"`
	ProcessedBy   *string                    `json:"processedBy,omitempty"`
	ProcessedDate *time.Time                 `json:"processedDate,omitempty"`
	Item          *domain.CatalogItemSummary `json:"item,omitempty"`
	Member        *domain.MemberSummary      `json:"member,omitempty"`
	CreatedBy     string                     `json:"createdBy"`
}

// ListIssueRequestsResponse wraps a page of issue requests.
type ListIssueRequestsResponse struct {
	Requests []IssueRequestResponse `json:"requests"`
	Count    int                    `json:"count"`
}

// ToIssueRequestResponse converts a domain.IssueRequest to its response DTO.
func ToIssueRequestResponse(r *domain.IssueRequest) IssueRequestResponse {
	return IssueRequestResponse{
		RequestID:     r.RequestID,
		ItemID:        r.ItemID,
		MemberID:      r.MemberID,
		SerialNo:      r.SerialNo,
		RequestDate:   r.RequestDate,
		Status:        r.Status,
		Remarks:       r.Remarks,
		ProcessedBy:   r.ProcessedBy,
		ProcessedDate: r.ProcessedDate,
		Item:          r.Item,
		Member:        r.Member,
		CreatedBy:     r.CreatedBy,
	}
}

// ToListIssueRequestsResponse converts a slice of requests.
func ToListIssueRequestsResponse(reqs []domain.IssueRequest) ListIssueRequestsResponse {
	out := make([]IssueRequestResponse, len(reqs))
	for i := range reqs {
		out[i] = ToIssueRequestResponse(&reqs[i])
	}
	return ListIssueRequestsResponse{Requests: out, Count: len(out)}
}
