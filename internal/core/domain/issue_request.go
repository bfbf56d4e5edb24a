package domain

import (
	"fmt"
	"time"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
)

// RequestStatus is the state of an issue request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// IsValid reports whether s is a known status.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// IssueRequest asks staff to lend an item to a member. It reserves nothing.
type IssueRequest struct {
	RequestID     string        `json:"requestID"`
	ItemID        string        `json:"itemID"`
	MemberID      string        `json:"memberID"`
	SerialNo      string        `json:"serialNo"`
	RequestDate   time.Time     `json:"requestDate"`
	Status        RequestStatus `json:"status"`
	Remarks       string        `json:"remarks,omitempty"`
	ProcessedBy   *string       `json:"processedBy,omitempty"`
	ProcessedDate *time.Time    `json:"processedDate,omitempty"`
	AuditFields

	Item   *CatalogItemSummary `json:"item,omitempty"`
	Member *MemberSummary      `json:"member,omitempty"`
}

// FormatRequestID renders a sequence value as REQ00001.
func FormatRequestID(seq int64) string {
	return fmt.Sprintf("REQ%05d", seq)
}

// NewIssueRequest creates a pending request.
func NewIssueRequest(seq int64, item CatalogItem, member Member, serialNo, actor string, now time.Time) IssueRequest {
	if serialNo == "" {
		serialNo = item.SerialNo
	}
	itemSummary := item.Summary()
	memberSummary := member.Summary()
	return IssueRequest{
		RequestID:   FormatRequestID(seq),
		ItemID:      item.ItemID,
		MemberID:    member.MemberID,
		SerialNo:    serialNo,
		RequestDate: now,
		Status:      RequestStatusPending,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
		Item:   &itemSummary,
		Member: &memberSummary,
	}
}

// Approve moves a pending request to approved.
func (r *IssueRequest) Approve(actor, remarks string, now time.Time) error {
	return r.decide(RequestStatusApproved, actor, remarks, now)
}

// Reject moves a pending request to rejected.
func (r *IssueRequest) Reject(actor, remarks string, now time.Time) error {
	return r.decide(RequestStatusRejected, actor, remarks, now)
}

func (r *IssueRequest) decide(status RequestStatus, actor, remarks string, now time.Time) error {
	if r.Status != RequestStatusPending {
		return apperrors.ErrAlreadyProcessed
	}
	r.Status = status
	r.Remarks = remarks
	r.ProcessedBy = &actor
	r.ProcessedDate = &now
	r.LastUpdatedAt = now
	r.LastUpdatedBy = actor
	return nil
}
