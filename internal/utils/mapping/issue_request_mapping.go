package mapping

import (
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/models"
)

// ToModelIssueRequest converts a domain IssueRequest to a model IssueRequest
func ToModelIssueRequest(d domain.IssueRequest) models.IssueRequest {
	return models.IssueRequest{
		RequestID:     d.RequestID,
		ItemID:        d.ItemID,
		MemberID:      d.MemberID,
		SerialNo:      d.SerialNo,
		RequestDate:   d.RequestDate,
		Status:        string(d.Status),
		Remarks:       d.Remarks,
		ProcessedBy:   d.ProcessedBy,
		ProcessedDate: d.ProcessedDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainIssueRequestWithRefs converts a joined request row.
func ToDomainIssueRequestWithRefs(m models.IssueRequestWithRefs) domain.IssueRequest {
	return domain.IssueRequest{
		RequestID:     m.RequestID,
		ItemID:        m.ItemID,
		MemberID:      m.MemberID,
		SerialNo:      m.SerialNo,
		RequestDate:   m.RequestDate,
		Status:        domain.RequestStatus(m.Status),
		Remarks:       m.Remarks,
		ProcessedBy:   m.ProcessedBy,
		ProcessedDate: m.ProcessedDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		Item:          ToDomainItemSummary(m.Item),
		Member:        ToDomainMemberSummary(m.Member),
	}
}

// ToDomainIssueRequestWithRefsSlice converts joined request rows.
func ToDomainIssueRequestWithRefsSlice(ms []models.IssueRequestWithRefs) []domain.IssueRequest {
	ds := make([]domain.IssueRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIssueRequestWithRefs(m)
	}
	return ds
}
