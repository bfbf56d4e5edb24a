package domain_test

import (
	"testing"
	"time"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssueRequest(t *testing.T) {
	now := date(2024, time.April, 2)
	item := domain.CatalogItem{ItemID: "item-9", SerialNo: "BK-HIS-009"}
	member := domain.Member{MemberID: "mem-3"}

	req := domain.NewIssueRequest(5, item, member, "", "user-1", now)
	assert.Equal(t, "REQ00005", req.RequestID)
	assert.Equal(t, "BK-HIS-009", req.SerialNo)
	assert.Equal(t, domain.RequestStatusPending, req.Status)
	assert.Equal(t, now, req.RequestDate)

	req = domain.NewIssueRequest(6, item, member, "BK-HIS-009-B", "user-1", now)
	assert.Equal(t, "BK-HIS-009-B", req.SerialNo)
}

func TestIssueRequest_Transitions(t *testing.T) {
	now := date(2024, time.April, 3)

	tests := []struct {
		name   string
		decide func(r *domain.IssueRequest) error
		want   domain.RequestStatus
	}{
		{name: "approve", decide: func(r *domain.IssueRequest) error { return r.Approve("admin-1", "ok", now) }, want: domain.RequestStatusApproved},
		{name: "reject", decide: func(r *domain.IssueRequest) error { return r.Reject("admin-1", "no copies", now) }, want: domain.RequestStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.IssueRequest{RequestID: "REQ00001", Status: domain.RequestStatusPending}
			require.NoError(t, tt.decide(&req))
			assert.Equal(t, tt.want, req.Status)
			require.NotNil(t, req.ProcessedBy)
			assert.Equal(t, "admin-1", *req.ProcessedBy)
			require.NotNil(t, req.ProcessedDate)
			assert.Equal(t, now, *req.ProcessedDate)

			assert.ErrorIs(t, req.Approve("admin-2", "", now), apperrors.ErrAlreadyProcessed)
			assert.ErrorIs(t, req.Reject("admin-2", "", now), apperrors.ErrAlreadyProcessed)
			assert.Equal(t, tt.want, req.Status)
			assert.Equal(t, "admin-1", *req.ProcessedBy)
		})
	}
}
