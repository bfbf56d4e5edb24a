package models

import "time"

// IssueRequest is a row of the issue_requests table.
type IssueRequest struct {
	RequestID     string     `db:"request_id"`
	ItemID        string     `db:"item_id"`
	MemberID      string     `db:"member_id"`
	SerialNo      string     `db:"serial_no"`
	RequestDate   time.Time  `db:"request_date"`
	Status        string     `db:"status"`
	Remarks       string     `db:"remarks"`
	ProcessedBy   *string    `db:"processed_by"`
	ProcessedDate *time.Time `db:"processed_date"`
	AuditFields
}

// IssueRequestWithRefs is a request row joined with its item and member.
type IssueRequestWithRefs struct {
	IssueRequest
	Item   ItemRef
	Member MemberRef
}
