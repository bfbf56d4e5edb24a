package domain

import (
	"fmt"
	"time"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
)

// TransactionType records the operation that created a ledger row.
type TransactionType string

const (
	TransactionTypeIssue  TransactionType = "issue"
	TransactionTypeReturn TransactionType = "return"
)

// TransactionStatus is the loan state of a ledger row.
type TransactionStatus string

const (
	TransactionStatusIssued   TransactionStatus = "issued"
	TransactionStatusReturned TransactionStatus = "returned"
	// TransactionStatusOverdue is accepted when reading; overdue loans are derived from DueDate.
	TransactionStatusOverdue TransactionStatus = "overdue"
)

// IsValid reports whether s is a known status.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusIssued, TransactionStatusReturned, TransactionStatusOverdue:
		return true
	}
	return false
}

const (
	// FineRatePerDay is charged for every started day past the due date.
	FineRatePerDay int64 = 5
	// MaxLoanDays bounds the due date relative to the issue date.
	MaxLoanDays = 15
)

// Transaction is one loan in the ledger, mutated from issue to return to fine payment.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	ItemID        string            `json:"itemID"`
	MemberID      string            `json:"memberID"`
	SerialNo      string            `json:"serialNo"`
	Type          TransactionType   `json:"type"`
	IssueDate     time.Time         `json:"issueDate"`
	DueDate       time.Time         `json:"dueDate"`
	ReturnDate    *time.Time        `json:"returnDate,omitempty"`
	Status        TransactionStatus `json:"status"`
	Fine          int64             `json:"fine"`
	FinePaid      bool              `json:"finePaid"`
	Remarks       string            `json:"remarks,omitempty"`
	IssuedBy      string            `json:"issuedBy"`
	ReturnedBy    *string           `json:"returnedBy,omitempty"`
	AuditFields

	Item   *CatalogItemSummary `json:"item,omitempty"`
	Member *MemberSummary      `json:"member,omitempty"`
}

// TransactionFilter narrows a ledger listing.
type TransactionFilter struct {
	Status   TransactionStatus
	MemberID string
	ItemID   string
	Limit    int
	// Keyset cursor: rows strictly older than (AfterCreatedAt, AfterID).
	AfterCreatedAt *time.Time
	AfterID        string
	// AsOf is the instant the overdue status is judged against.
	AsOf time.Time
}

// FormatTransactionID renders a sequence value as TXN000001.
func FormatTransactionID(seq int64) string {
	return fmt.Sprintf("TXN%06d", seq)
}

// ValidateLoanPeriod enforces dueDate within [issueDate, issueDate+MaxLoanDays].
func ValidateLoanPeriod(issueDate, dueDate time.Time) error {
	if dueDate.Before(issueDate) {
		return apperrors.NewValidationError("dueDate cannot be before issueDate")
	}
	if dueDate.After(issueDate.AddDate(0, 0, MaxLoanDays)) {
		return apperrors.NewValidationError(fmt.Sprintf("dueDate cannot be more than %d days after issueDate", MaxLoanDays))
	}
	return nil
}

// CalculateFine charges FineRatePerDay for each day, or part of a day, that
// returnDate falls after dueDate.
func CalculateFine(dueDate, returnDate time.Time) int64 {
	late := returnDate.Sub(dueDate)
	if late <= 0 {
		return 0
	}
	days := int64(late / (24 * time.Hour))
	if late%(24*time.Hour) != 0 {
		days++
	}
	return days * FineRatePerDay
}

// NewIssueTransaction opens a loan of item to member.
func NewIssueTransaction(seq int64, item CatalogItem, member Member, issueDate, dueDate time.Time, remarks, actor string, now time.Time) Transaction {
	txn := Transaction{
		TransactionID: FormatTransactionID(seq),
		ItemID:        item.ItemID,
		MemberID:      member.MemberID,
		SerialNo:      item.SerialNo,
		Type:          TransactionTypeIssue,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Status:        TransactionStatusIssued,
		Remarks:       remarks,
		IssuedBy:      actor,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor,
			LastUpdatedAt: now,
			LastUpdatedBy: actor,
		},
	}
	txn.AttachRefs(item, member)
	return txn
}

// AttachRefs sets the item and member summaries joined into responses.
func (t *Transaction) AttachRefs(item CatalogItem, member Member) {
	itemSummary := item.Summary()
	memberSummary := member.Summary()
	t.Item = &itemSummary
	t.Member = &memberSummary
}

// IsOpen reports whether the loan still holds a copy.
func (t Transaction) IsOpen() bool {
	return t.Status != TransactionStatusReturned
}

// IsOverdue reports whether an open loan is past its due date at now.
func (t Transaction) IsOverdue(now time.Time) bool {
	return t.IsOpen() && t.DueDate.Before(now)
}

// Return closes the loan and fixes the fine. It fails with ErrAlreadyReturned
// when called on a closed loan, which keeps the fine immutable.
func (t *Transaction) Return(returnDate time.Time, actor string, remarks *string, now time.Time) error {
	if !t.IsOpen() {
		return apperrors.ErrAlreadyReturned
	}
	t.ReturnDate = &returnDate
	t.Status = TransactionStatusReturned
	t.Fine = CalculateFine(t.DueDate, returnDate)
	t.ReturnedBy = &actor
	if remarks != nil && *remarks != "" {
		t.Remarks = *remarks
	}
	t.LastUpdatedAt = now
	t.LastUpdatedBy = actor
	return nil
}
