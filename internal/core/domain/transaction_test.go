package domain_test

import (
	"testing"
	"time"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateFine(t *testing.T) {
	due := date(2023, time.September, 30)

	tests := []struct {
		name     string
		returned time.Time
		want     int64
	}{
		{name: "returned early", returned: due.AddDate(0, 0, -3), want: 0},
		{name: "returned on due date", returned: due, want: 0},
		{name: "one hour late counts as a day", returned: due.Add(time.Hour), want: 5},
		{name: "exactly one day late", returned: due.AddDate(0, 0, 1), want: 5},
		{name: "five days late", returned: date(2023, time.October, 5), want: 25},
		{name: "partial sixth day", returned: date(2023, time.October, 5).Add(time.Minute), want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.CalculateFine(due, tt.returned)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, domain.CalculateFine(due, tt.returned), "fine must be reproducible")
		})
	}
}

func TestCalculateFine_LinearInDays(t *testing.T) {
	due := date(2024, time.January, 1)
	for n := 1; n <= 60; n++ {
		assert.Equal(t, int64(5*n), domain.CalculateFine(due, due.AddDate(0, 0, n)), "n=%d", n)
	}
}

func TestValidateLoanPeriod(t *testing.T) {
	issue := date(2024, time.March, 1)

	assert.NoError(t, domain.ValidateLoanPeriod(issue, issue))
	assert.NoError(t, domain.ValidateLoanPeriod(issue, issue.AddDate(0, 0, domain.MaxLoanDays)))
	assert.ErrorIs(t, domain.ValidateLoanPeriod(issue, issue.AddDate(0, 0, -1)), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.ValidateLoanPeriod(issue, issue.AddDate(0, 0, domain.MaxLoanDays+1)), apperrors.ErrValidation)
}

func TestTransaction_Return(t *testing.T) {
	issue := date(2023, time.September, 15)
	item := domain.CatalogItem{ItemID: "item-1", SerialNo: "BK-FIC-001", TotalCopies: 1, AvailableCopies: 1}
	member := domain.Member{MemberID: "mem-1", MembershipNo: "MEM00001", IsActive: true}
	txn := domain.NewIssueTransaction(7, item, member, issue, issue.AddDate(0, 0, 15), "", "staff-1", issue)

	assert.Equal(t, "TXN000007", txn.TransactionID)
	assert.Equal(t, domain.TransactionStatusIssued, txn.Status)
	assert.Equal(t, "BK-FIC-001", txn.SerialNo)
	assert.Zero(t, txn.Fine)
	assert.False(t, txn.FinePaid)

	remarks := "cover torn"
	returned := issue.AddDate(0, 0, 20)
	require.NoError(t, txn.Return(returned, "staff-2", &remarks, returned))

	assert.Equal(t, domain.TransactionStatusReturned, txn.Status)
	assert.Equal(t, int64(25), txn.Fine)
	require.NotNil(t, txn.ReturnDate)
	assert.Equal(t, returned, *txn.ReturnDate)
	require.NotNil(t, txn.ReturnedBy)
	assert.Equal(t, "staff-2", *txn.ReturnedBy)
	assert.Equal(t, remarks, txn.Remarks)

	err := txn.Return(returned.AddDate(0, 0, 10), "staff-2", nil, returned)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyReturned)
	assert.Equal(t, int64(25), txn.Fine, "fine must not change after return")
}

func TestTransaction_IsOverdue(t *testing.T) {
	now := date(2024, time.May, 10)
	txn := domain.Transaction{Status: domain.TransactionStatusIssued, DueDate: now.AddDate(0, 0, -1)}
	assert.True(t, txn.IsOverdue(now))

	txn.DueDate = now.AddDate(0, 0, 1)
	assert.False(t, txn.IsOverdue(now))

	txn.DueDate = now.AddDate(0, 0, -1)
	txn.Status = domain.TransactionStatusReturned
	assert.False(t, txn.IsOverdue(now))
}

func TestFormatIdentifiers(t *testing.T) {
	assert.Equal(t, "TXN000001", domain.FormatTransactionID(1))
	assert.Equal(t, "REQ00042", domain.FormatRequestID(42))
	assert.Equal(t, "MEM00123", domain.FormatMembershipNo(123))
	assert.Equal(t, "TXN1234567", domain.FormatTransactionID(1234567))
}

// One copy, one member: issue, fail the second issue, return five days late.
func TestLoanScenario_SingleCopy(t *testing.T) {
	issue := date(2023, time.September, 15)
	item := domain.CatalogItem{ItemID: "item-1", SerialNo: "MV-DRA-004", Kind: domain.ItemKindMovie, TotalCopies: 1, AvailableCopies: 1, IsAvailable: true, Status: domain.ItemStatusAvailable}
	member := domain.Member{MemberID: "mem-1", IsActive: true}

	require.NoError(t, member.EnsureActive())
	require.NoError(t, item.CheckOut())
	member.OpenLoan()
	txn := domain.NewIssueTransaction(1, item, member, issue, issue.AddDate(0, 0, 15), "", "staff", issue)

	assert.Equal(t, 0, item.AvailableCopies)
	assert.False(t, item.IsAvailable)
	assert.Equal(t, domain.ItemStatusIssued, item.Status)
	assert.Equal(t, 1, member.BooksIssued)

	assert.ErrorIs(t, item.CheckOut(), apperrors.ErrUnavailable)

	returned := issue.AddDate(0, 0, 20)
	require.NoError(t, txn.Return(returned, "staff", nil, returned))
	item.CheckIn()
	member.CloseLoan()

	assert.Equal(t, int64(25), txn.Fine)
	assert.Equal(t, 1, item.AvailableCopies)
	assert.True(t, item.IsAvailable)
	assert.Equal(t, domain.ItemStatusAvailable, item.Status)
	assert.Equal(t, 0, member.BooksIssued)
}
