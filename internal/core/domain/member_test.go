package domain_test

import (
	"testing"
	"time"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembershipClass_ExpiryFrom(t *testing.T) {
	start := date(2024, time.January, 15)

	tests := []struct {
		class domain.MembershipClass
		want  time.Time
	}{
		{class: domain.MembershipSixMonths, want: date(2024, time.July, 15)},
		{class: domain.MembershipOneYear, want: date(2025, time.January, 15)},
		{class: domain.MembershipTwoYears, want: date(2026, time.January, 15)},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			assert.True(t, tt.class.IsValid())
			assert.Equal(t, tt.want, tt.class.ExpiryFrom(start))
		})
	}
	assert.False(t, domain.MembershipClass("lifetime").IsValid())
}

func TestNewMember(t *testing.T) {
	start := date(2024, time.February, 1)
	m := domain.NewMember("id-1", 12, domain.MembershipOneYear, start)

	assert.Equal(t, "MEM00012", m.MembershipNo)
	assert.Equal(t, date(2025, time.February, 1), m.ExpiryDate)
	assert.True(t, m.IsActive)
	assert.Zero(t, m.BooksIssued)
}

func TestMember_ExtendAndCancel(t *testing.T) {
	m := domain.NewMember("id-1", 1, domain.MembershipSixMonths, date(2024, time.January, 1))
	m.Cancel()
	assert.False(t, m.IsActive)
	assert.Equal(t, date(2024, time.July, 1), m.ExpiryDate, "cancel keeps the expiry")
	assert.ErrorIs(t, m.EnsureActive(), apperrors.ErrMemberInactive)

	require.NoError(t, m.Extend(0))
	assert.True(t, m.IsActive)
	assert.Equal(t, date(2025, time.January, 1), m.ExpiryDate)

	require.NoError(t, m.Extend(3))
	assert.Equal(t, date(2025, time.April, 1), m.ExpiryDate)

	assert.ErrorIs(t, m.Extend(-1), apperrors.ErrValidation)
	assert.ErrorIs(t, m.Extend(domain.MaxExtensionMonths+1), apperrors.ErrValidation)
}

func TestMember_ChangeClass(t *testing.T) {
	m := domain.NewMember("id-1", 1, domain.MembershipSixMonths, date(2023, time.January, 1))
	now := date(2024, time.June, 10)

	m.ChangeClass(domain.MembershipSixMonths, now)
	assert.Equal(t, date(2023, time.July, 1), m.ExpiryDate, "same class leaves expiry alone")

	m.ChangeClass(domain.MembershipTwoYears, now)
	assert.Equal(t, domain.MembershipTwoYears, m.MembershipClass)
	assert.Equal(t, date(2026, time.June, 10), m.ExpiryDate)
}

func TestMember_LoanCounter(t *testing.T) {
	m := domain.Member{IsActive: true}
	m.OpenLoan()
	m.OpenLoan()
	m.CloseLoan()
	assert.Equal(t, 1, m.BooksIssued)
	m.CloseLoan()
	m.CloseLoan()
	assert.Equal(t, 0, m.BooksIssued, "counter floors at zero")
}
