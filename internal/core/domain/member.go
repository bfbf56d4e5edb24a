package domain

import (
	"fmt"
	"time"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
)

// MembershipClass determines how long a membership runs.
type MembershipClass string

const (
	MembershipSixMonths MembershipClass = "6months"
	MembershipOneYear   MembershipClass = "1year"
	MembershipTwoYears  MembershipClass = "2years"
)

// DefaultExtensionMonths is used when an extension does not name a duration.
const DefaultExtensionMonths = 6

// MaxExtensionMonths bounds a single extension.
const MaxExtensionMonths = 24

// IsValid reports whether c is a known class.
func (c MembershipClass) IsValid() bool {
	switch c {
	case MembershipSixMonths, MembershipOneYear, MembershipTwoYears:
		return true
	}
	return false
}

// Months is the duration of the class.
func (c MembershipClass) Months() int {
	switch c {
	case MembershipOneYear:
		return 12
	case MembershipTwoYears:
		return 24
	default:
		return 6
	}
}

// ExpiryFrom returns start plus the class duration.
func (c MembershipClass) ExpiryFrom(start time.Time) time.Time {
	return start.AddDate(0, c.Months(), 0)
}

// Member is a registered library member.
type Member struct {
	MemberID        string          `json:"memberID"`
	MembershipNo    string          `json:"membershipNo"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	NationalID      string          `json:"nationalId,omitempty"`
	MembershipClass MembershipClass `json:"membershipClass"`
	StartDate       time.Time       `json:"startDate"`
	ExpiryDate      time.Time       `json:"expiryDate"`
	IsActive        bool            `json:"isActive"`
	BooksIssued     int             `json:"booksIssued"`
	AuditFields
}

// MemberSummary is the slice of member data joined into ledger and report rows.
type MemberSummary struct {
	MemberID     string `json:"memberID"`
	MembershipNo string `json:"membershipNo"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
}

// Summary returns the joined view of the member.
func (m Member) Summary() MemberSummary {
	return MemberSummary{
		MemberID:     m.MemberID,
		MembershipNo: m.MembershipNo,
		Name:         m.Name,
		Email:        m.Email,
	}
}

// FormatMembershipNo renders a sequence value as MEM00001.
func FormatMembershipNo(seq int64) string {
	return fmt.Sprintf("MEM%05d", seq)
}

// NewMember registers a member starting at start with the expiry derived from class.
func NewMember(memberID string, seq int64, class MembershipClass, start time.Time) Member {
	return Member{
		MemberID:        memberID,
		MembershipNo:    FormatMembershipNo(seq),
		MembershipClass: class,
		StartDate:       start,
		ExpiryDate:      class.ExpiryFrom(start),
		IsActive:        true,
	}
}

// EnsureActive fails with ErrMemberInactive for cancelled memberships.
func (m Member) EnsureActive() error {
	if !m.IsActive {
		return apperrors.ErrMemberInactive
	}
	return nil
}

// ChangeClass switches the class and recomputes the expiry from now.
func (m *Member) ChangeClass(class MembershipClass, now time.Time) {
	if class == m.MembershipClass {
		return
	}
	m.MembershipClass = class
	m.ExpiryDate = class.ExpiryFrom(now)
}

// Extend pushes the expiry forward by months and reactivates the membership.
func (m *Member) Extend(months int) error {
	if months == 0 {
		months = DefaultExtensionMonths
	}
	if months < 1 || months > MaxExtensionMonths {
		return apperrors.NewValidationError(fmt.Sprintf("months must be between 1 and %d", MaxExtensionMonths))
	}
	m.ExpiryDate = m.ExpiryDate.AddDate(0, months, 0)
	m.IsActive = true
	return nil
}

// Cancel deactivates the membership. The expiry is left untouched.
func (m *Member) Cancel() {
	m.IsActive = false
}

// OpenLoan records one more item on loan.
func (m *Member) OpenLoan() {
	m.BooksIssued++
}

// CloseLoan records one item returned, never going below zero.
func (m *Member) CloseLoan() {
	if m.BooksIssued > 0 {
		m.BooksIssued--
	}
}
