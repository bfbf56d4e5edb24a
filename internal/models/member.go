package models

import "time"

// Member is a row of the members table.
type Member struct {
	MemberID        string    `db:"member_id"`
	MembershipNo    string    `db:"membership_no"`
	Name            string    `db:"name"`
	Email           string    `db:"email"`
	Phone           string    `db:"phone"`
	Address         string    `db:"address"`
	NationalID      string    `db:"national_id"`
	MembershipClass string    `db:"membership_class"`
	StartDate       time.Time `db:"start_date"`
	ExpiryDate      time.Time `db:"expiry_date"`
	IsActive        bool      `db:"is_active"`
	BooksIssued     int       `db:"books_issued"`
	AuditFields
}
