package models

import "time"

// Transaction is a row of the transactions (loan ledger) table.
type Transaction struct {
	TransactionID string     `db:"transaction_id"`
	ItemID        string     `db:"item_id"`
	MemberID      string     `db:"member_id"`
	SerialNo      string     `db:"serial_no"`
	Type          string     `db:"type"`
	IssueDate     time.Time  `db:"issue_date"`
	DueDate       time.Time  `db:"due_date"`
	ReturnDate    *time.Time `db:"return_date"` // Null while the loan is open
	Status        string     `db:"status"`
	Fine          int64      `db:"fine"`
	FinePaid      bool       `db:"fine_paid"`
	Remarks       string     `db:"remarks"`
	IssuedBy      string     `db:"issued_by"`
	ReturnedBy    *string    `db:"returned_by"`
	AuditFields
}

// ItemRef holds the catalog columns joined onto ledger and request rows.
type ItemRef struct {
	ItemID   string `db:"item_id"`
	SerialNo string `db:"serial_no"`
	Title    string `db:"title"`
	Author   string `db:"author"`
	Kind     string `db:"kind"`
	Category string `db:"category"`
}

// MemberRef holds the member columns joined onto ledger and request rows.
type MemberRef struct {
	MemberID     string `db:"member_id"`
	MembershipNo string `db:"membership_no"`
	Name         string `db:"name"`
	Email        string `db:"email"`
}

// TransactionWithRefs is a ledger row joined with its item and member.
type TransactionWithRefs struct {
	Transaction
	Item   ItemRef
	Member MemberRef
}
