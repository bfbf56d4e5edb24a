package dto

import (
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
)

// IssueItemRequest defines the data needed to lend an item to a member.
type IssueItemRequest struct {
	ItemID    string     `json:"itemID" binding:"required"`
	MemberID  string     `json:"memberID" binding:"required"`
	IssueDate *Date  `json:"issueDate" swaggertype:"string" example:"2023-09-30"`
	DueDate   *Date  `json:"dueDate" binding:"required" swaggertype:"string" example:"2023-09-30"`
	Remarks   string `json:"remarks"`
}

// ReturnItemRequest defines the optional data sent when an item comes back.
type ReturnItemRequest struct {
	ReturnDate *Date   `json:"returnDate" swaggertype:"string" example:"2023-09-30"`
	Remarks    *string `json:"remarks"`
}

// PayFineRequest records whether the fine on a loan has been paid.
type PayFineRequest struct {
	FinePaid *bool   `json:"finePaid" binding:"required"`
	Remarks  *string `json:"remarks"`
}

// ListTransactionsParams defines query parameters for listing the ledger.
type ListTransactionsParams struct {
	Status    domain.TransactionStatus `form:"status" binding:"omitempty,oneof=issued returned overdue"`
	MemberID  string                   `form:"memberID"`
	ItemID    string                   `form:"itemID"`
	Limit     int                      `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string                  `form:"nextToken"`
}

// TransactionResponse defines the data returned for a ledger row.
type TransactionResponse struct {
	TransactionID string                     `json:"transactionID"`
	ItemID        string                     `json:"itemID"`
	MemberID      string                     `json:"memberID"`
	SerialNo      string                     `json:"serialNo"`
	Type          domain.TransactionType     `json:"type"`
	IssueDate     time.Time                  `json:"issueDate"`
	DueDate       time.Time                  `json:"dueDate"`
	ReturnDate    *time.Time                 `json:"returnDate,omitempty"`
	Status        domain.TransactionStatus   `json:"status"`
	Fine          int64                      `json:"fine"`
	FinePaid      bool                       `json:"finePaid"`
	Remarks       string                     `json:"remarks,omitempty"`
	IssuedBy      string                     `json:"issuedBy"`
	ReturnedBy    *string                    `json:"returnedBy,omitempty"`
	Item          *domain.CatalogItemSummary `json:"item,omitempty"`
	Member        *domain.MemberSummary      `json:"member,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
	LastUpdatedAt time.Time                  `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps a page of ledger rows.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		ItemID:        t.ItemID,
		MemberID:      t.MemberID,
		SerialNo:      t.SerialNo,
		Type:          t.Type,
		IssueDate:     t.IssueDate,
		DueDate:       t.DueDate,
		ReturnDate:    t.ReturnDate,
		Status:        t.Status,
		Fine:          t.Fine,
		FinePaid:      t.FinePaid,
		Remarks:       t.Remarks,
		IssuedBy:      t.IssuedBy,
		ReturnedBy:    t.ReturnedBy,
		Item:          t.Item,
		Member:        t.Member,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of ledger rows.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}

// ToListTransactionsResponse wraps rows without a continuation token.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	out := ToTransactionResponses(txns)
	return ListTransactionsResponse{Transactions: out, Count: len(out)}
}
