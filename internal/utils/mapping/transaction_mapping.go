package mapping

import (
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		ItemID:        d.ItemID,
		MemberID:      d.MemberID,
		SerialNo:      d.SerialNo,
		Type:          string(d.Type),
		IssueDate:     d.IssueDate,
		DueDate:       d.DueDate,
		ReturnDate:    d.ReturnDate,
		Status:        string(d.Status),
		Fine:          d.Fine,
		FinePaid:      d.FinePaid,
		Remarks:       d.Remarks,
		IssuedBy:      d.IssuedBy,
		ReturnedBy:    d.ReturnedBy,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ItemID:        m.ItemID,
		MemberID:      m.MemberID,
		SerialNo:      m.SerialNo,
		Type:          domain.TransactionType(m.Type),
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		ReturnDate:    m.ReturnDate,
		Status:        domain.TransactionStatus(m.Status),
		Fine:          m.Fine,
		FinePaid:      m.FinePaid,
		Remarks:       m.Remarks,
		IssuedBy:      m.IssuedBy,
		ReturnedBy:    m.ReturnedBy,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionWithRefs converts a joined ledger row, attaching the
// item and member summaries.
func ToDomainTransactionWithRefs(m models.TransactionWithRefs) domain.Transaction {
	d := ToDomainTransaction(m.Transaction)
	d.Item = ToDomainItemSummary(m.Item)
	d.Member = ToDomainMemberSummary(m.Member)
	return d
}

// ToDomainTransactionWithRefsSlice converts joined ledger rows.
func ToDomainTransactionWithRefsSlice(ms []models.TransactionWithRefs) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransactionWithRefs(m)
	}
	return ds
}
