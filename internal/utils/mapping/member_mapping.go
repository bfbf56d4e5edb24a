package mapping

import (
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/models"
)

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:        d.MemberID,
		MembershipNo:    d.MembershipNo,
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		Address:         d.Address,
		NationalID:      d.NationalID,
		MembershipClass: string(d.MembershipClass),
		StartDate:       d.StartDate,
		ExpiryDate:      d.ExpiryDate,
		IsActive:        d.IsActive,
		BooksIssued:     d.BooksIssued,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:        m.MemberID,
		MembershipNo:    m.MembershipNo,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Address:         m.Address,
		NationalID:      m.NationalID,
		MembershipClass: domain.MembershipClass(m.MembershipClass),
		StartDate:       m.StartDate,
		ExpiryDate:      m.ExpiryDate,
		IsActive:        m.IsActive,
		BooksIssued:     m.BooksIssued,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMemberSlice converts model members to domain members
func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}

// ToDomainMemberSummary converts a joined member reference to a domain summary.
func ToDomainMemberSummary(m models.MemberRef) *domain.MemberSummary {
	return &domain.MemberSummary{
		MemberID:     m.MemberID,
		MembershipNo: m.MembershipNo,
		Name:         m.Name,
		Email:        m.Email,
	}
}
