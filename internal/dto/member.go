package dto

import (
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
)

// CreateMemberRequest defines the data needed to register a member.
type CreateMemberRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Email           string                 `json:"email" binding:"required,email"`
	Phone           string                 `json:"phone" binding:"required"`
	Address         string                 `json:"address" binding:"required"`
	NationalID      string                 `json:"nationalId"`
	MembershipClass domain.MembershipClass `json:"membershipClass" binding:"omitempty,membershipclass"`
	StartDate       *Date                  `json:"startDate" swaggertype:"string" example:"2023-09-30"`
}

// UpdateMemberRequest defines the fields an admin may edit on a member.
type UpdateMemberRequest struct {
	Name            *string                 `json:"name" binding:"omitempty,min=1"`
	Email           *string                 `json:"email" binding:"omitempty,email"`
	Phone           *string                 `json:"phone" binding:"omitempty,min=1"`
	Address         *string                 `json:"address" binding:"omitempty,min=1"`
	NationalID      *string                 `json:"nationalId"`
	MembershipClass *domain.MembershipClass `json:"membershipClass" binding:"omitempty,membershipclass"`
}

// ExtendMembershipRequest names how many months to add. Zero means the default.
type ExtendMembershipRequest struct {
	Months int `json:"months" binding:"omitempty,min=1,max=24"`
}

// ListMembersParams defines query parameters for listing members.
type ListMembersParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	MemberID        string                 `json:"memberID"`
	MembershipNo    string                 `json:"membershipNo"`
	Name            string                 `json:"name"`
	Email           string                 `json:"email"`
	Phone           string                 `json:"phone"`
	Address         string                 `json:"address"`
	NationalID      string                 `json:"nationalId,omitempty"`
	MembershipClass domain.MembershipClass `json:"membershipClass"`
	StartDate       time.Time              `json:"startDate"`
	ExpiryDate      time.Time              `json:"expiryDate"`
	IsActive        bool                   `json:"isActive"`
	BooksIssued     int                    `json:"booksIssued"`
	CreatedAt       time.Time              `json:"createdAt"`
	LastUpdatedAt   time.Time              `json:"lastUpdatedAt"`
}

// ListMembersResponse wraps a page of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
	Count   int              `json:"count"`
}

// ToMemberResponse converts a domain.Member to its response DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:        m.MemberID,
		MembershipNo:    m.MembershipNo,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Address:         m.Address,
		NationalID:      m.NationalID,
		MembershipClass: m.MembershipClass,
		StartDate:       m.StartDate,
		ExpiryDate:      m.ExpiryDate,
		IsActive:        m.IsActive,
		BooksIssued:     m.BooksIssued,
		CreatedAt:       m.CreatedAt,
		LastUpdatedAt:   m.LastUpdatedAt,
	}
}

// ToListMembersResponse converts a slice of members.
func ToListMembersResponse(members []domain.Member) ListMembersResponse {
	out := make([]MemberResponse, len(members))
	for i := range members {
		out[i] = ToMemberResponse(&members[i])
	}
	return ListMembersResponse{Members: out, Count: len(out)}
}
