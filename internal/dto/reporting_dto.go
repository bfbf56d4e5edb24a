package dto

import "github.com/debugger-rana/library-management-system/internal/core/domain"

// DashboardResponse is the dashboard aggregate.
type DashboardResponse = domain.DashboardStats

// OverdueReportResponse lists loans past their due date.
type OverdueReportResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// PopularItemsResponse is the popularity ranking.
type PopularItemsResponse struct {
	Items []domain.PopularItem `json:"items"`
}

// MemberActivityResponse lists loan counts per member.
type MemberActivityResponse struct {
	Members []domain.MemberActivity `json:"members"`
}

// FineReportResponse lists fined loans with their totals.
type FineReportResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      domain.FineSummary    `json:"summary"`
}

// ToFineReportResponse converts a domain.FineReport.
func ToFineReportResponse(r *domain.FineReport) FineReportResponse {
	return FineReportResponse{
		Transactions: ToTransactionResponses(r.Transactions),
		Summary:      r.Summary,
	}
}
