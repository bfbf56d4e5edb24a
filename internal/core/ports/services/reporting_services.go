package services

import (
	"context"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
)

// ReportingService defines read-only reports over the catalog, members and ledger.
type ReportingService interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	GetOverdueReport(ctx context.Context) ([]domain.Transaction, error)
	GetPopularItems(ctx context.Context) ([]domain.PopularItem, error)
	GetMemberActivity(ctx context.Context) ([]domain.MemberActivity, error)
	GetFineReport(ctx context.Context) (*domain.FineReport, error)
}
