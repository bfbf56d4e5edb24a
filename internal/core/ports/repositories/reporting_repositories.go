package repositories

import (
	"context"
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
)

// ReportingRepository defines read-only aggregate queries for reports
type ReportingRepository interface {
	// GetDashboardStats counts items, members, open and overdue loans, and fine totals.
	GetDashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error)
	// FindOverdueTransactions lists open loans due before now, oldest due date first.
	FindOverdueTransactions(ctx context.Context, now time.Time) ([]domain.Transaction, error)
	// CountIssuesByItem returns loan counts per item joined with item metadata.
	CountIssuesByItem(ctx context.Context) ([]domain.PopularItem, error)
	// CountIssuesByMember returns loan counts per member joined with member metadata.
	CountIssuesByMember(ctx context.Context) ([]domain.MemberActivity, error)
	// FindFinedTransactions lists loans with a fine, latest return first.
	FindFinedTransactions(ctx context.Context) ([]domain.Transaction, error)
}
