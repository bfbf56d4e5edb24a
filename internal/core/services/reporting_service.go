package services

import (
	"context"
	"fmt"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingClock sets the reference time used for overdue calculations.
func WithReportingClock(clock Clock) ReportingServiceOption {
	return func(s *reportingService) {
		s.clock = clock
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats, err := s.reportingRepo.GetDashboardStats(ctx, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to compute dashboard stats")
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}
	return stats, nil
}

func (s *reportingService) GetOverdueReport(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.reportingRepo.FindOverdueTransactions(ctx, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to load overdue transactions")
		return nil, fmt.Errorf("failed to load overdue report: %w", err)
	}
	return txns, nil
}

func (s *reportingService) GetPopularItems(ctx context.Context) ([]domain.PopularItem, error) {
	counts, err := s.reportingRepo.CountIssuesByItem(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count issues by item")
		return nil, fmt.Errorf("failed to load popular items: %w", err)
	}
	return domain.RankPopularItems(counts, domain.PopularItemsLimit), nil
}

func (s *reportingService) GetMemberActivity(ctx context.Context) ([]domain.MemberActivity, error) {
	counts, err := s.reportingRepo.CountIssuesByMember(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count issues by member")
		return nil, fmt.Errorf("failed to load member activity: %w", err)
	}
	return domain.RankMemberActivity(counts), nil
}

func (s *reportingService) GetFineReport(ctx context.Context) (*domain.FineReport, error) {
	txns, err := s.reportingRepo.FindFinedTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load fined transactions")
		return nil, fmt.Errorf("failed to load fine report: %w", err)
	}
	return &domain.FineReport{
		Transactions: txns,
		Summary:      domain.SummarizeFines(txns),
	}, nil
}
