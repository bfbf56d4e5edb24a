package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportingService_Dashboard(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	repo := new(MockReportingRepository)
	stats := &domain.DashboardStats{Books: domain.BookStats{Total: 10, Available: 7, Issued: 3}}
	repo.On("GetDashboardStats", ctx, now).Return(stats, nil).Once()

	svc := services.NewReportingService(repo, services.WithReportingClock(fixedClock(now)))
	got, err := svc.GetDashboardStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Books.Issued)
	repo.AssertExpectations(t)
}

func TestReportingService_OverdueUsesClock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	repo := new(MockReportingRepository)
	repo.On("FindOverdueTransactions", ctx, now).Return([]domain.Transaction{{TransactionID: "TXN000001"}}, nil).Once()

	svc := services.NewReportingService(repo, services.WithReportingClock(fixedClock(now)))
	got, err := svc.GetOverdueReport(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertExpectations(t)
}

func TestReportingService_PopularItemsRankedAndCapped(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)

	rows := make([]domain.PopularItem, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, domain.PopularItem{
			Item:       domain.CatalogItemSummary{ItemID: fmt.Sprintf("item-%02d", i)},
			IssueCount: int64(i % 4),
		})
	}
	repo.On("CountIssuesByItem", ctx).Return(rows, nil).Once()

	got, err := services.NewReportingService(repo).GetPopularItems(ctx)

	require.NoError(t, err)
	require.Len(t, got, domain.PopularItemsLimit)
	assert.Equal(t, int64(3), got[0].IssueCount)
	assert.Equal(t, "item-03", got[0].Item.ItemID)
	assert.Equal(t, "item-07", got[1].Item.ItemID)
}

func TestReportingService_MemberActivity(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	repo.On("CountIssuesByMember", ctx).Return([]domain.MemberActivity{
		{Member: domain.MemberSummary{MemberID: "b"}, TotalIssues: 1},
		{Member: domain.MemberSummary{MemberID: "a"}, TotalIssues: 4},
	}, nil).Once()

	got, err := services.NewReportingService(repo).GetMemberActivity(ctx)

	require.NoError(t, err)
	assert.Equal(t, "a", got[0].Member.MemberID)
}

func TestReportingService_FineReport(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	repo.On("FindFinedTransactions", ctx).Return([]domain.Transaction{
		{TransactionID: "TXN000001", Fine: 10, FinePaid: true},
		{TransactionID: "TXN000002", Fine: 25},
	}, nil).Once()

	report, err := services.NewReportingService(repo).GetFineReport(ctx)

	require.NoError(t, err)
	assert.Equal(t, domain.FineSummary{TotalFines: 35, PaidFines: 10, UnpaidFines: 25}, report.Summary)
	assert.Len(t, report.Transactions, 2)
}

func TestReportingService_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportingRepository)
	boom := errors.New("connection reset")
	repo.On("FindFinedTransactions", ctx).Return(nil, boom).Once()

	_, err := services.NewReportingService(repo).GetFineReport(ctx)

	assert.ErrorIs(t, err, boom)
}
