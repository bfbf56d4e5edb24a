package handlers

import (
	"context"
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/stretchr/testify/mock"
)

type mockCatalogService struct{ mock.Mock }

func (m *mockCatalogService) GetItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(*domain.CatalogItem)
	return item, args.Error(1)
}

func (m *mockCatalogService) ListItems(ctx context.Context, limit, offset int) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, limit, offset)
	items, _ := args.Get(0).([]domain.CatalogItem)
	return items, args.Error(1)
}

func (m *mockCatalogService) SearchItems(ctx context.Context, params dto.SearchCatalogParams) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, params)
	items, _ := args.Get(0).([]domain.CatalogItem)
	return items, args.Error(1)
}

func (m *mockCatalogService) CreateItem(ctx context.Context, req dto.CreateCatalogItemRequest, actorID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, req, actorID)
	item, _ := args.Get(0).(*domain.CatalogItem)
	return item, args.Error(1)
}

func (m *mockCatalogService) UpdateItem(ctx context.Context, itemID string, req dto.UpdateCatalogItemRequest, actorID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID, req, actorID)
	item, _ := args.Get(0).(*domain.CatalogItem)
	return item, args.Error(1)
}

func (m *mockCatalogService) DeleteItem(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

type mockMemberService struct{ mock.Mock }

func (m *mockMemberService) GetMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	member, _ := args.Get(0).(*domain.Member)
	return member, args.Error(1)
}

func (m *mockMemberService) GetMemberByNumber(ctx context.Context, membershipNo string) (*domain.Member, error) {
	args := m.Called(ctx, membershipNo)
	member, _ := args.Get(0).(*domain.Member)
	return member, args.Error(1)
}

func (m *mockMemberService) ListMembers(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, limit, offset)
	members, _ := args.Get(0).([]domain.Member)
	return members, args.Error(1)
}

func (m *mockMemberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, actorID string) (*domain.Member, error) {
	args := m.Called(ctx, req, actorID)
	member, _ := args.Get(0).(*domain.Member)
	return member, args.Error(1)
}

func (m *mockMemberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, actorID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID, req, actorID)
	member, _ := args.Get(0).(*domain.Member)
	return member, args.Error(1)
}

func (m *mockMemberService) DeleteMember(ctx context.Context, memberID string) error {
	return m.Called(ctx, memberID).Error(0)
}

func (m *mockMemberService) ExtendMembership(ctx context.Context, memberID string, months int, actorID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID, months, actorID)
	member, _ := args.Get(0).(*domain.Member)
	return member, args.Error(1)
}

func (m *mockMemberService) CancelMembership(ctx context.Context, memberID string, actorID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID, actorID)
	member, _ := args.Get(0).(*domain.Member)
	return member, args.Error(1)
}

type mockTransactionService struct{ mock.Mock }

func (m *mockTransactionService) IssueItem(ctx context.Context, req dto.IssueItemRequest, actorID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, actorID)
	txn, _ := args.Get(0).(*domain.Transaction)
	return txn, args.Error(1)
}

func (m *mockTransactionService) ReturnItem(ctx context.Context, transactionID string, req dto.ReturnItemRequest, actorID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, actorID)
	txn, _ := args.Get(0).(*domain.Transaction)
	return txn, args.Error(1)
}

func (m *mockTransactionService) PayFine(ctx context.Context, transactionID string, req dto.PayFineRequest, actorID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, actorID)
	txn, _ := args.Get(0).(*domain.Transaction)
	return txn, args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	txn, _ := args.Get(0).(*domain.Transaction)
	return txn, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, params)
	resp, _ := args.Get(0).(*dto.ListTransactionsResponse)
	return resp, args.Error(1)
}

func (m *mockTransactionService) ListActiveIssues(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	txns, _ := args.Get(0).([]domain.Transaction)
	return txns, args.Error(1)
}

type mockIssueRequestService struct{ mock.Mock }

func (m *mockIssueRequestService) CreateRequest(ctx context.Context, req dto.CreateIssueRequestRequest, actorID string) (*domain.IssueRequest, error) {
	args := m.Called(ctx, req, actorID)
	r, _ := args.Get(0).(*domain.IssueRequest)
	return r, args.Error(1)
}

func (m *mockIssueRequestService) GetRequest(ctx context.Context, requestID string) (*domain.IssueRequest, error) {
	args := m.Called(ctx, requestID)
	r, _ := args.Get(0).(*domain.IssueRequest)
	return r, args.Error(1)
}

func (m *mockIssueRequestService) ListRequests(ctx context.Context, params dto.ListIssueRequestsParams) ([]domain.IssueRequest, error) {
	args := m.Called(ctx, params)
	rs, _ := args.Get(0).([]domain.IssueRequest)
	return rs, args.Error(1)
}

func (m *mockIssueRequestService) ApproveRequest(ctx context.Context, requestID string, remarks string, actorID string) (*domain.IssueRequest, error) {
	args := m.Called(ctx, requestID, remarks, actorID)
	r, _ := args.Get(0).(*domain.IssueRequest)
	return r, args.Error(1)
}

func (m *mockIssueRequestService) RejectRequest(ctx context.Context, requestID string, remarks string, actorID string) (*domain.IssueRequest, error) {
	args := m.Called(ctx, requestID, remarks, actorID)
	r, _ := args.Get(0).(*domain.IssueRequest)
	return r, args.Error(1)
}

func (m *mockIssueRequestService) DeleteRequest(ctx context.Context, requestID string) error {
	return m.Called(ctx, requestID).Error(0)
}

type mockReportingService struct{ mock.Mock }

func (m *mockReportingService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.DashboardStats)
	return s, args.Error(1)
}

func (m *mockReportingService) GetOverdueReport(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	txns, _ := args.Get(0).([]domain.Transaction)
	return txns, args.Error(1)
}

func (m *mockReportingService) GetPopularItems(ctx context.Context) ([]domain.PopularItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.PopularItem)
	return items, args.Error(1)
}

func (m *mockReportingService) GetMemberActivity(ctx context.Context) ([]domain.MemberActivity, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]domain.MemberActivity)
	return rows, args.Error(1)
}

func (m *mockReportingService) GetFineReport(ctx context.Context) (*domain.FineReport, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).(*domain.FineReport)
	return r, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	us, _ := args.Get(0).([]domain.User)
	return us, args.Error(1)
}

func (m *mockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, actorID string) (*domain.User, error) {
	args := m.Called(ctx, req, actorID)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actorID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, actorID)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, userID string, actorID string) error {
	return m.Called(ctx, userID, actorID).Error(0)
}

func (m *mockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
