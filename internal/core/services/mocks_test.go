package services_test

import (
	"context"
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// txMock provides Begin/Commit/Rollback for repository mocks that also manage transactions.
type txMock struct {
	mock.Mock
}

func (m *txMock) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *txMock) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *txMock) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// expectTx stubs a transaction that either commits or is only rolled back.
func (m *txMock) expectTx(commit bool) {
	m.On("Begin", mock.Anything).Return(nil, nil).Once()
	if commit {
		m.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	}
	m.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

// stubTx is an opaque transaction handle. Only its identity matters to the mocks.
type stubTx struct {
	pgx.Tx
	name string
}

// expectRollback stubs a transaction on tx that must end without Commit.
func (m *txMock) expectRollback(tx pgx.Tx) {
	m.On("Begin", mock.Anything).Return(tx, nil).Once()
	m.On("Rollback", mock.Anything, tx).Return(nil).Once()
}

// --- Catalog ---

type MockCatalogRepository struct {
	txMock
}

func (m *MockCatalogRepository) FindItemByID(ctx context.Context, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, itemID)
	var item *domain.CatalogItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.CatalogItem)
	}
	return item, args.Error(1)
}

func (m *MockCatalogRepository) FindItemBySerialNo(ctx context.Context, serialNo string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, serialNo)
	var item *domain.CatalogItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.CatalogItem)
	}
	return item, args.Error(1)
}

func (m *MockCatalogRepository) SearchItems(ctx context.Context, filter domain.CatalogFilter) ([]domain.CatalogItem, error) {
	args := m.Called(ctx, filter)
	var items []domain.CatalogItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.CatalogItem)
	}
	return items, args.Error(1)
}

func (m *MockCatalogRepository) SaveItem(ctx context.Context, item domain.CatalogItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockCatalogRepository) FindItemForUpdate(ctx context.Context, tx pgx.Tx, itemID string) (*domain.CatalogItem, error) {
	args := m.Called(ctx, tx, itemID)
	var item *domain.CatalogItem
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.CatalogItem)
	}
	return item, args.Error(1)
}

func (m *MockCatalogRepository) UpdateItemInTx(ctx context.Context, tx pgx.Tx, item domain.CatalogItem) error {
	args := m.Called(ctx, tx, item)
	return args.Error(0)
}

// --- Members ---

type MockMemberRepository struct {
	txMock
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, memberID)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) FindMemberByNumber(ctx context.Context, membershipNo string) (*domain.Member, error) {
	args := m.Called(ctx, membershipNo)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) FindMembers(ctx context.Context, limit int, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, limit, offset)
	var members []domain.Member
	if args.Get(0) != nil {
		members = args.Get(0).([]domain.Member)
	}
	return members, args.Error(1)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func (m *MockMemberRepository) FindMemberForUpdate(ctx context.Context, tx pgx.Tx, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, tx, memberID)
	var member *domain.Member
	if args.Get(0) != nil {
		member = args.Get(0).(*domain.Member)
	}
	return member, args.Error(1)
}

func (m *MockMemberRepository) UpdateMemberInTx(ctx context.Context, tx pgx.Tx, member domain.Member) error {
	args := m.Called(ctx, tx, member)
	return args.Error(0)
}

// --- Ledger ---

type MockTransactionRepository struct {
	txMock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) FindActiveIssues(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) UpdateFinePayment(ctx context.Context, transactionID string, finePaid bool, remarks *string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, transactionID, finePaid, remarks, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, tx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) UpdateReturnInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

// --- Issue requests ---

type MockIssueRequestRepository struct {
	mock.Mock
}

func (m *MockIssueRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.IssueRequest, error) {
	args := m.Called(ctx, requestID)
	var req *domain.IssueRequest
	if args.Get(0) != nil {
		req = args.Get(0).(*domain.IssueRequest)
	}
	return req, args.Error(1)
}

func (m *MockIssueRequestRepository) FindRequests(ctx context.Context, status domain.RequestStatus, limit int, offset int) ([]domain.IssueRequest, error) {
	args := m.Called(ctx, status, limit, offset)
	var reqs []domain.IssueRequest
	if args.Get(0) != nil {
		reqs = args.Get(0).([]domain.IssueRequest)
	}
	return reqs, args.Error(1)
}

func (m *MockIssueRequestRepository) SaveRequest(ctx context.Context, req domain.IssueRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockIssueRequestRepository) UpdateRequestDecision(ctx context.Context, req domain.IssueRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockIssueRequestRepository) DeleteRequest(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

// --- Sequences ---

type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextValue(ctx context.Context, seq domain.Sequence) (int64, error) {
	args := m.Called(ctx, seq)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSequenceRepository) NextValueInTx(ctx context.Context, tx pgx.Tx, seq domain.Sequence) (int64, error) {
	args := m.Called(ctx, tx, seq)
	return args.Get(0).(int64), args.Error(1)
}

// --- Reporting ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetDashboardStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	args := m.Called(ctx, now)
	var stats *domain.DashboardStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.DashboardStats)
	}
	return stats, args.Error(1)
}

func (m *MockReportingRepository) FindOverdueTransactions(ctx context.Context, now time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, now)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockReportingRepository) CountIssuesByItem(ctx context.Context) ([]domain.PopularItem, error) {
	args := m.Called(ctx)
	var rows []domain.PopularItem
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.PopularItem)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) CountIssuesByMember(ctx context.Context) ([]domain.MemberActivity, error) {
	args := m.Called(ctx)
	var rows []domain.MemberActivity
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.MemberActivity)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) FindFinedTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

// --- Users ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
