package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/debugger-rana/library-management-system/internal/apperrors"
	"github.com/debugger-rana/library-management-system/internal/core/domain"
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/debugger-rana/library-management-system/internal/utils/pagination"
)

// transactionService runs the issue/return flows. Each flow locks rows in the
// order ledger row, item, member and commits all three writes together.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryWithTx
	catalogRepo  portsrepo.CatalogTxSupport
	memberRepo   portsrepo.MemberTxSupport
	sequenceRepo portsrepo.SequenceAllocator
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the time source.
func WithTransactionClock(clock Clock) TransactionServiceOption {
	return func(s *transactionService) {
		s.clock = clock
	}
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryWithTx,
	catalogRepo portsrepo.CatalogTxSupport,
	memberRepo portsrepo.MemberTxSupport,
	sequenceRepo portsrepo.SequenceAllocator,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:      txnRepo,
		catalogRepo:  catalogRepo,
		memberRepo:   memberRepo,
		sequenceRepo: sequenceRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) IssueItem(ctx context.Context, req dto.IssueItemRequest, actorID string) (*domain.Transaction, error) {
	if req.DueDate == nil {
		return nil, apperrors.NewValidationError("dueDate is required")
	}
	now := s.Now()
	issueDate := req.IssueDate.TimeOr(now)

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := s.txnRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back issue", slog.String("item_id", req.ItemID))
		}
	}()

	item, err := s.catalogRepo.FindItemForUpdate(ctx, tx, req.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog item %s: %w", req.ItemID, err)
	}
	member, err := s.memberRepo.FindMemberForUpdate(ctx, tx, req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member %s: %w", req.MemberID, err)
	}

	if err := item.EnsureAvailable(); err != nil {
		s.LogInfo(ctx, "Issue rejected: no copies available", slog.String("item_id", item.ItemID))
		return nil, err
	}
	if err := member.EnsureActive(); err != nil {
		s.LogInfo(ctx, "Issue rejected: membership inactive", slog.String("member_id", member.MemberID))
		return nil, err
	}

	seq, err := s.sequenceRepo.NextValueInTx(ctx, tx, domain.SequenceTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate transaction id: %w", err)
	}
	txn := domain.NewIssueTransaction(seq, *item, *member, issueDate, req.DueDate.Time, req.Remarks, actorID, now)

	if err := item.CheckOut(); err != nil {
		return nil, err
	}
	item.Touch(actorID, now)
	member.OpenLoan()
	member.Touch(actorID, now)

	if err := s.txnRepo.InsertTransactionInTx(ctx, tx, txn); err != nil {
		return nil, fmt.Errorf("failed to record issue: %w", err)
	}
	if err := s.catalogRepo.UpdateItemInTx(ctx, tx, *item); err != nil {
		return nil, fmt.Errorf("failed to update item availability: %w", err)
	}
	if err := s.memberRepo.UpdateMemberInTx(ctx, tx, *member); err != nil {
		return nil, fmt.Errorf("failed to update member loan count: %w", err)
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit issue", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Item issued",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("item_id", item.ItemID),
		slog.String("member_id", member.MemberID))
	return s.reload(ctx, txn.TransactionID, &txn)
}

func (s *transactionService) ReturnItem(ctx context.Context, transactionID string, req dto.ReturnItemRequest, actorID string) (*domain.Transaction, error) {
	now := s.Now()
	returnDate := req.ReturnDate.TimeOr(now)

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := s.txnRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back return", slog.String("transaction_id", transactionID))
		}
	}()

	txn, err := s.txnRepo.FindTransactionForUpdate(ctx, tx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	if err := txn.Return(returnDate, actorID, req.Remarks, now); err != nil {
		return nil, err
	}

	item, err := s.catalogRepo.FindItemForUpdate(ctx, tx, txn.ItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog item %s: %w", txn.ItemID, err)
	}
	member, err := s.memberRepo.FindMemberForUpdate(ctx, tx, txn.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member %s: %w", txn.MemberID, err)
	}

	item.CheckIn()
	item.Touch(actorID, now)
	member.CloseLoan()
	member.Touch(actorID, now)

	if err := s.txnRepo.UpdateReturnInTx(ctx, tx, *txn); err != nil {
		return nil, fmt.Errorf("failed to record return: %w", err)
	}
	if err := s.catalogRepo.UpdateItemInTx(ctx, tx, *item); err != nil {
		return nil, fmt.Errorf("failed to update item availability: %w", err)
	}
	if err := s.memberRepo.UpdateMemberInTx(ctx, tx, *member); err != nil {
		return nil, fmt.Errorf("failed to update member loan count: %w", err)
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit return", slog.String("transaction_id", transactionID))
		return nil, err
	}

	txn.AttachRefs(*item, *member)
	s.LogInfo(ctx, "Item returned",
		slog.String("transaction_id", transactionID),
		slog.Int64("fine", txn.Fine))
	return s.reload(ctx, transactionID, txn)
}

func (s *transactionService) PayFine(ctx context.Context, transactionID string, req dto.PayFineRequest, actorID string) (*domain.Transaction, error) {
	if req.FinePaid == nil {
		return nil, apperrors.NewValidationError("finePaid is required")
	}
	if err := s.txnRepo.UpdateFinePayment(ctx, transactionID, *req.FinePaid, req.Remarks, actorID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update fine payment", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update fine payment for %s: %w", transactionID, err)
	}
	return s.GetTransaction(ctx, transactionID)
}

// reload re-reads a committed ledger row with its joins. The committed value
// is returned if the read fails, since the write already succeeded.
func (s *transactionService) reload(ctx context.Context, transactionID string, fallback *domain.Transaction) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload transaction after commit", slog.String("transaction_id", transactionID))
		return fallback, nil
	}
	return txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filter := domain.TransactionFilter{
		Status:   params.Status,
		MemberID: params.MemberID,
		ItemID:   params.ItemID,
		// One extra row tells us whether another page exists.
		Limit: limit + 1,
		AsOf:  s.Now(),
	}
	if params.NextToken != nil && *params.NextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid nextToken")
		}
		filter.AfterCreatedAt = &createdAt
		filter.AfterID = id
	}

	txns, err := s.txnRepo.FindTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var nextToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.TransactionID)
		nextToken = &token
	}

	resp := dto.ToListTransactionsResponse(txns)
	resp.NextToken = nextToken
	return &resp, nil
}

func (s *transactionService) ListActiveIssues(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindActiveIssues(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active issues")
		return nil, fmt.Errorf("failed to list active issues: %w", err)
	}
	return txns, nil
}
