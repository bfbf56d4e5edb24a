package services

import (
	"context"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/debugger-rana/library-management-system/internal/dto"
)

// CirculationSvc defines the operations that move copies between shelf and member.
type CirculationSvc interface {
	// IssueItem lends one copy; item, member and ledger change together or not at all.
	IssueItem(ctx context.Context, req dto.IssueItemRequest, actorID string) (*domain.Transaction, error)
	// ReturnItem closes a loan, computes its fine and restores the counters.
	ReturnItem(ctx context.Context, transactionID string, req dto.ReturnItemRequest, actorID string) (*domain.Transaction, error)
	// PayFine records the payment flag of a loan without recomputing the fine.
	PayFine(ctx context.Context, transactionID string, req dto.PayFineRequest, actorID string) (*domain.Transaction, error)
}

// TransactionReaderSvc defines read operations on the ledger
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
	ListActiveIssues(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionSvcFacade combines all ledger service interfaces
type TransactionSvcFacade interface {
	CirculationSvc
	TransactionReaderSvc
}
