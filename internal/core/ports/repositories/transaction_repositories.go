package repositories

import (
	"context"
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for the loan ledger. Returned rows
// carry the joined item and member summaries.
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// FindTransactions lists ledger rows newest first using keyset pagination.
	FindTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	// FindActiveIssues lists open loans, most recent issue date first.
	FindActiveIssues(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines single-row writes on the ledger
type TransactionWriter interface {
	// UpdateFinePayment sets fine_paid and, when remarks is non-nil, the remarks.
	UpdateFinePayment(ctx context.Context, transactionID string, finePaid bool, remarks *string, updatedBy string, updatedAt time.Time) error
}

// TransactionTxSupport defines ledger operations that run inside a caller-owned transaction
type TransactionTxSupport interface {
	InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
	// FindTransactionForUpdate loads a ledger row and locks it until tx ends.
	FindTransactionForUpdate(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error)
	// UpdateReturnInTx persists the return date, status, fine and returner.
	UpdateReturnInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepositoryWithTx combines ledger interfaces with transaction management
type TransactionRepositoryWithTx interface {
	TransactionReader
	TransactionWriter
	TransactionTxSupport
	TransactionManager
}
