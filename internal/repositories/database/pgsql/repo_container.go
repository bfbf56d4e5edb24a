package pgsql

import (
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CatalogRepo:      newPgxCatalogRepository(dbPool),
		MemberRepo:       newPgxMemberRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		IssueRequestRepo: newPgxIssueRequestRepository(dbPool),
		SequenceRepo:     newPgxSequenceRepository(dbPool),
		ReportingRepo:    newReportingRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
