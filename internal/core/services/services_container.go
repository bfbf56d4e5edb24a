package services

import (
	portsrepo "github.com/debugger-rana/library-management-system/internal/core/ports/repositories"
	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Catalog: NewCatalogService(repos.CatalogRepo),
		Member:  NewMemberService(repos.MemberRepo, repos.SequenceRepo),
		Transaction: NewTransactionService(
			repos.TransactionRepo,
			repos.CatalogRepo,
			repos.MemberRepo,
			repos.SequenceRepo,
		),
		IssueRequest: NewIssueRequestService(
			repos.IssueRequestRepo,
			repos.CatalogRepo,
			repos.MemberRepo,
			repos.SequenceRepo,
		),
		Reporting: NewReportingService(repos.ReportingRepo),
		User:      NewUserService(repos.UserRepo),
		Token:     NewTokenService(cfg),
	}
}
