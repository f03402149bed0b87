package pgsql

import (
	portsrepo "github.com/amitpoitrix/contract-job-application/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	profileRepo := newPgxProfileRepository(dbPool)
	contractRepo := newPgxContractRepository(dbPool)
	jobRepo := newPgxJobRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ProfileRepo:   profileRepo,
		ContractRepo:  contractRepo,
		JobRepo:       jobRepo,
		ReportingRepo: reportingRepo,
	}
}
