package services

import (
	portsrepo "github.com/amitpoitrix/contract-job-application/internal/core/ports/repositories"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/amitpoitrix/contract-job-application/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Profile = NewProfileService(repos.ProfileRepo)
	container.Contract = NewContractService(repos.ContractRepo)
	container.Job = NewJobService(repos.JobRepo)
	container.Balance = NewBalanceService(repos.ProfileRepo, repos.JobRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Token = NewTokenService(cfg, container.Profile)

	return container
}
