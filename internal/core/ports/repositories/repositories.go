package repositories

// RepositoryProvider aggregates the repository implementations handed to the
// service layer. It is the injected store handle: services never touch a
// database pool directly, which keeps them substitutable with in-memory
// fakes in tests.
type RepositoryProvider struct {
	ProfileRepo   ProfileRepositoryFacade
	ContractRepo  ContractRepositoryFacade
	JobRepo       JobRepositoryFacade
	ReportingRepo ReportingRepository
}
