package repositories

import (
	"context"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
)

// ContractReader defines read operations for contract data. The caller's
// role picks which side of the contract is matched: clients see contracts
// where they are the client, contractors where they are the contractor.
// The role is an explicit enum, never a runtime-selected column name.
type ContractReader interface {
	// FindContractForProfile retrieves a contract by ID, restricted to
	// contracts the profile is a party to on its own side.
	FindContractForProfile(ctx context.Context, contractID string, profileID string, role domain.ProfileType) (*domain.Contract, error)

	// ListContractsForProfile retrieves the profile's non-terminated
	// contracts on its own side.
	ListContractsForProfile(ctx context.Context, profileID string, role domain.ProfileType) ([]domain.Contract, error)
}

// ContractRepositoryFacade combines all contract-related repository interfaces.
type ContractRepositoryFacade interface {
	ContractReader
}
