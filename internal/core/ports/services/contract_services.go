package services

import (
	"context"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
)

// ContractSvcFacade exposes the read-only contract listing surface. Both
// operations restrict visibility to the caller's own side of the contract.
type ContractSvcFacade interface {
	// GetContractByID retrieves a single contract if the caller is a party
	// to it; apperrors.ErrNotFound otherwise.
	GetContractByID(ctx context.Context, contractID string, callerID string, callerType domain.ProfileType) (*domain.Contract, error)

	// ListContracts retrieves the caller's non-terminated contracts.
	ListContracts(ctx context.Context, callerID string, callerType domain.ProfileType) ([]domain.Contract, error)
}
