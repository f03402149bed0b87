package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portsrepo "github.com/amitpoitrix/contract-job-application/internal/core/ports/repositories"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
)

// contractService implements the ContractSvcFacade interface
type contractService struct {
	BaseService
	contractRepo portsrepo.ContractRepositoryFacade
}

// NewContractService creates a new contract service
func NewContractService(contractRepo portsrepo.ContractRepositoryFacade) portssvc.ContractSvcFacade {
	return &contractService{contractRepo: contractRepo}
}

// Ensure contractService implements the ContractSvcFacade interface
var _ portssvc.ContractSvcFacade = (*contractService)(nil)

// GetContractByID returns the contract only when the caller is a party to it
// on their own side; everything else is a uniform not-found.
func (s *contractService) GetContractByID(ctx context.Context, contractID string, callerID string, callerType domain.ProfileType) (*domain.Contract, error) {
	if !callerType.IsValid() {
		return nil, fmt.Errorf("invalid caller type %q: %w", callerType, apperrors.ErrValidation)
	}

	contract, err := s.contractRepo.FindContractForProfile(ctx, contractID, callerID, callerType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Contract not found or not visible to caller",
				slog.String("contract_id", contractID))
			return nil, err
		}
		return nil, fmt.Errorf("failed to get contract %s: %w", contractID, err)
	}
	return contract, nil
}

func (s *contractService) ListContracts(ctx context.Context, callerID string, callerType domain.ProfileType) ([]domain.Contract, error) {
	if !callerType.IsValid() {
		return nil, fmt.Errorf("invalid caller type %q: %w", callerType, apperrors.ErrValidation)
	}

	contracts, err := s.contractRepo.ListContractsForProfile(ctx, callerID, callerType)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts for profile %s: %w", callerID, err)
	}
	return contracts, nil
}
