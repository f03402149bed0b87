package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portsrepo "github.com/amitpoitrix/contract-job-application/internal/core/ports/repositories"
	"github.com/amitpoitrix/contract-job-application/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxContractRepository struct {
	BaseRepository
}

func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxContractRepository implements portsrepo.ContractRepositoryFacade
var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

// One complete query per caller role. The role tag picks the statement; no
// column name is ever assembled at runtime.
const (
	findContractAsClient = `
		SELECT contract_id, client_id, contractor_id, terms, status, created_at, last_updated_at
		FROM contracts
		WHERE contract_id = $1 AND client_id = $2;
	`
	findContractAsContractor = `
		SELECT contract_id, client_id, contractor_id, terms, status, created_at, last_updated_at
		FROM contracts
		WHERE contract_id = $1 AND contractor_id = $2;
	`
	listContractsAsClient = `
		SELECT contract_id, client_id, contractor_id, terms, status, created_at, last_updated_at
		FROM contracts
		WHERE client_id = $1 AND status <> 'terminated'
		ORDER BY created_at DESC;
	`
	listContractsAsContractor = `
		SELECT contract_id, client_id, contractor_id, terms, status, created_at, last_updated_at
		FROM contracts
		WHERE contractor_id = $1 AND status <> 'terminated'
		ORDER BY created_at DESC;
	`
)

// Helper to convert models.Contract to domain.Contract
func toDomainContract(m models.Contract) domain.Contract {
	return domain.Contract{
		ContractID:   m.ContractID,
		ClientID:     m.ClientID,
		ContractorID: m.ContractorID,
		Terms:        m.Terms,
		Status:       domain.ContractStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func scanContract(row pgx.Row) (*models.Contract, error) {
	var m models.Contract
	err := row.Scan(
		&m.ContractID,
		&m.ClientID,
		&m.ContractorID,
		&m.Terms,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxContractRepository) FindContractForProfile(ctx context.Context, contractID string, profileID string, role domain.ProfileType) (*domain.Contract, error) {
	var query string
	switch role {
	case domain.ProfileTypeClient:
		query = findContractAsClient
	case domain.ProfileTypeContractor:
		query = findContractAsContractor
	default:
		return nil, fmt.Errorf("unknown profile role %q: %w", role, apperrors.ErrValidation)
	}

	m, err := scanContract(r.Pool.QueryRow(ctx, query, contractID, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract %s for profile %s: %w", contractID, profileID, err)
	}

	domainContract := toDomainContract(*m)
	return &domainContract, nil
}

func (r *PgxContractRepository) ListContractsForProfile(ctx context.Context, profileID string, role domain.ProfileType) ([]domain.Contract, error) {
	var query string
	switch role {
	case domain.ProfileTypeClient:
		query = listContractsAsClient
	case domain.ProfileTypeContractor:
		query = listContractsAsContractor
	default:
		return nil, fmt.Errorf("unknown profile role %q: %w", role, apperrors.ErrValidation)
	}

	rows, err := r.Pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts for profile %s: %w", profileID, err)
	}
	defer rows.Close()

	contracts := []domain.Contract{}
	for rows.Next() {
		m, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		contracts = append(contracts, toDomainContract(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contract rows: %w", rows.Err())
	}

	return contracts, nil
}
