package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portsrepo "github.com/amitpoitrix/contract-job-application/internal/core/ports/repositories"
	"github.com/amitpoitrix/contract-job-application/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProfileRepository implements portsrepo.ProfileRepositoryFacade
var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

// Helper to convert models.Profile to domain.Profile
func toDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ProfileID:  m.ProfileID,
		Type:       domain.ProfileType(m.Type),
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Profession: m.Profession,
		Balance:    m.Balance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	query := `
		SELECT profile_id, type, first_name, last_name, profession, balance, created_at, last_updated_at
		FROM profiles
		WHERE profile_id = $1;
	`
	var modelProfile models.Profile
	err := r.Pool.QueryRow(ctx, query, profileID).Scan(
		&modelProfile.ProfileID,
		&modelProfile.Type,
		&modelProfile.FirstName,
		&modelProfile.LastName,
		&modelProfile.Profession,
		&modelProfile.Balance,
		&modelProfile.CreatedAt,
		&modelProfile.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile by ID %s: %w", profileID, err)
	}

	domainProfile := toDomainProfile(modelProfile)
	return &domainProfile, nil
}

// CreditBalance adds amount to the profile's balance in a single UPDATE.
// The increment is atomic at the row level; no explicit transaction is
// needed since only one record changes and the operation is a pure credit.
func (r *PgxProfileRepository) CreditBalance(ctx context.Context, profileID string, amount decimal.Decimal, now time.Time) error {
	query := `
		UPDATE profiles
		SET balance = balance + $1, last_updated_at = $2
		WHERE profile_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, amount, now, profileID)
	if err != nil {
		return fmt.Errorf("failed to credit balance for profile %s: %w", profileID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
