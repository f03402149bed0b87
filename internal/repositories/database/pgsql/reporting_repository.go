package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portsrepo "github.com/amitpoitrix/contract-job-application/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetBestProfession returns the top-earning contractor profession over the
// date range, by summed price of jobs paid inside it.
func (r *reportingRepository) GetBestProfession(ctx context.Context, start, end time.Time) (*domain.ProfessionEarnings, error) {
	query := `
		SELECT p.profession, SUM(j.price) AS total_earned
		FROM jobs j
		JOIN contracts c ON c.contract_id = j.contract_id
		JOIN profiles p ON p.profile_id = c.contractor_id
		WHERE j.paid AND j.payment_date BETWEEN $1 AND $2
		GROUP BY p.profession
		ORDER BY total_earned DESC
		LIMIT 1;
	`
	var row domain.ProfessionEarnings
	err := r.Pool.QueryRow(ctx, query, start, end).Scan(&row.Profession, &row.TotalEarned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error querying best profession: %w", err)
	}

	return &row, nil
}

// GetBestClients returns up to limit clients ordered by total paid over the
// date range.
func (r *reportingRepository) GetBestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientSpend, error) {
	query := `
		SELECT p.profile_id, p.first_name || ' ' || p.last_name AS full_name, SUM(j.price) AS paid_total
		FROM jobs j
		JOIN contracts c ON c.contract_id = j.contract_id
		JOIN profiles p ON p.profile_id = c.client_id
		WHERE j.paid AND j.payment_date BETWEEN $1 AND $2
		GROUP BY p.profile_id, full_name
		ORDER BY paid_total DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying best clients: %w", err)
	}
	defer rows.Close()

	result := []domain.ClientSpend{}
	for rows.Next() {
		var row domain.ClientSpend
		if err := rows.Scan(&row.ProfileID, &row.FullName, &row.Paid); err != nil {
			return nil, fmt.Errorf("error scanning best client row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating best client rows: %w", err)
	}

	return result, nil
}
