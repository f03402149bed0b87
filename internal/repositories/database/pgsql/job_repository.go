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

type PgxJobRepository struct {
	BaseRepository
}

func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepositoryWithTx {
	return &PgxJobRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJobRepository implements portsrepo.JobRepositoryWithTx
var _ portsrepo.JobRepositoryWithTx = (*PgxJobRepository)(nil)

// One complete query per caller role, same convention as the contract
// repository.
const (
	listUnpaidJobsAsClient = `
		SELECT j.job_id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.created_at, j.last_updated_at
		FROM jobs j
		JOIN contracts c ON c.contract_id = j.contract_id
		WHERE NOT j.paid AND c.status = 'in_progress' AND c.client_id = $1
		ORDER BY j.created_at DESC;
	`
	listUnpaidJobsAsContractor = `
		SELECT j.job_id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.created_at, j.last_updated_at
		FROM jobs j
		JOIN contracts c ON c.contract_id = j.contract_id
		WHERE NOT j.paid AND c.status = 'in_progress' AND c.contractor_id = $1
		ORDER BY j.created_at DESC;
	`
)

// Helper to convert models.Job to domain.Job
func toDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobID:       m.JobID,
		ContractID:  m.ContractID,
		Description: m.Description,
		Price:       m.Price,
		Paid:        m.Paid,
		PaymentDate: m.PaymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func (r *PgxJobRepository) ListUnpaidJobsForProfile(ctx context.Context, profileID string, role domain.ProfileType) ([]domain.Job, error) {
	var query string
	switch role {
	case domain.ProfileTypeClient:
		query = listUnpaidJobsAsClient
	case domain.ProfileTypeContractor:
		query = listUnpaidJobsAsContractor
	default:
		return nil, fmt.Errorf("unknown profile role %q: %w", role, apperrors.ErrValidation)
	}

	rows, err := r.Pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid jobs for profile %s: %w", profileID, err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		var m models.Job
		err := rows.Scan(
			&m.JobID,
			&m.ContractID,
			&m.Description,
			&m.Price,
			&m.Paid,
			&m.PaymentDate,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, toDomainJob(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", rows.Err())
	}

	return jobs, nil
}

func (r *PgxJobRepository) SumUnpaidPricesForClient(ctx context.Context, clientID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(j.price), 0)
		FROM jobs j
		JOIN contracts c ON c.contract_id = j.contract_id
		WHERE NOT j.paid AND c.status = 'in_progress' AND c.client_id = $1;
	`
	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, clientID).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum unpaid job prices for client %s: %w", clientID, err)
	}
	return total, nil
}

// FindPayableJob resolves the job, its contract and both profiles in a single
// SELECT, so the read cannot observe a partially applied transfer.
func (r *PgxJobRepository) FindPayableJob(ctx context.Context, jobID string, clientID string) (*domain.PayableJob, error) {
	query := `
		SELECT
			j.job_id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.created_at, j.last_updated_at,
			c.contract_id, c.client_id, c.contractor_id, c.terms, c.status, c.created_at, c.last_updated_at,
			cl.profile_id, cl.type, cl.first_name, cl.last_name, cl.profession, cl.balance, cl.created_at, cl.last_updated_at,
			co.profile_id, co.type, co.first_name, co.last_name, co.profession, co.balance, co.created_at, co.last_updated_at
		FROM jobs j
		JOIN contracts c ON c.contract_id = j.contract_id
		JOIN profiles cl ON cl.profile_id = c.client_id
		JOIN profiles co ON co.profile_id = c.contractor_id
		WHERE j.job_id = $1 AND NOT j.paid AND c.status = 'in_progress' AND c.client_id = $2;
	`
	var mJob models.Job
	var mContract models.Contract
	var mClient, mContractor models.Profile

	err := r.Pool.QueryRow(ctx, query, jobID, clientID).Scan(
		&mJob.JobID, &mJob.ContractID, &mJob.Description, &mJob.Price, &mJob.Paid, &mJob.PaymentDate, &mJob.CreatedAt, &mJob.LastUpdatedAt,
		&mContract.ContractID, &mContract.ClientID, &mContract.ContractorID, &mContract.Terms, &mContract.Status, &mContract.CreatedAt, &mContract.LastUpdatedAt,
		&mClient.ProfileID, &mClient.Type, &mClient.FirstName, &mClient.LastName, &mClient.Profession, &mClient.Balance, &mClient.CreatedAt, &mClient.LastUpdatedAt,
		&mContractor.ProfileID, &mContractor.Type, &mContractor.FirstName, &mContractor.LastName, &mContractor.Profession, &mContractor.Balance, &mContractor.CreatedAt, &mContractor.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payable job %s for client %s: %w", jobID, clientID, err)
	}

	return &domain.PayableJob{
		Job:        toDomainJob(mJob),
		Contract:   toDomainContract(mContract),
		Client:     toDomainProfile(mClient),
		Contractor: toDomainProfile(mContractor),
	}, nil
}

// ExecuteTransfer moves the job price from the client to the contractor and
// marks the job paid, all inside one database transaction.
//
// The unpaid predicate is re-evaluated under a row lock on the job, which is
// what makes payment exactly-once: two racing transfers on the same job
// serialize on that lock, the first one flips paid to true, and the second
// finds no row and fails with ErrNotFound. Profile rows are locked in
// profile_id order so concurrent transfers touching the same pair cannot
// deadlock. The client balance is re-checked under the lock; a balance that
// went short since the pre-read fails with ErrInsufficientBalance and rolls
// everything back.
func (r *PgxJobRepository) ExecuteTransfer(ctx context.Context, jobID string, clientID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	lockJobQuery := `
		SELECT j.price, c.contractor_id
		FROM jobs j
		JOIN contracts c ON c.contract_id = j.contract_id
		WHERE j.job_id = $1 AND NOT j.paid AND c.status = 'in_progress' AND c.client_id = $2
		FOR UPDATE OF j;
	`
	var price decimal.Decimal
	var contractorID string
	err = tx.QueryRow(ctx, lockJobQuery, jobID, clientID).Scan(&price, &contractorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock job "+jobID+" for payment", err)
	}

	// Deterministic lock order over the two profile rows.
	lockProfilesQuery := `
		SELECT profile_id, balance
		FROM profiles
		WHERE profile_id = ANY($1)
		ORDER BY profile_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, lockProfilesQuery, []string{clientID, contractorID})
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock profiles for payment", err)
	}
	balances := make(map[string]decimal.Decimal, 2)
	for rows.Next() {
		var profileID string
		var balance decimal.Decimal
		if err := rows.Scan(&profileID, &balance); err != nil {
			rows.Close()
			return apperrors.NewAppError(500, "failed to scan locked profile row", err)
		}
		balances[profileID] = balance
	}
	rows.Close()
	if rows.Err() != nil {
		return apperrors.NewAppError(500, "error iterating locked profile rows", rows.Err())
	}
	clientBalance, ok := balances[clientID]
	if !ok {
		return apperrors.NewAppError(500, "client profile "+clientID+" missing during transfer", nil)
	}
	if _, ok := balances[contractorID]; !ok {
		return apperrors.NewAppError(500, "contractor profile "+contractorID+" missing during transfer", nil)
	}

	if clientBalance.LessThan(price) {
		return apperrors.ErrInsufficientBalance
	}

	debitQuery := `UPDATE profiles SET balance = balance - $1, last_updated_at = $2 WHERE profile_id = $3;`
	if _, err := tx.Exec(ctx, debitQuery, price, now, clientID); err != nil {
		return apperrors.NewAppError(500, "failed to debit client "+clientID, err)
	}

	creditQuery := `UPDATE profiles SET balance = balance + $1, last_updated_at = $2 WHERE profile_id = $3;`
	if _, err := tx.Exec(ctx, creditQuery, price, now, contractorID); err != nil {
		return apperrors.NewAppError(500, "failed to credit contractor "+contractorID, err)
	}

	markPaidQuery := `UPDATE jobs SET paid = TRUE, payment_date = $1, last_updated_at = $1 WHERE job_id = $2;`
	if _, err := tx.Exec(ctx, markPaidQuery, now, jobID); err != nil {
		return apperrors.NewAppError(500, "failed to mark job "+jobID+" paid", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}
	return nil
}
