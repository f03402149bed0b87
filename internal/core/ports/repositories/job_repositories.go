package repositories

import (
	"context"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JobReader defines read operations for job data.
type JobReader interface {
	// ListUnpaidJobsForProfile retrieves the unpaid jobs on in_progress
	// contracts the profile is a party to on its own side.
	ListUnpaidJobsForProfile(ctx context.Context, profileID string, role domain.ProfileType) ([]domain.Job, error)

	// SumUnpaidPricesForClient sums the prices of unpaid jobs on
	// in_progress contracts owned by the client. Used by the deposit cap.
	SumUnpaidPricesForClient(ctx context.Context, clientID string) (decimal.Decimal, error)
}

// JobPaymentSupport defines the operations backing the balance transfer
// engine.
type JobPaymentSupport interface {
	// FindPayableJob resolves the job together with its contract and both
	// profiles in one consistent read, restricted to unpaid jobs on
	// in_progress contracts owned by the requesting client. Returns
	// apperrors.ErrNotFound when no such row exists; absence, prior
	// payment and foreign ownership are indistinguishable.
	FindPayableJob(ctx context.Context, jobID string, clientID string) (*domain.PayableJob, error)

	// ExecuteTransfer performs the exactly-once debit/credit/mark-paid for
	// the job inside a single database transaction. The unpaid predicate
	// is re-checked under a row lock on the job, so two racing transfers
	// on the same job serialize and exactly one succeeds; the loser gets
	// apperrors.ErrNotFound. The client balance is re-checked under a lock
	// on both profile rows and may fail with
	// apperrors.ErrInsufficientBalance. Any failure rolls the whole
	// transaction back, leaving all three records unchanged.
	ExecuteTransfer(ctx context.Context, jobID string, clientID string, now time.Time) error
}

// JobRepositoryFacade combines all job-related repository interfaces.
type JobRepositoryFacade interface {
	JobReader
	JobPaymentSupport
}

// JobRepositoryWithTx extends JobRepositoryFacade with transaction control.
type JobRepositoryWithTx interface {
	JobRepositoryFacade
	TransactionManager
}
