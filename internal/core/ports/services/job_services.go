package services

import (
	"context"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
)

// JobSvcFacade exposes the job listing surface and the balance transfer
// engine.
type JobSvcFacade interface {
	// ListUnpaidJobs retrieves the caller's unpaid jobs on in_progress
	// contracts.
	ListUnpaidJobs(ctx context.Context, callerID string, callerType domain.ProfileType) ([]domain.Job, error)

	// PayJob executes the exactly-once payment of a job by the requesting
	// client: client balance down by the price, contractor balance up by
	// the price, job marked paid, all inside one store transaction.
	// Returns apperrors.ErrNotFound when the job does not exist, is
	// already paid, or is not on an in_progress contract owned by the
	// caller; apperrors.ErrInsufficientBalance when the client cannot
	// cover the price.
	PayJob(ctx context.Context, jobID string, requestingClientID string) error
}
