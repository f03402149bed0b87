package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portsrepo "github.com/amitpoitrix/contract-job-application/internal/core/ports/repositories"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
)

// jobService implements the JobSvcFacade interface. It hosts the balance
// transfer engine: PayJob is the only code path that moves money between
// profiles.
type jobService struct {
	BaseService
	jobRepo portsrepo.JobRepositoryFacade
	now     func() time.Time
}

// NewJobService creates a new job service
func NewJobService(jobRepo portsrepo.JobRepositoryFacade) portssvc.JobSvcFacade {
	return &jobService{
		jobRepo: jobRepo,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Ensure jobService implements the JobSvcFacade interface
var _ portssvc.JobSvcFacade = (*jobService)(nil)

func (s *jobService) ListUnpaidJobs(ctx context.Context, callerID string, callerType domain.ProfileType) ([]domain.Job, error) {
	if !callerType.IsValid() {
		return nil, fmt.Errorf("invalid caller type %q: %w", callerType, apperrors.ErrValidation)
	}

	jobs, err := s.jobRepo.ListUnpaidJobsForProfile(ctx, callerID, callerType)
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid jobs for profile %s: %w", callerID, err)
	}
	return jobs, nil
}

// PayJob validates the payment preconditions and then hands the effect to
// the repository, which executes debit, credit and mark-paid atomically.
//
// The balance check here runs against the pre-read and exists to fail fast
// with a clean error; the repository re-checks both the unpaid predicate and
// the balance under row locks, so a concurrent payment slipping in between
// the pre-read and the transfer still cannot double-pay the job or drive the
// client negative.
func (s *jobService) PayJob(ctx context.Context, jobID string, requestingClientID string) error {
	payable, err := s.jobRepo.FindPayableJob(ctx, jobID, requestingClientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Job not payable: missing, already paid, or not owned by caller",
				slog.String("job_id", jobID))
			return err
		}
		return fmt.Errorf("failed to resolve payable job %s: %w", jobID, err)
	}

	if payable.Client.Balance.LessThan(payable.Job.Price) {
		s.LogWarn(ctx, "Client balance insufficient for job payment",
			slog.String("job_id", jobID),
			slog.String("price", payable.Job.Price.String()),
			slog.String("balance", payable.Client.Balance.String()))
		return apperrors.ErrInsufficientBalance
	}

	if err := s.jobRepo.ExecuteTransfer(ctx, jobID, requestingClientID, s.now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInsufficientBalance) {
			// Lost a race against a concurrent payment or a draining
			// balance; the transaction rolled back untouched.
			s.LogWarn(ctx, "Job payment preconditions failed inside transfer transaction",
				slog.String("job_id", jobID),
				slog.String("error", err.Error()))
			return err
		}
		return fmt.Errorf("transfer failed for job %s: %w", jobID, err)
	}

	s.LogInfo(ctx, "Job paid",
		slog.String("job_id", jobID),
		slog.String("client_id", requestingClientID),
		slog.String("contractor_id", payable.Contractor.ProfileID),
		slog.String("amount", payable.Job.Price.String()))
	return nil
}
