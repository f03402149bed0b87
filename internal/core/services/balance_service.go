package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	portsrepo "github.com/amitpoitrix/contract-job-application/internal/core/ports/repositories"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// depositCapRatio is the share of a client's outstanding unpaid job total
// that may be deposited in one go.
var depositCapRatio = decimal.RequireFromString("0.25")

// balanceService implements the BalanceSvcFacade interface: the deposit
// policy over client balances.
type balanceService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
	jobRepo     portsrepo.JobReader
	now         func() time.Time
}

// NewBalanceService creates a new balance service
func NewBalanceService(profileRepo portsrepo.ProfileRepositoryFacade, jobRepo portsrepo.JobReader) portssvc.BalanceSvcFacade {
	return &balanceService{
		profileRepo: profileRepo,
		jobRepo:     jobRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Ensure balanceService implements the BalanceSvcFacade interface
var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) MaxDeposit(ctx context.Context, clientID string) (decimal.Decimal, error) {
	totalUnpaid, err := s.jobRepo.SumUnpaidPricesForClient(ctx, clientID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute unpaid total for client %s: %w", clientID, err)
	}
	return totalUnpaid.Mul(depositCapRatio), nil
}

// Deposit credits the client's balance after enforcing the 25% cap. The cap
// is computed from a plain read; a payment draining the balance concurrently
// is tolerated since a deposit is a pure credit and cannot break the
// non-negative balance invariant.
func (s *balanceService) Deposit(ctx context.Context, clientID string, amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("deposit amount must be greater than 0: %w", apperrors.ErrValidation)
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	if !profile.IsClient() {
		// Only clients hold a depositable balance; a contractor target is
		// reported exactly like a missing one.
		return apperrors.ErrNotFound
	}

	maxDeposit, err := s.MaxDeposit(ctx, clientID)
	if err != nil {
		return err
	}
	if amount.GreaterThan(maxDeposit) {
		s.LogWarn(ctx, "Deposit exceeds cap",
			slog.String("client_id", clientID),
			slog.String("amount", amount.String()),
			slog.String("max_deposit", maxDeposit.String()))
		return apperrors.NewDepositLimitExceededError(maxDeposit)
	}

	if err := s.profileRepo.CreditBalance(ctx, clientID, amount, s.now()); err != nil {
		return fmt.Errorf("failed to credit client %s: %w", clientID, err)
	}

	s.LogInfo(ctx, "Deposit applied",
		slog.String("client_id", clientID),
		slog.String("amount", amount.String()))
	return nil
}
