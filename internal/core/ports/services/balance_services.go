package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// BalanceSvcFacade exposes the deposit policy.
type BalanceSvcFacade interface {
	// MaxDeposit computes the maximum amount the client may currently
	// deposit: 25% of the client's outstanding unpaid job total on
	// in_progress contracts.
	MaxDeposit(ctx context.Context, clientID string) (decimal.Decimal, error)

	// Deposit credits the client's balance after enforcing the cap.
	// Returns apperrors.ErrValidation for a non-positive amount,
	// apperrors.ErrNotFound when the target is missing or not a client,
	// and *apperrors.DepositLimitExceededError (carrying the computed cap)
	// when the amount exceeds MaxDeposit.
	Deposit(ctx context.Context, clientID string, amount decimal.Decimal) error
}
