package repositories

import (
	"context"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfileReader defines read operations for profile data.
type ProfileReader interface {
	// FindProfileByID retrieves a profile by its unique identifier.
	FindProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
}

// ProfileWriter defines write operations for profile data.
type ProfileWriter interface {
	// CreditBalance atomically adds amount to the profile's balance.
	// A deposit is a pure credit, so it needs no cross-record transaction:
	// the single UPDATE cannot violate the non-negative balance invariant
	// even when racing a concurrent payment.
	CreditBalance(ctx context.Context, profileID string, amount decimal.Decimal, now time.Time) error
}

// ProfileRepositoryFacade combines all profile-related repository interfaces.
type ProfileRepositoryFacade interface {
	ProfileReader
	ProfileWriter
}
