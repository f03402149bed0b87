package repositories

import (
	"context"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries over paid
// jobs. The core never aggregates in memory; grouping and ordering happen in
// the store.
type ReportingRepository interface {
	// GetBestProfession returns the contractor profession that earned the
	// most over the date range, counting paid jobs by payment date.
	// Returns apperrors.ErrNotFound when no job was paid in the range.
	GetBestProfession(ctx context.Context, start, end time.Time) (*domain.ProfessionEarnings, error)

	// GetBestClients returns up to limit clients ordered by total paid
	// over the date range.
	GetBestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientSpend, error)
}
