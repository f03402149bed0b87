package services

import (
	"context"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
)

// ReportingSvcFacade exposes the aggregate analytics over paid jobs.
type ReportingSvcFacade interface {
	// GetBestProfession returns the profession that earned the most in the
	// date range, or apperrors.ErrNotFound when nothing was paid in it.
	GetBestProfession(ctx context.Context, start, end time.Time) (*domain.ProfessionEarnings, error)

	// GetBestClients returns up to limit clients ordered by total paid in
	// the date range.
	GetBestClients(ctx context.Context, start, end time.Time, limit int) ([]domain.ClientSpend, error)
}
