package services

import (
	"context"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
)

// ProfileSvcFacade exposes profile lookups. The auth middleware uses it to
// resolve the caller identity before a request reaches the core.
type ProfileSvcFacade interface {
	// GetProfileByID retrieves a profile or apperrors.ErrNotFound.
	GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error)
}
