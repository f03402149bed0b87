package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portsrepo "github.com/amitpoitrix/contract-job-application/internal/core/ports/repositories"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
)

// profileService implements the ProfileSvcFacade interface
type profileService struct {
	BaseService
	profileRepo portsrepo.ProfileRepositoryFacade
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo portsrepo.ProfileRepositoryFacade) portssvc.ProfileSvcFacade {
	return &profileService{profileRepo: profileRepo}
}

// Ensure profileService implements the ProfileSvcFacade interface
var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) GetProfileByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", profileID, err)
	}
	return profile, nil
}
