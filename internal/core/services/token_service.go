package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/amitpoitrix/contract-job-application/internal/platform/config"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService issues signed bearer tokens carrying a profile id as subject.
type tokenService struct {
	BaseService
	cfg        *config.Config
	profileSvc portssvc.ProfileSvcFacade
}

// NewTokenService creates a new token service
func NewTokenService(cfg *config.Config, profileSvc portssvc.ProfileSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, profileSvc: profileSvc}
}

// Ensure tokenService implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateToken(ctx context.Context, profileID string) (string, time.Time, error) {
	if _, err := s.profileSvc.GetProfileByID(ctx, profileID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, err
		}
		return "", time.Time{}, fmt.Errorf("failed to verify profile %s for token: %w", profileID, err)
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.cfg.JWTExpiryDuration)
	claims := jwt.RegisteredClaims{
		Subject:   profileID,
		Issuer:    s.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token for profile %s: %w", profileID, err)
	}
	return signed, expiresAt, nil
}
