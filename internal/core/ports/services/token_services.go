package services

import (
	"context"
	"time"
)

// TokenSvcFacade issues bearer tokens for resolved profiles. Tokens are an
// alternative to the profile_id header at the auth boundary; the subject of
// a token is the profile id.
type TokenSvcFacade interface {
	// GenerateToken issues a signed JWT for the profile, verifying the
	// profile exists first. Returns the token and its expiry.
	GenerateToken(ctx context.Context, profileID string) (string, time.Time, error)
}
