package dto

import "time"

// LoginRequest asks for a bearer token for an existing profile. Token auth
// is the alternative to the profile_id header; there are no credentials
// beyond the profile id, matching the header mechanism it replaces.
type LoginRequest struct {
	ProfileID string `json:"profileId" binding:"required,uuid"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
