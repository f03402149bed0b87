package middleware

import (
	"context"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// Keys used to store the resolved caller identity in the request context.
const (
	profileIDKey   = contextKey("profileID")
	profileTypeKey = contextKey("profileType")
)

// WithProfileIdentity returns a context carrying the resolved caller
// identity. The auth middleware installs it on every authenticated request.
func WithProfileIdentity(ctx context.Context, profileID string, profileType domain.ProfileType) context.Context {
	ctx = context.WithValue(ctx, profileIDKey, profileID)
	return context.WithValue(ctx, profileTypeKey, profileType)
}

// GetProfileIDFromContext retrieves the authenticated profile ID from the
// Gin context. It returns the ID and a boolean indicating if it was found.
func GetProfileIDFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(profileIDKey)
	if val == nil {
		return "", false
	}
	profileID, ok := val.(string)
	return profileID, ok
}

// GetProfileTypeFromContext retrieves the authenticated profile's type from
// the Gin context.
func GetProfileTypeFromContext(c *gin.Context) (domain.ProfileType, bool) {
	val := c.Request.Context().Value(profileTypeKey)
	if val == nil {
		return "", false
	}
	profileType, ok := val.(domain.ProfileType)
	return profileType, ok
}
