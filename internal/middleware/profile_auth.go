package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ProfileHeader is the legacy identification header carrying a profile id.
const ProfileHeader = "profile_id"

// ProfileAuthMiddleware resolves the caller identity before a request
// reaches the core. Two mechanisms are accepted: the profile_id header, or
// an Authorization Bearer JWT whose subject is the profile id. In both cases
// the referenced profile must exist; requests without a resolvable identity
// are rejected here and never seen by the handlers.
func ProfileAuthMiddleware(profileSvc portssvc.ProfileSvcFacade, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		profileID := c.GetHeader(ProfileHeader)
		if profileID == "" {
			var err error
			profileID, err = profileIDFromBearerToken(c, jwtSecret)
			if err != nil {
				logger.Warn("No resolvable caller identity", slog.String("error", err.Error()))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
				return
			}
		}

		profile, err := profileSvc.GetProfileByID(c.Request.Context(), profileID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Unknown profile in credentials", slog.String("profile_id", profileID))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
				return
			}
			logger.Error("Failed to resolve caller profile", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		// Store identity in the standard request context and enrich the
		// request logger with it.
		ctx := WithProfileIdentity(c.Request.Context(), profile.ProfileID, profile.Type)
		enrichedLogger := logger.With(
			slog.String("profile_id", profile.ProfileID),
			slog.String("profile_type", string(profile.Type)),
		)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func profileIDFromBearerToken(c *gin.Context, jwtSecret string) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errors.New("no profile_id header and no authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("authorization header format must be Bearer {token}")
	}

	token, err := jwt.ParseWithClaims(parts[1], &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}
