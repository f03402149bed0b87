package handlers

import (
	"log/slog"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/amitpoitrix/contract-job-application/internal/middleware"
	"github.com/amitpoitrix/contract-job-application/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", GetHome)

	// Register public authentication routes
	registerAuthRoutes(r, services)

	// Money-moving endpoints share one IP rate limiter.
	moneyLimiter := newMoneyLimiter(cfg)

	// Everything below requires a resolved caller identity.
	authed := r.Group("", middleware.ProfileAuthMiddleware(services.Profile, cfg.JWTSecret))

	registerProfileRoutes(authed, services.Profile)
	registerContractRoutes(authed, services.Contract)
	registerJobRoutes(authed, services.Job, moneyLimiter)
	registerBalanceRoutes(authed, services.Balance, moneyLimiter)
	registerAdminRoutes(authed, services.Reporting)
}

func newMoneyLimiter(cfg *config.Config) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid RATE_LIMIT value, falling back to 100-M", slog.String("value", cfg.RateLimit))
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	return limiter.New(memory.NewStore(), rate)
}

// callerIdentity pulls the resolved caller identity placed in the request
// context by the auth middleware.
func callerIdentity(c *gin.Context) (string, domain.ProfileType, bool) {
	callerID, ok := middleware.GetProfileIDFromContext(c)
	if !ok {
		return "", "", false
	}
	callerType, ok := middleware.GetProfileTypeFromContext(c)
	if !ok {
		return "", "", false
	}
	return callerID, callerType, true
}
