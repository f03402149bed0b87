package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/amitpoitrix/contract-job-application/internal/dto"
	"github.com/amitpoitrix/contract-job-application/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// authHandler issues bearer tokens for existing profiles.
type authHandler struct {
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{tokenService: ts}
}

func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Token)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.login)
	}
}

// login godoc
// @Summary Issue a bearer token for an existing profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Profile to authenticate as"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fe := range validationErrs {
				if fe.Field() == "ProfileID" && fe.Tag() == "uuid" {
					c.JSON(http.StatusBadRequest, gin.H{"message": "profileId must be a valid UUID"})
					return
				}
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, expiresAt, err := h.tokenService.GenerateToken(c.Request.Context(), req.ProfileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
			return
		}
		logger.Error("Failed to issue token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
