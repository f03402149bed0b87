package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/amitpoitrix/contract-job-application/internal/dto"
	"github.com/amitpoitrix/contract-job-application/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// balanceHandler handles deposits into client balances.
type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers the deposit endpoint, rate limited since
// it moves money.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade, moneyLimiter *limiter.Limiter) {
	h := newBalanceHandler(balanceService)

	balances := rg.Group("/balances")
	{
		balances.POST("/deposit/:userId", middleware.RateLimit(moneyLimiter), h.deposit)
	}
}

// deposit godoc
// @Summary Deposit money into a client's balance
// @Description The deposit is capped at 25% of the target client's total
// outstanding unpaid job prices on in_progress contracts.
// @Tags balances
// @Accept json
// @Produce json
// @Param userId path string true "Target client profile ID"
// @Param request body dto.DepositRequest true "Deposit amount"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse "Client not found"
// @Router /balances/deposit/{userId} [post]
func (h *balanceHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	targetID := c.Param("userId")

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	err := h.balanceService.Deposit(c.Request.Context(), targetID, req.Amount)
	if err != nil {
		var limitErr *apperrors.DepositLimitExceededError
		switch {
		case errors.As(err, &limitErr):
			msg := fmt.Sprintf("Deposit cannot exceed 25%% of the total of unpaid jobs, max allowed is %s", limitErr.MaxDeposit.StringFixed(2))
			c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Deposit amount must be greater than 0"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Client not found"})
		default:
			logger.Error("Failed to deposit", slog.String("user_id", targetID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deposit successful"})
}
