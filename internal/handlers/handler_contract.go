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
)

// contractHandler handles HTTP requests related to contracts.
type contractHandler struct {
	contractService portssvc.ContractSvcFacade
}

// newContractHandler creates a new contractHandler.
func newContractHandler(cs portssvc.ContractSvcFacade) *contractHandler {
	return &contractHandler{contractService: cs}
}

// registerContractRoutes registers all contract-related routes.
func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade) {
	h := newContractHandler(contractService)

	contracts := rg.Group("/contracts")
	{
		contracts.GET("", h.listContracts)
		contracts.GET("/:id", h.getContract)
	}
}

// getContract godoc
// @Summary Get a contract by ID
// @Description Returns the contract only when the caller is a party to it
// @Tags contracts
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /contracts/{id} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	contractID := c.Param("id")

	callerID, callerType, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	contract, err := h.contractService.GetContractByID(c.Request.Context(), contractID, callerID, callerType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Contract not found"})
			return
		}
		logger.Error("Failed to get contract", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// listContracts godoc
// @Summary List the caller's non-terminated contracts
// @Tags contracts
// @Produce json
// @Success 200 {object} dto.ListContractsResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, callerType, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	contracts, err := h.contractService.ListContracts(c.Request.Context(), callerID, callerType)
	if err != nil {
		logger.Error("Failed to list contracts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if len(contracts) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Contracts not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListContractsResponse(contracts))
}
