package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/apperrors"
	portssvc "github.com/amitpoitrix/contract-job-application/internal/core/ports/services"
	"github.com/amitpoitrix/contract-job-application/internal/dto"
	"github.com/amitpoitrix/contract-job-application/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// adminHandler serves the aggregate reporting endpoints over paid jobs.
type adminHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newAdminHandler(rs portssvc.ReportingSvcFacade) *adminHandler {
	return &adminHandler{reportingService: rs}
}

func registerAdminRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newAdminHandler(reportingService)

	admin := rg.Group("/admin")
	{
		admin.GET("/best-profession", h.bestProfession)
		admin.GET("/best-clients", h.bestClients)
	}
}

// parseDateRange reads the start/end query params. The end date is extended
// to the last instant of its day so that BETWEEN includes payments made
// anywhere on the end date.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	startRaw := c.Query("start")
	endRaw := c.Query("end")
	if startRaw == "" || endRaw == "" {
		return time.Time{}, time.Time{}, false
	}

	start, err := time.Parse(dateLayout, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dateLayout, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end = end.Add(24*time.Hour - time.Nanosecond)

	return start, end, true
}

// bestProfession godoc
// @Summary The profession that earned the most within a date range
// @Tags admin
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.BestProfessionResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /admin/best-profession [get]
func (h *adminHandler) bestProfession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, ok := parseDateRange(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Start and End date is not present. Please provide it in YYYY-MM-DD format"})
		return
	}

	result, err := h.reportingService.GetBestProfession(c.Request.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "No profession found with given date range"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Start date must not be after end date"})
		default:
			logger.Error("Failed to compute best profession", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBestProfessionResponse(result))
}

// bestClients godoc
// @Summary The clients that paid the most within a date range
// @Tags admin
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Param limit query int false "Maximum number of clients" default(2)
// @Success 200 {array} dto.BestClientResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /admin/best-clients [get]
func (h *adminHandler) bestClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, end, ok := parseDateRange(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Start and End date is not present. Please provide it in YYYY-MM-DD format"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	clients, err := h.reportingService.GetBestClients(c.Request.Context(), start, end, limit)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Start date must not be after end date"})
		default:
			logger.Error("Failed to compute best clients", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}
	if len(clients) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No clients found with given date range"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBestClientResponses(clients))
}
