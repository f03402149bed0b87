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
	"github.com/ulule/limiter/v3"
)

// jobHandler handles HTTP requests related to jobs, including job payment.
type jobHandler struct {
	jobService portssvc.JobSvcFacade
}

// newJobHandler creates a new jobHandler.
func newJobHandler(js portssvc.JobSvcFacade) *jobHandler {
	return &jobHandler{jobService: js}
}

// registerJobRoutes registers all job-related routes. The payment endpoint
// is rate limited since it moves money.
func registerJobRoutes(rg *gin.RouterGroup, jobService portssvc.JobSvcFacade, moneyLimiter *limiter.Limiter) {
	h := newJobHandler(jobService)

	jobs := rg.Group("/jobs")
	{
		jobs.GET("/unpaid", h.listUnpaidJobs)
		jobs.POST("/:job_id/pay", middleware.RateLimit(moneyLimiter), h.payJob)
	}
}

// listUnpaidJobs godoc
// @Summary List the caller's unpaid jobs on in_progress contracts
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.ListJobsResponse
// @Failure 404 {object} dto.MessageResponse
// @Router /jobs/unpaid [get]
func (h *jobHandler) listUnpaidJobs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerID, callerType, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	jobs, err := h.jobService.ListUnpaidJobs(c.Request.Context(), callerID, callerType)
	if err != nil {
		logger.Error("Failed to list unpaid jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if len(jobs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No unpaid jobs found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListJobsResponse(jobs))
}

// payJob godoc
// @Summary Pay for a job
// @Description Debits the caller, credits the contractor and marks the job
// paid, atomically and at most once. Absence, prior payment and foreign
// ownership all yield the same 404.
// @Tags jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse "Insufficient balance"
// @Failure 404 {object} dto.MessageResponse "Job not found or already paid"
// @Router /jobs/{job_id}/pay [post]
func (h *jobHandler) payJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("job_id")

	callerID, ok := middleware.GetProfileIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	err := h.jobService.PayJob(c.Request.Context(), jobID, callerID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found or already paid"})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient balance"})
		default:
			logger.Error("Failed to pay job", slog.String("job_id", jobID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment successful"})
}
