package dto

import (
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JobResponse defines the data returned for a job.
type JobResponse struct {
	JobID       string          `json:"jobID"`
	ContractID  string          `json:"contractID"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Paid        bool            `json:"paid"`
	PaymentDate *time.Time      `json:"paymentDate,omitempty"`
}

// ListJobsResponse wraps the list of jobs.
type ListJobsResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

// ToJobResponse converts a domain.Job to JobResponse DTO.
func ToJobResponse(j *domain.Job) JobResponse {
	return JobResponse{
		JobID:       j.JobID,
		ContractID:  j.ContractID,
		Description: j.Description,
		Price:       j.Price,
		Paid:        j.Paid,
		PaymentDate: j.PaymentDate,
	}
}

// ToListJobsResponse converts a slice of domain.Job to the list DTO.
func ToListJobsResponse(jobs []domain.Job) ListJobsResponse {
	responses := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		responses[i] = ToJobResponse(&j)
	}
	return ListJobsResponse{Jobs: responses}
}
