package dto

import (
	"time"

	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
)

// ContractResponse defines the data returned for a contract.
type ContractResponse struct {
	ContractID   string    `json:"contractID"`
	ClientID     string    `json:"clientID"`
	ContractorID string    `json:"contractorID"`
	Terms        string    `json:"terms"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListContractsResponse wraps the list of contracts.
type ListContractsResponse struct {
	Contracts []ContractResponse `json:"contracts"`
}

// ToContractResponse converts a domain.Contract to ContractResponse DTO.
func ToContractResponse(c *domain.Contract) ContractResponse {
	return ContractResponse{
		ContractID:   c.ContractID,
		ClientID:     c.ClientID,
		ContractorID: c.ContractorID,
		Terms:        c.Terms,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
	}
}

// ToListContractsResponse converts a slice of domain.Contract to the list DTO.
func ToListContractsResponse(contracts []domain.Contract) ListContractsResponse {
	responses := make([]ContractResponse, len(contracts))
	for i, c := range contracts {
		responses[i] = ToContractResponse(&c)
	}
	return ListContractsResponse{Contracts: responses}
}
