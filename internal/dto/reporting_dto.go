package dto

import (
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BestProfessionResponse is the reporting payload for the top-earning
// profession over a date range.
type BestProfessionResponse struct {
	Profession  string          `json:"profession"`
	TotalEarned decimal.Decimal `json:"totalEarned"`
}

// BestClientResponse is one row of the best-clients report.
type BestClientResponse struct {
	ID       string          `json:"id"`
	FullName string          `json:"fullName"`
	Paid     decimal.Decimal `json:"paid"`
}

// ToBestProfessionResponse converts the domain reporting row to its DTO.
func ToBestProfessionResponse(p *domain.ProfessionEarnings) BestProfessionResponse {
	return BestProfessionResponse{
		Profession:  p.Profession,
		TotalEarned: p.TotalEarned,
	}
}

// ToBestClientResponses converts the domain reporting rows to their DTOs.
func ToBestClientResponses(clients []domain.ClientSpend) []BestClientResponse {
	responses := make([]BestClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = BestClientResponse{
			ID:       c.ProfileID,
			FullName: c.FullName,
			Paid:     c.Paid,
		}
	}
	return responses
}
