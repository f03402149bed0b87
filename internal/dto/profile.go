package dto

import (
	"github.com/amitpoitrix/contract-job-application/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProfileResponse defines the data returned for a profile.
type ProfileResponse struct {
	ProfileID  string          `json:"profileID"`
	Type       string          `json:"type"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Profession string          `json:"profession"`
	Balance    decimal.Decimal `json:"balance"`
}

// ToProfileResponse converts a domain.Profile to ProfileResponse DTO.
func ToProfileResponse(p *domain.Profile) ProfileResponse {
	return ProfileResponse{
		ProfileID:  p.ProfileID,
		Type:       string(p.Type),
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Profession: p.Profession,
		Balance:    p.Balance,
	}
}
