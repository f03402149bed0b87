package domain

import "github.com/shopspring/decimal"

// ProfileType distinguishes the two parties of the marketplace. It is
// immutable after creation and selects which side of a contract a profile
// can occupy.
type ProfileType string

const (
	ProfileTypeClient     ProfileType = "client"
	ProfileTypeContractor ProfileType = "contractor"
)

// IsValid reports whether the profile type is one of the known values.
func (t ProfileType) IsValid() bool {
	return t == ProfileTypeClient || t == ProfileTypeContractor
}

// Profile is a party in the marketplace holding a monetary balance.
// The balance is only ever mutated by the transfer engine (payment) and the
// deposit policy (credit); it never goes negative.
type Profile struct {
	ProfileID  string
	Type       ProfileType
	FirstName  string
	LastName   string
	Profession string
	Balance    decimal.Decimal
	AuditFields
}

// FullName returns the display name used by reporting.
func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// IsClient reports whether the profile can own contracts as the paying side.
func (p *Profile) IsClient() bool {
	return p.Type == ProfileTypeClient
}
