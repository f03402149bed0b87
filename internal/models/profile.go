package models

import "github.com/shopspring/decimal"

// Profile mirrors the profiles table.
type Profile struct {
	ProfileID  string
	Type       string
	FirstName  string
	LastName   string
	Profession string
	Balance    decimal.Decimal
	AuditFields
}
