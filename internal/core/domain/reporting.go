package domain

import "github.com/shopspring/decimal"

// ProfessionEarnings is a reporting row: total earned by contractors of one
// profession over a date range, counting only paid jobs.
type ProfessionEarnings struct {
	Profession  string
	TotalEarned decimal.Decimal
}

// ClientSpend is a reporting row: total paid by one client over a date range.
type ClientSpend struct {
	ProfileID string
	FullName  string
	Paid      decimal.Decimal
}
