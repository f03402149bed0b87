package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job mirrors the jobs table. Paid is NOT NULL in the schema; the legacy
// tri-state (null/false/true) collapses to a plain boolean, with
// PaymentDate set exactly when Paid flips true.
type Job struct {
	JobID       string
	ContractID  string
	Description string
	Price       decimal.Decimal
	Paid        bool
	PaymentDate *time.Time
	AuditFields
}
