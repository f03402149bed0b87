package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job is a unit of billable work under exactly one contract. A job is paid
// at most once: Paid flips to true exactly when PaymentDate is set, and
// neither field ever changes again.
type Job struct {
	JobID       string
	ContractID  string
	Description string
	Price       decimal.Decimal
	Paid        bool
	PaymentDate *time.Time
	AuditFields
}

// MarkPaid transitions the job to its terminal paid state, stamping the
// payment date. It fails if the job is already paid.
func (j *Job) MarkPaid(at time.Time) error {
	if j.Paid {
		return ErrJobAlreadyPaid
	}
	j.Paid = true
	j.PaymentDate = &at
	return nil
}

// PayableJob is the consistent read the transfer engine operates on: the job
// to be paid together with its contract and both counterparty profiles.
type PayableJob struct {
	Job        Job
	Contract   Contract
	Client     Profile
	Contractor Profile
}
