package dto

import "github.com/shopspring/decimal"

// DepositRequest is the body of a balance deposit. The amount bound is
// validated in the service (strictly positive, under the deposit cap), not
// by binding tags, so a zero amount produces the documented message instead
// of a generic binding error.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
