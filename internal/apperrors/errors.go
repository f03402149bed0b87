package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
// It deliberately covers "job already paid" and "job owned by someone else"
// as well, so callers cannot probe contract ownership.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInsufficientBalance indicates a client balance too low to cover a job price.
var ErrInsufficientBalance = errors.New("insufficient balance")

// AppError wraps infrastructure failures with an HTTP-ish status code and a
// message safe to log. Handlers never expose the wrapped error to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// DepositLimitExceededError is returned when a deposit is larger than the 25%
// cap over the client's outstanding unpaid job total. It carries the computed
// limit so the handler can include it in the response message.
type DepositLimitExceededError struct {
	MaxDeposit decimal.Decimal
}

func (e *DepositLimitExceededError) Error() string {
	return fmt.Sprintf("deposit exceeds the allowed maximum of %s", e.MaxDeposit.String())
}

// NewDepositLimitExceededError builds the error carrying the computed cap.
func NewDepositLimitExceededError(maxDeposit decimal.Decimal) *DepositLimitExceededError {
	return &DepositLimitExceededError{MaxDeposit: maxDeposit}
}
