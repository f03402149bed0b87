package domain

import "errors"

// ErrJobAlreadyPaid signals an attempt to mark an already-paid job as paid.
var ErrJobAlreadyPaid = errors.New("job is already paid")
