package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnavailable marks retryable store failures: lock timeouts, aborted
	// transactions, lost connections. Writes are not retried automatically.
	ErrUnavailable = errors.New("store unavailable")
)
