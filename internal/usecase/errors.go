package usecase

import "errors"

var (
	// ErrInvalidInput marks client-caused validation failures. Out-of-range
	// values are rejected, never clamped to a default.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSearchUnavailable marks upstream job-search failures. Distinct from
	// a legitimate zero-results outcome, which is a success.
	ErrSearchUnavailable = errors.New("job search temporarily unavailable")

	// ErrInternal marks unexpected faults. Never masked as an empty result.
	ErrInternal = errors.New("internal error")
)
