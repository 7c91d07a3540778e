package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent business logic failures.
// Adapters translate provider-specific failures into this taxonomy before
// they cross a port; nothing outside an adapter sees a provider error.
var (
	// ErrInvalidInput indicates malformed or missing input parameters.
	// Rejected before any network call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates an owner, repository or tag does not resolve
	// on the host.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates missing or invalid credentials.
	// The caller should supply a token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the host's request quota is exhausted.
	// Retryable after the reset time carried by RateLimitError.
	ErrRateLimited = errors.New("rate limited")

	// ErrTransient indicates a connectivity failure.
	// Retryable with bounded attempts.
	ErrTransient = errors.New("transient network error")

	// ErrUnsupportedFormat indicates no renderer is registered for the
	// requested output format.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrUnsupportedSource indicates an unknown change source type.
	ErrUnsupportedSource = errors.New("unsupported source type")
)

// RateLimitError carries the host's quota state alongside ErrRateLimited.
// ResetAt is the host-provided retry hint.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// Unwrap makes errors.Is(err, ErrRateLimited) hold for rate limit errors.
func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

// IsRetryable reports whether the error class permits another attempt.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransient) || errors.Is(err, ErrRateLimited)
}
