package gist

import (
	"errors"
	"fmt"
	"time"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("gist: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// Unwrap ties the error into the domain taxonomy.
func (e *RateLimitError) Unwrap() error {
	return domain.ErrRateLimited
}

// APIError represents a non-2xx API response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gist: API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gist: API error %d", e.StatusCode)
}

// Unwrap ties the error into the domain taxonomy.
func (e *APIError) Unwrap() error {
	return domain.ErrRemote
}

// TransportError represents a network failure or timeout before any
// response was received.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gist: %s: %v", e.Op, e.Err)
}

// Unwrap ties the error into the domain taxonomy.
func (e *TransportError) Unwrap() error {
	return domain.ErrTransport
}

// IsNotFound checks if the error indicates a missing snippet.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}
