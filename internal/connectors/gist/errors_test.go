package gist

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// TestAPIError tests message formatting and taxonomy wiring
func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 422, Message: "Validation Failed"}
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "Validation Failed")
	assert.True(t, errors.Is(err, domain.ErrRemote))

	bare := &APIError{StatusCode: 500}
	assert.Contains(t, bare.Error(), "500")
}

// TestTransportError tests taxonomy wiring
func TestTransportError(t *testing.T) {
	err := &TransportError{Op: "create gist", Err: fmt.Errorf("connection refused")}
	assert.Contains(t, err.Error(), "create gist")
	assert.True(t, errors.Is(err, domain.ErrTransport))
	assert.False(t, errors.Is(err, domain.ErrRemote))
}

// TestRateLimitError tests taxonomy wiring
func TestRateLimitError(t *testing.T) {
	err := &RateLimitError{ResetAt: time.Unix(1700000000, 0), Remaining: 0, Limit: 5000}
	assert.Contains(t, err.Error(), "rate limit exceeded")
	assert.True(t, errors.Is(err, domain.ErrRateLimited))
	assert.True(t, IsRateLimited(err))
	assert.True(t, IsRateLimited(fmt.Errorf("wrapped: %w", err)))
}

// TestErrorPredicates tests status-code classification
func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsNotFound(&APIError{StatusCode: 404}))
	assert.False(t, IsNotFound(&APIError{StatusCode: 403}))
	assert.True(t, IsUnauthorized(&APIError{StatusCode: 401}))
	assert.False(t, IsUnauthorized(errors.New("plain")))
	assert.False(t, IsRateLimited(errors.New("plain")))
}
