package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidation indicates missing or malformed credentials or
	// identifiers, checked before any network call. Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrRemote indicates a non-2xx response from a remote API.
	ErrRemote = errors.New("remote error")

	// ErrTransport indicates a network failure or timeout.
	ErrTransport = errors.New("transport error")

	// ErrUpload indicates an image-host failure, isolated per image.
	ErrUpload = errors.New("upload failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrPublishInProgress indicates a manual publish is already
	// running for the note.
	ErrPublishInProgress = errors.New("publish in progress")

	// ErrNotPublished indicates the note carries no snippet
	// identifier in its frontmatter.
	ErrNotPublished = errors.New("note not published")

	// ErrAuthRequired indicates no API token is configured.
	ErrAuthRequired = errors.New("authentication required")
)
