package driving

import (
	"context"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// PublishOutcome reports what a publish produced.
type PublishOutcome struct {
	// SnippetID is the remote identifier (new on create).
	SnippetID string

	// URL is the shareable address.
	URL string

	// Mode is domain.PublishModeCreate or domain.PublishModeUpdate.
	Mode string

	// Conversion is the accumulated changelog of the conversion pass.
	Conversion domain.ConversionResult
}

// Publisher composes frontmatter handling, image upload, markdown
// conversion and the snippet API into the publish operations.
type Publisher interface {
	// Publish creates a snippet for the note, or updates the existing
	// one when the note already carries a snippet identifier.
	Publish(ctx context.Context, notePath string) (*PublishOutcome, error)

	// Update re-publishes a note that must already carry a snippet
	// identifier. Used by auto-sync.
	Update(ctx context.Context, notePath string) (*PublishOutcome, error)

	// Pull overwrites the local note body with the remote snippet
	// content and stamps the pull timestamp field.
	Pull(ctx context.Context, notePath string) error

	// Analyze produces the compatibility report for a note.
	Analyze(ctx context.Context, notePath string) (*domain.CompatibilityReport, error)

	// InFlight reports whether a manual publish is currently running
	// for the note. The scheduler consults this before arming timers.
	InFlight(notePath string) bool
}
