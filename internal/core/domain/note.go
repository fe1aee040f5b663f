package domain

import "time"

// Note represents a vault document.
// Identity is the vault-relative path; content is re-read on every
// operation and never cached across calls.
type Note struct {
	// Path is the vault-relative file path (unique identity).
	Path string

	// Name is the base filename without extension, used as the
	// synthesised heading of the published snippet.
	Name string

	// Content is the full document text, frontmatter included.
	Content string
}

// PublishRecord is one entry in the publish history.
type PublishRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// NotePath is the vault-relative path of the published note.
	NotePath string

	// SnippetID is the remote snippet identifier.
	SnippetID string

	// Mode is "create" or "update".
	Mode string

	// WarningCount is the number of conversion warnings produced.
	WarningCount int

	// PublishedAt is when the publish completed.
	PublishedAt time.Time
}

// Publish modes recorded in history.
const (
	PublishModeCreate = "create"
	PublishModeUpdate = "update"
)
