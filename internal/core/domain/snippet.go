package domain

// Snippet is the remote shareable artifact a note is published to.
type Snippet struct {
	// ID is the remote identifier, stored back into the note's
	// frontmatter on first publish.
	ID string

	// URL is the shareable address.
	URL string

	// Files maps filename to content.
	Files map[string]string
}

// Frontmatter field keys the publisher maintains.
const (
	// FieldSnippetID stores the remote snippet identifier.
	FieldSnippetID = "gist-id"

	// FieldPulledAt records the last pull-back timestamp, ISO-8601.
	FieldPulledAt = "gist-pulled-at"
)
