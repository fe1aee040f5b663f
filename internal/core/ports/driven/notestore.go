package driven

import (
	"context"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// NoteStore reads and writes vault documents.
// The core never caches content across calls; every operation re-reads.
type NoteStore interface {
	// Read returns the note at the vault-relative path.
	Read(ctx context.Context, path string) (*domain.Note, error)

	// Write replaces the note's content.
	Write(ctx context.Context, path string, content string) error

	// ReadBinary returns raw bytes for an attachment (image) path.
	ReadBinary(ctx context.Context, path string) ([]byte, error)
}
