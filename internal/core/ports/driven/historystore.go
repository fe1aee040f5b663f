package driven

import (
	"context"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// HistoryStore records publish events for auditing.
type HistoryStore interface {
	// Record appends one publish event.
	Record(ctx context.Context, record domain.PublishRecord) error

	// List returns records for a note path, newest first. An empty
	// path returns records for all notes.
	List(ctx context.Context, notePath string, limit int) ([]domain.PublishRecord, error)

	// Prune drops all but the newest keep records per note.
	Prune(ctx context.Context, keep int) error
}
