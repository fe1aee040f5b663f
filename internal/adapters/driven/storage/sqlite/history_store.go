package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Record appends one publish event. A missing ID is generated.
func (h *historyStore) Record(ctx context.Context, record domain.PublishRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.PublishedAt.IsZero() {
		record.PublishedAt = time.Now().UTC()
	}

	_, err := h.store.db.ExecContext(ctx, `
		INSERT INTO publish_history (id, note_path, snippet_id, mode, warning_count, published_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.NotePath, record.SnippetID, record.Mode,
		record.WarningCount, record.PublishedAt.UTC())
	if err != nil {
		return fmt.Errorf("recording publish: %w", err)
	}
	return nil
}

// List returns records for a note path, newest first. An empty path
// returns records for all notes.
func (h *historyStore) List(ctx context.Context, notePath string, limit int) ([]domain.PublishRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, note_path, snippet_id, mode, warning_count, published_at
		FROM publish_history
	`
	args := []any{}
	if notePath != "" {
		query += " WHERE note_path = ?"
		args = append(args, notePath)
	}
	query += " ORDER BY published_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := h.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing publish history: %w", err)
	}
	defer rows.Close()

	var records []domain.PublishRecord
	for rows.Next() {
		var r domain.PublishRecord
		if err := rows.Scan(&r.ID, &r.NotePath, &r.SnippetID, &r.Mode,
			&r.WarningCount, &r.PublishedAt); err != nil {
			return nil, fmt.Errorf("scanning publish record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating publish history: %w", err)
	}

	return records, nil
}

// Prune drops all but the newest keep records per note.
func (h *historyStore) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}

	_, err := h.store.db.ExecContext(ctx, `
		DELETE FROM publish_history
		WHERE id NOT IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (
					PARTITION BY note_path ORDER BY published_at DESC
				) AS rn
				FROM publish_history
			)
			WHERE rn <= ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning publish history: %w", err)
	}
	return nil
}
