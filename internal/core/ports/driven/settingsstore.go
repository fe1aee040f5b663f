package driven

import "github.com/notegist-labs/notegist-cli/internal/core/domain"

// SettingsStore persists application settings.
// Read-modify-write with no locking: concurrent settings changes
// mid-operation may be lost. Accepted weak-consistency tradeoff for
// single-user, single-process operation.
type SettingsStore interface {
	// Load returns persisted settings, or defaults when none exist.
	Load() (domain.AppSettings, error)

	// Save persists the full settings snapshot.
	Save(settings domain.AppSettings) error
}
