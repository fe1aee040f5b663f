package driving

import "github.com/notegist-labs/notegist-cli/internal/core/domain"

// SettingsService exposes settings reads and updates to the CLI.
type SettingsService interface {
	// Get returns the current settings snapshot.
	Get() (domain.AppSettings, error)

	// Update applies a mutation to the current settings and persists
	// the result.
	Update(mutate func(*domain.AppSettings)) (domain.AppSettings, error)
}
