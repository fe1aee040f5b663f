package domain

import "time"

// Verbosity controls how auto-sync outcomes are surfaced.
type Verbosity string

// Available verbosity levels.
const (
	// VerbosityAll surfaces every sync outcome.
	VerbosityAll Verbosity = "all"

	// VerbosityErrors surfaces failures only.
	VerbosityErrors Verbosity = "errors"

	// VerbosityNone surfaces nothing.
	VerbosityNone Verbosity = "none"
)

// IsValid returns true if the verbosity level is recognised.
func (v Verbosity) IsValid() bool {
	switch v {
	case VerbosityAll, VerbosityErrors, VerbosityNone:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (v Verbosity) String() string {
	return string(v)
}

// AuthSettings holds remote API credentials.
type AuthSettings struct {
	// Token is the personal access token for the snippet API.
	Token string

	// ImageHostClientID authorises anonymous image uploads.
	ImageHostClientID string
}

// PublishSettings holds snippet publication preferences.
type PublishSettings struct {
	// Public publishes snippets with public visibility; false means
	// secret (unlisted) snippets.
	Public bool

	// IncludeFrontmatter copies the frontmatter block into the
	// published payload after the synthesised heading.
	IncludeFrontmatter bool
}

// AutoSyncSettings holds the adaptive sync scheduler configuration.
type AutoSyncSettings struct {
	// Enabled is the master switch. The scheduler itself flips this
	// off (and persists it) on quota emergency.
	Enabled bool

	// BaseDelay is the debounce delay before the rate-limit
	// multiplier is applied.
	BaseDelay time.Duration

	// EmergencyThreshold disables auto-sync when the remaining quota
	// drops to or below this value.
	EmergencyThreshold int

	// Verbosity controls sync outcome reporting.
	Verbosity Verbosity
}

// AppSettings holds all persisted application settings.
type AppSettings struct {
	// Auth holds credentials.
	Auth AuthSettings

	// Publish holds publication preferences.
	Publish PublishSettings

	// Conversion holds the markdown conversion policy.
	Conversion ConversionOptions

	// AutoSync holds the scheduler configuration.
	AutoSync AutoSyncSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Credentials are left empty; users must configure them via the auth
// command before publishing.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Auth: AuthSettings{},
		Publish: PublishSettings{
			Public:             false,
			IncludeFrontmatter: false,
		},
		Conversion: DefaultConversionOptions(),
		AutoSync: AutoSyncSettings{
			Enabled:            false,
			BaseDelay:          10 * time.Second,
			EmergencyThreshold: 100,
			Verbosity:          VerbosityErrors,
		},
	}
}
