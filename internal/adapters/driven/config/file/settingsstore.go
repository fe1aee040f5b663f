package file

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// SettingsStore is a file-based implementation of driven.SettingsStore
// using TOML. Settings are stored in a single file within the notegist
// config directory.
type SettingsStore struct {
	filePath string
}

// settingsFile is the on-disk shape. Durations are stored as whole
// seconds so the file stays hand-editable.
type settingsFile struct {
	Auth struct {
		Token             string `toml:"token"`
		ImageHostClientID string `toml:"image_host_client_id"`
	} `toml:"auth"`

	Publish struct {
		Public             bool `toml:"public"`
		IncludeFrontmatter bool `toml:"include_frontmatter"`
	} `toml:"publish"`

	Conversion struct {
		Mode     string   `toml:"mode"`
		Math     string   `toml:"math"`
		Plugins  string   `toml:"plugins"`
		Tags     string   `toml:"tags"`
		Disabled []string `toml:"disabled"`
	} `toml:"conversion"`

	AutoSync struct {
		Enabled            bool   `toml:"enabled"`
		BaseDelaySeconds   int    `toml:"base_delay_seconds"`
		EmergencyThreshold int    `toml:"emergency_threshold"`
		Verbosity          string `toml:"verbosity"`
	} `toml:"auto_sync"`
}

// NewSettingsStore creates a TOML-based settings store.
// If configDir is empty, defaults to ~/.notegist/config.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".notegist")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads settings from the TOML file. A missing file yields
// defaults; unrecognised policy values fall back to their defaults so
// a hand-edited file never bricks the CLI.
func (s *SettingsStore) Load() (domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, err
	}

	var f settingsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return defaults, err
	}

	settings := defaults
	settings.Auth.Token = f.Auth.Token
	settings.Auth.ImageHostClientID = f.Auth.ImageHostClientID
	settings.Publish.Public = f.Publish.Public
	settings.Publish.IncludeFrontmatter = f.Publish.IncludeFrontmatter

	if m := domain.CompatMode(f.Conversion.Mode); m.IsValid() {
		settings.Conversion.Mode = m
	}
	if p := domain.MathPolicy(f.Conversion.Math); p.IsValid() {
		settings.Conversion.Math = p
	}
	if p := domain.PluginPolicy(f.Conversion.Plugins); p.IsValid() {
		settings.Conversion.Plugins = p
	}
	if t := domain.TagFormat(f.Conversion.Tags); t.IsValid() {
		settings.Conversion.Tags = t
	}
	for _, name := range f.Conversion.Disabled {
		setToggle(&settings.Conversion.Enabled, name, false)
	}

	settings.AutoSync.Enabled = f.AutoSync.Enabled
	if f.AutoSync.BaseDelaySeconds > 0 {
		settings.AutoSync.BaseDelay = time.Duration(f.AutoSync.BaseDelaySeconds) * time.Second
	}
	if f.AutoSync.EmergencyThreshold > 0 {
		settings.AutoSync.EmergencyThreshold = f.AutoSync.EmergencyThreshold
	}
	if v := domain.Verbosity(f.AutoSync.Verbosity); v.IsValid() {
		settings.AutoSync.Verbosity = v
	}

	return settings, nil
}

// Save persists the full settings snapshot to the TOML file.
func (s *SettingsStore) Save(settings domain.AppSettings) error {
	var f settingsFile
	f.Auth.Token = settings.Auth.Token
	f.Auth.ImageHostClientID = settings.Auth.ImageHostClientID
	f.Publish.Public = settings.Publish.Public
	f.Publish.IncludeFrontmatter = settings.Publish.IncludeFrontmatter
	f.Conversion.Mode = settings.Conversion.Mode.String()
	f.Conversion.Math = settings.Conversion.Math.String()
	f.Conversion.Plugins = settings.Conversion.Plugins.String()
	f.Conversion.Tags = settings.Conversion.Tags.String()
	f.Conversion.Disabled = disabledCategories(settings.Conversion.Enabled)
	f.AutoSync.Enabled = settings.AutoSync.Enabled
	f.AutoSync.BaseDelaySeconds = int(settings.AutoSync.BaseDelay / time.Second)
	f.AutoSync.EmergencyThreshold = settings.AutoSync.EmergencyThreshold
	f.AutoSync.Verbosity = settings.AutoSync.Verbosity.String()

	data, err := toml.Marshal(f)
	if err != nil {
		return err
	}

	// Restricted permissions: the file carries the API token.
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}

// toggleNames maps a category name to its toggle field.
var toggleNames = map[string]func(*domain.CategoryToggles) *bool{
	"internal-links": func(t *domain.CategoryToggles) *bool { return &t.Links },
	"image-embeds":   func(t *domain.CategoryToggles) *bool { return &t.Images },
	"tags":           func(t *domain.CategoryToggles) *bool { return &t.Tags },
	"callouts":       func(t *domain.CategoryToggles) *bool { return &t.Callouts },
	"math":           func(t *domain.CategoryToggles) *bool { return &t.Math },
	"plugin-blocks":  func(t *domain.CategoryToggles) *bool { return &t.Plugins },
	"comments":       func(t *domain.CategoryToggles) *bool { return &t.Comments },
}

func setToggle(t *domain.CategoryToggles, name string, enabled bool) {
	if field, ok := toggleNames[name]; ok {
		*field(t) = enabled
	}
}

func disabledCategories(t domain.CategoryToggles) []string {
	var out []string
	for _, name := range []string{
		"internal-links", "image-embeds", "tags", "callouts",
		"math", "plugin-blocks", "comments",
	} {
		if field := toggleNames[name]; !*field(&t) {
			out = append(out, name)
		}
	}
	return out
}
