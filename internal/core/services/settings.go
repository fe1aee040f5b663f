package services

import (
	"fmt"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driven"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings on top of the store.
// Updates are read-modify-write without locking; last write wins.
type SettingsService struct {
	store driven.SettingsStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the current settings snapshot.
func (s *SettingsService) Get() (domain.AppSettings, error) {
	settings, err := s.store.Load()
	if err != nil {
		return domain.DefaultAppSettings(), fmt.Errorf("loading settings: %w", err)
	}
	return settings, nil
}

// Update applies a mutation to the current settings and persists the
// result. The mutated snapshot is returned.
func (s *SettingsService) Update(mutate func(*domain.AppSettings)) (domain.AppSettings, error) {
	settings, err := s.store.Load()
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("loading settings: %w", err)
	}

	mutate(&settings)

	if err := s.validate(settings); err != nil {
		return domain.AppSettings{}, err
	}

	if err := s.store.Save(settings); err != nil {
		return domain.AppSettings{}, fmt.Errorf("saving settings: %w", err)
	}
	return settings, nil
}

// validate rejects snapshots carrying unrecognised policy values.
func (s *SettingsService) validate(settings domain.AppSettings) error {
	if !settings.Conversion.Mode.IsValid() {
		return fmt.Errorf("compatibility mode %q: %w", settings.Conversion.Mode, domain.ErrValidation)
	}
	if !settings.Conversion.Math.IsValid() {
		return fmt.Errorf("math policy %q: %w", settings.Conversion.Math, domain.ErrValidation)
	}
	if !settings.Conversion.Plugins.IsValid() {
		return fmt.Errorf("plugin policy %q: %w", settings.Conversion.Plugins, domain.ErrValidation)
	}
	if !settings.Conversion.Tags.IsValid() {
		return fmt.Errorf("tag format %q: %w", settings.Conversion.Tags, domain.ErrValidation)
	}
	if !settings.AutoSync.Verbosity.IsValid() {
		return fmt.Errorf("verbosity %q: %w", settings.AutoSync.Verbosity, domain.ErrValidation)
	}
	if settings.AutoSync.BaseDelay <= 0 {
		return fmt.Errorf("auto-sync base delay must be positive: %w", domain.ErrValidation)
	}
	if settings.AutoSync.EmergencyThreshold < 0 {
		return fmt.Errorf("emergency threshold must not be negative: %w", domain.ErrValidation)
	}
	return nil
}
