package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// memSettingsStore is an in-memory driven.SettingsStore.
type memSettingsStore struct {
	settings domain.AppSettings
	saved    int
	loadErr  error
	saveErr  error
}

func newMemSettingsStore() *memSettingsStore {
	return &memSettingsStore{settings: domain.DefaultAppSettings()}
}

func (m *memSettingsStore) Load() (domain.AppSettings, error) {
	if m.loadErr != nil {
		return domain.DefaultAppSettings(), m.loadErr
	}
	return m.settings, nil
}

func (m *memSettingsStore) Save(settings domain.AppSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = settings
	m.saved++
	return nil
}

// TestSettingsService_Get tests settings retrieval
func TestSettingsService_Get(t *testing.T) {
	store := newMemSettingsStore()
	store.settings.Publish.Public = true
	svc := NewSettingsService(store)

	settings, err := svc.Get()
	require.NoError(t, err)
	assert.True(t, settings.Publish.Public)
}

// TestSettingsService_Update tests read-modify-write
func TestSettingsService_Update(t *testing.T) {
	store := newMemSettingsStore()
	svc := NewSettingsService(store)

	updated, err := svc.Update(func(s *domain.AppSettings) {
		s.Auth.Token = "tok"
		s.Conversion.Mode = domain.CompatModeStrict
		s.AutoSync.BaseDelay = 30 * time.Second
	})
	require.NoError(t, err)

	assert.Equal(t, "tok", updated.Auth.Token)
	assert.Equal(t, domain.CompatModeStrict, updated.Conversion.Mode)
	assert.Equal(t, 1, store.saved)
	assert.Equal(t, updated, store.settings)
}

// TestSettingsService_Update_Validation tests rejected mutations
func TestSettingsService_Update_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.AppSettings)
	}{
		{"bad mode", func(s *domain.AppSettings) { s.Conversion.Mode = "aggressive" }},
		{"bad math policy", func(s *domain.AppSettings) { s.Conversion.Math = "rewrite" }},
		{"bad plugin policy", func(s *domain.AppSettings) { s.Conversion.Plugins = "keep" }},
		{"bad tag format", func(s *domain.AppSettings) { s.Conversion.Tags = "emoji" }},
		{"bad verbosity", func(s *domain.AppSettings) { s.AutoSync.Verbosity = "loud" }},
		{"zero base delay", func(s *domain.AppSettings) { s.AutoSync.BaseDelay = 0 }},
		{"negative threshold", func(s *domain.AppSettings) { s.AutoSync.EmergencyThreshold = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemSettingsStore()
			svc := NewSettingsService(store)

			_, err := svc.Update(tt.mutate)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, store.saved, "invalid snapshot must not be persisted")
		})
	}
}

// TestSettingsService_StoreFailures tests error propagation
func TestSettingsService_StoreFailures(t *testing.T) {
	t.Run("load failure", func(t *testing.T) {
		store := newMemSettingsStore()
		store.loadErr = errors.New("disk gone")
		svc := NewSettingsService(store)

		_, err := svc.Get()
		assert.Error(t, err)

		_, err = svc.Update(func(*domain.AppSettings) {})
		assert.Error(t, err)
	})

	t.Run("save failure", func(t *testing.T) {
		store := newMemSettingsStore()
		store.saveErr = errors.New("disk full")
		svc := NewSettingsService(store)

		_, err := svc.Update(func(s *domain.AppSettings) { s.Publish.Public = true })
		assert.Error(t, err)
	})
}
