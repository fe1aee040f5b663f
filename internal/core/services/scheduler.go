package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driven"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driving"
	"github.com/notegist-labs/notegist-cli/internal/logger"
	"github.com/notegist-labs/notegist-cli/internal/markdown/frontmatter"
)

// Ensure SyncScheduler implements the interface.
var _ driving.AutoSync = (*SyncScheduler)(nil)

// RatePacer exposes the rate-quota view the scheduler adapts to.
// The snippet connector's tracker satisfies this.
type RatePacer interface {
	// Quota returns the most recently reported quota.
	Quota() domain.RateQuota

	// Fresh reports whether at least one response has refreshed the
	// quota. Emergency checks are skipped against assumed defaults.
	Fresh() bool

	// DebounceFor scales a base delay by the current usage multiplier.
	DebounceFor(base time.Duration) time.Duration
}

// reEnableWindow bounds how far ahead a quota reset may be for the
// scheduler to arm an automatic re-enable timer.
const reEnableWindow = time.Hour

// SyncScheduler debounces note edits into snippet updates, adapting
// its delay to the remote API's remaining quota. One timer per note;
// a new edit re-arms it rather than queueing.
type SyncScheduler struct {
	publisher driving.Publisher
	notes     driven.NoteStore
	settings  driving.SettingsService
	pacer     RatePacer

	mu       sync.Mutex
	timers   map[string]*time.Timer
	reEnable *time.Timer
	stopped  bool
	wg       sync.WaitGroup
}

// NewSyncScheduler creates the auto-sync scheduler.
func NewSyncScheduler(
	publisher driving.Publisher,
	notes driven.NoteStore,
	settings driving.SettingsService,
	pacer RatePacer,
) *SyncScheduler {
	return &SyncScheduler{
		publisher: publisher,
		notes:     notes,
		settings:  settings,
		pacer:     pacer,
		timers:    make(map[string]*time.Timer),
	}
}

// NoteEdited records an edit event for a note. A qualifying event arms
// or re-arms the note's single debounce timer.
func (s *SyncScheduler) NoteEdited(ctx context.Context, notePath string) {
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("auto-sync: settings unavailable: %v", err)
		return
	}
	if !settings.AutoSync.Enabled {
		return
	}
	if s.publisher.InFlight(notePath) {
		logger.Debug("auto-sync: %s has a manual publish in flight, skipping", notePath)
		return
	}
	if !s.isPublished(ctx, notePath) {
		logger.Debug("auto-sync: %s not published, skipping", notePath)
		return
	}

	delay := s.pacer.DebounceFor(settings.AutoSync.BaseDelay)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	if timer, ok := s.timers[notePath]; ok {
		// Re-arm: the pending sync absorbs this edit.
		timer.Reset(delay)
		logger.Debug("auto-sync: %s re-armed for %s", notePath, delay)
		return
	}

	s.timers[notePath] = time.AfterFunc(delay, func() {
		s.fire(notePath)
	})
	logger.Debug("auto-sync: %s armed for %s", notePath, delay)
}

// Stop cancels all pending timers and waits for in-flight syncs.
func (s *SyncScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	for path, timer := range s.timers {
		timer.Stop()
		delete(s.timers, path)
	}
	if s.reEnable != nil {
		s.reEnable.Stop()
		s.reEnable = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Enabled reports whether auto-sync is currently active.
func (s *SyncScheduler) Enabled() bool {
	settings, err := s.settings.Get()
	if err != nil {
		return false
	}
	return settings.AutoSync.Enabled
}

// Enable flips auto-sync on or off, persisting the change. Enabling
// clears any quota-emergency re-enable timer.
func (s *SyncScheduler) Enable(_ context.Context, on bool) error {
	_, err := s.settings.Update(func(settings *domain.AppSettings) {
		settings.AutoSync.Enabled = on
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.reEnable != nil {
		s.reEnable.Stop()
		s.reEnable = nil
	}
	if !on {
		for path, timer := range s.timers {
			timer.Stop()
			delete(s.timers, path)
		}
	}
	s.mu.Unlock()
	return nil
}

// fire runs one debounced sync. Failures are reported, never fatal.
func (s *SyncScheduler) fire(notePath string) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.timers, notePath)
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	ctx := context.Background()

	settings, err := s.settings.Get()
	if err != nil || !settings.AutoSync.Enabled {
		return
	}

	outcome, err := s.publisher.Update(ctx, notePath)
	if err != nil {
		if errors.Is(err, domain.ErrPublishInProgress) {
			logger.Debug("auto-sync: %s busy, dropped", notePath)
			return
		}
		logger.Error("auto-sync: %s: %v", notePath, err)
		if errors.Is(err, domain.ErrRateLimited) {
			s.emergencyDisable(ctx, settings.AutoSync.EmergencyThreshold)
		}
		return
	}

	logger.Info("auto-sync: %s updated (%s, %d warnings)",
		notePath, outcome.SnippetID, len(outcome.Conversion.Warnings))

	s.checkQuota(ctx, settings.AutoSync.EmergencyThreshold)
}

// checkQuota disables auto-sync when the reported remaining quota
// drops to or below the emergency threshold.
func (s *SyncScheduler) checkQuota(ctx context.Context, threshold int) {
	if !s.pacer.Fresh() {
		return
	}
	if s.pacer.Quota().Remaining > threshold {
		return
	}
	s.emergencyDisable(ctx, threshold)
}

// emergencyDisable persists the off switch and, when the quota window
// resets within the hour, arms a timer to switch back on.
func (s *SyncScheduler) emergencyDisable(_ context.Context, threshold int) {
	quota := s.pacer.Quota()
	logger.Warn("auto-sync: quota emergency (%d remaining, threshold %d), disabling",
		quota.Remaining, threshold)

	if _, err := s.settings.Update(func(settings *domain.AppSettings) {
		settings.AutoSync.Enabled = false
	}); err != nil {
		logger.Error("auto-sync: persisting disable: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for path, timer := range s.timers {
		timer.Stop()
		delete(s.timers, path)
	}

	until := time.Until(quota.Reset)
	if until <= 0 || until > reEnableWindow {
		// Reset unknown or too distant; stay off until the user
		// re-enables manually.
		return
	}

	if s.reEnable != nil {
		s.reEnable.Stop()
	}
	s.reEnable = time.AfterFunc(until, func() {
		if _, err := s.settings.Update(func(settings *domain.AppSettings) {
			settings.AutoSync.Enabled = true
		}); err != nil {
			logger.Error("auto-sync: re-enabling: %v", err)
			return
		}
		logger.Info("auto-sync: quota window reset, re-enabled")
	})
	logger.Info("auto-sync: will re-enable in %s", until.Round(time.Second))
}

// isPublished reports whether the note's frontmatter carries a
// snippet identifier.
func (s *SyncScheduler) isPublished(ctx context.Context, notePath string) bool {
	note, err := s.notes.Read(ctx, notePath)
	if err != nil {
		logger.Debug("auto-sync: read %s: %v", notePath, err)
		return false
	}
	_, ok := frontmatter.Split(note.Content).Field(domain.FieldSnippetID)
	return ok
}

// PendingCount returns the number of armed debounce timers.
func (s *SyncScheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// String describes the scheduler state for status output.
func (s *SyncScheduler) String() string {
	if !s.Enabled() {
		return "disabled"
	}
	if n := s.PendingCount(); n > 0 {
		return fmt.Sprintf("pending (%d)", n)
	}
	return "idle"
}
