package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// memNoteStore is an in-memory driven.NoteStore.
type memNoteStore struct {
	mu    sync.Mutex
	notes map[string]string
	blobs map[string][]byte
}

func newMemNoteStore() *memNoteStore {
	return &memNoteStore{
		notes: make(map[string]string),
		blobs: make(map[string][]byte),
	}
}

func (m *memNoteStore) Read(_ context.Context, path string) (*domain.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.notes[path]
	if !ok {
		return nil, fmt.Errorf("note %s: %w", path, domain.ErrNotFound)
	}
	name := path
	if i := lastSlash(path); i >= 0 {
		name = path[i+1:]
	}
	name = name[:len(name)-len(".md")]
	return &domain.Note{Path: path, Name: name, Content: content}, nil
}

func (m *memNoteStore) Write(_ context.Context, path string, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes[path] = content
	return nil
}

func (m *memNoteStore) ReadBinary(_ context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[path]
	if !ok {
		return nil, fmt.Errorf("attachment %s: %w", path, domain.ErrNotFound)
	}
	return data, nil
}

func (m *memNoteStore) content(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notes[path]
}

func lastSlash(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '/' {
			return i
		}
	}
	return -1
}

// memSettings is an in-memory driving.SettingsService.
type memSettings struct {
	mu       sync.Mutex
	settings domain.AppSettings
}

func newMemSettings() *memSettings {
	s := domain.DefaultAppSettings()
	s.Auth.Token = "test-token"
	return &memSettings{settings: s}
}

func (m *memSettings) Get() (domain.AppSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *memSettings) Update(mutate func(*domain.AppSettings)) (domain.AppSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mutate(&m.settings)
	return m.settings, nil
}

// fakeSnippets is a scripted driven.SnippetService.
type fakeSnippets struct {
	mu      sync.Mutex
	creates int
	updates int
	fetches int

	nextID    string
	fetchBody map[string]string
	err       error
	quota     *domain.RateQuota

	lastFiles  map[string]string
	lastPublic bool
	block      chan struct{}
}

func newFakeSnippets() *fakeSnippets {
	return &fakeSnippets{nextID: "gist-abc"}
}

func (f *fakeSnippets) Create(_ context.Context, files map[string]string, public bool, _ string) (*domain.Snippet, *domain.RateQuota, error) {
	f.waitIfBlocked()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	f.lastFiles = files
	f.lastPublic = public
	if f.err != nil {
		return nil, f.quota, f.err
	}
	return &domain.Snippet{ID: f.nextID, URL: "https://gist.test/" + f.nextID, Files: files}, f.quota, nil
}

func (f *fakeSnippets) Update(_ context.Context, id string, files map[string]string) (*domain.Snippet, *domain.RateQuota, error) {
	f.waitIfBlocked()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	f.lastFiles = files
	if f.err != nil {
		return nil, f.quota, f.err
	}
	return &domain.Snippet{ID: id, URL: "https://gist.test/" + id, Files: files}, f.quota, nil
}

func (f *fakeSnippets) Fetch(_ context.Context, id string) (*domain.Snippet, *domain.RateQuota, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.err != nil {
		return nil, f.quota, f.err
	}
	return &domain.Snippet{ID: id, URL: "https://gist.test/" + id, Files: f.fetchBody}, f.quota, nil
}

func (f *fakeSnippets) waitIfBlocked() {
	f.mu.Lock()
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
}

func (f *fakeSnippets) counts() (creates, updates int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.creates, f.updates
}

// fakeImageHost uploads to a deterministic URL, optionally failing
// specific filenames.
type fakeImageHost struct {
	mu      sync.Mutex
	fail    map[string]bool
	uploads []string
}

func newFakeImageHost() *fakeImageHost {
	return &fakeImageHost{fail: make(map[string]bool)}
}

func (f *fakeImageHost) Upload(_ context.Context, filename string, _ []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[filename] {
		return "", fmt.Errorf("image %s: %w", filename, domain.ErrUpload)
	}
	f.uploads = append(f.uploads, filename)
	return "https://img.test/" + filename, nil
}

// memHistory records publishes in memory.
type memHistory struct {
	mu      sync.Mutex
	records []domain.PublishRecord
}

func (m *memHistory) Record(_ context.Context, record domain.PublishRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *memHistory) List(_ context.Context, notePath string, limit int) ([]domain.PublishRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.PublishRecord
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		if notePath == "" || m.records[i].NotePath == notePath {
			out = append(out, m.records[i])
		}
	}
	return out, nil
}

func (m *memHistory) Prune(_ context.Context, _ int) error { return nil }

func (m *memHistory) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// fakePacer is a scripted RatePacer.
type fakePacer struct {
	mu         sync.Mutex
	quota      domain.RateQuota
	fresh      bool
	multiplier float64
}

func (f *fakePacer) Quota() domain.RateQuota {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.quota
}

func (f *fakePacer) Fresh() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fresh
}

func (f *fakePacer) DebounceFor(base time.Duration) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.multiplier <= 0 {
		return base
	}
	return time.Duration(float64(base) * f.multiplier)
}

func (f *fakePacer) set(quota domain.RateQuota, fresh bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.quota = quota
	f.fresh = fresh
}
