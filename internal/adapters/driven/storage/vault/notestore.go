package vault

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is a filesystem implementation of driven.NoteStore rooted
// at a vault directory. Paths are vault-relative; escaping the root is
// rejected.
type NoteStore struct {
	root string
}

// NewNoteStore creates a note store for the given vault root.
func NewNoteStore(root string) (*NoteStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve vault root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault root %s: %w", abs, domain.ErrValidation)
	}

	return &NoteStore{root: abs}, nil
}

// Root returns the absolute vault root directory.
func (s *NoteStore) Root() string {
	return s.root
}

// Read returns the note at the vault-relative path.
func (s *NoteStore) Read(ctx context.Context, path string) (*domain.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read note %s: %w", path, err)
	}

	base := filepath.Base(path)
	return &domain.Note{
		Path:    path,
		Name:    strings.TrimSuffix(base, filepath.Ext(base)),
		Content: string(data),
	}, nil
}

// Write replaces the note's content.
func (s *NoteStore) Write(ctx context.Context, path string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return fmt.Errorf("write note %s: %w", path, err)
	}
	return nil
}

// ReadBinary returns raw bytes for an attachment path.
func (s *NoteStore) ReadBinary(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read attachment %s: %w", path, err)
	}
	return data, nil
}

// resolve joins a vault-relative path onto the root and rejects
// anything that escapes it.
func (s *NoteStore) resolve(path string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(path))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("path %q escapes vault: %w", path, domain.ErrValidation)
	}
	return filepath.Join(s.root, cleaned), nil
}
