package vault

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/notegist-labs/notegist-cli/internal/core/ports/driving"
	"github.com/notegist-labs/notegist-cli/internal/logger"
)

// Watcher observes a vault directory tree and forwards markdown edit
// events to the auto-sync scheduler. Directories are watched
// recursively; fsnotify does not recurse on its own, so new
// subdirectories are added as they appear.
type Watcher struct {
	root    string
	sync    driving.AutoSync
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewWatcher creates a watcher over the given vault root feeding the
// scheduler.
func NewWatcher(root string, sync driving.AutoSync) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		root:    abs,
		sync:    sync,
		watcher: fsw,
		done:    make(chan struct{}),
	}

	if err := w.addRecursive(abs); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// Start consumes filesystem events until the context is cancelled or
// Close is called. It blocks; run it in a goroutine if needed.
func (w *Watcher) Start(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("vault watcher: %v", err)
		}
	}
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	rel, err := filepath.Rel(w.root, event.Name)
	if err != nil || isHidden(rel) {
		return
	}

	// New directories must be added to the watch set before their
	// contents produce events.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(event.Name); err != nil {
				logger.Warn("vault watcher: watch %s: %v", event.Name, err)
			}
			return
		}
	}

	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}
	if !strings.EqualFold(filepath.Ext(event.Name), ".md") {
		return
	}

	logger.Debug("vault watcher: edit %s", rel)
	w.sync.NoteEdited(ctx, filepath.ToSlash(rel))
}

// addRecursive watches dir and every non-hidden subdirectory under it.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

// isHidden reports whether any path component is dot-prefixed.
// "." and ".." themselves are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." || part == "" {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
