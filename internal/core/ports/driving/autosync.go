package driving

import "context"

// AutoSync is the debounced synchronisation scheduler.
type AutoSync interface {
	// NoteEdited records an edit event for a note. A qualifying event
	// arms (or re-arms) the note's single debounce timer; this is a
	// debounce, not a queue.
	NoteEdited(ctx context.Context, notePath string)

	// Stop cancels all pending timers and waits for an in-flight
	// sync to finish.
	Stop()

	// Enabled reports whether auto-sync is currently active.
	Enabled() bool

	// Enable flips auto-sync on or off, persisting the change.
	// Enabling also clears a quota-emergency disable.
	Enable(ctx context.Context, on bool) error
}
