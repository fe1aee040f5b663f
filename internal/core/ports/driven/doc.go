// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - NoteStore: reads and writes vault documents
//   - SnippetService: create/update/fetch of the remote snippet
//   - SettingsStore: persisted application settings
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ImageHost: binary image upload. Without it, image embeds are
//     published as inline placeholders.
//   - HistoryStore: publish audit trail. Without it, history commands
//     are disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
