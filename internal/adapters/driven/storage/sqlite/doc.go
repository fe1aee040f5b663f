// Package sqlite provides SQLite-backed persistence for publish
// history, with schema managed through embedded migrations.
package sqlite
