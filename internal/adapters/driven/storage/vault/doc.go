// Package vault reads and writes documents in an Obsidian-style vault
// directory on local disk, and watches it for edits.
package vault
