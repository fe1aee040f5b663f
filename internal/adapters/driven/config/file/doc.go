// Package file provides a TOML-backed settings store rooted in the
// user's home directory.
package file
