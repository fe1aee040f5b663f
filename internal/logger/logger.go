// Package logger provides leveled logging for the notegist CLI.
// Output is gated by the configured verbosity: "all" surfaces every
// message, "errors" only failures, "none" nothing. Auto-sync outcomes
// are reported through this package so the scheduler never crashes on
// a reporting path.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

var (
	mu        sync.RWMutex
	verbosity = domain.VerbosityErrors
	output    io.Writer = os.Stderr
)

// SetVerbosity sets the reporting level.
func SetVerbosity(v domain.Verbosity) {
	mu.Lock()
	defer mu.Unlock()
	if v.IsValid() {
		verbosity = v
	}
}

// Verbosity returns the current reporting level.
func Verbosity() domain.Verbosity {
	mu.RLock()
	defer mu.RUnlock()
	return verbosity
}

// SetOutput sets the output writer. Defaults to os.Stderr.
// Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message when verbosity is "all".
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbosity == domain.VerbosityAll {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational message when verbosity is "all".
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbosity == domain.VerbosityAll {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning unless verbosity is "none".
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbosity != domain.VerbosityNone {
		fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
	}
}

// Error prints a failure unless verbosity is "none".
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbosity != domain.VerbosityNone {
		fmt.Fprintf(output, "[ERROR] "+format+"\n", args...)
	}
}
