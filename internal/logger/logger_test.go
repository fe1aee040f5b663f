package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

func capture(t *testing.T, v domain.Verbosity, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbosity(v)
	defer func() {
		SetOutput(os.Stderr)
		SetVerbosity(domain.VerbosityErrors)
	}()

	fn()
	return buf.String()
}

// TestVerbosityAll tests that every level is surfaced
func TestVerbosityAll(t *testing.T) {
	out := capture(t, domain.VerbosityAll, func() {
		Debug("d %d", 1)
		Info("i")
		Warn("w")
		Error("e")
	})

	assert.Contains(t, out, "[DEBUG] d 1")
	assert.Contains(t, out, "[INFO] i")
	assert.Contains(t, out, "[WARN] w")
	assert.Contains(t, out, "[ERROR] e")
}

// TestVerbosityErrors tests errors-only gating
func TestVerbosityErrors(t *testing.T) {
	out := capture(t, domain.VerbosityErrors, func() {
		Debug("d")
		Info("i")
		Warn("w")
		Error("e")
	})

	assert.NotContains(t, out, "[DEBUG]")
	assert.NotContains(t, out, "[INFO]")
	assert.Contains(t, out, "[WARN] w")
	assert.Contains(t, out, "[ERROR] e")
}

// TestVerbosityNone tests complete silence
func TestVerbosityNone(t *testing.T) {
	out := capture(t, domain.VerbosityNone, func() {
		Debug("d")
		Info("i")
		Warn("w")
		Error("e")
	})
	assert.Empty(t, out)
}

// TestSetVerbosity_Invalid tests invalid levels are ignored
func TestSetVerbosity_Invalid(t *testing.T) {
	SetVerbosity(domain.VerbosityAll)
	defer SetVerbosity(domain.VerbosityErrors)

	SetVerbosity(domain.Verbosity("shouting"))
	assert.Equal(t, domain.VerbosityAll, Verbosity())
}
