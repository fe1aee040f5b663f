package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// TestDetectTags tests the line-start suppression rule
func TestDetectTags(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"mid-sentence tag", "This is #important stuff", true},
		{"tag alone on its line", "#important", false},
		{"tag at line start after indent", "   #important note", false},
		{"quoted heading token", "> #important", false},
		{"heading", "# Heading", false},
		{"glued hash", "see issue#42", false},
		{"tag after text on later line", "first\nthen #tagged here", true},
		{"multiple tags one convertible", "#lead and #trail", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectTags(tt.content))
		})
	}
}

// TestConvertTags tests formats and modes
func TestConvertTags(t *testing.T) {
	tests := []struct {
		name     string
		mode     domain.CompatMode
		format   domain.TagFormat
		content  string
		expected string
	}{
		{
			name:     "inline code format",
			mode:     domain.CompatModePermissive,
			format:   domain.TagFormatCode,
			content:  "This is #important stuff",
			expected: "This is `important` stuff",
		},
		{
			name:     "bold format",
			mode:     domain.CompatModePermissive,
			format:   domain.TagFormatBold,
			content:  "This is #important stuff",
			expected: "This is **important** stuff",
		},
		{
			name:     "plain format",
			mode:     domain.CompatModePermissive,
			format:   domain.TagFormatPlain,
			content:  "This is #important stuff",
			expected: "This is important stuff",
		},
		{
			name:     "strict deletes the tag",
			mode:     domain.CompatModeStrict,
			format:   domain.TagFormatCode,
			content:  "This is #important stuff",
			expected: "This is  stuff",
		},
		{
			name:     "line-start token is skipped entirely",
			mode:     domain.CompatModePermissive,
			format:   domain.TagFormatCode,
			content:  "#important\nbut #this converts",
			expected: "#important\nbut `this` converts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := optsWithMode(tt.mode)
			opts.Tags = tt.format
			result := convertTags(tt.content, opts)
			assert.Equal(t, tt.expected, result.Content)
		})
	}
}

// TestConvertTags_NativePreserve tests the untouched-plus-warning path
func TestConvertTags_NativePreserve(t *testing.T) {
	content := "Keep #these #tags alone"
	result := convertTags(content, optsWithMode(domain.CompatModeNative))

	assert.Equal(t, content, result.Content)
	assert.Len(t, result.Warnings, 1)
	assert.Empty(t, result.Changed, "native preserve must not enter the audit trail")
}

// TestConvertTags_Idempotent tests re-application detects nothing
func TestConvertTags_Idempotent(t *testing.T) {
	for _, format := range []domain.TagFormat{domain.TagFormatCode, domain.TagFormatBold, domain.TagFormatPlain} {
		opts := optsWithMode(domain.CompatModePermissive)
		opts.Tags = format

		once := convertTags("a #one b #two", opts)
		assert.False(t, detectTags(once.Content), string(format))

		twice := convertTags(once.Content, opts)
		assert.Equal(t, once.Content, twice.Content)
	}

	once := convertTags("a #one b", optsWithMode(domain.CompatModeStrict))
	assert.False(t, detectTags(once.Content))
}
