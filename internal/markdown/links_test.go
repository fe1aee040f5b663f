package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

func optsWithMode(mode domain.CompatMode) domain.ConversionOptions {
	opts := domain.DefaultConversionOptions()
	opts.Mode = mode
	return opts
}

// TestDetectLinks tests link detection including the image-embed overlap
func TestDetectLinks(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"plain link", "See [[Another Note]] here", true},
		{"aliased link", "See [[Another Note|that note]]", true},
		{"image embed only", "![[picture.png]]", false},
		{"no links", "plain markdown [link](url)", false},
		{"link after embed", "![[a.png]] and [[Note]]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectLinks(tt.content))
		})
	}
}

// TestConvertLinks tests the three policy renderings
func TestConvertLinks(t *testing.T) {
	tests := []struct {
		name     string
		mode     domain.CompatMode
		content  string
		expected string
	}{
		{
			name:     "native preserve sanitises the target",
			mode:     domain.CompatModeNative,
			content:  "Link to [[Another Note]]",
			expected: "Link to [Another Note](Another_Note.md)",
		},
		{
			name:     "native preserve replaces slashes",
			mode:     domain.CompatModeNative,
			content:  "[[folder/Sub Note]]",
			expected: "[folder/Sub Note](folder_Sub_Note.md)",
		},
		{
			name:     "alias wins as display text",
			mode:     domain.CompatModeNative,
			content:  "[[Another Note|see this]]",
			expected: "[see this](Another_Note.md)",
		},
		{
			name:     "strict keeps display text alone",
			mode:     domain.CompatModeStrict,
			content:  "[[Another Note|see this]]",
			expected: "see this",
		},
		{
			name:     "permissive emphasises display text",
			mode:     domain.CompatModePermissive,
			content:  "[[Another Note]]",
			expected: "*Another Note*",
		},
		{
			name:     "image embeds pass through untouched",
			mode:     domain.CompatModeNative,
			content:  "![[pic.png]] and [[Note]]",
			expected: "![[pic.png]] and [Note](Note.md)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convertLinks(tt.content, optsWithMode(tt.mode))
			assert.Equal(t, tt.expected, result.Content)
		})
	}
}

// TestConvertLinks_AuditTrail tests that changes are recorded
func TestConvertLinks_AuditTrail(t *testing.T) {
	result := convertLinks("[[A]] then [[B|bee]]", optsWithMode(domain.CompatModeNative))

	assert.Len(t, result.Changed, 2)
	assert.Equal(t, "[[A]]", result.Changed[0].Original)
	assert.Equal(t, "[A](A.md)", result.Changed[0].Converted)
	assert.Equal(t, CategoryLinks, result.Changed[0].Category)
	assert.Equal(t, "[[B|bee]]", result.Changed[1].Original)
}

// TestConvertLinks_Idempotent tests re-application detects nothing
func TestConvertLinks_Idempotent(t *testing.T) {
	for _, mode := range domain.AllCompatModes() {
		opts := optsWithMode(mode)
		once := convertLinks("x [[A|a]] y [[B]] z", opts)
		assert.False(t, detectLinks(once.Content), mode.String())

		twice := convertLinks(once.Content, opts)
		assert.Equal(t, once.Content, twice.Content, mode.String())
	}
}
