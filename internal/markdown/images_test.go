package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// TestDetectImages tests embed detection
func TestDetectImages(t *testing.T) {
	assert.True(t, detectImages("![[picture.png]]"))
	assert.False(t, detectImages("[[not an image]]"))
	assert.False(t, detectImages("![standard](img.png)"))
}

// TestConvertImages_PassThrough tests the deliberate no-op
func TestConvertImages_PassThrough(t *testing.T) {
	content := "before ![[pic.png]] after"
	result := convertImages(content, domain.DefaultConversionOptions())

	assert.Equal(t, content, result.Content)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Changed)
}

// TestImageEmbeds tests source-order target extraction
func TestImageEmbeds(t *testing.T) {
	targets := ImageEmbeds("![[a.png]] text ![[b.jpg]] text ![[a.png]]")
	assert.Equal(t, []string{"a.png", "b.jpg", "a.png"}, targets)

	assert.Nil(t, ImageEmbeds("no embeds"))
}

// TestReplaceImageEmbed tests first-occurrence substitution
func TestReplaceImageEmbed(t *testing.T) {
	content := "![[a.png]] and ![[a.png]]"
	out := ReplaceImageEmbed(content, "a.png", "![a](https://host/a)")
	assert.Equal(t, "![a](https://host/a) and ![[a.png]]", out)

	assert.Equal(t, content, ReplaceImageEmbed(content, "missing.png", "x"))
}
