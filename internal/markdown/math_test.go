package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

func optsWithMath(policy domain.MathPolicy) domain.ConversionOptions {
	opts := domain.DefaultConversionOptions()
	opts.Mode = domain.CompatModePermissive
	opts.Math = policy
	return opts
}

// TestDetectMath tests inline and block detection
func TestDetectMath(t *testing.T) {
	assert.True(t, detectMath("inline $x^2$ math"))
	assert.True(t, detectMath("$$\nE = mc^2\n$$"))
	assert.False(t, detectMath("costs $5 at most"))
	assert.False(t, detectMath("no math here"))
}

// TestConvertMath_Preserve tests preserve leaves input untouched
func TestConvertMath_Preserve(t *testing.T) {
	content := "keep $x$ and $$y$$ as-is"
	result := convertMath(content, optsWithMath(domain.MathPreserve))
	assert.Equal(t, content, result.Content)
	assert.Empty(t, result.Changed)
}

// TestConvertMath_Remove tests delimiter stripping and block deletion
func TestConvertMath_Remove(t *testing.T) {
	result := convertMath("inline $x^2$ stays bare", optsWithMath(domain.MathRemove))
	assert.Equal(t, "inline x^2 stays bare", result.Content)

	result = convertMath("before\n$$\nE = mc^2\n$$\nafter", optsWithMath(domain.MathRemove))
	assert.Equal(t, "before\n\nafter", result.Content)
	assert.Len(t, result.Removed, 1)
}

// TestConvertMath_Convert tests fenced wrapping
func TestConvertMath_Convert(t *testing.T) {
	result := convertMath("$$\nE = mc^2\n$$", optsWithMath(domain.MathConvert))
	assert.Equal(t, "```math\nE = mc^2\n```", result.Content)

	result = convertMath("inline $x^2$ here", optsWithMath(domain.MathConvert))
	assert.Equal(t, "inline `x^2` here", result.Content)
}

// TestConvertMath_BlockBeforeInline tests that the block pattern is
// evaluated first so nested inline math is not reprocessed
func TestConvertMath_BlockBeforeInline(t *testing.T) {
	result := convertMath("$$a + b$$ then $c$", optsWithMath(domain.MathConvert))
	assert.Equal(t, "```math\na + b\n``` then `c`", result.Content)
}

// TestConvertMath_Idempotent tests re-application detects nothing
func TestConvertMath_Idempotent(t *testing.T) {
	for _, policy := range []domain.MathPolicy{domain.MathRemove, domain.MathConvert} {
		once := convertMath("$$a$$ mid $b$ end", optsWithMath(policy))
		assert.False(t, detectMath(once.Content), string(policy))

		twice := convertMath(once.Content, optsWithMath(policy))
		assert.Equal(t, once.Content, twice.Content)
	}
}
