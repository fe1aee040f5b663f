package markdown

import (
	"regexp"
	"strings"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

var (
	// blockMathRe matches $$...$$ across lines.
	blockMathRe = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)

	// inlineMathRe matches $...$ within a single line.
	inlineMathRe = regexp.MustCompile(`\$([^$\n]+)\$`)
)

func detectMath(content string) bool {
	return blockMathRe.MatchString(content) || inlineMathRe.MatchString(content)
}

// convertMath applies the math policy. The block pattern runs first
// over the incoming text and the inline pattern afterwards over the
// partially rewritten text, so inline math nested inside an already
// converted block is not reprocessed.
func convertMath(content string, opts domain.ConversionOptions) domain.ConversionResult {
	if opts.Math == domain.MathPreserve {
		return domain.ConversionResult{Content: content}
	}

	result := domain.ConversionResult{}

	content = blockMathRe.ReplaceAllStringFunc(content, func(match string) string {
		inner := strings.TrimSpace(match[2 : len(match)-2])

		if opts.Math == domain.MathRemove {
			result.Removed = append(result.Removed, "block math expression: "+truncate(inner, 40))
			return ""
		}

		converted := "```math\n" + inner + "\n```"
		result.Changed = append(result.Changed, domain.ChangedElement{
			Original:  match,
			Converted: converted,
			Category:  CategoryMath,
		})
		return converted
	})

	content = inlineMathRe.ReplaceAllStringFunc(content, func(match string) string {
		inner := match[1 : len(match)-1]

		var converted string
		if opts.Math == domain.MathRemove {
			converted = inner
		} else {
			// Inline expressions cannot carry a fence label without
			// breaking the line; inline code is the closest form.
			converted = "`" + inner + "`"
		}

		result.Changed = append(result.Changed, domain.ChangedElement{
			Original:  match,
			Converted: converted,
			Category:  CategoryMath,
		})
		return converted
	})

	result.Content = content
	return result
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
