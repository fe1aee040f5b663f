package markdown

import (
	"regexp"
	"strings"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// commentRe matches vault inline comments %%text%%.
var commentRe = regexp.MustCompile(`(?s)%%(.+?)%%`)

func detectComments(content string) bool {
	return commentRe.MatchString(content)
}

// convertComments rewrites %%text%% comments: deleted under strict,
// hidden as HTML comments under native-preserve (the data survives),
// and surfaced as a bracketed italic annotation under permissive.
func convertComments(content string, opts domain.ConversionOptions) domain.ConversionResult {
	result := domain.ConversionResult{}

	result.Content = commentRe.ReplaceAllStringFunc(content, func(match string) string {
		inner := strings.TrimSpace(match[2 : len(match)-2])

		switch opts.Mode {
		case domain.CompatModeStrict:
			result.Removed = append(result.Removed, "comment: "+truncate(inner, 40))
			return ""
		case domain.CompatModePermissive:
			converted := "*[" + inner + "]*"
			result.Changed = append(result.Changed, domain.ChangedElement{
				Original:  match,
				Converted: converted,
				Category:  CategoryComments,
			})
			return converted
		default:
			converted := "<!-- " + inner + " -->"
			result.Changed = append(result.Changed, domain.ChangedElement{
				Original:  match,
				Converted: converted,
				Category:  CategoryComments,
			})
			return converted
		}
	})

	return result
}
