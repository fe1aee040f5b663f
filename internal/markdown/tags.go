package markdown

import (
	"regexp"
	"strings"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// tagTokenRe matches an inline tag token.
var tagTokenRe = regexp.MustCompile(`#[A-Za-z][0-9A-Za-z_/-]*`)

// convertibleTagSpans returns the index pairs of tag tokens on a line
// that qualify for conversion. A token at the very start of the line
// after trimming is skipped: it collides with heading markers. The
// trim also strips blockquote markers, so a quoted heading line keeps
// its leading token untouched as well.
func convertibleTagSpans(line string) [][]int {
	leading := len(line) - len(strings.TrimLeft(line, " \t>"))

	var spans [][]int
	for _, m := range tagTokenRe.FindAllStringIndex(line, -1) {
		if m[0] == leading {
			continue
		}
		if m[0] > 0 {
			prev := line[m[0]-1]
			if prev != ' ' && prev != '\t' {
				continue // '#' glued to a word or URL fragment
			}
		}
		spans = append(spans, m)
	}
	return spans
}

func detectTags(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if len(convertibleTagSpans(line)) > 0 {
			return true
		}
	}
	return false
}

// convertTags rewrites qualifying inline tags. Under native-preserve
// the renderer already understands tags, so content is untouched and a
// single explanatory warning is emitted instead.
func convertTags(content string, opts domain.ConversionOptions) domain.ConversionResult {
	if opts.Mode == domain.CompatModeNative {
		return domain.ConversionResult{
			Content:  content,
			Warnings: []string{"inline tags were left unchanged: the target renderer supports them"},
		}
	}

	result := domain.ConversionResult{}
	lines := strings.Split(content, "\n")

	for li, line := range lines {
		spans := convertibleTagSpans(line)
		if len(spans) == 0 {
			continue
		}

		// Rewrite right-to-left so earlier spans stay valid.
		for i := len(spans) - 1; i >= 0; i-- {
			start, end := spans[i][0], spans[i][1]
			token := line[start:end]
			name := token[1:]

			var converted string
			if opts.Mode == domain.CompatModeStrict {
				converted = ""
				result.Removed = append(result.Removed, "tag "+token)
			} else {
				switch opts.Tags {
				case domain.TagFormatBold:
					converted = "**" + name + "**"
				case domain.TagFormatPlain:
					converted = name
				default:
					converted = "`" + name + "`"
				}
				result.Changed = append(result.Changed, domain.ChangedElement{
					Original:  token,
					Converted: converted,
					Category:  CategoryTags,
				})
			}

			line = line[:start] + converted + line[end:]
		}
		lines[li] = line
	}

	result.Content = strings.Join(lines, "\n")
	return result
}
