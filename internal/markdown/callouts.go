package markdown

import (
	"regexp"
	"strings"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// calloutHeaderRe matches the first line of a callout block.
var calloutHeaderRe = regexp.MustCompile(`^>\s*\[!([A-Za-z-]+)\]\s*(.*)$`)

// calloutGlyphs maps callout types to their emoji. Unknown types fall
// back to calloutDefaultGlyph.
var calloutGlyphs = map[string]string{
	"note":     "📝",
	"abstract": "🗒️",
	"summary":  "🗒️",
	"info":     "ℹ️",
	"todo":     "✅",
	"tip":      "💡",
	"hint":     "💡",
	"success":  "✅",
	"question": "❓",
	"warning":  "⚠️",
	"caution":  "⚠️",
	"failure":  "❌",
	"danger":   "⚡",
	"error":    "⚡",
	"bug":      "🐛",
	"example":  "🔎",
	"quote":    "💬",
}

const calloutDefaultGlyph = "📌"

func detectCallouts(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		if calloutHeaderRe.MatchString(line) {
			return true
		}
	}
	return false
}

// convertCallouts rewrites callout header lines to a quoted bold title
// prefixed with the type glyph. Quoted continuation lines are
// preserved verbatim. Strict mode differs only in omitting the glyph.
func convertCallouts(content string, opts domain.ConversionOptions) domain.ConversionResult {
	result := domain.ConversionResult{}
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		m := calloutHeaderRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		typ := strings.ToLower(m[1])
		title := strings.TrimSpace(m[2])
		if title == "" {
			title = strings.ToUpper(typ[:1]) + typ[1:]
		}

		var converted string
		if opts.Mode == domain.CompatModeStrict {
			converted = "> **" + title + "**"
		} else {
			glyph, ok := calloutGlyphs[typ]
			if !ok {
				glyph = calloutDefaultGlyph
			}
			converted = "> " + glyph + " **" + title + "**"
		}

		result.Changed = append(result.Changed, domain.ChangedElement{
			Original:  line,
			Converted: converted,
			Category:  CategoryCallouts,
		})
		lines[i] = converted
	}

	result.Content = strings.Join(lines, "\n")
	return result
}
