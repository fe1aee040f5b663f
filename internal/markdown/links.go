package markdown

import (
	"regexp"
	"strings"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// wikiLinkRe matches both link and image-embed forms; the optional
// leading "!" is inspected to tell them apart, since Go regexp has no
// lookbehind.
var wikiLinkRe = regexp.MustCompile(`!?\[\[([^\[\]\n]+)\]\]`)

// targetSanitiser rewrites a link target into a publishable filename.
var targetSanitiser = strings.NewReplacer(" ", "_", "/", "_")

func detectLinks(content string) bool {
	for _, m := range wikiLinkRe.FindAllString(content, -1) {
		if !strings.HasPrefix(m, "!") {
			return true
		}
	}
	return false
}

// convertLinks rewrites [[target]] and [[target|alias]] links.
// The alias, when present, always wins as display text.
func convertLinks(content string, opts domain.ConversionOptions) domain.ConversionResult {
	result := domain.ConversionResult{}

	result.Content = wikiLinkRe.ReplaceAllStringFunc(content, func(match string) string {
		if strings.HasPrefix(match, "!") {
			return match // image embed, not ours
		}

		inner := match[2 : len(match)-2]
		target, display := inner, inner
		if i := strings.Index(inner, "|"); i >= 0 {
			target = inner[:i]
			display = inner[i+1:]
		}

		var converted string
		switch opts.Mode {
		case domain.CompatModeStrict:
			converted = display
		case domain.CompatModePermissive:
			converted = "*" + display + "*"
		default:
			converted = "[" + display + "](" + targetSanitiser.Replace(target) + ".md)"
		}

		result.Changed = append(result.Changed, domain.ChangedElement{
			Original:  match,
			Converted: converted,
			Category:  CategoryLinks,
		})
		return converted
	})

	return result
}
