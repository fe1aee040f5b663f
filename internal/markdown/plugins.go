package markdown

import (
	"regexp"
	"strings"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// pluginBlockRe matches fenced code blocks carrying a plugin language
// tag: diagram blocks, query blocks, and admonition-style blocks.
var pluginBlockRe = regexp.MustCompile("(?s)```(mermaid|query|dataview|ad-[a-z]+)[ \t]*\n(.*?)```")

func detectPlugins(content string) bool {
	return pluginBlockRe.MatchString(content)
}

// pluginLabel describes a plugin block for the labelled replacement
// fence.
func pluginLabel(lang string) string {
	switch {
	case lang == "mermaid":
		return "Mermaid diagram"
	case lang == "query":
		return "Embedded query"
	case lang == "dataview":
		return "Dataview query"
	case strings.HasPrefix(lang, "ad-"):
		return "Admonition (" + strings.TrimPrefix(lang, "ad-") + ")"
	default:
		return "Plugin block"
	}
}

// convertPlugins applies the plugin-content policy. Under
// native-preserve, diagram blocks are left completely untouched (the
// target renderer supports them) while every other plugin block is
// still converted; the asymmetry is intentional.
func convertPlugins(content string, opts domain.ConversionOptions) domain.ConversionResult {
	result := domain.ConversionResult{}

	result.Content = pluginBlockRe.ReplaceAllStringFunc(content, func(match string) string {
		sub := pluginBlockRe.FindStringSubmatch(match)
		lang, inner := sub[1], sub[2]

		if lang == "mermaid" && opts.Mode == domain.CompatModeNative {
			return match
		}

		isAdmonition := strings.HasPrefix(lang, "ad-")

		if opts.Plugins == domain.PluginRemove {
			if isAdmonition {
				// Keep the admonition's inner content, unfenced.
				converted := strings.TrimRight(inner, "\n")
				result.Changed = append(result.Changed, domain.ChangedElement{
					Original:  match,
					Converted: converted,
					Category:  CategoryPlugins,
				})
				return converted
			}
			result.Removed = append(result.Removed, pluginLabel(lang)+" block removed")
			return ""
		}

		converted := "**" + pluginLabel(lang) + ":**\n\n```\n" + strings.TrimRight(inner, "\n") + "\n```"
		result.Changed = append(result.Changed, domain.ChangedElement{
			Original:  match,
			Converted: converted,
			Category:  CategoryPlugins,
		})
		return converted
	})

	return result
}
