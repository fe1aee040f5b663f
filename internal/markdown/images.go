package markdown

import (
	"regexp"
	"strings"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// imageEmbedRe matches vault image embeds ![[target]].
var imageEmbedRe = regexp.MustCompile(`!\[\[([^\[\]\n]+)\]\]`)

func detectImages(content string) bool {
	return imageEmbedRe.MatchString(content)
}

// convertImages is a deliberate pass-through. Actual replacement is
// the publish orchestrator's job: each embed is uploaded to the image
// host and substituted with a standard image link before conversion.
// Detection still matters for the compatibility report.
func convertImages(content string, _ domain.ConversionOptions) domain.ConversionResult {
	return domain.ConversionResult{Content: content}
}

// ImageEmbeds returns the embed targets in source order, for the
// publish orchestrator's sequential upload pass.
func ImageEmbeds(content string) []string {
	var targets []string
	for _, m := range imageEmbedRe.FindAllStringSubmatch(content, -1) {
		targets = append(targets, m[1])
	}
	return targets
}

// ReplaceImageEmbed substitutes the first occurrence of the embed for
// the given target with the provided replacement text.
func ReplaceImageEmbed(content, target, replacement string) string {
	embed := "![[" + target + "]]"
	if i := strings.Index(content, embed); i >= 0 {
		return content[:i] + replacement + content[i+len(embed):]
	}
	return content
}
