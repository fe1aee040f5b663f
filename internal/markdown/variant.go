package markdown

import (
	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// Variant is one recognisable syntax extension category: a cheap
// existence detector paired with a policy-driven converter.
type Variant struct {
	// Name identifies the category in reports and audit trails.
	Name string

	// Description is the human-readable category summary.
	Description string

	// Recommendation is the fixed analyzer text emitted when the
	// category is detected.
	Recommendation string

	// Detect reports whether the category is present. It must be
	// cheap; no capture work happens here.
	Detect func(content string) bool

	// Convert rewrites the category's occurrences according to the
	// supplied options.
	Convert func(content string, opts domain.ConversionOptions) domain.ConversionResult

	// Enabled reports whether this category is switched on in the
	// given toggles.
	Enabled func(t domain.CategoryToggles) bool
}

// Category names, in registry order.
const (
	CategoryLinks    = "internal-links"
	CategoryImages   = "image-embeds"
	CategoryTags     = "tags"
	CategoryCallouts = "callouts"
	CategoryMath     = "math"
	CategoryPlugins  = "plugin-blocks"
	CategoryComments = "comments"
)

// Registry returns the closed, ordered variant list. The sequence is a
// contract: structural rewrites first, content-bearing ones last.
func Registry() []Variant {
	return []Variant{
		{
			Name:           CategoryLinks,
			Description:    "Internal wiki-style links [[target]] and [[target|alias]]",
			Recommendation: "Internal links will be rewritten; link targets must exist as published files to resolve.",
			Detect:         detectLinks,
			Convert:        convertLinks,
			Enabled:        func(t domain.CategoryToggles) bool { return t.Links },
		},
		{
			Name:           CategoryImages,
			Description:    "Image embeds ![[target]]",
			Recommendation: "Image embeds are replaced during publish by uploading each image to the image host.",
			Detect:         detectImages,
			Convert:        convertImages,
			Enabled:        func(t domain.CategoryToggles) bool { return t.Images },
		},
		{
			Name:           CategoryTags,
			Description:    "Inline #tags",
			Recommendation: "Inline tags will be reformatted; tags at the start of a line are left alone.",
			Detect:         detectTags,
			Convert:        convertTags,
			Enabled:        func(t domain.CategoryToggles) bool { return t.Tags },
		},
		{
			Name:           CategoryCallouts,
			Description:    "Callout blocks > [!type] Title",
			Recommendation: "Callouts will be rewritten as quoted bold titles with a type glyph.",
			Detect:         detectCallouts,
			Convert:        convertCallouts,
			Enabled:        func(t domain.CategoryToggles) bool { return t.Callouts },
		},
		{
			Name:           CategoryMath,
			Description:    "Inline $...$ and block $$...$$ math",
			Recommendation: "Math expressions are handled per the math policy; the target renderer has no native math support.",
			Detect:         detectMath,
			Convert:        convertMath,
			Enabled:        func(t domain.CategoryToggles) bool { return t.Math },
		},
		{
			Name:           CategoryPlugins,
			Description:    "Embedded plugin code blocks (diagrams, queries, admonitions)",
			Recommendation: "Plugin blocks are handled per the plugin policy; diagram blocks render natively and are kept under native-preserve.",
			Detect:         detectPlugins,
			Convert:        convertPlugins,
			Enabled:        func(t domain.CategoryToggles) bool { return t.Plugins },
		},
		{
			Name:           CategoryComments,
			Description:    "Inline comments %%text%%",
			Recommendation: "Inline comments are hidden or removed; they are not meant for published output.",
			Detect:         detectComments,
			Convert:        convertComments,
			Enabled:        func(t domain.CategoryToggles) bool { return t.Comments },
		},
	}
}

// TotalCategories is the size of the closed variant set.
func TotalCategories() int {
	return len(Registry())
}
