package markdown

import (
	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// Pipeline runs the variant converters over a note body.
// It holds the registry so tests can run against a reduced set.
type Pipeline struct {
	variants []Variant
}

// NewPipeline creates a pipeline over the full variant registry.
func NewPipeline() *Pipeline {
	return &Pipeline{variants: Registry()}
}

// Convert runs converters for every currently-detected, enabled
// category, folding each converter's output into one accumulated
// result. Detection is re-evaluated against the progressively
// rewritten content, not the original input, so a pattern that only
// appears as a byproduct of an earlier rewrite is still caught.
func (p *Pipeline) Convert(body string, opts domain.ConversionOptions) domain.ConversionResult {
	result := domain.ConversionResult{Content: body}

	for _, v := range p.variants {
		if !v.Enabled(opts.Enabled) {
			continue
		}
		if !v.Detect(result.Content) {
			continue
		}
		result.Merge(v.Convert(result.Content, opts))
	}

	return result
}
