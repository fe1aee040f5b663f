package domain

// ChangedElement is one before/after pair in the conversion audit trail.
type ChangedElement struct {
	// Original is the source text that was rewritten.
	Original string

	// Converted is the replacement text.
	Converted string

	// Category tags which variant produced the change.
	Category string
}

// ConversionResult accumulates the outcome of a conversion pass.
// Converters fold their output into an existing result; fields are
// appended to, never replaced.
type ConversionResult struct {
	// Content is the rewritten document body.
	Content string

	// Warnings are human-readable notes about the conversion.
	Warnings []string

	// Removed describes elements deleted from the output.
	Removed []string

	// Changed is the before/after audit trail.
	Changed []ChangedElement
}

// Merge folds another result's accumulated lists into this one and
// adopts its content. The receiver is returned for chaining.
func (r *ConversionResult) Merge(other ConversionResult) *ConversionResult {
	r.Content = other.Content
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Removed = append(r.Removed, other.Removed...)
	r.Changed = append(r.Changed, other.Changed...)
	return r
}

// CompatibilityReport is the read-only analysis of a note body.
type CompatibilityReport struct {
	// DetectedCategories lists detected variant names in registry order.
	DetectedCategories []string

	// Score is 0-100: round(100 * (total - detected) / total), floored
	// at zero. Absence of known extensions counts as compatibility.
	Score int

	// Recommendations holds one fixed recommendation per detected
	// category, in registry order.
	Recommendations []string
}
