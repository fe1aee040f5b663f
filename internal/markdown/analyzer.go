package markdown

import (
	"math"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

// Analyze runs every detector over a note body and produces the
// compatibility report. It is read-only and never mutates content;
// category toggles do not apply here because the report describes what
// is present, not what would be converted.
//
// Score treats absence of any given known extension as compatibility:
// round(100 * (total - detected) / total), floored at zero.
func Analyze(body string) domain.CompatibilityReport {
	variants := Registry()
	report := domain.CompatibilityReport{}

	for _, v := range variants {
		if !v.Detect(body) {
			continue
		}
		report.DetectedCategories = append(report.DetectedCategories, v.Name)
		report.Recommendations = append(report.Recommendations, v.Recommendation)
	}

	total := len(variants)
	detected := len(report.DetectedCategories)
	score := int(math.Round(100 * float64(total-detected) / float64(total)))
	if score < 0 {
		score = 0
	}
	report.Score = score

	return report
}
