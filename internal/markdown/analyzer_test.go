package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAnalyze_Score tests the score formula at its boundaries
func TestAnalyze_Score(t *testing.T) {
	t.Run("nothing detected scores 100", func(t *testing.T) {
		report := Analyze("perfectly plain markdown")
		assert.Empty(t, report.DetectedCategories)
		assert.Equal(t, 100, report.Score)
	})

	t.Run("everything detected scores 0", func(t *testing.T) {
		body := "[[link]] ![[img.png]] has #tag inline\n" +
			"> [!note] T\n" +
			"$x$\n" +
			"```dataview\nQ\n```\n" +
			"%%c%%\n"
		report := Analyze(body)
		assert.Len(t, report.DetectedCategories, TotalCategories())
		assert.Equal(t, 0, report.Score)
	})

	t.Run("one of seven detected", func(t *testing.T) {
		report := Analyze("just a [[link]]")
		assert.Equal(t, []string{CategoryLinks}, report.DetectedCategories)
		// round(100 * 6/7) = 86
		assert.Equal(t, 86, report.Score)
	})
}

// TestAnalyze_RegistryOrder tests that categories and recommendations
// follow registry order, not detection order
func TestAnalyze_RegistryOrder(t *testing.T) {
	// Comments appear before links in the text; the report must still
	// list links first.
	report := Analyze("%%aside%% then [[link]]")

	assert.Equal(t, []string{CategoryLinks, CategoryComments}, report.DetectedCategories)
	assert.Len(t, report.Recommendations, 2)
}

// TestAnalyze_ReadOnly tests the analyzer never mutates content
func TestAnalyze_ReadOnly(t *testing.T) {
	body := "[[link]] and #tag inline"
	Analyze(body)
	assert.Equal(t, "[[link]] and #tag inline", body)
}

// TestAnalyze_OneRecommendationPerCategory tests the fixed mapping
func TestAnalyze_OneRecommendationPerCategory(t *testing.T) {
	report := Analyze("[[a]] [[b]] [[c]]")
	assert.Len(t, report.Recommendations, 1)
}
