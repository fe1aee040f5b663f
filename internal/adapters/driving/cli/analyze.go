package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <note>",
	Short: "Report a note's renderer compatibility",
	Long: `Scans the note for vault-specific markdown extensions and prints a
compatibility score with per-category recommendations. The note is
not modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if publisher == nil {
		return errors.New("publisher not configured")
	}

	report, err := publisher.Analyze(cmd.Context(), args[0])
	if err != nil {
		return publishError(args[0], err)
	}

	cmd.Printf("Compatibility score: %d/100\n", report.Score)

	if len(report.DetectedCategories) == 0 {
		cmd.Println("No vault-specific extensions detected.")
		return nil
	}

	cmd.Println()
	cmd.Println("Detected extensions:")
	for i, category := range report.DetectedCategories {
		cmd.Printf("  %-16s %s\n", category, report.Recommendations[i])
	}
	return nil
}
