package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyKeep  int
)

var historyCmd = &cobra.Command{
	Use:   "history [note]",
	Short: "Show publish history",
	Long: `Lists recorded publishes, newest first. With a note argument only
that note's history is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Trim history to the newest entries per note",
	RunE:  runHistoryPrune,
}

func init() {
	historyCmd.Flags().IntVarP(
		&historyLimit, "limit", "n", 20, "Maximum entries to show")
	historyPruneCmd.Flags().IntVar(
		&historyKeep, "keep", 10, "Entries to keep per note")
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyStore == nil {
		return errors.New("history store not configured")
	}

	notePath := ""
	if len(args) == 1 {
		notePath = args[0]
	}

	records, err := historyStore.List(cmd.Context(), notePath, historyLimit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		cmd.Println("No publish history.")
		return nil
	}

	for _, r := range records {
		warnings := ""
		if r.WarningCount > 0 {
			warnings = " !"
		}
		cmd.Printf("%s  %-6s  %-30s  %s%s\n",
			r.PublishedAt.Local().Format("2006-01-02 15:04"),
			r.Mode, r.NotePath, r.SnippetID, warnings)
	}
	return nil
}

func runHistoryPrune(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("history store not configured")
	}

	if err := historyStore.Prune(cmd.Context(), historyKeep); err != nil {
		return err
	}
	cmd.Printf("History pruned to %d entries per note.\n", historyKeep)
	return nil
}
