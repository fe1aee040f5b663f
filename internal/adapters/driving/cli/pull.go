package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull <note>",
	Short: "Pull remote gist content back into a note",
	Long: `Overwrites the local note body with the published gist content.

Local frontmatter is preserved and a gist-pulled-at timestamp is
stamped into it. The note must already carry a gist-id.`,
	Args: cobra.ExactArgs(1),
	RunE: runPull,
}

func init() {
	rootCmd.AddCommand(pullCmd)
}

func runPull(cmd *cobra.Command, args []string) error {
	if publisher == nil {
		return errors.New("publisher not configured")
	}

	notePath := args[0]
	if err := publisher.Pull(cmd.Context(), notePath); err != nil {
		return publishError(notePath, err)
	}

	cmd.Printf("Pulled remote content into %s\n", notePath)
	return nil
}
