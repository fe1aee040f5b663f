package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

var publishVerbose bool

var publishCmd = &cobra.Command{
	Use:   "publish <note>",
	Short: "Publish a note as a gist",
	Long: `Converts the note's markdown for plain renderers and publishes it.

On first publish a new gist is created and its identifier is written
into the note's frontmatter; subsequent publishes update that gist.
Image embeds are uploaded to the configured image host and replaced
with hosted URLs.`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().BoolVarP(
		&publishVerbose, "verbose", "v", false, "Print the full conversion changelog")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	if publisher == nil {
		return errors.New("publisher not configured")
	}

	notePath := args[0]
	outcome, err := publisher.Publish(cmd.Context(), notePath)
	if err != nil {
		return publishError(notePath, err)
	}

	switch outcome.Mode {
	case domain.PublishModeCreate:
		cmd.Printf("Created gist %s\n", outcome.SnippetID)
	default:
		cmd.Printf("Updated gist %s\n", outcome.SnippetID)
	}
	cmd.Printf("URL: %s\n", outcome.URL)

	printConversion(cmd, outcome.Conversion, publishVerbose)
	return nil
}

// printConversion reports warnings always and the changelog on demand.
func printConversion(cmd *cobra.Command, result domain.ConversionResult, verbose bool) {
	for _, w := range result.Warnings {
		cmd.Printf("Warning: %s\n", w)
	}

	if !verbose {
		if n := len(result.Changed); n > 0 {
			cmd.Printf("%d elements converted (use --verbose for details)\n", n)
		}
		if n := len(result.Removed); n > 0 {
			cmd.Printf("%d elements removed\n", n)
		}
		return
	}

	for _, c := range result.Changed {
		cmd.Printf("  [%s] %q -> %q\n", c.Category, c.Original, c.Converted)
	}
	for _, r := range result.Removed {
		cmd.Printf("  removed: %q\n", r)
	}
}

// publishError maps domain sentinels onto actionable messages.
func publishError(notePath string, err error) error {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		return fmt.Errorf("%w: run 'notegist auth token' first", err)
	case errors.Is(err, domain.ErrNotPublished):
		return fmt.Errorf("%s has no gist-id: %w", notePath, err)
	case errors.Is(err, domain.ErrRateLimited):
		return fmt.Errorf("API rate limit exhausted, try again later: %w", err)
	case errors.Is(err, domain.ErrPublishInProgress):
		return fmt.Errorf("%s is already being published: %w", notePath, err)
	default:
		return err
	}
}
