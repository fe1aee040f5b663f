package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/notegist-labs/notegist-cli/internal/markdown"
	"github.com/notegist-labs/notegist-cli/internal/markdown/frontmatter"
)

var (
	previewOutput string
	previewHTML   bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <note>",
	Short: "Preview the converted note without publishing",
	Long: `Runs the conversion pipeline over the note and prints the result.

With --html the converted markdown is additionally rendered to HTML
through a GitHub-flavoured renderer, approximating how the published
gist will display. Nothing is uploaded.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(
		&previewOutput, "output", "o", "", "Write output to a file instead of stdout")
	previewCmd.Flags().BoolVar(
		&previewHTML, "html", false, "Render the converted markdown to HTML")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if noteStore == nil || settingsService == nil {
		return errors.New("services not configured")
	}

	note, err := noteStore.Read(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	fm := frontmatter.Split(note.Content)
	result := markdown.NewPipeline().Convert(fm.Body, settings.Conversion)

	for _, w := range result.Warnings {
		cmd.PrintErrf("Warning: %s\n", w)
	}

	output := result.Content
	if previewHTML {
		output, err = renderHTML(result.Content)
		if err != nil {
			return err
		}
	}

	if previewOutput != "" {
		if err := os.WriteFile(previewOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("writing preview: %w", err)
		}
		cmd.Printf("Preview written to %s\n", previewOutput)
		return nil
	}

	cmd.Print(output)
	return nil
}

// renderHTML converts markdown to an HTML fragment with GFM
// extensions, matching the gist renderer's table and strikethrough
// support.
func renderHTML(source string) (string, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.String(), nil
}
