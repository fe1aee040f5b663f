package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/notegist-labs/notegist-cli/internal/adapters/driven/storage/vault"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault and auto-sync published notes",
	Long: `Watches the vault directory for edits to published notes and keeps
their gists up to date.

Each edit arms a debounce timer; rapid edits collapse into one sync.
The delay scales with the API's remaining rate-limit budget, and
auto-sync disables itself when the budget runs critically low.
Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if autoSync == nil || noteStore == nil {
		return errors.New("auto-sync not configured")
	}

	if !autoSync.Enabled() {
		cmd.Println("Auto-sync is disabled in settings; enabling for this session.")
		if err := autoSync.Enable(cmd.Context(), true); err != nil {
			return err
		}
	}

	watcher, err := vault.NewWatcher(noteStore.Root(), autoSync)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", noteStore.Root())
	go watcher.Start(ctx)

	<-ctx.Done()

	cmd.Println("\nStopping...")
	stop()
	if err := watcher.Close(); err != nil {
		return err
	}
	autoSync.Stop()
	return nil
}
