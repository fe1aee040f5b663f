// Package cli implements the notegist command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notegist-labs/notegist-cli/internal/adapters/driven/config/file"
	"github.com/notegist-labs/notegist-cli/internal/adapters/driven/storage/sqlite"
	"github.com/notegist-labs/notegist-cli/internal/adapters/driven/storage/vault"
	"github.com/notegist-labs/notegist-cli/internal/connectors/gist"
	"github.com/notegist-labs/notegist-cli/internal/connectors/imagehost"
	"github.com/notegist-labs/notegist-cli/internal/core/domain"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driven"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driving"
	"github.com/notegist-labs/notegist-cli/internal/core/services"
	"github.com/notegist-labs/notegist-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by initServices and consumed by the commands. Nil
// checks in each RunE keep unit tests free of full wiring.
var (
	settingsService driving.SettingsService
	publisher       driving.Publisher
	autoSync        driving.AutoSync
	noteStore       *vault.NoteStore
	historyStore    driven.HistoryStore
	metaStore       *sqlite.Store
	gistClient      *gist.Client
)

// Persistent flags.
var (
	flagVault     string
	flagConfigDir string
	flagVerbosity string
)

var rootCmd = &cobra.Command{
	Use:   "notegist",
	Short: "Publish Obsidian notes as shareable gists",
	Long: `notegist converts Obsidian-flavoured markdown into plain
renderer-compatible markdown and publishes it to the GitHub Gist API.

Wiki links, image embeds, tags, callouts, math, plugin blocks and
comments are rewritten according to the configured compatibility mode.
An adaptive scheduler can keep published notes in sync as you edit,
backing off as the API rate-limit budget shrinks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		return initServices(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&flagVault, "vault", ".", "Vault root directory")
	rootCmd.PersistentFlags().StringVar(
		&flagConfigDir, "config-dir", "", "Config directory (default ~/.notegist)")
	rootCmd.PersistentFlags().StringVar(
		&flagVerbosity, "verbosity", "", "Output verbosity: all, errors, none")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initServices wires the adapters behind the port interfaces. Wiring
// failures surface as command errors, not panics.
func initServices(cmd *cobra.Command) error {
	if settingsService != nil {
		return nil // already wired (tests inject their own)
	}

	settingsStore, err := file.NewSettingsStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}
	settingsService = services.NewSettingsService(settingsStore)

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	verbosity := settings.AutoSync.Verbosity
	if flagVerbosity != "" {
		verbosity = domain.Verbosity(flagVerbosity)
		if !verbosity.IsValid() {
			return fmt.Errorf("verbosity %q: %w", flagVerbosity, domain.ErrValidation)
		}
	}
	logger.SetVerbosity(verbosity)

	noteStore, err = vault.NewNoteStore(flagVault)
	if err != nil {
		return err
	}

	metaStore, err = sqlite.NewStore(dataDir())
	if err != nil {
		return fmt.Errorf("opening history store: %w", err)
	}
	historyStore = metaStore.HistoryStore()

	gistClient = gist.NewClient(cmd.Context(), settings.Auth.Token)
	imageHost := imagehost.NewClient(imagehost.Config{
		ClientID: settings.Auth.ImageHostClientID,
	})

	publisher = services.NewPublishOrchestrator(
		noteStore, gistClient, imageHost, settingsService, historyStore)
	autoSync = services.NewSyncScheduler(
		publisher, noteStore, settingsService, gistClient.Tracker())

	return nil
}

// dataDir derives the SQLite data directory from the config dir flag.
func dataDir() string {
	if flagConfigDir == "" {
		return "" // store falls back to ~/.notegist/data
	}
	return flagConfigDir + string(os.PathSeparator) + "data"
}
