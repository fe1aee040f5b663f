package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure conversion policies, publication preferences and
the auto-sync scheduler.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsModeCmd = &cobra.Command{
	Use:   "mode <mode>",
	Short: "Set the compatibility mode",
	Long: `Set how aggressively vault-specific markdown is rewritten.

Available modes:
  native-preserve - keep what the gist renderer supports (tags, mermaid)
  permissive      - rewrite everything into readable approximations
  strict          - strip extensions down to their display text`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsMode,
}

var settingsMathCmd = &cobra.Command{
	Use:   "math <policy>",
	Short: "Set the math policy (remove, convert, preserve)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsMath,
}

var settingsPluginsCmd = &cobra.Command{
	Use:   "plugins <policy>",
	Short: "Set the plugin-block policy (remove, convert)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsPlugins,
}

var settingsTagsCmd = &cobra.Command{
	Use:   "tags <format>",
	Short: "Set the tag output format (code, bold, plain)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTags,
}

var settingsPublicCmd = &cobra.Command{
	Use:   "public <on|off>",
	Short: "Publish gists publicly or as secret",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsPublic,
}

var settingsAutoSyncCmd = &cobra.Command{
	Use:   "autosync <on|off>",
	Short: "Enable or disable the auto-sync scheduler",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsAutoSync,
}

var settingsDelayCmd = &cobra.Command{
	Use:   "delay <seconds>",
	Short: "Set the auto-sync base debounce delay",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDelay,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsModeCmd)
	settingsCmd.AddCommand(settingsMathCmd)
	settingsCmd.AddCommand(settingsPluginsCmd)
	settingsCmd.AddCommand(settingsTagsCmd)
	settingsCmd.AddCommand(settingsPublicCmd)
	settingsCmd.AddCommand(settingsAutoSyncCmd)
	settingsCmd.AddCommand(settingsDelayCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Conversion]")
	cmd.Printf("  Mode: %s\n", settings.Conversion.Mode.Description())
	cmd.Printf("  Math: %s\n", settings.Conversion.Math)
	cmd.Printf("  Plugins: %s\n", settings.Conversion.Plugins)
	cmd.Printf("  Tags: %s\n", settings.Conversion.Tags)
	cmd.Println()

	cmd.Println("[Publish]")
	cmd.Printf("  Public: %s\n", onOff(settings.Publish.Public))
	cmd.Printf("  Include frontmatter: %s\n", onOff(settings.Publish.IncludeFrontmatter))
	cmd.Println()

	cmd.Println("[Auto-sync]")
	cmd.Printf("  Enabled: %s\n", onOff(settings.AutoSync.Enabled))
	cmd.Printf("  Base delay: %s\n", settings.AutoSync.BaseDelay)
	cmd.Printf("  Emergency threshold: %d requests\n", settings.AutoSync.EmergencyThreshold)
	cmd.Printf("  Verbosity: %s\n", settings.AutoSync.Verbosity)

	return nil
}

func runSettingsMode(cmd *cobra.Command, args []string) error {
	return updateSetting(cmd, fmt.Sprintf("Compatibility mode set to %s.", args[0]),
		func(s *domain.AppSettings) { s.Conversion.Mode = domain.CompatMode(args[0]) })
}

func runSettingsMath(cmd *cobra.Command, args []string) error {
	return updateSetting(cmd, fmt.Sprintf("Math policy set to %s.", args[0]),
		func(s *domain.AppSettings) { s.Conversion.Math = domain.MathPolicy(args[0]) })
}

func runSettingsPlugins(cmd *cobra.Command, args []string) error {
	return updateSetting(cmd, fmt.Sprintf("Plugin policy set to %s.", args[0]),
		func(s *domain.AppSettings) { s.Conversion.Plugins = domain.PluginPolicy(args[0]) })
}

func runSettingsTags(cmd *cobra.Command, args []string) error {
	return updateSetting(cmd, fmt.Sprintf("Tag format set to %s.", args[0]),
		func(s *domain.AppSettings) { s.Conversion.Tags = domain.TagFormat(args[0]) })
}

func runSettingsPublic(cmd *cobra.Command, args []string) error {
	on, err := parseOnOff(args[0])
	if err != nil {
		return err
	}
	return updateSetting(cmd, fmt.Sprintf("Public publishing %s.", onOff(on)),
		func(s *domain.AppSettings) { s.Publish.Public = on })
}

func runSettingsAutoSync(cmd *cobra.Command, args []string) error {
	on, err := parseOnOff(args[0])
	if err != nil {
		return err
	}

	// Route through the scheduler when wired so pending timers are
	// cancelled alongside the persisted switch.
	if autoSync != nil {
		if err := autoSync.Enable(cmd.Context(), on); err != nil {
			return err
		}
		cmd.Printf("Auto-sync %s.\n", onOff(on))
		return nil
	}

	return updateSetting(cmd, fmt.Sprintf("Auto-sync %s.", onOff(on)),
		func(s *domain.AppSettings) { s.AutoSync.Enabled = on })
}

func runSettingsDelay(cmd *cobra.Command, args []string) error {
	seconds, err := strconv.Atoi(args[0])
	if err != nil || seconds <= 0 {
		return fmt.Errorf("delay must be a positive number of seconds: %w", domain.ErrValidation)
	}
	return updateSetting(cmd, fmt.Sprintf("Base delay set to %ds.", seconds),
		func(s *domain.AppSettings) { s.AutoSync.BaseDelay = time.Duration(seconds) * time.Second })
}

// Helper functions.

func updateSetting(cmd *cobra.Command, confirmation string, mutate func(*domain.AppSettings)) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if _, err := settingsService.Update(mutate); err != nil {
		return err
	}
	cmd.Println(confirmation)
	return nil
}

func parseOnOff(value string) (bool, error) {
	switch value {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q: %w", value, domain.ErrValidation)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
