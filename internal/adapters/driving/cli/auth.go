package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage API credentials",
	Long: `Configure the GitHub personal access token used for gist publishing
and the optional image host client ID for anonymous image uploads.

The token needs the "gist" scope only.`,
	RunE: runAuthShow,
}

var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configured credentials (masked)",
	RunE:  runAuthShow,
}

var authTokenCmd = &cobra.Command{
	Use:   "token [token]",
	Short: "Set the gist API token",
	Long: `Stores the personal access token. When no argument is given the
token is read from the terminal without echo.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuthToken,
}

var authImageHostCmd = &cobra.Command{
	Use:   "imagehost <client-id>",
	Short: "Set the image host client ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuthImageHost,
}

func init() {
	authCmd.AddCommand(authShowCmd)
	authCmd.AddCommand(authTokenCmd)
	authCmd.AddCommand(authImageHostCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	if settings.Auth.Token == "" {
		cmd.Println("API token: (not set)")
	} else {
		cmd.Printf("API token: %s\n", maskSecret(settings.Auth.Token))
	}
	if settings.Auth.ImageHostClientID == "" {
		cmd.Println("Image host client ID: (not set)")
	} else {
		cmd.Printf("Image host client ID: %s\n", maskSecret(settings.Auth.ImageHostClientID))
	}
	return nil
}

func runAuthToken(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var token string
	if len(args) == 1 {
		token = args[0]
	} else {
		cmd.Print("Token: ")
		token = readSecret()
		cmd.Println()
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("empty token: %w", domain.ErrValidation)
	}

	if _, err := settingsService.Update(func(s *domain.AppSettings) {
		s.Auth.Token = token
	}); err != nil {
		return err
	}

	cmd.Println("Token saved.")
	return nil
}

func runAuthImageHost(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if _, err := settingsService.Update(func(s *domain.AppSettings) {
		s.Auth.ImageHostClientID = args[0]
	}); err != nil {
		return err
	}

	cmd.Println("Image host client ID saved.")
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readSecret() string {
	// Read without echo when attached to a terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(secret)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
