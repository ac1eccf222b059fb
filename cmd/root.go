// ABOUTME: Root command for the pratiksef CLI
// ABOUTME: Handles global flags, session wiring, and launching the TUI

package cmd

import (
	"os"

	"github.com/pratiksef/pratiksef/internal/client"
	"github.com/pratiksef/pratiksef/internal/session"
	"github.com/pratiksef/pratiksef/internal/tui"
	"github.com/spf13/cobra"
)

var (
	apiURL      string
	sessionFile string
	jsonOutput  bool
)

// rootCmd is the base command; running it without a subcommand starts the
// interactive TUI, the terminal rendition of the mobile app.
var rootCmd = &cobra.Command{
	Use:   "pratiksef",
	Short: "Terminal client for Pratik Şef",
	Long: `pratiksef is a terminal client for the Pratik Şef recipe service.

Describe the ingredients you have and get an AI-generated recipe, then save,
list, and regenerate recipes from your kitchen terminal.

Environment Variables:
  PRATIKSEF_API_URL  Recipe API base URL (required; no default)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := openSession()
		return tui.Run(client.New(GetAPIURL(), sess), sess)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Recipe API base URL (overrides PRATIKSEF_API_URL)")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", "", "Session file path (default: XDG config dir)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag or environment. Empty means not
// configured; the client reports that as a configuration error.
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	return os.Getenv("PRATIKSEF_API_URL")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// openSession builds the session manager and restores any persisted session.
func openSession() *session.Manager {
	path := sessionFile
	if path == "" {
		path = session.DefaultPath()
	}
	sess := session.NewManager(path)
	sess.Restore()
	return sess
}

// newClient wires an API client against the restored session.
func newClient() (*client.Client, *session.Manager) {
	sess := openSession()
	return client.New(GetAPIURL(), sess), sess
}
