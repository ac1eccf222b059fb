// ABOUTME: Whoami command showing the current session
// ABOUTME: Prints the signed-in user or reports the logged-out state

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pratiksef/pratiksef/internal/session"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runWhoami(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami prints session state and returns exit code (1 when logged out).
func runWhoami(w io.Writer) int {
	sess := openSession()
	user, ok := sess.User()

	if IsJSONOutput() {
		fmt.Fprintln(w, formatWhoamiJSON(user, ok))
	} else {
		fmt.Fprintln(w, formatWhoamiHuman(user, ok))
	}

	if !ok {
		return 1
	}
	return 0
}

// formatWhoamiHuman formats session state for human readability
func formatWhoamiHuman(user session.User, authenticated bool) string {
	if !authenticated {
		return "Oturum açılmamış. `pratiksef login` ile giriş yapın."
	}
	name := user.Name
	if name == "" {
		name = "-"
	}
	return fmt.Sprintf(`Email: %s
Name:  %s
ID:    %s`, user.Email, name, user.ID)
}

// formatWhoamiJSON formats session state as JSON
func formatWhoamiJSON(user session.User, authenticated bool) string {
	output := map[string]any{
		"authenticated": authenticated,
	}
	if authenticated {
		output["user"] = user
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
