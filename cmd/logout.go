// ABOUTME: Logout command clearing the stored session
// ABOUTME: Removes the persisted token and user profile

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		runLogout(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(w io.Writer) {
	sess := openSession()
	sess.Logout()
	fmt.Fprintln(w, "Oturum kapatıldı.")
}
