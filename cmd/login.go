// ABOUTME: Login command implementing the passwordless email+code flow
// ABOUTME: Requests a one-time code, then verifies it to establish a session

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pratiksef/pratiksef/internal/client"
	"github.com/spf13/cobra"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with an emailed one-time code",
	Long: `Sign in to Pratik Şef.

A one-time code is sent to your email address; entering it here establishes
a session that other commands use until you log out.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdin, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address to sign in with")
}

// runLogin executes the two-step login flow and returns exit code. Each
// exchange runs under the login timeout.
func runLogin(ctx context.Context, in io.Reader, w io.Writer) int {
	c, sess := newClient()
	reader := bufio.NewReader(in)

	email := strings.TrimSpace(loginEmail)
	if email == "" {
		fmt.Fprint(w, "E-posta adresiniz: ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		email = strings.TrimSpace(line)
	}

	reqCtx, cancel := context.WithTimeout(ctx, client.LoginTimeout)
	err := c.RequestCode(reqCtx, email)
	cancel()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Doğrulama kodu %s adresine gönderildi.\n", email)

	fmt.Fprint(w, "Kod: ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	code := strings.TrimSpace(line)

	verifyCtx, cancel := context.WithTimeout(ctx, client.LoginTimeout)
	err = c.VerifyCode(verifyCtx, email, code)
	cancel()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if user, ok := sess.User(); ok {
		fmt.Fprintf(w, "Giriş yapıldı: %s\n", user.Email)
	} else {
		fmt.Fprintln(w, "Giriş yapıldı.")
	}
	return 0
}
