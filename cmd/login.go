// ABOUTME: Login command for the petradar CLI
// ABOUTME: Authenticates, persists the session and reports the resolved identity

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"petradar/internal/session"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in to PetRadar",
	Long:  `Authenticate against the PetRadar API and store the session locally.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		password := loginPassword
		if password == "" {
			if err := promptPassword(&password); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
		}

		if exitCode := runLogin(ctx, os.Stdout, args[0], password); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}

// promptPassword asks for the password without echoing it
func promptPassword(out *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(out),
		),
	).Run()
}

// runLogin executes the login flow and returns an exit code
func runLogin(ctx context.Context, w io.Writer, email, password string) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	s, err := a.session.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatSessionJSON(s))
		return 0
	}

	if s.IdentityResolved() {
		fmt.Fprintf(w, "Logged in as %s (%s)\n", s.DisplayName, s.Email)
	} else {
		fmt.Fprintf(w, "Logged in as %s\n", s.Email)
		fmt.Fprintln(w, "Note: your account id could not be resolved; pet and appointment listings are unavailable until you log in again.")
	}
	return 0
}

// formatSessionJSON renders a session without exposing token material
func formatSessionJSON(s *session.Session) string {
	output := map[string]interface{}{
		"authenticated":     s.Token != "",
		"user_id":           s.UserID,
		"email":             s.Email,
		"display_name":      s.DisplayName,
		"identity_resolved": s.IdentityResolved(),
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
