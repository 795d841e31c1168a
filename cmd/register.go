// ABOUTME: Register command for the petradar CLI
// ABOUTME: Creates an account and immediately logs in with the same credentials

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"petradar/internal/session"
)

var (
	registerName     string
	registerLastName string
	registerPhone    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create a PetRadar account",
	Long: `Create a new account. Registration does not return a session, so a
login with the same credentials runs automatically afterwards.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		password := registerPassword
		if password == "" {
			if err := promptPassword(&password); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(2)
			}
		}

		in := session.RegisterInput{
			Name:        registerName,
			LastName:    registerLastName,
			Email:       args[0],
			Password:    password,
			PhoneNumber: registerPhone,
		}
		if exitCode := runRegister(ctx, os.Stdout, in); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "First name (required)")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "Last name")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Password (prompted when omitted)")
	registerCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(registerCmd)
}

// runRegister registers, auto-logs-in, and returns an exit code
func runRegister(ctx context.Context, w io.Writer, in session.RegisterInput) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	s, err := a.session.RegisterAndLogin(ctx, in)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatSessionJSON(s))
		return 0
	}

	fmt.Fprintf(w, "Account created. Logged in as %s\n", s.Email)
	if !s.IdentityResolved() {
		fmt.Fprintln(w, "Note: your account id could not be resolved; pet and appointment listings are unavailable until you log in again.")
	}
	return 0
}
