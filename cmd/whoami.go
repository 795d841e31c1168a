// ABOUTME: Whoami command for the petradar CLI
// ABOUTME: Prints the stored session state without touching the network

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	Run: func(cmd *cobra.Command, args []string) {
		if exitCode := runWhoami(os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// runWhoami prints session state and returns an exit code (1 when logged out)
func runWhoami(w io.Writer) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	s := a.session.Current()
	if s.Token == "" {
		fmt.Fprintln(w, "Not logged in.")
		return 1
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatSessionJSON(&s))
		return 0
	}

	name := s.DisplayName
	if name == "" {
		name = "(unresolved)"
	}
	fmt.Fprintf(w, `Email:    %s
Name:     %s
User ID:  %s
`, s.Email, name, formatUserID(s.UserID))
	return 0
}

func formatUserID(id int64) string {
	if id == 0 {
		return "(unresolved)"
	}
	return fmt.Sprintf("%d", id)
}
