// ABOUTME: Profile commands for the petradar CLI
// ABOUTME: Show and partially update the logged-in user's profile

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"petradar/internal/api"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int { return runProfileShow(ctx, os.Stdout) })
	},
}

var (
	profileEmail    string
	profileName     string
	profileLastName string
	profilePhone    string
	profilePassword string
)

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Update your profile (only the flags you set are sent)",
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int { return runProfileEdit(ctx, os.Stdout, cmd) })
	},
}

func init() {
	profileEditCmd.Flags().StringVar(&profileEmail, "email", "", "Email")
	profileEditCmd.Flags().StringVar(&profileName, "name", "", "First name")
	profileEditCmd.Flags().StringVar(&profileLastName, "last-name", "", "Last name")
	profileEditCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")
	profileEditCmd.Flags().StringVar(&profilePassword, "new-password", "", "New password")

	profileCmd.AddCommand(profileShowCmd, profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(ctx context.Context, w io.Writer) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	userID, err := a.session.RequireUserID()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	user, err := a.api.GetUser(ctx, userID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(user, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", user.DisplayName())
	fmt.Fprintf(tw, "Email:\t%s\n", user.Email)
	fmt.Fprintf(tw, "Phone:\t%s\n", orDash(user.PhoneNumber))
	fmt.Fprintf(tw, "Role:\t%s\n", orDash(user.Role))
	tw.Flush()
	return 0
}

func runProfileEdit(ctx context.Context, w io.Writer, cmd *cobra.Command) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	userID, err := a.session.RequireUserID()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	var req api.UserUpdate
	changed := false
	set := func(flag string, dst **string, val string) {
		if cmd.Flags().Changed(flag) {
			*dst = api.String(val)
			changed = true
		}
	}
	set("email", &req.Email, profileEmail)
	set("name", &req.Name, profileName)
	set("last-name", &req.LastName, profileLastName)
	set("phone", &req.PhoneNumber, profilePhone)
	set("new-password", &req.Password, profilePassword)

	if !changed {
		fmt.Fprintln(w, "Nothing to update; set at least one flag.")
		return 2
	}

	if err := a.api.UpdateUser(ctx, userID, req); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	// Keep the stored identity in step with a changed name or email
	if req.Name != nil || req.LastName != nil || req.Email != nil {
		if user, err := a.api.GetUser(ctx, userID); err == nil {
			a.creds.SaveIdentity(user.ID, user.Email, user.DisplayName())
		}
	}

	fmt.Fprintln(w, "Profile updated.")
	return 0
}
