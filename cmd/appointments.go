// ABOUTME: Appointment commands for the petradar CLI
// ABOUTME: List, show, add, edit, cancel and remove veterinary appointments

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

var apptsCmd = &cobra.Command{
	Use:     "appointments",
	Aliases: []string{"appts"},
	Short:   "Manage veterinary appointments",
}

var apptsListPet int64

var apptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your appointments",
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int { return runApptsList(ctx, os.Stdout, apptsListPet) })
	},
}

var apptsShowCmd = &cobra.Command{
	Use:   "show <appointment-id>",
	Short: "Show one appointment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int {
			id, err := parseID(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 2
			}
			return runApptsShow(ctx, os.Stdout, id)
		})
	},
}

var apptAddFlags = apptFieldFlags{}

var apptsAddCmd = &cobra.Command{
	Use:   "add <pet-id>",
	Short: "Schedule an appointment for a pet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int {
			petID, err := parseID(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 2
			}
			return runApptsAdd(ctx, os.Stdout, petID, apptAddFlags)
		})
	},
}

var apptEditFlags = apptFieldFlags{}

var apptsEditCmd = &cobra.Command{
	Use:   "edit <appointment-id>",
	Short: "Update an appointment (only the flags you set are sent)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int {
			id, err := parseID(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 2
			}
			return runApptsEdit(ctx, os.Stdout, id, cmd, apptEditFlags)
		})
	},
}

var apptsCancelCmd = &cobra.Command{
	Use:   "cancel <appointment-id>",
	Short: "Cancel an appointment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int {
			id, err := parseID(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 2
			}
			return runApptsCancel(ctx, os.Stdout, id)
		})
	},
}

var apptsRmCmd = &cobra.Command{
	Use:   "rm <appointment-id>",
	Short: "Delete an appointment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int {
			id, err := parseID(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 2
			}
			return runApptsRm(ctx, os.Stdout, id)
		})
	},
}

// apptFieldFlags holds the optional appointment attribute flags shared by add/edit
type apptFieldFlags struct {
	vet      string
	apptType string
	date     string
	duration int
	reason   string
	notes    string
	cost     float64
	address  string
}

func registerApptFieldFlags(cmd *cobra.Command, f *apptFieldFlags) {
	cmd.Flags().StringVar(&f.vet, "vet", "", "Veterinary name")
	cmd.Flags().StringVar(&f.apptType, "type", "", "Type (Checkup, Vaccination, Surgery, Grooming, Consultation, Other)")
	cmd.Flags().StringVar(&f.date, "date", "", "Date/time (ISO-8601, e.g. 2026-09-15T10:00:00Z)")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "Duration in minutes")
	cmd.Flags().StringVar(&f.reason, "reason", "", "Reason for visit")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Notes")
	cmd.Flags().Float64Var(&f.cost, "cost", 0, "Cost")
	cmd.Flags().StringVar(&f.address, "address", "", "Address")
}

func init() {
	apptsListCmd.Flags().Int64Var(&apptsListPet, "pet", 0, "List appointments for one pet instead of all yours")

	registerApptFieldFlags(apptsAddCmd, &apptAddFlags)
	apptsAddCmd.MarkFlagRequired("type")
	apptsAddCmd.MarkFlagRequired("date")
	apptsAddCmd.MarkFlagRequired("reason")
	registerApptFieldFlags(apptsEditCmd, &apptEditFlags)

	apptsCmd.AddCommand(apptsListCmd, apptsShowCmd, apptsAddCmd, apptsEditCmd, apptsCancelCmd, apptsRmCmd)
	rootCmd.AddCommand(apptsCmd)
}

func runApptsList(ctx context.Context, w io.Writer, petID int64) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	var appts []api.Appointment
	if petID > 0 {
		appts, err = a.api.AppointmentsByPet(ctx, petID)
	} else {
		var userID int64
		userID, err = a.session.RequireUserID()
		if err == nil {
			appts, err = a.api.AppointmentsByUser(ctx, userID)
		}
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(appts, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(appts) == 0 {
		fmt.Fprintln(w, "No appointments.")
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPET\tDATE\tTYPE\tSTATUS\tREASON")
	for _, ap := range appts {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			ap.ID, ap.PetID, ap.AppointmentDate,
			orDash(string(ap.AppointmentType)), orDash(string(ap.AppointmentStatus)), orDash(ap.ReasonForVisit))
	}
	tw.Flush()
	return 0
}

func runApptsShow(ctx context.Context, w io.Writer, id int64) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	appt, err := a.api.Appointment(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(appt, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Pet:\t%d\n", appt.PetID)
	fmt.Fprintf(tw, "Date:\t%s\n", appt.AppointmentDate)
	fmt.Fprintf(tw, "Type:\t%s\n", orDash(string(appt.AppointmentType)))
	fmt.Fprintf(tw, "Status:\t%s\n", orDash(string(appt.AppointmentStatus)))
	fmt.Fprintf(tw, "Vet:\t%s\n", orDash(appt.VeterinaryName))
	fmt.Fprintf(tw, "Reason:\t%s\n", orDash(appt.ReasonForVisit))
	if appt.DurationInMinutes > 0 {
		fmt.Fprintf(tw, "Duration:\t%d min\n", appt.DurationInMinutes)
	}
	fmt.Fprintf(tw, "Notes:\t%s\n", orDash(appt.Notes))
	fmt.Fprintf(tw, "Diagnosis:\t%s\n", orDash(appt.Diagnosis))
	fmt.Fprintf(tw, "Treatment:\t%s\n", orDash(appt.Treatment))
	fmt.Fprintf(tw, "Prescriptions:\t%s\n", orDash(appt.Prescriptions))
	if appt.Cost > 0 {
		fmt.Fprintf(tw, "Cost:\t%.2f\n", appt.Cost)
	}
	fmt.Fprintf(tw, "Address:\t%s\n", orDash(appt.AddressText))
	tw.Flush()
	return 0
}

func runApptsAdd(ctx context.Context, w io.Writer, petID int64, f apptFieldFlags) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	apptType := api.AppointmentType(f.apptType)
	if !apptType.Valid() {
		fmt.Fprintf(w, "Error: invalid appointment type %q\n", f.apptType)
		return 2
	}

	req := api.AppointmentCreate{
		PetID:             petID,
		AppointmentType:   apptType,
		AppointmentStatus: api.StatusScheduled,
		AppointmentDate:   f.date,
		ReasonForVisit:    f.reason,
	}
	if f.vet != "" {
		req.VeterinaryName = api.String(f.vet)
	}
	if f.duration > 0 {
		req.DurationInMinutes = api.Int(f.duration)
	}
	if f.notes != "" {
		req.Notes = api.String(f.notes)
	}
	if f.cost > 0 {
		req.Cost = api.Float(f.cost)
	}
	if f.address != "" {
		req.AddressText = api.String(f.address)
	}

	if err := a.api.CreateAppointment(ctx, req); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, "Appointment scheduled.")
	return 0
}

func runApptsEdit(ctx context.Context, w io.Writer, id int64, cmd *cobra.Command, f apptFieldFlags) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	var req api.AppointmentUpdate
	changed := false
	if cmd.Flags().Changed("vet") {
		req.VeterinaryName = api.String(f.vet)
		changed = true
	}
	if cmd.Flags().Changed("type") {
		apptType := api.AppointmentType(f.apptType)
		if !apptType.Valid() {
			fmt.Fprintf(w, "Error: invalid appointment type %q\n", f.apptType)
			return 2
		}
		req.AppointmentType = &apptType
		changed = true
	}
	if cmd.Flags().Changed("date") {
		req.AppointmentDate = api.String(f.date)
		changed = true
	}
	if cmd.Flags().Changed("duration") {
		req.DurationInMinutes = api.Int(f.duration)
		changed = true
	}
	if cmd.Flags().Changed("reason") {
		req.ReasonForVisit = api.String(f.reason)
		changed = true
	}
	if cmd.Flags().Changed("notes") {
		req.Notes = api.String(f.notes)
		changed = true
	}
	if cmd.Flags().Changed("cost") {
		req.Cost = api.Float(f.cost)
		changed = true
	}
	if cmd.Flags().Changed("address") {
		req.AddressText = api.String(f.address)
		changed = true
	}

	if !changed {
		fmt.Fprintln(w, "Nothing to update; set at least one flag.")
		return 2
	}

	if err := a.api.UpdateAppointment(ctx, id, req); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, "Appointment updated.")
	return 0
}

// runApptsCancel sets the appointment status to Cancelled; the record remains
func runApptsCancel(ctx context.Context, w io.Writer, id int64) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	status := api.StatusCancelled
	if err := a.api.UpdateAppointment(ctx, id, api.AppointmentUpdate{AppointmentStatus: &status}); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, "Appointment cancelled.")
	return 0
}

func runApptsRm(ctx context.Context, w io.Writer, id int64) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if err := a.api.DeleteAppointment(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, "Appointment deleted.")
	return 0
}
