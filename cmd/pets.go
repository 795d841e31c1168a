// ABOUTME: Pet commands for the petradar CLI
// ABOUTME: List, show, add, edit and remove pets, plus local photo associations

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"petradar/internal/api"
)

var petsCmd = &cobra.Command{
	Use:   "pets",
	Short: "Manage your pets",
}

var petsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your pets",
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int { return runPetsList(ctx, os.Stdout) })
	},
}

var petsShowCmd = &cobra.Command{
	Use:   "show <pet-id>",
	Short: "Show one pet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int {
			id, err := parseID(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 2
			}
			return runPetsShow(ctx, os.Stdout, id)
		})
	},
}

var petAddFlags = petFieldFlags{}

var petsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a pet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int {
			return runPetsAdd(ctx, os.Stdout, args[0], petAddFlags)
		})
	},
}

var petEditFlags = petFieldFlags{}

var petsEditCmd = &cobra.Command{
	Use:   "edit <pet-id>",
	Short: "Update a pet (only the flags you set are sent)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int {
			id, err := parseID(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 2
			}
			return runPetsEdit(ctx, os.Stdout, id, cmd, petEditFlags)
		})
	},
}

var petsRmCmd = &cobra.Command{
	Use:   "rm <pet-id>",
	Short: "Delete a pet",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWithSignals(func(ctx context.Context) int {
			id, err := parseID(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 2
			}
			return runPetsRm(ctx, os.Stdout, id)
		})
	},
}

var photoClear bool

var petsPhotoCmd = &cobra.Command{
	Use:   "photo <pet-id> [uri]",
	Short: "Attach, show or clear a local photo for a pet",
	Long: `Associates a local image URI with a pet. The association lives only on
this device; the API has no photo upload field. With no URI the current
association is printed. Use --clear to remove it.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		uri := ""
		if len(args) == 2 {
			uri = args[1]
		}
		if exitCode := runPetsPhoto(os.Stdout, id, uri, photoClear); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

// petFieldFlags holds the optional pet attribute flags shared by add/edit
type petFieldFlags struct {
	name      string
	species   string
	breed     string
	color     string
	sex       string
	size      string
	birthDate string
	age       float64
	weight    float64
	desc      string
	neutered  bool
	allergies string
	notes     string
}

func registerPetFieldFlags(cmd *cobra.Command, f *petFieldFlags, withName bool) {
	if withName {
		cmd.Flags().StringVar(&f.name, "name", "", "Pet name")
	}
	cmd.Flags().StringVar(&f.species, "species", "", "Species (Dog or Cat)")
	cmd.Flags().StringVar(&f.breed, "breed", "", "Breed")
	cmd.Flags().StringVar(&f.color, "color", "", "Color")
	cmd.Flags().StringVar(&f.sex, "sex", "", "Sex (Male, Female, Unknown)")
	cmd.Flags().StringVar(&f.size, "size", "", "Size (Small, Medium, Large)")
	cmd.Flags().StringVar(&f.birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&f.age, "age", 0, "Approximate age in years")
	cmd.Flags().Float64Var(&f.weight, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&f.desc, "description", "", "Description")
	cmd.Flags().BoolVar(&f.neutered, "neutered", false, "Neutered")
	cmd.Flags().StringVar(&f.allergies, "allergies", "", "Allergies")
	cmd.Flags().StringVar(&f.notes, "medical-notes", "", "Medical notes")
}

func init() {
	registerPetFieldFlags(petsAddCmd, &petAddFlags, false)
	petsAddCmd.MarkFlagRequired("species")
	registerPetFieldFlags(petsEditCmd, &petEditFlags, true)

	petsPhotoCmd.Flags().BoolVar(&photoClear, "clear", false, "Remove the photo association")

	petsCmd.AddCommand(petsListCmd, petsShowCmd, petsAddCmd, petsEditCmd, petsRmCmd, petsPhotoCmd)
	rootCmd.AddCommand(petsCmd)
}

// runWithSignals runs fn under SIGINT/SIGTERM cancellation and exits non-zero on failure
func runWithSignals(fn func(ctx context.Context) int) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if exitCode := fn(ctx); exitCode != 0 {
		os.Exit(exitCode)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func runPetsList(ctx context.Context, w io.Writer) int {
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

	pets, err := a.api.PetsByUser(ctx, userID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(pets, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	if len(pets) == 0 {
		fmt.Fprintln(w, "No pets yet.")
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSPECIES\tBREED\tSEX\tPHOTO")
	for _, p := range pets {
		photo := "-"
		if _, ok := a.photos.Get(p.ID); ok {
			photo = "local"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, orDash(p.Name), orDash(p.Species), orDash(p.Breed), orDash(p.Sex), photo)
	}
	tw.Flush()
	return 0
}

func runPetsShow(ctx context.Context, w io.Writer, petID int64) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	pet, err := a.api.Pet(ctx, petID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(pet, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", orDash(pet.Name))
	fmt.Fprintf(tw, "Species:\t%s\n", orDash(pet.Species))
	fmt.Fprintf(tw, "Breed:\t%s\n", orDash(pet.Breed))
	fmt.Fprintf(tw, "Color:\t%s\n", orDash(pet.Color))
	fmt.Fprintf(tw, "Sex:\t%s\n", orDash(pet.Sex))
	fmt.Fprintf(tw, "Size:\t%s\n", orDash(pet.Size))
	fmt.Fprintf(tw, "Birth date:\t%s\n", orDash(pet.BirthDate))
	if pet.Weight > 0 {
		fmt.Fprintf(tw, "Weight:\t%.1f kg\n", pet.Weight)
	}
	if pet.IsNeutered != nil {
		fmt.Fprintf(tw, "Neutered:\t%t\n", *pet.IsNeutered)
	}
	fmt.Fprintf(tw, "Allergies:\t%s\n", orDash(pet.Allergies))
	fmt.Fprintf(tw, "Medical notes:\t%s\n", orDash(pet.MedicalNotes))
	if uri, ok := a.photos.Get(pet.ID); ok {
		fmt.Fprintf(tw, "Local photo:\t%s\n", uri)
	}
	tw.Flush()
	return 0
}

func runPetsAdd(ctx context.Context, w io.Writer, name string, f petFieldFlags) int {
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

	req := api.PetCreate{
		UserID:  userID,
		Name:    name,
		Species: f.species,
	}
	if f.breed != "" {
		req.Breed = api.String(f.breed)
	}
	if f.color != "" {
		req.Color = api.String(f.color)
	}
	if f.sex != "" {
		req.Sex = api.String(f.sex)
	}
	if f.size != "" {
		req.Size = api.String(f.size)
	}
	if f.birthDate != "" {
		req.BirthDate = api.String(f.birthDate)
	}
	if f.age > 0 {
		req.ApproximateAge = api.Float(f.age)
	}
	if f.weight > 0 {
		req.Weight = api.Float(f.weight)
	}
	if f.desc != "" {
		req.Description = api.String(f.desc)
	}
	if f.neutered {
		req.IsNeutered = api.Bool(true)
	}
	if f.allergies != "" {
		req.Allergies = api.String(f.allergies)
	}
	if f.notes != "" {
		req.MedicalNotes = api.String(f.notes)
	}

	if err := a.api.CreatePet(ctx, req); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	// The API does not echo the created record, so no id is known yet and a
	// photo cannot be associated here.
	fmt.Fprintf(w, "Added %s. Run 'petradar pets list' to see its id; photos can be attached once the pet has one.\n", name)
	return 0
}

func runPetsEdit(ctx context.Context, w io.Writer, petID int64, cmd *cobra.Command, f petFieldFlags) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	// Only flags the user actually set become part of the partial update
	var req api.PetUpdate
	changed := false
	setString := func(flag string, dst **string, val string) {
		if cmd.Flags().Changed(flag) {
			*dst = api.String(val)
			changed = true
		}
	}
	setString("name", &req.Name, f.name)
	setString("species", &req.Species, f.species)
	setString("breed", &req.Breed, f.breed)
	setString("color", &req.Color, f.color)
	setString("sex", &req.Sex, f.sex)
	setString("size", &req.Size, f.size)
	setString("birth-date", &req.BirthDate, f.birthDate)
	setString("description", &req.Description, f.desc)
	setString("allergies", &req.Allergies, f.allergies)
	setString("medical-notes", &req.MedicalNotes, f.notes)
	if cmd.Flags().Changed("age") {
		req.ApproximateAge = api.Float(f.age)
		changed = true
	}
	if cmd.Flags().Changed("weight") {
		req.Weight = api.Float(f.weight)
		changed = true
	}
	if cmd.Flags().Changed("neutered") {
		req.IsNeutered = api.Bool(f.neutered)
		changed = true
	}

	if !changed {
		fmt.Fprintln(w, "Nothing to update; set at least one flag.")
		return 2
	}

	if err := a.api.UpdatePet(ctx, petID, req); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(w, "Pet updated.")
	return 0
}

func runPetsRm(ctx context.Context, w io.Writer, petID int64) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if err := a.api.DeletePet(ctx, petID); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 1
	}

	// Drop any local photo association along with the remote record
	a.photos.Delete(petID)

	fmt.Fprintln(w, "Pet deleted.")
	return 0
}

func runPetsPhoto(w io.Writer, petID int64, uri string, clear bool) int {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	switch {
	case clear:
		if err := a.photos.Delete(petID); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(w, "Photo association removed.")
	case uri != "":
		if err := a.photos.Save(petID, uri); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(w, "Photo associated with pet %d.\n", petID)
	default:
		stored, ok := a.photos.Get(petID)
		if !ok {
			fmt.Fprintf(w, "No photo associated with pet %d.\n", petID)
			return 1
		}
		fmt.Fprintln(w, stored)
	}
	return 0
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
