// ABOUTME: Pet add/edit form as a bubbletea model
// ABOUTME: Wraps a huh form and emits a create or partial-update request

package petform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"petradar/internal/api"
	"petradar/internal/tui/styles"
)

// SubmittedMsg is sent when the form completes. Exactly one of Create or
// Update is set.
type SubmittedMsg struct {
	Create *api.PetCreate
	PetID  int64
	Update *api.PetUpdate
}

// CancelledMsg is sent when the user backs out of the form
type CancelledMsg struct{}

var speciesOptions = []huh.Option[string]{
	huh.NewOption("Dog", "Dog"),
	huh.NewOption("Cat", "Cat"),
}

var sexOptions = []huh.Option[string]{
	huh.NewOption("Unknown", ""),
	huh.NewOption("Male", "Male"),
	huh.NewOption("Female", "Female"),
}

// PetForm collects pet attributes for create or edit
type PetForm struct {
	form   *huh.Form
	userID int64
	petID  int64
	edit   bool

	name      string
	species   string
	breed     string
	color     string
	sex       string
	birthDate string
	weight    string
}

// New creates an empty form for adding a pet owned by userID
func New(userID int64) *PetForm {
	f := &PetForm{userID: userID, species: "Dog"}
	f.form = f.buildForm("Add a pet")
	return f
}

// NewEdit creates a form prefilled from an existing pet
func NewEdit(pet api.Pet) *PetForm {
	f := &PetForm{
		petID:     pet.ID,
		edit:      true,
		name:      pet.Name,
		species:   pet.Species,
		breed:     pet.Breed,
		color:     pet.Color,
		sex:       pet.Sex,
		birthDate: pet.BirthDate,
	}
	if pet.Weight > 0 {
		f.weight = strconv.FormatFloat(pet.Weight, 'f', -1, 64)
	}
	f.form = f.buildForm(fmt.Sprintf("Edit %s", pet.Name))
	return f
}

func (f *PetForm) buildForm(title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				CharLimit(80).
				Value(&f.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Species").
				Options(speciesOptions...).
				Value(&f.species),
			huh.NewInput().
				Title("Breed (optional)").
				CharLimit(80).
				Value(&f.breed),
			huh.NewInput().
				Title("Color (optional)").
				CharLimit(40).
				Value(&f.color),
			huh.NewSelect[string]().
				Title("Sex").
				Options(sexOptions...).
				Value(&f.sex),
			huh.NewInput().
				Title("Birth date (optional, YYYY-MM-DD)").
				CharLimit(20).
				Value(&f.birthDate),
			huh.NewInput().
				Title("Weight in kg (optional)").
				CharLimit(8).
				Value(&f.weight).
				Validate(optionalFloat),
		).Title(title),
	).WithTheme(styles.FormTheme())
}

func optionalFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("must be a number")
	}
	return nil
}

// Init implements tea.Model
func (f *PetForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *PetForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return f, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := f.form.Update(msg)
	if m, ok := form.(*huh.Form); ok {
		f.form = m
	}

	if f.form.State == huh.StateCompleted {
		return f, f.submit()
	}
	if f.form.State == huh.StateAborted {
		return f, func() tea.Msg { return CancelledMsg{} }
	}

	return f, cmd
}

func (f *PetForm) submit() tea.Cmd {
	var weight *float64
	if v := strings.TrimSpace(f.weight); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			weight = api.Float(parsed)
		}
	}

	if f.edit {
		update := &api.PetUpdate{
			Name:      api.String(f.name),
			Species:   api.String(f.species),
			Breed:     api.String(f.breed),
			Color:     api.String(f.color),
			Sex:       api.String(f.sex),
			BirthDate: api.String(f.birthDate),
			Weight:    weight,
		}
		petID := f.petID
		return func() tea.Msg { return SubmittedMsg{PetID: petID, Update: update} }
	}

	create := &api.PetCreate{
		UserID:  f.userID,
		Name:    strings.TrimSpace(f.name),
		Species: f.species,
		Weight:  weight,
	}
	if v := strings.TrimSpace(f.breed); v != "" {
		create.Breed = api.String(v)
	}
	if v := strings.TrimSpace(f.color); v != "" {
		create.Color = api.String(v)
	}
	if f.sex != "" {
		create.Sex = api.String(f.sex)
	}
	if v := strings.TrimSpace(f.birthDate); v != "" {
		create.BirthDate = api.String(v)
	}
	return func() tea.Msg { return SubmittedMsg{Create: create} }
}

// View implements tea.Model
func (f *PetForm) View() string {
	return f.form.View()
}
