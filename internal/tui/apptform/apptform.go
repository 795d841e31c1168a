// ABOUTME: Appointment scheduling form as a bubbletea model
// ABOUTME: Wraps a huh form and emits a scheduled-visit create request

package apptform

import (
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"petradar/internal/api"
	"petradar/internal/tui/styles"
)

// SubmittedMsg is sent when the form completes
type SubmittedMsg struct {
	Create *api.AppointmentCreate
}

// CancelledMsg is sent when the user backs out of the form
type CancelledMsg struct{}

// ApptForm collects the details of a new veterinary visit
type ApptForm struct {
	form *huh.Form

	petID    string
	apptType string
	date     string
	reason   string
	vet      string
	notes    string
}

// New creates the scheduling form. The pet select is built from the
// owner's current pets.
func New(pets []api.Pet) *ApptForm {
	f := &ApptForm{apptType: string(api.TypeCheckup)}
	if len(pets) > 0 {
		f.petID = strconv.FormatInt(pets[0].ID, 10)
	}

	petOptions := make([]huh.Option[string], 0, len(pets))
	for _, p := range pets {
		petOptions = append(petOptions, huh.NewOption(p.Name, strconv.FormatInt(p.ID, 10)))
	}

	typeOptions := make([]huh.Option[string], 0, len(api.AppointmentTypes()))
	for _, t := range api.AppointmentTypes() {
		typeOptions = append(typeOptions, huh.NewOption(string(t), string(t)))
	}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pet").
				Options(petOptions...).
				Value(&f.petID),
			huh.NewSelect[string]().
				Title("Type of visit").
				Options(typeOptions...).
				Value(&f.apptType),
			huh.NewInput().
				Title("Date/time (ISO-8601)").
				Placeholder("2026-09-15T10:00:00Z").
				CharLimit(30).
				Value(&f.date).
				Validate(requireField("date")),
			huh.NewInput().
				Title("Reason for visit").
				CharLimit(200).
				Value(&f.reason).
				Validate(requireField("reason")),
			huh.NewInput().
				Title("Veterinary name (optional)").
				CharLimit(80).
				Value(&f.vet),
			huh.NewInput().
				Title("Notes (optional)").
				CharLimit(200).
				Value(&f.notes),
		).Title("Schedule a visit"),
	).WithTheme(styles.FormTheme())
	return f
}

func requireField(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}

// Init implements tea.Model
func (f *ApptForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model
func (f *ApptForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (f *ApptForm) submit() tea.Cmd {
	petID, _ := strconv.ParseInt(f.petID, 10, 64)
	create := &api.AppointmentCreate{
		PetID:             petID,
		AppointmentType:   api.AppointmentType(f.apptType),
		AppointmentStatus: api.StatusScheduled,
		AppointmentDate:   strings.TrimSpace(f.date),
		ReasonForVisit:    strings.TrimSpace(f.reason),
	}
	if v := strings.TrimSpace(f.vet); v != "" {
		create.VeterinaryName = api.String(v)
	}
	if v := strings.TrimSpace(f.notes); v != "" {
		create.Notes = api.String(v)
	}
	return func() tea.Msg { return SubmittedMsg{Create: create} }
}

// View implements tea.Model
func (f *ApptForm) View() string {
	return f.form.View()
}
