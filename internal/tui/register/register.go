// ABOUTME: Account registration screen as a bubbletea model
// ABOUTME: Wraps a huh form collecting the new user's details

package register

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"petradar/internal/session"
	"petradar/internal/tui/styles"
)

// SubmittedMsg is sent when the form completes
type SubmittedMsg struct {
	Input session.RegisterInput
}

// CancelledMsg is sent when the user backs out of registration
type CancelledMsg struct{}

// Register collects the details for a new account
type Register struct {
	form *huh.Form

	email    string
	password string
	name     string
	lastName string
	phone    string
}

// New creates the registration screen
func New() *Register {
	r := &Register{}
	r.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				CharLimit(120).
				Value(&r.email).
				Validate(requireField("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				CharLimit(120).
				Value(&r.password).
				Validate(requireField("password")),
			huh.NewInput().
				Title("First name").
				CharLimit(80).
				Value(&r.name).
				Validate(requireField("first name")),
			huh.NewInput().
				Title("Last name (optional)").
				CharLimit(80).
				Value(&r.lastName),
			huh.NewInput().
				Title("Phone (optional)").
				CharLimit(40).
				Value(&r.phone),
		).Title("Create account"),
	).WithTheme(styles.FormTheme())
	return r
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
func (r *Register) Init() tea.Cmd {
	return r.form.Init()
}

// Update implements tea.Model
func (r *Register) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		return r, func() tea.Msg { return CancelledMsg{} }
	}

	form, cmd := r.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		r.form = f
	}

	if r.form.State == huh.StateCompleted {
		input := session.RegisterInput{
			Email:       strings.TrimSpace(r.email),
			Password:    r.password,
			Name:        strings.TrimSpace(r.name),
			LastName:    strings.TrimSpace(r.lastName),
			PhoneNumber: strings.TrimSpace(r.phone),
		}
		return r, func() tea.Msg { return SubmittedMsg{Input: input} }
	}
	if r.form.State == huh.StateAborted {
		return r, func() tea.Msg { return CancelledMsg{} }
	}

	return r, cmd
}

// View implements tea.Model
func (r *Register) View() string {
	return r.form.View()
}
