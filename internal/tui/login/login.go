// ABOUTME: Login screen as a bubbletea model
// ABOUTME: Two text inputs for email and password with tab navigation

package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"petradar/internal/tui/styles"
)

// SubmittedMsg is sent when the user confirms their credentials
type SubmittedMsg struct {
	Email    string
	Password string
}

// GoToRegisterMsg is sent when the user wants the registration screen instead
type GoToRegisterMsg struct{}

// CancelledMsg is sent when the user backs out of the login screen
type CancelledMsg struct{}

// Login is the credential entry screen
type Login struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	errText  string
}

// New creates a login screen with the email field focused
func New() *Login {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 120
	password.Width = 40

	return &Login{email: email, password: password}
}

// SetError shows an error line under the form, e.g. after a failed attempt
func (l *Login) SetError(text string) {
	l.errText = text
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return l, func() tea.Msg { return CancelledMsg{} }
		case "ctrl+r":
			return l, func() tea.Msg { return GoToRegisterMsg{} }
		case "tab", "shift+tab", "up", "down":
			l.toggleFocus()
			return l, nil
		case "enter":
			if l.focus == 0 {
				l.toggleFocus()
				return l, nil
			}
			email := strings.TrimSpace(l.email.Value())
			password := l.password.Value()
			if email == "" || password == "" {
				l.errText = "email and password are required"
				return l, nil
			}
			return l, func() tea.Msg { return SubmittedMsg{Email: email, Password: password} }
		}
	}

	var cmd tea.Cmd
	if l.focus == 0 {
		l.email, cmd = l.email.Update(msg)
	} else {
		l.password, cmd = l.password.Update(msg)
	}
	return l, cmd
}

func (l *Login) toggleFocus() {
	if l.focus == 0 {
		l.focus = 1
		l.email.Blur()
		l.password.Focus()
	} else {
		l.focus = 0
		l.password.Blur()
		l.email.Focus()
	}
}

// Email returns the current email field value
func (l *Login) Email() string {
	return strings.TrimSpace(l.email.Value())
}

// View implements tea.Model
func (l *Login) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Sign in"))
	sb.WriteString("\n\n")
	sb.WriteString("Email\n")
	sb.WriteString(l.email.View())
	sb.WriteString("\n\nPassword\n")
	sb.WriteString(l.password.View())
	sb.WriteString("\n")

	if l.errText != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusError.Render(l.errText))
		sb.WriteString("\n")
	}

	sb.WriteString(styles.Help.Render("enter submit • tab switch field • ctrl+r register • esc quit"))
	return sb.String()
}
