// ABOUTME: Appointment list screen as a bubbletea model
// ABOUTME: Renders upcoming and past visits in a bubbles table with row actions

package apptlist

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"petradar/internal/api"
	"petradar/internal/tui/styles"
)

// SelectedMsg is sent when the user opens an appointment's detail
type SelectedMsg struct {
	Appointment api.Appointment
}

// AddMsg is sent when the user wants to schedule a visit
type AddMsg struct{}

// CancelVisitMsg is sent when the user cancels the highlighted appointment
type CancelVisitMsg struct {
	Appointment api.Appointment
}

// RefreshMsg is sent when the user asks for a reload
type RefreshMsg struct{}

// BackMsg is sent when the user leaves the list
type BackMsg struct{}

// ApptList shows the owner's veterinary appointments
type ApptList struct {
	table table.Model
	appts []api.Appointment
}

// New creates the appointment list screen
func New(appts []api.Appointment, height int) *ApptList {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Pet", Width: 6},
		{Title: "Date", Width: 20},
		{Title: "Type", Width: 13},
		{Title: "Status", Width: 10},
		{Title: "Reason", Width: 24},
	}

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(styles.Text).
		Background(styles.Primary).
		Bold(true)

	if height < 4 {
		height = 4
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithStyles(s),
	)

	a := &ApptList{table: t}
	a.SetAppointments(appts)
	return a
}

// SetAppointments replaces the table contents
func (a *ApptList) SetAppointments(appts []api.Appointment) {
	a.appts = appts
	rows := make([]table.Row, 0, len(appts))
	for _, ap := range appts {
		rows = append(rows, table.Row{
			strconv.FormatInt(ap.ID, 10),
			strconv.FormatInt(ap.PetID, 10),
			ap.AppointmentDate,
			string(ap.AppointmentType),
			string(ap.AppointmentStatus),
			ap.ReasonForVisit,
		})
	}
	a.table.SetRows(rows)
}

// SetHeight adjusts the table height on terminal resize
func (a *ApptList) SetHeight(height int) {
	if height < 4 {
		height = 4
	}
	a.table.SetHeight(height)
}

func (a *ApptList) selected() (api.Appointment, bool) {
	idx := a.table.Cursor()
	if idx < 0 || idx >= len(a.appts) {
		return api.Appointment{}, false
	}
	return a.appts[idx], true
}

// Init implements tea.Model
func (a *ApptList) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *ApptList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if ap, ok := a.selected(); ok {
				return a, func() tea.Msg { return SelectedMsg{Appointment: ap} }
			}
			return a, nil
		case "a":
			return a, func() tea.Msg { return AddMsg{} }
		case "c":
			if ap, ok := a.selected(); ok && ap.AppointmentStatus != api.StatusCancelled {
				return a, func() tea.Msg { return CancelVisitMsg{Appointment: ap} }
			}
			return a, nil
		case "r":
			return a, func() tea.Msg { return RefreshMsg{} }
		case "b", "esc":
			return a, func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

// View implements tea.Model
func (a *ApptList) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Appointments"))
	sb.WriteString("\n")
	if len(a.appts) == 0 {
		sb.WriteString(styles.Subtitle.Render("No appointments. Press 'a' to schedule one."))
	} else {
		sb.WriteString(a.table.View())
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("enter open • a schedule • c cancel • r refresh • b back"))
	return sb.String()
}
