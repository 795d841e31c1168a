// ABOUTME: Pet list screen as a bubbletea model
// ABOUTME: Renders the owner's pets in a bubbles table with row actions

package petlist

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"petradar/internal/api"
	"petradar/internal/tui/styles"
)

// SelectedMsg is sent when the user opens a pet's detail
type SelectedMsg struct {
	Pet api.Pet
}

// AddMsg is sent when the user wants to add a pet
type AddMsg struct{}

// EditMsg is sent when the user wants to edit the highlighted pet
type EditMsg struct {
	Pet api.Pet
}

// DeleteMsg is sent when the user deletes the highlighted pet
type DeleteMsg struct {
	Pet api.Pet
}

// RefreshMsg is sent when the user asks for a reload
type RefreshMsg struct{}

// BackMsg is sent when the user leaves the list
type BackMsg struct{}

// PhotoLookup reports whether a local photo is associated with a pet
type PhotoLookup func(petID int64) bool

// PetList shows the owner's pets
type PetList struct {
	table    table.Model
	pets     []api.Pet
	hasPhoto PhotoLookup
}

// New creates the pet list screen
func New(pets []api.Pet, hasPhoto PhotoLookup, height int) *PetList {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 18},
		{Title: "Species", Width: 10},
		{Title: "Breed", Width: 16},
		{Title: "Photo", Width: 6},
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

	p := &PetList{table: t, hasPhoto: hasPhoto}
	p.SetPets(pets)
	return p
}

// SetPets replaces the table contents
func (p *PetList) SetPets(pets []api.Pet) {
	p.pets = pets
	rows := make([]table.Row, 0, len(pets))
	for _, pet := range pets {
		photo := ""
		if p.hasPhoto != nil && p.hasPhoto(pet.ID) {
			photo = "yes"
		}
		rows = append(rows, table.Row{
			strconv.FormatInt(pet.ID, 10),
			pet.Name,
			pet.Species,
			pet.Breed,
			photo,
		})
	}
	p.table.SetRows(rows)
}

// SetHeight adjusts the table height on terminal resize
func (p *PetList) SetHeight(height int) {
	if height < 4 {
		height = 4
	}
	p.table.SetHeight(height)
}

func (p *PetList) selected() (api.Pet, bool) {
	idx := p.table.Cursor()
	if idx < 0 || idx >= len(p.pets) {
		return api.Pet{}, false
	}
	return p.pets[idx], true
}

// Init implements tea.Model
func (p *PetList) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (p *PetList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if pet, ok := p.selected(); ok {
				return p, func() tea.Msg { return SelectedMsg{Pet: pet} }
			}
			return p, nil
		case "a":
			return p, func() tea.Msg { return AddMsg{} }
		case "e":
			if pet, ok := p.selected(); ok {
				return p, func() tea.Msg { return EditMsg{Pet: pet} }
			}
			return p, nil
		case "x":
			if pet, ok := p.selected(); ok {
				return p, func() tea.Msg { return DeleteMsg{Pet: pet} }
			}
			return p, nil
		case "r":
			return p, func() tea.Msg { return RefreshMsg{} }
		case "b", "esc":
			return p, func() tea.Msg { return BackMsg{} }
		}
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

// View implements tea.Model
func (p *PetList) View() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Your pets"))
	sb.WriteString("\n")
	if len(p.pets) == 0 {
		sb.WriteString(styles.Subtitle.Render("No pets yet. Press 'a' to add one."))
	} else {
		sb.WriteString(p.table.View())
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("enter open • a add • e edit • x delete • r refresh • b back"))
	return sb.String()
}
