// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"petradar/internal/api"
	"petradar/internal/config"
	"petradar/internal/session"
	"petradar/internal/store"
	"petradar/internal/tui/apptform"
	"petradar/internal/tui/apptlist"
	"petradar/internal/tui/debuglog"
	"petradar/internal/tui/icons"
	"petradar/internal/tui/login"
	"petradar/internal/tui/petform"
	"petradar/internal/tui/petlist"
	"petradar/internal/tui/register"
	"petradar/internal/tui/styles"
	"petradar/internal/tui/widgets"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenHome
	ScreenPets
	ScreenPetDetail
	ScreenPetForm
	ScreenAppointments
	ScreenApptDetail
	ScreenApptForm
	ScreenProfile
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before clamping the frame
)

// sessionMsg is sent when a login or registration attempt completes
type sessionMsg struct {
	session session.Session
	err     error
}

// homeLoadedMsg is sent when the home overview data is loaded
type homeLoadedMsg struct {
	pets  []api.Pet
	appts []api.Appointment
	err   error
}

// petsLoadedMsg is sent when the pet list is reloaded
type petsLoadedMsg struct {
	pets []api.Pet
	err  error
}

// apptsLoadedMsg is sent when the appointment list is reloaded
type apptsLoadedMsg struct {
	appts []api.Appointment
	err   error
}

// petSavedMsg is sent when a pet create or update completes
type petSavedMsg struct {
	err error
}

// petDeletedMsg is sent when a pet delete completes
type petDeletedMsg struct {
	petID int64
	err   error
}

// apptSavedMsg is sent when an appointment create completes
type apptSavedMsg struct {
	err error
}

// apptCancelledMsg is sent when an appointment cancel completes
type apptCancelledMsg struct {
	err error
}

// profileLoadedMsg is sent when the user's profile is fetched
type profileLoadedMsg struct {
	user *api.UserProfile
	err  error
}

// App is the root model for the TUI
type App struct {
	api    *api.Client
	orch   *session.Orchestrator
	photos *store.Photos

	screen  Screen
	width   int
	height  int
	status  string
	loading bool
	spin    spinner.Model

	session session.Session
	pets    []api.Pet
	appts   []api.Appointment
	user    *api.UserProfile

	petDetail  api.Pet
	apptDetail api.Appointment

	// Child models
	loginScreen    *login.Login
	registerScreen *register.Register
	petList        *petlist.PetList
	apptList       *apptlist.ApptList
	petForm        *petform.PetForm
	apptForm       *apptform.ApptForm
}

// New creates a new TUI application
func New(apiClient *api.Client, orch *session.Orchestrator, photos *store.Photos) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	a := &App{
		api:    apiClient,
		orch:   orch,
		photos: photos,
		spin:   sp,
	}

	a.session = orch.Current()
	if a.session.Token != "" {
		a.screen = ScreenHome
	} else {
		a.screen = ScreenLogin
		a.loginScreen = login.New()
	}
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenHome && a.session.IdentityResolved() {
		return tea.Batch(a.startLoading(), a.loadHome())
	}
	if a.loginScreen != nil {
		return a.loginScreen.Init()
	}
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.petList != nil {
			a.petList.SetHeight(a.contentHeight() - 6)
		}
		if a.apptList != nil {
			a.apptList.SetHeight(a.contentHeight() - 6)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		// Handle global quit
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.routeKey(msg)

	case login.SubmittedMsg:
		return a, tea.Batch(a.startLoading(), a.doLogin(msg.Email, msg.Password))

	case login.GoToRegisterMsg:
		a.screen = ScreenRegister
		a.registerScreen = register.New()
		return a, a.registerScreen.Init()

	case login.CancelledMsg:
		return a, tea.Quit

	case register.SubmittedMsg:
		return a, tea.Batch(a.startLoading(), a.doRegister(msg.Input))

	case register.CancelledMsg:
		a.screen = ScreenLogin
		a.registerScreen = nil
		a.loginScreen = login.New()
		return a, a.loginScreen.Init()

	case sessionMsg:
		return a.handleSession(msg)

	case homeLoadedMsg:
		a.loading = false
		if msg.err != nil {
			debuglog.Error("home load", msg.err)
			a.status = msg.err.Error()
			return a, nil
		}
		a.pets = msg.pets
		a.appts = msg.appts
		a.status = ""
		return a, nil

	case petsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.status = msg.err.Error()
			return a, nil
		}
		a.pets = msg.pets
		a.status = ""
		if a.petList == nil {
			a.petList = petlist.New(a.pets, a.hasPhoto, a.contentHeight()-6)
		} else {
			a.petList.SetPets(a.pets)
		}
		a.screen = ScreenPets
		return a, nil

	case apptsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.status = msg.err.Error()
			return a, nil
		}
		a.appts = msg.appts
		a.status = ""
		if a.apptList == nil {
			a.apptList = apptlist.New(a.appts, a.contentHeight()-6)
		} else {
			a.apptList.SetAppointments(a.appts)
		}
		a.screen = ScreenAppointments
		return a, nil

	case petlist.SelectedMsg:
		a.petDetail = msg.Pet
		a.screen = ScreenPetDetail
		return a, nil

	case petlist.AddMsg:
		userID, err := a.orch.RequireUserID()
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.petForm = petform.New(userID)
		a.screen = ScreenPetForm
		return a, a.petForm.Init()

	case petlist.EditMsg:
		a.petForm = petform.NewEdit(msg.Pet)
		a.screen = ScreenPetForm
		return a, a.petForm.Init()

	case petlist.DeleteMsg:
		return a, tea.Batch(a.startLoading(), a.deletePet(msg.Pet.ID))

	case petlist.RefreshMsg:
		return a, tea.Batch(a.startLoading(), a.loadPets())

	case petlist.BackMsg:
		a.screen = ScreenHome
		return a, tea.Batch(a.startLoading(), a.loadHome())

	case petform.SubmittedMsg:
		a.petForm = nil
		return a, tea.Batch(a.startLoading(), a.savePet(msg))

	case petform.CancelledMsg:
		a.petForm = nil
		a.screen = ScreenPets
		return a, nil

	case petSavedMsg:
		if msg.err != nil {
			a.loading = false
			a.status = msg.err.Error()
			a.screen = ScreenPets
			return a, nil
		}
		return a, a.loadPets()

	case petDeletedMsg:
		if msg.err != nil {
			a.loading = false
			a.status = msg.err.Error()
			return a, nil
		}
		// Drop any local photo association along with the remote record
		a.photos.Delete(msg.petID)
		return a, a.loadPets()

	case apptlist.SelectedMsg:
		a.apptDetail = msg.Appointment
		a.screen = ScreenApptDetail
		return a, nil

	case apptlist.AddMsg:
		if len(a.pets) == 0 {
			a.status = "add a pet before scheduling a visit"
			return a, nil
		}
		a.apptForm = apptform.New(a.pets)
		a.screen = ScreenApptForm
		return a, a.apptForm.Init()

	case apptlist.CancelVisitMsg:
		return a, tea.Batch(a.startLoading(), a.cancelAppointment(msg.Appointment.ID))

	case apptlist.RefreshMsg:
		return a, tea.Batch(a.startLoading(), a.loadAppointments())

	case apptlist.BackMsg:
		a.screen = ScreenHome
		return a, tea.Batch(a.startLoading(), a.loadHome())

	case apptform.SubmittedMsg:
		a.apptForm = nil
		return a, tea.Batch(a.startLoading(), a.createAppointment(msg.Create))

	case apptform.CancelledMsg:
		a.apptForm = nil
		a.screen = ScreenAppointments
		return a, nil

	case apptSavedMsg:
		if msg.err != nil {
			a.loading = false
			a.status = msg.err.Error()
			a.screen = ScreenAppointments
			return a, nil
		}
		return a, a.loadAppointments()

	case apptCancelledMsg:
		if msg.err != nil {
			a.loading = false
			a.status = msg.err.Error()
			return a, nil
		}
		return a, a.loadAppointments()

	case profileLoadedMsg:
		a.loading = false
		if msg.err != nil {
			a.status = msg.err.Error()
			return a, nil
		}
		a.user = msg.user
		a.status = ""
		a.screen = ScreenProfile
		return a, nil

	default:
		// Forward unknown messages to the active form (needed for huh internals)
		return a.forwardToChild(msg)
	}
}

// routeKey dispatches a key press to the current screen
func (a *App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin:
		return a.updateChild(msg)
	case ScreenRegister:
		return a.updateChild(msg)
	case ScreenHome:
		return a.updateHome(msg)
	case ScreenPets, ScreenAppointments:
		return a.updateChild(msg)
	case ScreenPetDetail:
		return a.updatePetDetail(msg)
	case ScreenApptDetail:
		return a.updateApptDetail(msg)
	case ScreenPetForm, ScreenApptForm:
		return a.updateChild(msg)
	case ScreenProfile:
		switch msg.String() {
		case "b", "esc":
			a.screen = ScreenHome
			return a, nil
		case "q":
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a *App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "p":
		if a.session.IdentityResolved() {
			return a, tea.Batch(a.startLoading(), a.loadPets())
		}
		a.status = "your account id could not be resolved; log out and log in again"
	case "v":
		if a.session.IdentityResolved() {
			return a, tea.Batch(a.startLoading(), a.loadAppointments())
		}
		a.status = "your account id could not be resolved; log out and log in again"
	case "u":
		if a.session.IdentityResolved() {
			return a, tea.Batch(a.startLoading(), a.loadProfile())
		}
		a.status = "your account id could not be resolved; log out and log in again"
	case "r":
		if a.session.IdentityResolved() {
			return a, tea.Batch(a.startLoading(), a.loadHome())
		}
	case "l":
		if err := a.orch.Logout(); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.session = session.Session{}
		a.pets = nil
		a.appts = nil
		a.user = nil
		a.petList = nil
		a.apptList = nil
		a.status = ""
		a.screen = ScreenLogin
		a.loginScreen = login.New()
		return a, a.loginScreen.Init()
	}
	return a, nil
}

func (a *App) updatePetDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "b", "esc":
		a.screen = ScreenPets
	case "e":
		a.petForm = petform.NewEdit(a.petDetail)
		a.screen = ScreenPetForm
		return a, a.petForm.Init()
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) updateApptDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "b", "esc":
		a.screen = ScreenAppointments
	case "c":
		if a.apptDetail.AppointmentStatus != api.StatusCancelled {
			return a, tea.Batch(a.startLoading(), a.cancelAppointment(a.apptDetail.ID))
		}
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

// updateChild forwards a message to the model owning the current screen
func (a *App) updateChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin:
		if a.loginScreen == nil {
			return a, nil
		}
		model, cmd := a.loginScreen.Update(msg)
		a.loginScreen = model.(*login.Login)
		return a, cmd
	case ScreenRegister:
		if a.registerScreen == nil {
			return a, nil
		}
		model, cmd := a.registerScreen.Update(msg)
		a.registerScreen = model.(*register.Register)
		return a, cmd
	case ScreenPets:
		if a.petList == nil {
			return a, nil
		}
		model, cmd := a.petList.Update(msg)
		a.petList = model.(*petlist.PetList)
		return a, cmd
	case ScreenAppointments:
		if a.apptList == nil {
			return a, nil
		}
		model, cmd := a.apptList.Update(msg)
		a.apptList = model.(*apptlist.ApptList)
		return a, cmd
	case ScreenPetForm:
		if a.petForm == nil {
			return a, nil
		}
		model, cmd := a.petForm.Update(msg)
		a.petForm = model.(*petform.PetForm)
		return a, cmd
	case ScreenApptForm:
		if a.apptForm == nil {
			return a, nil
		}
		model, cmd := a.apptForm.Update(msg)
		a.apptForm = model.(*apptform.ApptForm)
		return a, cmd
	}
	return a, nil
}

// forwardToChild passes through messages the root does not understand,
// which form components need for cursor blink and internal state
func (a *App) forwardToChild(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin, ScreenRegister, ScreenPetForm, ScreenApptForm:
		return a.updateChild(msg)
	}
	return a, nil
}

func (a *App) handleSession(msg sessionMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if msg.err != nil {
		debuglog.Error("sign in", msg.err)
		if a.screen == ScreenLogin && a.loginScreen != nil {
			a.loginScreen.SetError(msg.err.Error())
			return a, nil
		}
		a.status = msg.err.Error()
		return a, nil
	}

	a.session = msg.session
	a.loginScreen = nil
	a.registerScreen = nil
	a.status = ""
	a.screen = ScreenHome
	if a.session.IdentityResolved() {
		return a, tea.Batch(a.startLoading(), a.loadHome())
	}
	a.status = "your account id could not be resolved; listings are unavailable until you log in again"
	return a, nil
}

func (a *App) hasPhoto(petID int64) bool {
	_, ok := a.photos.Get(petID)
	return ok
}

func (a *App) startLoading() tea.Cmd {
	a.loading = true
	return a.spin.Tick
}

// doLogin authenticates and resolves the user's identity
func (a *App) doLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		s, err := a.orch.Login(context.Background(), email, password)
		if err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{session: *s}
	}
}

// doRegister creates the account and signs in with the same credentials
func (a *App) doRegister(input session.RegisterInput) tea.Cmd {
	return func() tea.Msg {
		s, err := a.orch.RegisterAndLogin(context.Background(), input)
		if err != nil {
			return sessionMsg{err: err}
		}
		return sessionMsg{session: *s}
	}
}

// loadHome fetches pets and appointments concurrently for the overview
func (a *App) loadHome() tea.Cmd {
	return func() tea.Msg {
		userID, err := a.orch.RequireUserID()
		if err != nil {
			return homeLoadedMsg{err: err}
		}

		g, ctx := errgroup.WithContext(context.Background())
		var pets []api.Pet
		var appts []api.Appointment
		g.Go(func() error {
			var err error
			pets, err = a.api.PetsByUser(ctx, userID)
			return err
		})
		g.Go(func() error {
			var err error
			appts, err = a.api.AppointmentsByUser(ctx, userID)
			return err
		})
		if err := g.Wait(); err != nil {
			return homeLoadedMsg{err: err}
		}
		return homeLoadedMsg{pets: pets, appts: appts}
	}
}

func (a *App) loadPets() tea.Cmd {
	return func() tea.Msg {
		userID, err := a.orch.RequireUserID()
		if err != nil {
			return petsLoadedMsg{err: err}
		}
		pets, err := a.api.PetsByUser(context.Background(), userID)
		return petsLoadedMsg{pets: pets, err: err}
	}
}

func (a *App) loadAppointments() tea.Cmd {
	return func() tea.Msg {
		userID, err := a.orch.RequireUserID()
		if err != nil {
			return apptsLoadedMsg{err: err}
		}
		appts, err := a.api.AppointmentsByUser(context.Background(), userID)
		return apptsLoadedMsg{appts: appts, err: err}
	}
}

func (a *App) loadProfile() tea.Cmd {
	return func() tea.Msg {
		userID, err := a.orch.RequireUserID()
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		user, err := a.api.GetUser(context.Background(), userID)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (a *App) savePet(msg petform.SubmittedMsg) tea.Cmd {
	return func() tea.Msg {
		var err error
		if msg.Create != nil {
			err = a.api.CreatePet(context.Background(), *msg.Create)
		} else if msg.Update != nil {
			err = a.api.UpdatePet(context.Background(), msg.PetID, *msg.Update)
		}
		return petSavedMsg{err: err}
	}
}

func (a *App) deletePet(petID int64) tea.Cmd {
	return func() tea.Msg {
		err := a.api.DeletePet(context.Background(), petID)
		return petDeletedMsg{petID: petID, err: err}
	}
}

func (a *App) createAppointment(create *api.AppointmentCreate) tea.Cmd {
	return func() tea.Msg {
		err := a.api.CreateAppointment(context.Background(), *create)
		return apptSavedMsg{err: err}
	}
}

// cancelAppointment sets the status to Cancelled; the record remains
func (a *App) cancelAppointment(id int64) tea.Cmd {
	return func() tea.Msg {
		status := api.StatusCancelled
		err := a.api.UpdateAppointment(context.Background(), id, api.AppointmentUpdate{AppointmentStatus: &status})
		return apptCancelledMsg{err: err}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLogin:
		content = a.viewChildOrEmpty()
	case ScreenRegister:
		content = a.viewChildOrEmpty()
	case ScreenHome:
		content = a.viewHome()
	case ScreenPets, ScreenAppointments, ScreenPetForm, ScreenApptForm:
		content = a.viewChildOrEmpty()
	case ScreenPetDetail:
		content = a.viewPetDetail()
	case ScreenApptDetail:
		content = a.viewApptDetail()
	case ScreenProfile:
		content = a.viewProfile()
	default:
		content = a.viewHome()
	}

	if a.loading {
		content = a.spin.View() + " Loading..."
	}
	if a.status != "" && !a.loading {
		content += "\n\n" + styles.StatusError.Render(a.status)
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewChildOrEmpty() string {
	switch a.screen {
	case ScreenLogin:
		if a.loginScreen != nil {
			return a.loginScreen.View()
		}
	case ScreenRegister:
		if a.registerScreen != nil {
			return a.registerScreen.View()
		}
	case ScreenPets:
		if a.petList != nil {
			return a.petList.View()
		}
	case ScreenAppointments:
		if a.apptList != nil {
			return a.apptList.View()
		}
	case ScreenPetForm:
		if a.petForm != nil {
			return a.petForm.View()
		}
	case ScreenApptForm:
		if a.apptForm != nil {
			return a.apptForm.View()
		}
	}
	return ""
}

// viewHome renders the overview with pet and appointment counts
func (a *App) viewHome() string {
	var sb strings.Builder

	name := a.session.DisplayName
	if name == "" {
		name = a.session.Email
	}
	sb.WriteString(styles.Title.Render(fmt.Sprintf("Welcome, %s", name)))
	sb.WriteString("  ")
	sb.WriteString(widgets.SessionBadge(a.session.Token != "", a.session.IdentityResolved()))
	sb.WriteString("\n\n")

	scheduled := 0
	for _, ap := range a.appts {
		if ap.AppointmentStatus == api.StatusScheduled {
			scheduled++
		}
	}

	left := fmt.Sprintf("%s Pets\n\n%s", icons.Paw.String(), styles.ValueStyle.Render(fmt.Sprintf("%d", len(a.pets))))
	right := fmt.Sprintf("%s Scheduled visits\n\n%s", icons.Calendar.String(), styles.ValueStyle.Render(fmt.Sprintf("%d", scheduled)))
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Panel.Width(24).Render(left),
		styles.Panel.Width(24).Render(right),
	))
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("p pets • v visits • u profile • r refresh • l log out • q quit"))
	return sb.String()
}

func (a *App) viewPetDetail() string {
	pet := a.petDetail
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s %s", icons.Paw.String(), pet.Name)))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Species:   %s\n", orDash(pet.Species)))
	sb.WriteString(fmt.Sprintf("Breed:     %s\n", orDash(pet.Breed)))
	sb.WriteString(fmt.Sprintf("Color:     %s\n", orDash(pet.Color)))
	sb.WriteString(fmt.Sprintf("Sex:       %s\n", orDash(pet.Sex)))
	sb.WriteString(fmt.Sprintf("Birth:     %s\n", orDash(pet.BirthDate)))
	if pet.Weight > 0 {
		sb.WriteString(fmt.Sprintf("Weight:    %.1f kg\n", pet.Weight))
	}
	sb.WriteString(fmt.Sprintf("Allergies: %s\n", orDash(pet.Allergies)))
	if uri, ok := a.photos.Get(pet.ID); ok {
		sb.WriteString(fmt.Sprintf("%s Photo:   %s\n", icons.Photo.String(), uri))
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("e edit • b back • q quit"))
	return sb.String()
}

func (a *App) viewApptDetail() string {
	ap := a.apptDetail
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(fmt.Sprintf("%s Visit %d", icons.Stethoscope.String(), ap.ID)))
	sb.WriteString("  ")
	sb.WriteString(widgets.AppointmentBadge(ap.AppointmentStatus))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Pet:       %d\n", ap.PetID))
	sb.WriteString(fmt.Sprintf("Date:      %s\n", ap.AppointmentDate))
	sb.WriteString(fmt.Sprintf("Type:      %s\n", orDash(string(ap.AppointmentType))))
	sb.WriteString(fmt.Sprintf("Vet:       %s\n", orDash(ap.VeterinaryName)))
	sb.WriteString(fmt.Sprintf("Reason:    %s\n", orDash(ap.ReasonForVisit)))
	sb.WriteString(fmt.Sprintf("Notes:     %s\n", orDash(ap.Notes)))
	sb.WriteString(fmt.Sprintf("Diagnosis: %s\n", orDash(ap.Diagnosis)))
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("c cancel • b back • q quit"))
	return sb.String()
}

func (a *App) viewProfile() string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(icons.User.String() + " Profile"))
	sb.WriteString("\n\n")
	if a.user != nil {
		sb.WriteString(fmt.Sprintf("Name:  %s\n", orDash(a.user.DisplayName())))
		sb.WriteString(fmt.Sprintf("Email: %s\n", orDash(a.user.Email)))
		sb.WriteString(fmt.Sprintf("Phone: %s\n", orDash(a.user.PhoneNumber)))
		sb.WriteString(fmt.Sprintf("Role:  %s\n", orDash(a.user.Role)))
	}
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("b back • q quit"))
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// contentHeight calculates the height available for screen content
func (a *App) contentHeight() int {
	// Header, footer, and their spacing take 4 lines
	h := a.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

// renderHeader creates the header bar with app branding and session state
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("PetRadar"))

	rightText := ""
	if a.session.Email != "" && a.screen != ScreenLogin && a.screen != ScreenRegister {
		rightText = contextStyle.Render(a.session.Email) + " "
	}

	leftRendered := lipgloss.NewStyle().Render(leftText)
	rightRendered := lipgloss.NewStyle().Align(lipgloss.Right).Render(rightText)

	fillWidth := width - 4 - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftRendered + strings.Repeat("─", fillWidth) + rightRendered + "─╮"
	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"enter Submit", "tab Switch", "ctrl+r Register", "esc Quit"}
	case ScreenRegister:
		shortcuts = []string{"enter Next", "esc Back"}
	case ScreenHome:
		shortcuts = []string{"p Pets", "v Visits", "u Profile", "l Log out", "q Quit"}
	case ScreenPets:
		shortcuts = []string{"enter Open", "a Add", "e Edit", "x Delete", "b Back"}
	case ScreenAppointments:
		shortcuts = []string{"enter Open", "a Schedule", "c Cancel", "b Back"}
	case ScreenPetDetail:
		shortcuts = []string{"e Edit", "b Back", "q Quit"}
	case ScreenApptDetail:
		shortcuts = []string{"c Cancel", "b Back", "q Quit"}
	case ScreenPetForm, ScreenApptForm:
		shortcuts = []string{"enter Next", "esc Cancel"}
	case ScreenProfile:
		shortcuts = []string{"b Back", "q Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	fillWidth := width - 4 - lipgloss.Width(leftPlainText)
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + "─╯"
	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(apiClient *api.Client, orch *session.Orchestrator, photos *store.Photos) error {
	if cfg, err := config.Load(); err == nil {
		debuglog.Init(cfg.ConfigDir)
	}
	defer debuglog.Close()

	app := New(apiClient, orch, photos)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
