// ABOUTME: Tests for the root TUI model
// ABOUTME: Verifies screen routing driven by session and data messages

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petradar/internal/api"
	"petradar/internal/session"
	"petradar/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	creds := store.NewCredentials(dir)
	client := api.New("http://127.0.0.1:1", time.Second, creds)
	orch := session.New(client, creds)
	return New(client, orch, store.NewPhotos(dir))
}

func update(t *testing.T, a *App, msg tea.Msg) *App {
	t.Helper()
	model, _ := a.Update(msg)
	app, ok := model.(*App)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return app
}

func TestApp_StartsOnLoginWhenLoggedOut(t *testing.T) {
	a := newTestApp(t)
	if a.screen != ScreenLogin {
		t.Fatalf("expected login screen, got %d", a.screen)
	}
	if !strings.Contains(a.View(), "Sign in") {
		t.Error("expected login form in view")
	}
}

func TestApp_SessionMessageMovesToHome(t *testing.T) {
	a := newTestApp(t)
	a = update(t, a, sessionMsg{session: session.Session{Token: "T1", UserID: 42, Email: "a@b.com", DisplayName: "Ana"}})

	if a.screen != ScreenHome {
		t.Fatalf("expected home screen, got %d", a.screen)
	}
	a.loading = false
	if !strings.Contains(a.View(), "Welcome, Ana") {
		t.Errorf("expected welcome line:\n%s", a.View())
	}
}

func TestApp_DegradedSessionShowsNotice(t *testing.T) {
	a := newTestApp(t)
	a = update(t, a, sessionMsg{session: session.Session{Token: "T1", Email: "a@b.com"}})

	if a.screen != ScreenHome {
		t.Fatalf("expected home screen, got %d", a.screen)
	}
	if !strings.Contains(a.View(), "could not be resolved") {
		t.Error("expected degraded-session notice")
	}

	// Owner-scoped screens refuse to load
	a = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if a.screen != ScreenHome {
		t.Errorf("expected to stay on home, got %d", a.screen)
	}
}

func TestApp_FailedLoginStaysOnLoginScreen(t *testing.T) {
	a := newTestApp(t)
	a = update(t, a, sessionMsg{err: errTest})

	if a.screen != ScreenLogin {
		t.Fatalf("expected login screen, got %d", a.screen)
	}
	if !strings.Contains(a.View(), "incorrect email or password") {
		t.Errorf("expected error shown in login form:\n%s", a.View())
	}
}

func TestApp_PetsLoadedOpensList(t *testing.T) {
	a := newTestApp(t)
	a.session = session.Session{Token: "T1", UserID: 42}
	a.screen = ScreenHome

	a = update(t, a, petsLoadedMsg{pets: []api.Pet{{ID: 7, Name: "Rex", Species: "Dog"}}})
	if a.screen != ScreenPets {
		t.Fatalf("expected pets screen, got %d", a.screen)
	}
	if !strings.Contains(a.View(), "Rex") {
		t.Error("expected pet row in view")
	}
}

func TestApp_HomeLoadedPopulatesCounts(t *testing.T) {
	a := newTestApp(t)
	a.session = session.Session{Token: "T1", UserID: 42, DisplayName: "Ana"}
	a.screen = ScreenHome

	a = update(t, a, homeLoadedMsg{
		pets: []api.Pet{{ID: 7}, {ID: 9}},
		appts: []api.Appointment{
			{ID: 1, AppointmentStatus: api.StatusScheduled},
			{ID: 2, AppointmentStatus: api.StatusCancelled},
		},
	})

	view := a.View()
	if !strings.Contains(view, "Pets") || !strings.Contains(view, "Scheduled visits") {
		t.Errorf("expected overview panels:\n%s", view)
	}
}

func TestApp_FrameShowsBrandingAndEmail(t *testing.T) {
	a := newTestApp(t)
	a.session = session.Session{Token: "T1", UserID: 42, Email: "a@b.com"}
	a.screen = ScreenHome

	view := a.View()
	if !strings.Contains(view, "PetRadar") {
		t.Error("expected app name in header")
	}
	if !strings.Contains(view, "a@b.com") {
		t.Error("expected session email in header")
	}
}

var errTest = errTestType{}

type errTestType struct{}

func (errTestType) Error() string { return "incorrect email or password" }
