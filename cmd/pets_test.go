// ABOUTME: Tests for the pet and appointment commands
// ABOUTME: Covers owner-scope guards, list formatting and the cancel semantics

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"petradar/internal/api"
	"petradar/internal/store"
)

// loggedIn seeds a resolved session in the temp config dir
func loggedIn(t *testing.T, userID int64) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PETRADAR_CONFIG_DIR", dir)
	creds := store.NewCredentials(dir)
	if err := creds.SaveToken("T1", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := creds.SaveIdentity(userID, "a@b.com", "Ana"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunPetsList_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/UserPets/user/42" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer T1" {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode([]api.Pet{
			{ID: 7, UserID: 42, Name: "Rex", Species: "Dog", Breed: "Beagle"},
		})
	}))
	defer server.Close()
	t.Setenv("PETRADAR_API_URL", server.URL)
	loggedIn(t, 42)

	var buf bytes.Buffer
	if exitCode := runPetsList(context.Background(), &buf); exitCode != 0 {
		t.Fatalf("expected exit 0, got %d: %s", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), "Rex") || !strings.Contains(buf.String(), "Beagle") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestRunPetsList_UnresolvedIdentityRefuses(t *testing.T) {
	t.Setenv("PETRADAR_API_URL", "http://127.0.0.1:1")
	loggedIn(t, 0)

	var buf bytes.Buffer
	if exitCode := runPetsList(context.Background(), &buf); exitCode != 1 {
		t.Fatalf("expected refusal for unresolved id, got exit %d", exitCode)
	}
	if !strings.Contains(buf.String(), "could not be resolved") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestRunPetsRm_DropsPhotoAssociation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	t.Setenv("PETRADAR_API_URL", server.URL)
	loggedIn(t, 42)

	dir := os.Getenv("PETRADAR_CONFIG_DIR")
	photos := store.NewPhotos(dir)
	if err := photos.Save(7, "file:///rex.jpg"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if exitCode := runPetsRm(context.Background(), &buf, 7); exitCode != 0 {
		t.Fatalf("expected exit 0, got %d: %s", exitCode, buf.String())
	}

	if _, ok := store.NewPhotos(dir).Get(7); ok {
		t.Error("expected photo association removed with the pet")
	}
}

func TestRunPetsPhoto_RoundTrip(t *testing.T) {
	t.Setenv("PETRADAR_API_URL", "http://127.0.0.1:1")
	loggedIn(t, 42)

	var buf bytes.Buffer
	if exitCode := runPetsPhoto(&buf, 7, "file:///rex.jpg", false); exitCode != 0 {
		t.Fatalf("save failed: %s", buf.String())
	}

	buf.Reset()
	if exitCode := runPetsPhoto(&buf, 7, "", false); exitCode != 0 {
		t.Fatalf("show failed: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "file:///rex.jpg") {
		t.Errorf("unexpected output: %s", buf.String())
	}

	buf.Reset()
	if exitCode := runPetsPhoto(&buf, 7, "", true); exitCode != 0 {
		t.Fatalf("clear failed: %s", buf.String())
	}
	buf.Reset()
	if exitCode := runPetsPhoto(&buf, 7, "", false); exitCode != 1 {
		t.Fatal("expected exit 1 when no association remains")
	}
}

func TestRunApptsCancel_SendsCancelledStatus(t *testing.T) {
	var sent api.AppointmentUpdate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/VeterinaryAppointments/5" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&sent)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	t.Setenv("PETRADAR_API_URL", server.URL)
	loggedIn(t, 42)

	var buf bytes.Buffer
	if exitCode := runApptsCancel(context.Background(), &buf, 5); exitCode != 0 {
		t.Fatalf("expected exit 0, got %d: %s", exitCode, buf.String())
	}
	if sent.AppointmentStatus == nil || *sent.AppointmentStatus != api.StatusCancelled {
		t.Errorf("expected status Cancelled in body, got %+v", sent.AppointmentStatus)
	}
	if sent.AppointmentDate != nil || sent.ReasonForVisit != nil {
		t.Error("cancel must not touch other fields")
	}
}

func TestRunApptsList_ByPet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/VeterinaryAppointments/pet/7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]api.Appointment{
			{ID: 5, PetID: 7, AppointmentDate: "2026-09-15T10:00:00Z", AppointmentType: api.TypeCheckup, AppointmentStatus: api.StatusScheduled},
		})
	}))
	defer server.Close()
	t.Setenv("PETRADAR_API_URL", server.URL)
	loggedIn(t, 42)

	var buf bytes.Buffer
	if exitCode := runApptsList(context.Background(), &buf, 7); exitCode != 0 {
		t.Fatalf("expected exit 0, got %d: %s", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), "Checkup") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
