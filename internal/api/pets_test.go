// ABOUTME: Tests for pet and appointment endpoints
// ABOUTME: Verifies paths, methods and partial-update normalization

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPetsByUser_Path(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/UserPets/user/42" {
			t.Errorf("expected path /api/UserPets/user/42, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Pet{{ID: 7, UserID: 42, Name: "Rex", Species: "Dog"}})
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	pets, err := c.PetsByUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pets) != 1 || pets[0].Name != "Rex" {
		t.Errorf("unexpected pets: %+v", pets)
	}
}

func TestUpdatePet_NormalizesClearedStrings(t *testing.T) {
	var sent map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/api/UserPets/7" {
			t.Errorf("expected path /api/UserPets/7, got %s", r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &sent)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	err := c.UpdatePet(context.Background(), 7, PetUpdate{
		Name:  String("Rex"),
		Breed: String("   "), // cleared field, must be dropped before send
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent["name"] != "Rex" {
		t.Errorf("expected name Rex in body, got %v", sent["name"])
	}
	if _, present := sent["breed"]; present {
		t.Error("expected cleared breed to be omitted from body")
	}
}

func TestCreateAppointment_Body(t *testing.T) {
	var sent AppointmentCreate
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/VeterinaryAppointments" {
			t.Errorf("expected path /api/VeterinaryAppointments, got %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&sent)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	err := c.CreateAppointment(context.Background(), AppointmentCreate{
		PetID:             7,
		AppointmentType:   TypeVaccination,
		AppointmentStatus: StatusScheduled,
		AppointmentDate:   "2026-09-15T10:00:00Z",
		ReasonForVisit:    "Annual shots",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent.AppointmentType != TypeVaccination {
		t.Errorf("expected Vaccination, got %s", sent.AppointmentType)
	}
	if sent.AppointmentStatus != StatusScheduled {
		t.Errorf("expected Scheduled, got %s", sent.AppointmentStatus)
	}
}

func TestAppointmentsByPet_Path(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/VeterinaryAppointments/pet/7" {
			t.Errorf("expected path /api/VeterinaryAppointments/pet/7, got %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Appointment{{ID: 1, PetID: 7, AppointmentDate: "2026-09-15T10:00:00Z"}})
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	appts, err := c.AppointmentsByPet(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appts) != 1 || appts[0].PetID != 7 {
		t.Errorf("unexpected appointments: %+v", appts)
	}
}

func TestDeletePet_Method(t *testing.T) {
	var gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := New(server.URL, 0, nil)
	if err := c.DeletePet(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("expected DELETE, got %s", gotMethod)
	}
}

func TestAppointmentEnums(t *testing.T) {
	if !TypeGrooming.Valid() {
		t.Error("Grooming should be valid")
	}
	if AppointmentType("Teeth").Valid() {
		t.Error("Teeth should not be valid")
	}
	if !StatusCancelled.Valid() {
		t.Error("Cancelled should be valid")
	}
	if AppointmentStatus("Done").Valid() {
		t.Error("Done should not be valid")
	}
	if len(AppointmentTypes()) != 6 {
		t.Errorf("expected 6 appointment types, got %d", len(AppointmentTypes()))
	}
}
