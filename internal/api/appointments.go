// ABOUTME: Veterinary appointment endpoints of the PetRadar API
// ABOUTME: CRUD against /api/VeterinaryAppointments, scoped by id, owner or pet

package api

import (
	"context"
	"fmt"
	"net/http"
)

// AppointmentsByUser calls GET /api/VeterinaryAppointments/user/{userId}
func (c *Client) AppointmentsByUser(ctx context.Context, userID int64) ([]Appointment, error) {
	var appts []Appointment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/VeterinaryAppointments/user/%d", userID), nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// AppointmentsByPet calls GET /api/VeterinaryAppointments/pet/{petId}
func (c *Client) AppointmentsByPet(ctx context.Context, petID int64) ([]Appointment, error) {
	var appts []Appointment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/VeterinaryAppointments/pet/%d", petID), nil, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// Appointment calls GET /api/VeterinaryAppointments/{id}
func (c *Client) Appointment(ctx context.Context, id int64) (*Appointment, error) {
	var appt Appointment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/VeterinaryAppointments/%d", id), nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

// CreateAppointment calls POST /api/VeterinaryAppointments
func (c *Client) CreateAppointment(ctx context.Context, req AppointmentCreate) error {
	return c.do(ctx, http.MethodPost, "/api/VeterinaryAppointments", req, nil)
}

// UpdateAppointment calls PUT /api/VeterinaryAppointments/{id}. Empty
// strings in the update are normalized to absent before send.
func (c *Client) UpdateAppointment(ctx context.Context, id int64, req AppointmentUpdate) error {
	req.normalize()
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/VeterinaryAppointments/%d", id), req, nil)
}

// DeleteAppointment calls DELETE /api/VeterinaryAppointments/{id}
func (c *Client) DeleteAppointment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/VeterinaryAppointments/%d", id), nil, nil)
}
