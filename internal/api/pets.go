// ABOUTME: Pet endpoints of the PetRadar API
// ABOUTME: CRUD against /api/UserPets, scoped by pet id or owner id

package api

import (
	"context"
	"fmt"
	"net/http"
)

// PetsByUser calls GET /api/UserPets/user/{userId}
func (c *Client) PetsByUser(ctx context.Context, userID int64) ([]Pet, error) {
	var pets []Pet
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/UserPets/user/%d", userID), nil, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

// Pet calls GET /api/UserPets/{id}
func (c *Client) Pet(ctx context.Context, petID int64) (*Pet, error) {
	var pet Pet
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/UserPets/%d", petID), nil, &pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

// CreatePet calls POST /api/UserPets. The API does not return the created
// record, so the new pet's id is unknown until the list is refetched.
func (c *Client) CreatePet(ctx context.Context, req PetCreate) error {
	return c.do(ctx, http.MethodPost, "/api/UserPets", req, nil)
}

// UpdatePet calls PUT /api/UserPets/{id}. Empty strings in the update are
// normalized to absent before send.
func (c *Client) UpdatePet(ctx context.Context, petID int64, req PetUpdate) error {
	req.normalize()
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/UserPets/%d", petID), req, nil)
}

// DeletePet calls DELETE /api/UserPets/{id}
func (c *Client) DeletePet(ctx context.Context, petID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/UserPets/%d", petID), nil, nil)
}
