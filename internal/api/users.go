// ABOUTME: Users endpoints of the PetRadar API
// ABOUTME: Registration, lookup, listing, partial update and deletion

package api

import (
	"context"
	"fmt"
	"net/http"
)

// CreateUser calls POST /api/Users (registration). No token is returned;
// callers log in afterwards.
func (c *Client) CreateUser(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/Users", req, nil)
}

// ListUsers calls GET /api/Users
func (c *Client) ListUsers(ctx context.Context) ([]UserProfile, error) {
	var users []UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/Users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser calls GET /api/Users/{id}
func (c *Client) GetUser(ctx context.Context, userID int64) (*UserProfile, error) {
	var user UserProfile
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/Users/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser calls PUT /api/Users/{id}. Empty strings in the update are
// normalized to absent before send.
func (c *Client) UpdateUser(ctx context.Context, userID int64, req UserUpdate) error {
	req.normalize()
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/Users/%d", userID), req, nil)
}

// DeleteUser calls DELETE /api/Users/{id}
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/Users/%d", userID), nil, nil)
}
