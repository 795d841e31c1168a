// ABOUTME: Auth endpoints of the PetRadar API
// ABOUTME: Login and token refresh against /api/gate/Login

package api

import (
	"context"
	"net/http"
)

// Login calls POST /api/gate/Login. The response carries tokens only; the
// user id must be resolved separately.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/gate/Login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh calls POST /api/gate/Login/refresh
func (c *Client) Refresh(ctx context.Context, req RefreshRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/gate/Login/refresh", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
