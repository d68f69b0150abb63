package api

import (
	"context"
	"net/http"

	"github.com/zfogg/streamline/pkg/logger"
)

// Login authenticates user with email and password
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	logger.Debug("Attempting login", "email", email)

	var authResp AuthResponse
	err := c.send(ctx, http.MethodPost, "/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	}, &authResp)
	if err != nil {
		return nil, err
	}

	logger.Debug("Login successful", "user_id", authResp.User.ID)
	return &authResp, nil
}

// Register creates an account and returns its session
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	logger.Debug("Registering account", "email", req.Email)

	var authResp AuthResponse
	if err := c.send(ctx, http.MethodPost, "/auth/register", req, &authResp); err != nil {
		return nil, err
	}

	logger.Debug("Registration successful", "user_id", authResp.User.ID)
	return &authResp, nil
}

// UpdateProfile changes the name and/or mobile of the current user
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	logger.Debug("Updating profile")

	var profileResp ProfileResponse
	if err := c.send(ctx, http.MethodPut, "/auth/profile", req, &profileResp); err != nil {
		return nil, err
	}
	return &profileResp.User, nil
}

// Health pings the backend
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.send(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}
