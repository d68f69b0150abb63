package app

import (
	"context"
	"strings"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/credentials"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/logger"
	"github.com/zfogg/streamline/pkg/session"
)

func validateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return apperrors.Validation("email", "is required")
	}
	if password == "" {
		return apperrors.Validation("password", "is required")
	}
	return nil
}

// Login authenticates, persists the session and loads its data.
func (a *App) Login(ctx context.Context, email, password string) (*api.User, error) {
	email = strings.TrimSpace(email)
	if err := validateLogin(email, password); err != nil {
		return nil, err
	}

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return nil, a.fail("Login", err)
	}
	return a.startSession(ctx, resp)
}

// Register creates an account and signs in with it.
func (a *App) Register(ctx context.Context, req api.RegisterRequest) (*api.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Mobile = strings.TrimSpace(req.Mobile)
	if err := validateLogin(req.Email, req.Password); err != nil {
		return nil, err
	}

	resp, err := a.api.Register(ctx, req)
	if err != nil {
		return nil, a.fail("Registration", err)
	}
	return a.startSession(ctx, resp)
}

func (a *App) startSession(ctx context.Context, resp *api.AuthResponse) (*api.User, error) {
	if resp.Token == "" {
		return nil, a.fail("Login", apperrors.New(apperrors.KindServer, "Server returned no token", nil))
	}

	a.mu.Lock()
	a.token = resp.Token
	a.mu.Unlock()
	a.api.SetToken(resp.Token)

	// The session works for this run even if it cannot be saved.
	if err := a.creds.Save(&credentials.Credentials{Token: resp.Token, User: resp.User}); err != nil {
		logger.Warn("Failed to save credentials", "error", err)
	}

	a.resetData()
	a.dispatch(session.LoggedIn{User: resp.User})
	logger.Info("Logged in", "email", resp.User.Email)

	if err := a.Refresh(ctx); err != nil {
		return nil, err
	}
	user := resp.User
	return &user, nil
}

// Logout ends the session and forgets all local data. It never calls
// the backend, so it cannot fail remotely.
func (a *App) Logout(ctx context.Context) error {
	if a.tracker.Running() {
		if _, err := a.tracker.Stop(ctx); err != nil {
			logger.Warn("Failed to stop tracking on logout", "error", err)
		}
	}

	a.api.ClearToken()
	a.mu.Lock()
	a.token = ""
	a.mu.Unlock()

	a.resetData()
	a.dispatch(session.LoggedOut{})

	if err := a.creds.Delete(); err != nil {
		return apperrors.New(apperrors.KindUnknown, "Failed to remove stored credentials", err)
	}
	return nil
}

// UpdateProfile changes name and/or mobile. Nil fields are left alone.
func (a *App) UpdateProfile(ctx context.Context, name, mobile *string) (*api.User, error) {
	if err := a.requireSession(); err != nil {
		return nil, err
	}
	if name == nil && mobile == nil {
		return nil, apperrors.Validation("profile", "has nothing to update")
	}

	user, err := a.api.UpdateProfile(ctx, api.UpdateProfileRequest{Name: name, Mobile: mobile})
	if err != nil {
		return nil, a.fail("Profile update", err)
	}

	a.dispatch(session.ProfileUpdated{User: *user})

	a.mu.RLock()
	token := a.token
	a.mu.RUnlock()
	if err := a.creds.Save(&credentials.Credentials{Token: token, User: *user}); err != nil {
		logger.Warn("Failed to save credentials", "error", err)
	}
	return user, nil
}
