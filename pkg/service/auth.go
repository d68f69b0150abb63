package service

import (
	"context"
	"fmt"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/app"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/formatter"
	"github.com/zfogg/streamline/pkg/output"
	"github.com/zfogg/streamline/pkg/prompter"
)

type AuthService struct {
	app *app.App
}

// NewAuthService creates a new auth service
func NewAuthService(a *app.App) *AuthService {
	return &AuthService{app: a}
}

// confirmRelogin asks before replacing a stored session. It reports
// whether to continue.
func (s *AuthService) confirmRelogin(ctx context.Context) (bool, error) {
	if err := boot(ctx, s.app); err != nil {
		return false, err
	}
	user := s.app.User()
	if user == nil {
		return true, nil
	}
	output.PrintWarning("Already logged in as %s", user.Email)
	return prompter.PromptConfirm("Continue with new login?")
}

// Login handles user login
func (s *AuthService) Login(ctx context.Context, email string) error {
	ok, err := s.confirmRelogin(ctx)
	if err != nil || !ok {
		return err
	}

	if email == "" {
		if email, err = prompter.PromptString("Email: "); err != nil {
			return err
		}
	}
	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}

	output.PrintInfo("Authenticating...")
	user, err := s.app.Login(ctx, email, password)
	if err != nil {
		return err
	}

	output.PrintSuccess("✓ Login successful!")
	output.PrintInfo("Logged in as %s", formatter.Bold.Sprint(user.DisplayName()))
	return nil
}

// Register creates an account and logs in with it
func (s *AuthService) Register(ctx context.Context, req api.RegisterRequest) error {
	ok, err := s.confirmRelogin(ctx)
	if err != nil || !ok {
		return err
	}

	if req.Email == "" {
		if req.Email, err = prompter.PromptString("Email: "); err != nil {
			return err
		}
	}
	if req.Name == "" {
		if req.Name, err = prompter.PromptString("Name (optional): "); err != nil {
			return err
		}
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := prompter.PromptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return apperrors.Validation("passwords", "do not match")
	}
	req.Password = password

	output.PrintInfo("Creating account...")
	user, err := s.app.Register(ctx, req)
	if err != nil {
		return err
	}

	output.PrintSuccess("✓ Account created!")
	output.PrintInfo("Logged in as %s", formatter.Bold.Sprint(user.DisplayName()))
	return nil
}

// Logout handles user logout
func (s *AuthService) Logout(ctx context.Context, force bool) error {
	if err := boot(ctx, s.app); err != nil {
		return err
	}
	user := s.app.User()
	if user == nil {
		output.PrintWarning("Not logged in")
		return nil
	}

	if !force {
		confirm, err := prompter.PromptConfirm(fmt.Sprintf("Log out %s?", user.Email))
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	if err := s.app.Logout(ctx); err != nil {
		return err
	}
	output.PrintSuccess("✓ Logged out successfully")
	return nil
}

// WhoAmI prints the signed-in user
func (s *AuthService) WhoAmI(ctx context.Context) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	return printUser(s.app.User())
}

func printUser(user *api.User) error {
	fields := []output.Field{
		{Key: "ID", Value: user.ID},
		{Key: "Email", Value: user.Email},
		{Key: "Name", Value: orDash(user.Name)},
		{Key: "Mobile", Value: orDash(user.Mobile)},
	}
	return output.PrintRecord("Profile", user, fields)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
