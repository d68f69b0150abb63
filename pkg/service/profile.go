package service

import (
	"context"

	"github.com/zfogg/streamline/pkg/app"
	"github.com/zfogg/streamline/pkg/output"
	"github.com/zfogg/streamline/pkg/prompter"
)

type ProfileService struct {
	app *app.App
}

// NewProfileService creates a new profile service
func NewProfileService(a *app.App) *ProfileService {
	return &ProfileService{app: a}
}

// Show prints the current profile
func (s *ProfileService) Show(ctx context.Context) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	return printUser(s.app.User())
}

// Update changes name and/or mobile. With neither given it prompts for
// both, keeping the current values as defaults.
func (s *ProfileService) Update(ctx context.Context, name, mobile *string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}

	if name == nil && mobile == nil {
		current := s.app.User()
		newName, err := prompter.PromptDefault("Name", current.Name)
		if err != nil {
			return err
		}
		newMobile, err := prompter.PromptDefault("Mobile", current.Mobile)
		if err != nil {
			return err
		}
		if newName != current.Name {
			name = &newName
		}
		if newMobile != current.Mobile {
			mobile = &newMobile
		}
		if name == nil && mobile == nil {
			output.PrintInfo("Nothing changed.")
			return nil
		}
	}

	user, err := s.app.UpdateProfile(ctx, name, mobile)
	if err != nil {
		return err
	}
	output.PrintSuccess("✓ Profile updated")
	return printUser(user)
}
