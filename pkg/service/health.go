package service

import (
	"context"

	"github.com/zfogg/streamline/pkg/app"
	"github.com/zfogg/streamline/pkg/config"
	"github.com/zfogg/streamline/pkg/output"
)

type HealthService struct {
	app *app.App
}

// NewHealthService creates a new health check service
func NewHealthService(a *app.App) *HealthService {
	return &HealthService{app: a}
}

// Check pings the backend. No login is needed.
func (s *HealthService) Check(ctx context.Context) error {
	resp, err := s.app.Health(ctx)
	if err != nil {
		return err
	}
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(resp)
	}
	output.PrintSuccess("✓ %s is %s", config.GetString("api.base_url"), resp.Status)
	return nil
}
