package service

import (
	"context"
	"time"

	"github.com/zfogg/streamline/pkg/api"
	"github.com/zfogg/streamline/pkg/app"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/output"
)

const dateLayout = "2006-01-02"

type ExportService struct {
	app *app.App
}

// NewExportService creates a new export service
func NewExportService(a *app.App) *ExportService {
	return &ExportService{app: a}
}

// ParseDateRange parses optional YYYY-MM-DD bounds in the local zone.
func ParseDateRange(from, to string) (api.DateRange, error) {
	var r api.DateRange
	if from != "" {
		t, err := time.ParseInLocation(dateLayout, from, time.Local)
		if err != nil {
			return r, apperrors.Validation("from", "must be YYYY-MM-DD")
		}
		r.Start = &t
	}
	if to != "" {
		t, err := time.ParseInLocation(dateLayout, to, time.Local)
		if err != nil {
			return r, apperrors.Validation("to", "must be YYYY-MM-DD")
		}
		r.End = &t
	}
	return r, nil
}

// Export downloads target in format and reports where it was saved
func (s *ExportService) Export(ctx context.Context, target api.ExportTarget, format api.ExportFormat, from, to string) error {
	if err := requireLogin(ctx, s.app); err != nil {
		return err
	}
	r, err := ParseDateRange(from, to)
	if err != nil {
		return err
	}

	output.PrintInfo("Exporting %s as %s...", target, format)
	path, err := s.app.Export(ctx, target, format, r)
	if err != nil {
		return err
	}
	if output.GetOutputFormat() == output.FormatJSON {
		return output.PrintJSON(map[string]string{"path": path})
	}
	output.PrintSuccess("✓ Saved %s", path)
	return nil
}
