package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/zfogg/streamline/pkg/api"
	apperrors "github.com/zfogg/streamline/pkg/errors"
	"github.com/zfogg/streamline/pkg/logger"
)

// ExportFileName is the fixed download name for target and format.
func ExportFileName(target api.ExportTarget, format api.ExportFormat) string {
	return string(target) + "." + format.Extension()
}

// Export downloads a rendered export and writes it into the download
// directory, replacing any earlier file of the same name. It returns
// the written path.
func (a *App) Export(ctx context.Context, target api.ExportTarget, format api.ExportFormat, r api.DateRange) (string, error) {
	if err := a.requireSession(); err != nil {
		return "", err
	}
	if target != api.ExportTodos && target != api.ExportTickets {
		return "", apperrors.Validation("export target", "must be todos or tickets")
	}
	if !format.Valid() {
		return "", apperrors.Validation("format", "must be pdf or excel")
	}
	if r.Start != nil && r.End != nil && r.End.Before(*r.Start) {
		return "", apperrors.Validation("date range", "ends before it starts")
	}

	dir := a.opts.DownloadDir
	if dir == "" {
		dir = "."
	}

	data, err := a.api.Export(ctx, target, format, r)
	if err != nil {
		return "", a.fail("Export", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", apperrors.New(apperrors.KindUnknown, "Failed to create download directory", err)
	}
	path := filepath.Join(dir, ExportFileName(target, format))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", apperrors.New(apperrors.KindUnknown, "Failed to save export", err)
	}

	logger.Info("Export saved", "path", path, "bytes", len(data))
	return path, nil
}
