package api

import (
	"context"
	"fmt"

	"github.com/zfogg/streamline/pkg/logger"
)

// ExportFormat selects the binary payload the backend renders.
type ExportFormat string

const (
	ExportPDF   ExportFormat = "pdf"
	ExportExcel ExportFormat = "excel"
)

// Extension returns the file extension for saved downloads.
func (f ExportFormat) Extension() string {
	if f == ExportExcel {
		return "xlsx"
	}
	return "pdf"
}

// Valid reports whether f is a known export format.
func (f ExportFormat) Valid() bool {
	return f == ExportPDF || f == ExportExcel
}

// ExportTarget selects which collection is exported.
type ExportTarget string

const (
	ExportTodos   ExportTarget = "todos"
	ExportTickets ExportTarget = "tickets"
)

const exportDateLayout = "2006-01-02"

func exportPath(target ExportTarget, format ExportFormat) string {
	if target == ExportTickets {
		return fmt.Sprintf("/export/tickets/%s", format)
	}
	return fmt.Sprintf("/export/%s", format)
}

// Export downloads the rendered export of target. Dates in r are sent
// as YYYY-MM-DD.
func (c *Client) Export(ctx context.Context, target ExportTarget, format ExportFormat, r DateRange) ([]byte, error) {
	logger.Debug("Exporting", "target", target, "format", format)

	req := c.request(ctx).SetHeader("Accept", "*/*")
	if r.Start != nil {
		req.SetQueryParam("start_date", r.Start.Format(exportDateLayout))
	}
	if r.End != nil {
		req.SetQueryParam("end_date", r.End.Format(exportDateLayout))
	}

	resp, err := req.Get(exportPath(target, format))
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	logger.Debug("Export downloaded", "bytes", len(resp.Body()))
	return resp.Body(), nil
}
