package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zfogg/streamline/pkg/logger"
)

// ListActivities fetches the newest activity records
func (c *Client) ListActivities(ctx context.Context, limit int) ([]Activity, error) {
	logger.Debug("Fetching activities", "limit", limit)

	req := c.request(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/activities")
	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var activities []Activity
	if err := ParseResponseBody(resp.Body(), &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetStats fetches the server-side aggregates
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	logger.Debug("Fetching stats")

	var stats Stats
	if err := c.send(ctx, http.MethodGet, "/analytics/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
