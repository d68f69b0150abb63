// Package api is the typed REST binding for the Streamline backend.
package api

import (
	"context"

	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
	"github.com/zfogg/streamline/pkg/client"
)

// Client issues typed calls against the backend.
type Client struct {
	http *resty.Client
}

// New wraps an HTTP client built by the client package.
func New(httpClient *resty.Client) *Client {
	return &Client{http: httpClient}
}

// SetToken attaches the bearer credential to all subsequent calls.
func (c *Client) SetToken(token string) {
	client.SetAuthToken(c.http, token)
}

// ClearToken removes the bearer credential.
func (c *Client) ClearToken() {
	client.ClearAuthToken(c.http)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// send marshals body (if any), issues the call and decodes the reply
// into out (if any).
func (c *Client) send(ctx context.Context, method, path string, body, out interface{}) error {
	req := c.request(ctx)

	if body != nil {
		reqBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		req.SetHeader("Content-Type", "application/json").SetBody(reqBody)
	}

	resp, err := req.Execute(method, path)
	if err := CheckResponse(resp, err); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	return ParseResponseBody(resp.Body(), out)
}
