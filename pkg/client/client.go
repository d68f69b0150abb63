package client

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/zfogg/streamline/pkg/config"
	"github.com/zfogg/streamline/pkg/logger"
)

const userAgent = "Streamline-CLI/0.1.0"

// New builds an HTTP client for the backend at baseURL. Every request
// carries a fresh X-Request-ID so client and server logs line up.
func New(baseURL string, timeout time.Duration) *resty.Client {
	httpClient := resty.New()

	httpClient.SetBaseURL(baseURL)
	httpClient.SetTimeout(timeout)
	httpClient.SetHeader("User-Agent", userAgent)
	httpClient.SetHeader("Accept", "application/json")

	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		requestID := uuid.NewString()
		req.SetHeader("X-Request-ID", requestID)
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL, "request_id", requestID)
		return nil
	})

	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response",
			"status", resp.StatusCode(),
			"url", resp.Request.URL,
			"request_id", resp.Request.Header.Get("X-Request-ID"),
			"elapsed", resp.Time())
		return nil
	})

	return httpClient
}

// FromConfig builds a client from api.base_url and api.timeout.
func FromConfig() *resty.Client {
	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second
	return New(baseURL, timeout)
}

// SetAuthToken attaches the bearer token to every subsequent request
func SetAuthToken(c *resty.Client, token string) {
	c.SetAuthToken(token)
}

// ClearAuthToken drops the bearer token
func ClearAuthToken(c *resty.Client) {
	c.SetAuthToken("")
	c.Header.Del("Authorization")
}
