package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/zfogg/streamline/pkg/api"
)

// Kind categorizes failures the user can see
type Kind string

const (
	// Local input problems, caught before any network call
	KindValidation Kind = "validation"

	// Remote call failures
	KindNetwork      Kind = "network"
	KindTimeout      Kind = "timeout"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindServer       Kind = "server"
	KindHTTP         Kind = "http"

	// A background fetch failed; the section renders empty
	KindPartial Kind = "partial"

	// The AI service failed and a local fallback was used
	KindAIUnavailable Kind = "ai_unavailable"

	// No session
	KindNotLoggedIn Kind = "not_logged_in"

	KindUnknown Kind = "unknown"
)

// AppError is a categorized error with an optional hint for the user
type AppError struct {
	Kind       Kind
	Message    string
	Cause      error
	Suggestion string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil && e.Kind != KindValidation {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithSuggestion adds a helpful suggestion to the error
func (e *AppError) WithSuggestion(suggestion string) *AppError {
	e.Suggestion = suggestion
	return e
}

// HasSuggestion returns true if the error has a suggestion
func (e *AppError) HasSuggestion() bool {
	return e.Suggestion != ""
}

// New creates a new categorized error
func New(kind Kind, message string, cause error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// Validation reports missing or malformed local input
func Validation(field, reason string) *AppError {
	return New(KindValidation, fmt.Sprintf("%s %s", field, reason), nil)
}

// NotLoggedIn reports an action that needs a session
func NotLoggedIn() *AppError {
	err := New(KindNotLoggedIn, "Not logged in", nil)
	err.Suggestion = "Run 'streamline auth login' first."
	return err
}

// Partial marks a background fetch failure
func Partial(section string, cause error) *AppError {
	return New(KindPartial, fmt.Sprintf("Could not load %s", section), cause)
}

// AIUnavailable marks a degraded AI response
func AIUnavailable(cause error) *AppError {
	err := New(KindAIUnavailable, "AI service unavailable, showing built-in suggestions", cause)
	return err
}

// IsKind reports whether err is an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsValidation reports whether err is rejected input, local or from the backend
func IsValidation(err error) bool {
	return IsKind(err, KindValidation)
}

// Categorize converts an error into an AppError
func Categorize(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return fromAPIError(apiErr, err)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return New(KindTimeout, "Request timed out", err).
			WithSuggestion("The server is taking too long to respond. Try again in a moment.")
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return New(KindTimeout, "Request timed out", err).
			WithSuggestion("The server is taking too long to respond. Try again in a moment.")
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) || strings.Contains(err.Error(), "connection refused") {
		return New(KindNetwork, "Could not reach the server", err).
			WithSuggestion("Check api.base_url and your connection, then try again.")
	}

	return New(KindUnknown, err.Error(), err)
}

func fromAPIError(apiErr *api.APIError, err error) *AppError {
	switch {
	case api.IsUnauthorized(apiErr):
		return New(KindUnauthorized, apiErr.Message, err).
			WithSuggestion("Try logging in again with 'streamline auth login'.")
	case api.IsForbidden(apiErr):
		return New(KindForbidden, apiErr.Message, err)
	case api.IsNotFound(apiErr):
		return New(KindNotFound, apiErr.Message, err)
	case api.IsBadRequest(apiErr):
		return New(KindValidation, apiErr.Message, err)
	case api.IsServerError(apiErr):
		return New(KindServer, apiErr.Message, err).
			WithSuggestion("The server encountered an error. Try again in a few moments.")
	default:
		return New(KindHTTP, apiErr.Message, err)
	}
}

// Format returns a user-friendly error message
func Format(err error) string {
	if err == nil {
		return ""
	}

	appErr := Categorize(err)
	var sb strings.Builder

	sb.WriteString("Error")
	if appErr.Kind != KindUnknown {
		sb.WriteString(" (")
		sb.WriteString(string(appErr.Kind))
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(appErr.Message)
	sb.WriteString("\n")

	if appErr.HasSuggestion() {
		sb.WriteString("Suggestion: ")
		sb.WriteString(appErr.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}
