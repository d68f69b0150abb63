package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/zfogg/streamline/pkg/api"
)

// TestNew creates and validates a categorized error
func TestNew(t *testing.T) {
	cause := errors.New("underlying error")
	err := New(KindServer, "Test error", cause)

	if err.Kind != KindServer {
		t.Errorf("Expected kind %s, got %s", KindServer, err.Kind)
	}
	if err.Message != "Test error" {
		t.Errorf("Expected message 'Test error', got '%s'", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("Cause should be reachable through Unwrap")
	}
	if err.Error() != "Test error: underlying error" {
		t.Errorf("Unexpected Error(): %q", err.Error())
	}
}

// TestWithSuggestion adds suggestion to error
func TestWithSuggestion(t *testing.T) {
	err := New(KindHTTP, "Test", nil)
	if err.HasSuggestion() {
		t.Error("Fresh error should have no suggestion")
	}

	result := err.WithSuggestion("Try something else")
	if !result.HasSuggestion() || result.Suggestion != "Try something else" {
		t.Errorf("Suggestion not set, got %q", result.Suggestion)
	}
}

func TestValidation(t *testing.T) {
	err := Validation("text", "cannot be empty")

	if !IsValidation(err) {
		t.Error("IsValidation should be true")
	}
	if err.Error() != "text cannot be empty" {
		t.Errorf("Unexpected message %q", err.Error())
	}

	wrapped := fmt.Errorf("add todo: %w", err)
	if !IsValidation(wrapped) {
		t.Error("IsValidation should see through wrapping")
	}
	if IsValidation(errors.New("plain")) {
		t.Error("Plain errors are not validation errors")
	}
}

func TestCategorizeAPIErrors(t *testing.T) {
	tests := []struct {
		status int
		kind   Kind
	}{
		{401, KindUnauthorized},
		{403, KindForbidden},
		{404, KindNotFound},
		{500, KindServer},
		{503, KindServer},
		{400, KindValidation},
		{409, KindHTTP},
	}

	for _, tt := range tests {
		err := fmt.Errorf("call: %w", &api.APIError{StatusCode: tt.status, Message: "nope"})
		got := Categorize(err)
		if got.Kind != tt.kind {
			t.Errorf("status %d: got kind %s, want %s", tt.status, got.Kind, tt.kind)
		}
		if got.Message != "nope" {
			t.Errorf("status %d: message should come from the backend, got %q", tt.status, got.Message)
		}
	}
}

func TestBadRequestIsValidation(t *testing.T) {
	err := fmt.Errorf("create todo: %w", &api.APIError{StatusCode: 400, Message: "Text is required"})

	got := Categorize(err)
	if !IsValidation(got) {
		t.Error("A rejected request should read as a validation error")
	}
	if got.Error() != "Text is required" {
		t.Errorf("Validation errors show only the backend message, got %q", got.Error())
	}
}

func TestCategorizeTransportErrors(t *testing.T) {
	if got := Categorize(context.DeadlineExceeded); got.Kind != KindTimeout {
		t.Errorf("deadline: got %s", got.Kind)
	}
	if got := Categorize(errors.New("dial tcp 127.0.0.1:1: connect: connection refused")); got.Kind != KindNetwork {
		t.Errorf("refused: got %s", got.Kind)
	}
	if got := Categorize(errors.New("something odd")); got.Kind != KindUnknown {
		t.Errorf("unknown: got %s", got.Kind)
	}
	if Categorize(nil) != nil {
		t.Error("Categorize(nil) should be nil")
	}
}

func TestCategorizeKeepsAppErrors(t *testing.T) {
	original := Partial("stats", errors.New("boom"))
	if Categorize(original) != original {
		t.Error("AppError should be returned as is")
	}
}

func TestFormat(t *testing.T) {
	if Format(nil) != "" {
		t.Error("Format(nil) should be empty")
	}

	out := Format(&api.APIError{StatusCode: 401, Message: "Token is invalid!"})
	if !strings.Contains(out, "(unauthorized)") {
		t.Errorf("Expected kind in output, got %q", out)
	}
	if !strings.Contains(out, "Token is invalid!") {
		t.Errorf("Expected backend message in output, got %q", out)
	}
	if !strings.Contains(out, "streamline auth login") {
		t.Errorf("Expected login suggestion, got %q", out)
	}

	out = Format(errors.New("odd"))
	if strings.Contains(out, "(unknown)") {
		t.Errorf("Unknown kind should not be labelled, got %q", out)
	}
}

func TestHelpers(t *testing.T) {
	if !NotLoggedIn().HasSuggestion() {
		t.Error("NotLoggedIn should carry a suggestion")
	}
	if !IsKind(AIUnavailable(errors.New("x")), KindAIUnavailable) {
		t.Error("AIUnavailable kind mismatch")
	}
}
