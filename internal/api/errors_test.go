package api

import (
	"errors"
	"testing"
	"time"

	"github.com/xposedornot/client-go/internal/apierrors"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "capitalized Error field",
			body:     `{"Error": "Not found"}`,
			expected: "Not found",
		},
		{
			name:     "lowercase error field",
			body:     `{"error": "rate limit exceeded"}`,
			expected: "rate limit exceeded",
		},
		{
			name:     "message field",
			body:     `{"message": "something broke"}`,
			expected: "something broke",
		},
		{
			name:     "Error wins over error",
			body:     `{"error": "second", "Error": "first"}`,
			expected: "first",
		},
		{
			name:     "error wins over message",
			body:     `{"message": "second", "error": "first"}`,
			expected: "first",
		},
		{
			name:     "non-string Error skipped",
			body:     `{"Error": 42, "message": "fallback"}`,
			expected: "fallback",
		},
		{
			name:     "bare JSON string",
			body:     `"service unavailable"`,
			expected: "service unavailable",
		},
		{
			name:     "bare empty JSON string",
			body:     `""`,
			expected: "",
		},
		{
			name:     "plain text verbatim",
			body:     "502 Bad Gateway",
			expected: "502 Bad Gateway",
		},
		{
			name:     "plain text trimmed",
			body:     "  upstream timeout  \n",
			expected: "upstream timeout",
		},
		{
			name:     "empty body",
			body:     "",
			expected: unknownErrorMessage,
		},
		{
			name:     "whitespace only",
			body:     "   \n\t",
			expected: unknownErrorMessage,
		},
		{
			name:     "object without known fields",
			body:     `{"detail": "nope"}`,
			expected: unknownErrorMessage,
		},
		{
			name:     "JSON array",
			body:     `["error", "here"]`,
			expected: unknownErrorMessage,
		},
		{
			name:     "JSON number",
			body:     `42`,
			expected: unknownErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorMessage([]byte(tt.body)); got != tt.expected {
				t.Errorf("errorMessage(%q) = %q, want %q", tt.body, got, tt.expected)
			}
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected time.Duration
	}{
		{
			name:     "snake case",
			body:     `{"retry_after": 60}`,
			expected: 60 * time.Second,
		},
		{
			name:     "camel case",
			body:     `{"retryAfter": 30}`,
			expected: 30 * time.Second,
		},
		{
			name:     "snake case wins when both present",
			body:     `{"retry_after": 10, "retryAfter": 99}`,
			expected: 10 * time.Second,
		},
		{
			name:     "fractional seconds",
			body:     `{"retry_after": 1.5}`,
			expected: 1500 * time.Millisecond,
		},
		{
			// A present but non-numeric value ends the search; the
			// other key is not consulted.
			name:     "string value yields zero without fallthrough",
			body:     `{"retry_after": "60", "retryAfter": 30}`,
			expected: 0,
		},
		{
			name:     "negative value yields zero",
			body:     `{"retry_after": -5}`,
			expected: 0,
		},
		{
			name:     "missing keys",
			body:     `{"error": "slow down"}`,
			expected: 0,
		},
		{
			name:     "not JSON",
			body:     "slow down",
			expected: 0,
		},
		{
			name:     "empty body",
			body:     "",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseRetryAfter([]byte(tt.body)); got != tt.expected {
				t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.body, got, tt.expected)
			}
		})
	}
}

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		check      func(t *testing.T, err error)
	}{
		{
			name:       "401 authentication",
			statusCode: 401,
			body:       `{"Error": "API key expired"}`,
			check: func(t *testing.T, err error) {
				var authErr *apierrors.AuthenticationError
				if !errors.As(err, &authErr) {
					t.Fatalf("got %T, want *apierrors.AuthenticationError", err)
				}
				if authErr.Message != "API key expired" {
					t.Errorf("Message = %q, want %q", authErr.Message, "API key expired")
				}
			},
		},
		{
			name:       "404 not found",
			statusCode: 404,
			body:       "",
			check: func(t *testing.T, err error) {
				var nfErr *apierrors.NotFoundError
				if !errors.As(err, &nfErr) {
					t.Fatalf("got %T, want *apierrors.NotFoundError", err)
				}
				if nfErr.Message != unknownErrorMessage {
					t.Errorf("Message = %q, want %q", nfErr.Message, unknownErrorMessage)
				}
			},
		},
		{
			name:       "429 rate limit with retry hint",
			statusCode: 429,
			body:       `{"error": "too fast", "retry_after": 12}`,
			check: func(t *testing.T, err error) {
				var rlErr *apierrors.RateLimitError
				if !errors.As(err, &rlErr) {
					t.Fatalf("got %T, want *apierrors.RateLimitError", err)
				}
				if rlErr.Message != "too fast" {
					t.Errorf("Message = %q, want %q", rlErr.Message, "too fast")
				}
				if rlErr.RetryAfter != 12*time.Second {
					t.Errorf("RetryAfter = %v, want 12s", rlErr.RetryAfter)
				}
			},
		},
		{
			name:       "500 generic API error",
			statusCode: 500,
			body:       "internal failure",
			check: func(t *testing.T, err error) {
				var apiErr *apierrors.APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("got %T, want *apierrors.APIError", err)
				}
				if apiErr.StatusCode != 500 {
					t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
				}
				if apiErr.Message != "internal failure" {
					t.Errorf("Message = %q, want %q", apiErr.Message, "internal failure")
				}
				if apiErr.Body != "internal failure" {
					t.Errorf("Body = %q, want raw body", apiErr.Body)
				}
				if apiErr.RequestID != "req-1" {
					t.Errorf("RequestID = %q, want req-1", apiErr.RequestID)
				}
			},
		},
		{
			name:       "400 generic API error",
			statusCode: 400,
			body:       `{"message": "bad input"}`,
			check: func(t *testing.T, err error) {
				var apiErr *apierrors.APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("got %T, want *apierrors.APIError", err)
				}
				if apiErr.Message != "bad input" {
					t.Errorf("Message = %q, want %q", apiErr.Message, "bad input")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyResponse(tt.statusCode, []byte(tt.body), "req-1")
			if err == nil {
				t.Fatal("classifyResponse() = nil, want error")
			}
			tt.check(t, err)
		})
	}
}
