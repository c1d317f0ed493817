// Package apierrors provides the classified error types shared by the
// XposedOrNot client. Every failure that escapes the request layer is one
// of the types defined here, tagged with a stable [ErrorCode].
package apierrors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode identifies the category of a classified error. The set of
// codes is closed; callers can switch on it exhaustively.
type ErrorCode string

const (
	// CodeValidation marks invalid input or configuration.
	CodeValidation ErrorCode = "VALIDATION_ERROR"
	// CodeRateLimit marks an HTTP 429 response.
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"
	// CodeNotFound marks an HTTP 404 response.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeAuthentication marks an HTTP 401 response.
	CodeAuthentication ErrorCode = "AUTHENTICATION_ERROR"
	// CodeNetwork marks a transport-level failure.
	CodeNetwork ErrorCode = "NETWORK_ERROR"
	// CodeTimeout marks a request that exceeded its overall deadline.
	CodeTimeout ErrorCode = "TIMEOUT_ERROR"
	// CodeAPI marks any other non-success HTTP response.
	CodeAPI ErrorCode = "API_ERROR"
)

// Error is implemented by every classified error in this package.
type Error interface {
	error
	Code() ErrorCode
}

// Sentinel errors for errors.Is() checks
var (
	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTimedOut is returned when a request exceeds its overall timeout.
	ErrTimedOut = errors.New("request timed out")
)

// AuthenticationError represents an HTTP 401 response.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("authentication failed: %s", e.Message)
	}
	return "authentication failed"
}

// Code identifies the error category.
func (e *AuthenticationError) Code() ErrorCode { return CodeAuthentication }

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// NotFoundError represents an HTTP 404 response.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("not found: %s", e.Message)
	}
	return "not found"
}

// Code identifies the error category.
func (e *NotFoundError) Code() ErrorCode { return CodeNotFound }

// Is implements errors.Is for sentinel error matching.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// RateLimitError represents an HTTP 429 response. RetryAfter is the
// server's advisory wait, zero when the server sent none. The client
// never enforces it.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: %s (retry after %v)", e.messageOrDefault(), e.RetryAfter)
	}
	return fmt.Sprintf("rate limited: %s", e.messageOrDefault())
}

func (e *RateLimitError) messageOrDefault() string {
	if e.Message != "" {
		return e.Message
	}
	return "too many requests"
}

// Code identifies the error category.
func (e *RateLimitError) Code() ErrorCode { return CodeRateLimit }

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// NetworkError represents a transport-level failure that persisted
// through every attempt.
type NetworkError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *NetworkError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("network error after %d attempts: %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Code identifies the error category.
func (e *NetworkError) Code() ErrorCode { return CodeNetwork }

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TimeoutError represents a request that exceeded its overall deadline.
// The deadline covers every attempt of a logical request, so a timeout
// ends the retry loop immediately.
type TimeoutError struct {
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	if e.Timeout > 0 {
		return fmt.Sprintf("request timed out after %v", e.Timeout)
	}
	return "request timed out"
}

// Code identifies the error category.
func (e *TimeoutError) Code() ErrorCode { return CodeTimeout }

// Unwrap returns the underlying error, usually a context error.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimedOut
}

// APIError represents any other non-success HTTP response.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		if e.Message != "" {
			return fmt.Sprintf("API error %d: %s (request_id: %s)", e.StatusCode, e.Message, e.RequestID)
		}
		return fmt.Sprintf("API error %d (request_id: %s)", e.StatusCode, e.RequestID)
	}
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Code identifies the error category.
func (e *APIError) Code() ErrorCode { return CodeAPI }
