package xposedornot

import (
	"errors"
	"fmt"
	"time"

	"github.com/xposedornot/client-go/internal/apierrors"
)

// ErrorCode identifies the category of an SDK error.
type ErrorCode string

// Error codes returned by Code on SDK errors.
const (
	CodeValidation     ErrorCode = "VALIDATION_ERROR"
	CodeRateLimit      ErrorCode = "RATE_LIMIT_EXCEEDED"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeAuthentication ErrorCode = "AUTHENTICATION_ERROR"
	CodeNetwork        ErrorCode = "NETWORK_ERROR"
	CodeTimeout        ErrorCode = "TIMEOUT_ERROR"
	CodeAPI            ErrorCode = "API_ERROR"
)

// Error is implemented by all SDK errors.
type Error interface {
	error
	Code() ErrorCode
}

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidEmail is returned when an email address fails validation.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidDomain is returned when a domain filter fails validation.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrMissingPassword is returned when an empty password is checked.
	ErrMissingPassword = errors.New("password is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrNotFound is returned when the API reports no matching resource.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrTimedOut is returned when a request exceeds its timeout.
	ErrTimedOut = errors.New("request timed out")
)

// ValidationError reports client-side rejection of an input or a
// configuration value. No request is sent when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Code identifies the error category.
func (e *ValidationError) Code() ErrorCode { return CodeValidation }

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	switch e.Field {
	case "email":
		return target == ErrInvalidEmail
	case "domain":
		return target == ErrInvalidDomain
	case "password":
		return target == ErrMissingPassword
	}
	return false
}

// AuthenticationError reports a rejected API key (HTTP 401).
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

// NotFoundError reports an HTTP 404 for a lookup the facade does not
// normalize to a clean result.
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

// RateLimitError reports an HTTP 429. RetryAfter is the server's wait
// hint, zero when the response carried none.
type RateLimitError struct {
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "too many requests"
	}
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: %s (retry after %v)", msg, e.RetryAfter)
	}
	return fmt.Sprintf("rate limited: %s", msg)
}

// Code identifies the error category.
func (e *RateLimitError) Code() ErrorCode { return CodeRateLimit }

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// NetworkError reports a transport-level failure that survived the whole
// retry budget.
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

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Code identifies the error category.
func (e *NetworkError) Code() ErrorCode { return CodeNetwork }

// TimeoutError reports that a call exceeded its whole-request timeout,
// or that the caller's context ended first.
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

// Unwrap returns the underlying error.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// Code identifies the error category.
func (e *TimeoutError) Code() ErrorCode { return CodeTimeout }

// Is implements errors.Is for sentinel error matching.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimedOut
}

// APIError reports an HTTP error that maps to no more specific category.
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

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var authErr *apierrors.AuthenticationError
	if errors.As(err, &authErr) {
		return &AuthenticationError{Message: authErr.Message}
	}

	var nfErr *apierrors.NotFoundError
	if errors.As(err, &nfErr) {
		return &NotFoundError{Message: nfErr.Message}
	}

	var rlErr *apierrors.RateLimitError
	if errors.As(err, &rlErr) {
		return &RateLimitError{
			Message:    rlErr.Message,
			RetryAfter: rlErr.RetryAfter,
		}
	}

	var toErr *apierrors.TimeoutError
	if errors.As(err, &toErr) {
		return &TimeoutError{
			Timeout: toErr.Timeout,
			Err:     toErr.Err,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:      netErr.Err,
			URL:      netErr.URL,
			Attempts: netErr.Attempts,
		}
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Body:       apiErr.Body,
			RequestID:  apiErr.RequestID,
		}
	}

	return err
}

// isNotFound reports whether err is the executor's 404 classification.
// Lookup paths use it to normalize 404 into a clean result.
func isNotFound(err error) bool {
	var nfErr *apierrors.NotFoundError
	return errors.As(err, &nfErr)
}
