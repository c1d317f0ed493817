package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/xposedornot/client-go/internal/apierrors"
)

// unknownErrorMessage is used when no message can be extracted from an
// error response body.
const unknownErrorMessage = "unknown error occurred"

// classifyResponse converts a non-success HTTP response into a typed
// error. 401, 404 and 429 get dedicated types; everything else becomes
// an APIError carrying the raw body.
func classifyResponse(statusCode int, body []byte, requestID string) error {
	msg := errorMessage(body)
	switch statusCode {
	case http.StatusUnauthorized:
		return &apierrors.AuthenticationError{Message: msg}
	case http.StatusNotFound:
		return &apierrors.NotFoundError{Message: msg}
	case http.StatusTooManyRequests:
		return &apierrors.RateLimitError{Message: msg, RetryAfter: parseRetryAfter(body)}
	}
	return &apierrors.APIError{
		StatusCode: statusCode,
		Message:    msg,
		Body:       string(body),
		RequestID:  requestID,
	}
}

// errorMessage extracts a human-readable message from an error response
// body. A JSON string is used verbatim, as is any non-JSON body. For a
// JSON object the first string value among the Error, error and message
// keys wins. Anything else falls back to a generic message.
func errorMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return unknownErrorMessage
	}

	if !json.Valid(trimmed) {
		return string(trimmed)
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		for _, key := range [...]string{"Error", "error", "message"} {
			raw, ok := obj[key]
			if !ok {
				continue
			}
			var val string
			if json.Unmarshal(raw, &val) == nil {
				return val
			}
		}
	}

	return unknownErrorMessage
}

// parseRetryAfter reads the advisory retry delay from a 429 body. The
// server reports seconds under retry_after or retryAfter; the first key
// present wins and must be numeric, otherwise no delay is reported.
func parseRetryAfter(body []byte) time.Duration {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return 0
	}
	for _, key := range [...]string{"retry_after", "retryAfter"} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var seconds float64
		if err := json.Unmarshal(raw, &seconds); err != nil || seconds < 0 {
			return 0
		}
		return time.Duration(seconds * float64(time.Second))
	}
	return 0
}
