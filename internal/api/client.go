package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/xposedornot/client-go/internal/apierrors"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

const userAgent = "xon-client-go/" + Version

// Default configuration values.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
)

// Config configures the API client.
type Config struct {
	// BaseURL is the root of the API, e.g. https://api.xposedornot.com.
	BaseURL string
	// APIKey is sent via the x-api-key header when non-empty.
	APIKey string
	// HTTPClient overrides the transport. Leave its Timeout at zero; the
	// client enforces Timeout across the whole logical request instead.
	HTTPClient *http.Client
	// Timeout bounds a logical request including every retry and backoff
	// wait. Defaults to DefaultTimeout.
	Timeout time.Duration
	// MaxRetries is the total number of attempts for retryable failures.
	// Zero still performs a single attempt.
	MaxRetries int
	// DefaultHeaders are applied to every request after the built-in
	// headers and before per-request headers.
	DefaultHeaders map[string]string
	// Retry overrides the retry policy. When nil, the default policy is
	// used with MaxRetries applied.
	Retry *RetryConfig
	// Logger receives per-attempt debug logs. The zero value is silent.
	Logger zerolog.Logger
}

// Client executes requests against a single API host. It is stateless
// apart from its configuration and safe for concurrent use.
type Client struct {
	baseURL        string
	apiKey         string
	httpClient     *http.Client
	timeout        time.Duration
	defaultHeaders map[string]string
	retry          *RetryConfig
	log            zerolog.Logger
}

// NewClient creates a new API client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	retry := cfg.Retry
	if retry == nil {
		retry = DefaultRetryConfig()
		retry.MaxRetries = cfg.MaxRetries
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:        baseURL,
		apiKey:         cfg.APIKey,
		httpClient:     httpClient,
		timeout:        timeout,
		defaultHeaders: cfg.DefaultHeaders,
		retry:          retry,
		log:            cfg.Logger,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Request describes one logical API request. Query values may be string
// or bool; nil values are omitted from the URL entirely.
type Request struct {
	Method  string
	Path    string
	Query   map[string]any
	Headers map[string]string
	Body    any
}

// Do executes req and decodes a successful response into out. A single
// timeout covers every attempt; retryable failures are re-sent with
// exponential backoff until the policy gives up. Failures come back as
// classified apierrors types, never raw transport errors.
func (c *Client) Do(ctx context.Context, req *Request, out any) error {
	reqURL := c.buildURL(req)

	var payload []byte
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.NewString()
	attempts := c.retry.Attempts()

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			c.log.Debug().
				Str("request_id", requestID).
				Int("attempt", attempt).
				Dur("backoff", c.retry.Delay(attempt-1)).
				Msg("retrying request")
			if err := c.retry.Wait(ctx, attempt-1); err != nil {
				return c.timeoutError(err)
			}
		}

		hreq, err := c.newHTTPRequest(ctx, req, reqURL, payload, requestID)
		if err != nil {
			return err
		}

		c.log.Debug().
			Str("method", req.Method).
			Str("url", reqURL).
			Str("request_id", requestID).
			Int("attempt", attempt).
			Msg("sending request")

		resp, err := c.httpClient.Do(hreq)
		if err != nil {
			if ctx.Err() != nil {
				return c.timeoutError(ctx.Err())
			}
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			if ctx.Err() != nil {
				return c.timeoutError(ctx.Err())
			}
			lastErr = err
			continue
		}

		c.log.Debug().
			Int("status", resp.StatusCode).
			Str("request_id", requestID).
			Int("attempt", attempt).
			Msg("received response")

		if isSuccess(resp.StatusCode) {
			decodeBody(resp.StatusCode, resp.Header.Get("Content-Type"), body, out)
			return nil
		}

		classified := classifyResponse(resp.StatusCode, body, requestID)
		if !c.retry.ShouldRetry(attempt, resp.StatusCode) {
			return classified
		}
		lastErr = classified
	}

	var classified apierrors.Error
	if errors.As(lastErr, &classified) {
		return lastErr
	}
	return &apierrors.NetworkError{Err: lastErr, URL: reqURL, Attempts: attempts}
}

// buildURL joins the base URL, path and encoded query parameters.
// Boolean values serialize as "true"/"false"; nil values are dropped.
func (c *Client) buildURL(req *Request) string {
	u := c.baseURL + req.Path
	if len(req.Query) == 0 {
		return u
	}
	q := url.Values{}
	for key, value := range req.Query {
		switch v := value.(type) {
		case nil:
			// Absent parameter, omitted entirely.
		case string:
			q.Set(key, v)
		case bool:
			q.Set(key, strconv.FormatBool(v))
		default:
			q.Set(key, fmt.Sprint(v))
		}
	}
	if encoded := q.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// newHTTPRequest builds one attempt's HTTP request with merged headers.
// Precedence, later wins: built-in, API key, configured defaults,
// per-request headers.
func (c *Client) newHTTPRequest(ctx context.Context, req *Request, reqURL string, payload []byte, requestID string) (*http.Request, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	hreq, err := http.NewRequestWithContext(ctx, req.Method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Accept", "application/json")
	hreq.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		hreq.Header.Set("x-api-key", c.apiKey)
	}
	for k, v := range c.defaultHeaders {
		hreq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		hreq.Header.Set(k, v)
	}
	if hreq.Header.Get("X-Request-ID") == "" {
		hreq.Header.Set("X-Request-ID", requestID)
	}

	return hreq, nil
}

func (c *Client) timeoutError(cause error) error {
	return &apierrors.TimeoutError{Timeout: c.timeout, Err: cause}
}

// isSuccess reports whether a status code ends the request successfully.
// 304 counts: the caller's cached view is still valid.
func isSuccess(statusCode int) bool {
	return (statusCode >= 200 && statusCode < 300) || statusCode == http.StatusNotModified
}

// decodeBody writes a successful response body into out. A 304 or empty
// body leaves out untouched. A JSON body that fails to parse also leaves
// out untouched: the request itself succeeded, there is just nothing
// usable to decode. Non-JSON bodies are passed through when out is a
// *string.
func decodeBody(statusCode int, contentType string, body []byte, out any) {
	if statusCode == http.StatusNotModified || out == nil || len(body) == 0 {
		return
	}
	if isJSONMediaType(contentType) || (contentType == "" && json.Valid(body)) {
		_ = json.Unmarshal(body, out)
		return
	}
	if s, ok := out.(*string); ok {
		*s = string(body)
	}
}

func isJSONMediaType(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
