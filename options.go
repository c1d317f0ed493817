package xposedornot

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL         = "https://api.xposedornot.com"
	defaultPasswordBaseURL = "https://passwords.xposedornot.com"
	defaultTimeout         = 30 * time.Second
	defaultRetries         = 3
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL         string
	passwordBaseURL string
	apiKey          string
	httpClient      *http.Client
	timeout         time.Duration
	retries         int
	defaultHeaders  map[string]string
	logger          zerolog.Logger
}

// checkEmailConfig holds configuration for email lookups.
type checkEmailConfig struct {
	includeDetails bool
}

// breachesConfig holds configuration for breach catalog queries.
type breachesConfig struct {
	domain string
}

// Option configures the client.
type Option func(*clientConfig)

// CheckEmailOption configures an email lookup.
type CheckEmailOption func(*checkEmailConfig)

// BreachesOption configures a breach catalog query.
type BreachesOption func(*breachesConfig)

// WithBaseURL sets the API base URL. Only https URLs are accepted.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithPasswordBaseURL sets the base URL of the password lookup host.
// Only https URLs are accepted.
func WithPasswordBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.passwordBaseURL = url
	}
}

// WithAPIKey sets the API key, sent as the x-api-key header. Anonymous
// use works without one but is rate limited more aggressively.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the whole-request timeout. It covers every attempt of
// a call, including backoff waits between attempts. Must be between
// MinTimeout and MaxTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the attempt budget for API calls: a call runs at most
// this many attempts. Zero means a single attempt with no retries.
// Must be between 0 and MaxRetries.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithDefaultHeaders merges headers into every request. They override
// the client's built-in headers and are overridden by per-call headers.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *clientConfig) {
		if c.defaultHeaders == nil {
			c.defaultHeaders = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.defaultHeaders[k] = v
		}
	}
}

// WithHeader sets a single default header.
func WithHeader(key, value string) Option {
	return func(c *clientConfig) {
		if c.defaultHeaders == nil {
			c.defaultHeaders = make(map[string]string, 1)
		}
		c.defaultHeaders[key] = value
	}
}

// WithLogger sets the logger used for request diagnostics. The default
// discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithBreachDetails includes full breach records in the lookup response
// instead of just breach names.
func WithBreachDetails() CheckEmailOption {
	return func(c *checkEmailConfig) {
		c.includeDetails = true
	}
}

// WithBreachDomain restricts the breach catalog to a single domain.
func WithBreachDomain(domain string) BreachesOption {
	return func(c *breachesConfig) {
		c.domain = domain
	}
}
