package xposedornot

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/xposedornot/client-go/internal/api"
)

// Timeout and retry bounds enforced by New.
const (
	// MinTimeout is the smallest accepted whole-request timeout.
	MinTimeout = 1 * time.Second
	// MaxTimeout is the largest accepted whole-request timeout.
	MaxTimeout = 300 * time.Second
	// MaxRetries is the largest accepted attempt budget.
	MaxRetries = 10
)

// Client is an XposedOrNot API client. It is stateless and safe for
// concurrent use; all methods take a context and return typed errors.
type Client struct {
	api       *api.Client
	passwords *api.Client
	log       zerolog.Logger
}

// New creates a client for the XposedOrNot API.
//
// Without options it talks to the public endpoints anonymously with a
// 30 second timeout and up to 3 attempts per call. Configuration errors
// are reported as *ValidationError.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		baseURL:         defaultBaseURL,
		passwordBaseURL: defaultPasswordBaseURL,
		timeout:         defaultTimeout,
		retries:         defaultRetries,
		logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	apiClient, err := buildAPIClient(cfg, cfg.baseURL)
	if err != nil {
		return nil, err
	}

	passwordClient, err := buildAPIClient(cfg, cfg.passwordBaseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:       apiClient,
		passwords: passwordClient,
		log:       cfg.logger,
	}, nil
}

// buildAPIClient creates an executor for one of the two API hosts.
func buildAPIClient(cfg *clientConfig, baseURL string) (*api.Client, error) {
	client, err := api.NewClient(api.Config{
		BaseURL:        baseURL,
		APIKey:         cfg.apiKey,
		HTTPClient:     cfg.httpClient,
		Timeout:        cfg.timeout,
		MaxRetries:     cfg.retries,
		DefaultHeaders: cfg.defaultHeaders,
		Logger:         cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build API client: %w", err)
	}
	return client, nil
}

// validate checks the assembled configuration against the bounds New
// promises.
func (c *clientConfig) validate() error {
	if err := validateEndpoint("baseURL", c.baseURL); err != nil {
		return err
	}
	if err := validateEndpoint("passwordBaseURL", c.passwordBaseURL); err != nil {
		return err
	}
	if c.timeout < MinTimeout || c.timeout > MaxTimeout {
		return &ValidationError{
			Field:   "timeout",
			Message: fmt.Sprintf("timeout %v outside allowed range [%v, %v]", c.timeout, MinTimeout, MaxTimeout),
		}
	}
	if c.retries < 0 || c.retries > MaxRetries {
		return &ValidationError{
			Field:   "retries",
			Message: fmt.Sprintf("retries %d outside allowed range [0, %d]", c.retries, MaxRetries),
		}
	}
	return nil
}

// validateEndpoint rejects endpoints the client refuses to talk to:
// anything unparseable, non-https or hostless.
func validateEndpoint(field, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid URL: %v", err),
		}
	}
	if u.Scheme != "https" {
		return &ValidationError{
			Field:   field,
			Message: "URL must use https",
		}
	}
	if u.Host == "" {
		return &ValidationError{
			Field:   field,
			Message: "URL must include a host",
		}
	}
	return nil
}
