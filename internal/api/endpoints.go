package api

import (
	"context"
	"net/http"
	"net/url"
)

// CheckEmail looks up the breaches an email address appears in.
// includeDetails asks the server for full breach records instead of
// names only.
func (c *Client) CheckEmail(ctx context.Context, email string, includeDetails bool) (*CheckEmailResponse, error) {
	req := &Request{
		Method: http.MethodGet,
		Path:   "/v1/check-email/" + url.PathEscape(email),
	}
	if includeDetails {
		req.Query = map[string]any{"include_details": true}
	}

	var result CheckEmailResponse
	if err := c.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Breaches lists the breach catalog, optionally filtered to a single
// domain. An empty domain omits the filter.
func (c *Client) Breaches(ctx context.Context, domain string) (*BreachesResponse, error) {
	var domainParam any
	if domain != "" {
		domainParam = domain
	}
	req := &Request{
		Method: http.MethodGet,
		Path:   "/v1/breaches",
		Query:  map[string]any{"domain": domainParam},
	}

	var result BreachesResponse
	if err := c.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BreachAnalytics fetches the aggregate breach analytics for an email
// address.
func (c *Client) BreachAnalytics(ctx context.Context, email string) (*BreachAnalyticsResponse, error) {
	req := &Request{
		Method: http.MethodGet,
		Path:   "/v1/breach-analytics",
		Query:  map[string]any{"email": email},
	}

	var result BreachAnalyticsResponse
	if err := c.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckPasswordAnon checks a hash prefix against the anonymous password
// endpoint. The prefix is the first ten hex characters of the password's
// Keccak-512 digest; the server answers 404 for unknown prefixes.
func (c *Client) CheckPasswordAnon(ctx context.Context, prefix string) (*PasswordAnonResponse, error) {
	req := &Request{
		Method: http.MethodGet,
		Path:   "/v1/pass/anon/" + url.PathEscape(prefix),
	}

	var result PasswordAnonResponse
	if err := c.Do(ctx, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
