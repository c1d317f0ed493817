package xposedornot

import (
	"context"
	"strings"
	"time"

	"github.com/xposedornot/client-go/internal/api"
	"github.com/xposedornot/client-go/internal/validate"
	"github.com/xposedornot/client-go/risk"
)

// Breach is one entry of the public breach catalog.
type Breach struct {
	// ID is the breach identifier, e.g. "Adobe".
	ID string
	// Date is when the breach occurred. Zero when unknown.
	Date time.Time
	// Domain is the breached site's domain.
	Domain string
	// Industry is the breached site's industry sector.
	Industry string
	// Logo is a URL to the breached site's logo.
	Logo string
	// PasswordRisk classifies how the breached passwords were stored.
	PasswordRisk risk.PasswordRisk
	// ExposedData lists the data classes leaked in the breach.
	ExposedData []string
	// ExposedRecords is the number of affected records.
	ExposedRecords int64
	// Description summarizes the incident.
	Description string
	// ReferenceURL points at public reporting about the breach.
	ReferenceURL string
	// Searchable reports whether the breach is queryable per address.
	Searchable bool
	// Sensitive marks breaches whose mere membership is sensitive.
	Sensitive bool
	// Verified reports whether the breach has been verified.
	Verified bool
}

// Breaches returns the public breach catalog, optionally filtered with
// WithBreachDomain. An unknown domain yields an empty catalog, not an
// error.
func (c *Client) Breaches(ctx context.Context, opts ...BreachesOption) ([]Breach, error) {
	cfg := &breachesConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.domain != "" {
		if err := validate.Domain(cfg.domain); err != nil {
			return nil, &ValidationError{Field: "domain", Message: "invalid domain"}
		}
	}

	c.log.Debug().Str("domain", cfg.domain).Msg("fetching breach catalog")

	resp, err := c.api.Breaches(ctx, cfg.domain)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, wrapError(err)
	}

	breaches := make([]Breach, 0, len(resp.ExposedBreaches))
	for _, record := range resp.ExposedBreaches {
		breaches = append(breaches, breachFromRecord(record))
	}
	return breaches, nil
}

// breachFromRecord normalizes a catalog record.
func breachFromRecord(r api.BreachRecord) Breach {
	return Breach{
		ID:             r.BreachID,
		Date:           parseBreachDate(r.BreachedDate),
		Domain:         r.Domain,
		Industry:       r.Industry,
		Logo:           r.Logo,
		PasswordRisk:   risk.ParsePasswordRisk(r.PasswordRisk),
		ExposedData:    splitList(r.ExposedData),
		ExposedRecords: int64(r.ExposedRecords),
		Description:    r.ExposureDescription,
		ReferenceURL:   r.ReferenceURL,
		Searchable:     bool(r.Searchable),
		Sensitive:      bool(r.Sensitive),
		Verified:       bool(r.Verified),
	}
}

// breachFromDetail normalizes a per-address breach record. The detail
// shape uses different field names than the catalog for the same data.
func breachFromDetail(d api.BreachDetail) Breach {
	return Breach{
		ID:             d.Breach,
		Date:           parseBreachDate(d.XposedDate),
		Domain:         d.Domain,
		Industry:       d.Industry,
		Logo:           d.Logo,
		PasswordRisk:   risk.ParsePasswordRisk(d.PasswordRisk),
		ExposedData:    splitList(d.XposedData),
		ExposedRecords: int64(d.XposedRecords),
		Description:    d.Details,
		ReferenceURL:   d.References,
		Searchable:     bool(d.Searchable),
		Sensitive:      bool(d.Sensitive),
		Verified:       bool(d.Verified),
	}
}

func breachesFromDetails(details []api.BreachDetail) []Breach {
	if len(details) == 0 {
		return nil
	}
	breaches := make([]Breach, 0, len(details))
	for _, detail := range details {
		breaches = append(breaches, breachFromDetail(detail))
	}
	return breaches
}

// splitList splits a semicolon-delimited API list, trimming whitespace
// and dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// breachDateLayouts are the date shapes the API emits, most to least
// specific.
var breachDateLayouts = []string{time.RFC3339, "2006-01-02", "2006"}

// parseBreachDate parses an API date. Zero time for anything
// unparseable.
func parseBreachDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range breachDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
