package xposedornot

import (
	"context"

	"github.com/xposedornot/client-go/internal/validate"
)

// EmailExposure is the outcome of a breach lookup for one address.
type EmailExposure struct {
	// Email is the address that was checked.
	Email string
	// Breached reports whether the address appears in any known breach.
	Breached bool
	// Breaches lists the names of breaches the address appears in.
	Breaches []string
	// Details carries full breach records when the lookup was made with
	// WithBreachDetails.
	Details []Breach
}

// CheckEmail looks up which known breaches include the given address.
// A clean address yields Breached false, not an error.
func (c *Client) CheckEmail(ctx context.Context, email string, opts ...CheckEmailOption) (*EmailExposure, error) {
	if err := validate.Email(email); err != nil {
		return nil, &ValidationError{Field: "email", Message: "invalid email address"}
	}

	cfg := &checkEmailConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	c.log.Debug().Str("email", email).Bool("details", cfg.includeDetails).Msg("checking email exposure")

	resp, err := c.api.CheckEmail(ctx, email, cfg.includeDetails)
	if err != nil {
		// The API reports a clean address as 404.
		if isNotFound(err) {
			return &EmailExposure{Email: email}, nil
		}
		return nil, wrapError(err)
	}

	exposure := &EmailExposure{
		Email:    email,
		Breaches: flattenBreaches(resp.Breaches),
		Details:  breachesFromDetails(resp.BreachesDetails),
	}

	// Detailed responses omit the flat name list; recover it from the
	// records so both shapes look the same to callers.
	if len(exposure.Breaches) == 0 && len(exposure.Details) > 0 {
		names := make([]string, 0, len(exposure.Details))
		for _, breach := range exposure.Details {
			names = append(names, breach.ID)
		}
		exposure.Breaches = names
	}

	exposure.Breached = len(exposure.Breaches) > 0
	return exposure, nil
}

// flattenBreaches unwraps the server's nested breach name list.
func flattenBreaches(groups [][]string) []string {
	var names []string
	for _, group := range groups {
		names = append(names, group...)
	}
	return names
}
