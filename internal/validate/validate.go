// Package validate checks user-supplied lookup inputs before they reach
// the network.
package validate

import (
	"github.com/go-playground/validator/v10"
)

// A single Validate instance is safe for concurrent use and caches
// compiled tag expressions across calls.
var validate = validator.New()

// Email checks that address is a syntactically plausible email address.
func Email(address string) error {
	return validate.Var(address, "required,email")
}

// Domain checks that domain is a bare fully qualified domain name such
// as "example.com" (no scheme, no path).
func Domain(domain string) error {
	return validate.Var(domain, "required,fqdn")
}

// Password checks that password is non-empty. Any non-empty string may
// be looked up; composition rules are the caller's business.
func Password(password string) error {
	return validate.Var(password, "required")
}
