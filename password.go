package xposedornot

import (
	"context"
	"strconv"
	"strings"

	"github.com/xposedornot/client-go/internal/anon"
	"github.com/xposedornot/client-go/internal/validate"
)

// PasswordCharacteristics describes the composition of a checked
// password as reported by the API.
type PasswordCharacteristics struct {
	// Digits is the number of numeric characters.
	Digits int
	// Letters is the number of alphabetic characters.
	Letters int
	// SpecialChars is the number of non-alphanumeric characters.
	SpecialChars int
	// Length is the password length.
	Length int
}

// PasswordExposure is the outcome of an anonymous password check.
type PasswordExposure struct {
	// Exposed reports whether the password appears in known breaches.
	Exposed bool
	// Count is how many times the password was seen in breach data.
	Count int64
	// InWordlist reports whether the password is in common cracking
	// wordlists.
	InWordlist bool
	// Characteristics describes the password's composition.
	Characteristics PasswordCharacteristics
}

// CheckPassword checks whether a password appears in known breaches
// without revealing it: only the first ten hex characters of its
// Keccak-512 digest leave the process. An unexposed password yields
// Exposed false, not an error.
func (c *Client) CheckPassword(ctx context.Context, password string) (*PasswordExposure, error) {
	if err := validate.Password(password); err != nil {
		return nil, &ValidationError{Field: "password", Message: "password is required"}
	}

	prefix := anon.Prefix(password)
	c.log.Debug().Str("prefix", prefix).Msg("checking password exposure")

	resp, err := c.passwords.CheckPasswordAnon(ctx, prefix)
	if err != nil {
		// The API reports an unexposed password as 404.
		if isNotFound(err) {
			return &PasswordExposure{}, nil
		}
		return nil, wrapError(err)
	}

	exposure := &PasswordExposure{}
	if found := resp.SearchPassAnon; found != nil {
		exposure.Exposed = true
		exposure.Count = int64(found.Count)
		exposure.InWordlist = bool(found.Wordlist)
		exposure.Characteristics = parseCharacteristics(found.Char)
	}
	return exposure, nil
}

// parseCharacteristics decodes the "D:2;A:6;S:0;L:8" composition string:
// digits, alphabetic, special, length. Unknown or malformed segments are
// skipped.
func parseCharacteristics(s string) PasswordCharacteristics {
	var chars PasswordCharacteristics
	for _, part := range strings.Split(s, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "D":
			chars.Digits = n
		case "A":
			chars.Letters = n
		case "S":
			chars.SpecialChars = n
		case "L":
			chars.Length = n
		}
	}
	return chars
}
