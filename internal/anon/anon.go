// Package anon implements the k-anonymity scheme used for password
// exposure lookups.
//
// A password is hashed with Keccak-512 and only the first few hex
// characters of the digest are ever sent to the API. The server answers
// for the whole prefix bucket, so it never learns which password was
// queried, or even its full hash.
//
// Keccak-512 here is the original pre-FIPS Keccak, not SHA3-512. The two
// differ in padding and produce different digests; the API expects the
// legacy variant.
package anon

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// PrefixLength is the number of hex characters of the digest shared with
// the API.
const PrefixLength = 10

// HashPassword returns the lowercase hex Keccak-512 digest of password.
func HashPassword(password string) string {
	h := sha3.NewLegacyKeccak512()
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil))
}

// Prefix returns the hash prefix sent to the API for password.
func Prefix(password string) string {
	return HashPassword(password)[:PrefixLength]
}
