// Package risk provides the classification vocabulary used in breach
// records: how crackable a breach's stored passwords are, and the
// overall risk level assigned to an email address.
package risk

import "strings"

// PasswordRisk describes how the passwords exposed in a breach were
// stored, from the attacker's point of view.
type PasswordRisk string

const (
	// RiskUnknown indicates the storage quality was not disclosed.
	RiskUnknown PasswordRisk = "unknown"
	// RiskHardToCrack indicates passwords were strongly hashed (bcrypt,
	// scrypt or similar).
	RiskHardToCrack PasswordRisk = "hardtocrack"
	// RiskEasyToCrack indicates passwords were weakly hashed (unsalted
	// MD5, SHA-1 or similar).
	RiskEasyToCrack PasswordRisk = "easytocrack"
	// RiskPlainText indicates passwords were stored unhashed.
	RiskPlainText PasswordRisk = "plaintext"
)

// ParsePasswordRisk maps an API password-risk string to a PasswordRisk.
// Unrecognized values map to RiskUnknown.
func ParsePasswordRisk(s string) PasswordRisk {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "")
	switch PasswordRisk(normalized) {
	case RiskHardToCrack, RiskEasyToCrack, RiskPlainText:
		return PasswordRisk(normalized)
	default:
		return RiskUnknown
	}
}

// Severity orders password risks from harmless to worst: 0 for unknown
// up to 3 for plaintext storage.
func (r PasswordRisk) Severity() int {
	switch r {
	case RiskHardToCrack:
		return 1
	case RiskEasyToCrack:
		return 2
	case RiskPlainText:
		return 3
	default:
		return 0
	}
}

// Level is the overall exposure risk the analytics endpoint assigns to
// an email address.
type Level string

const (
	// LevelLow covers scores 0 through 3.
	LevelLow Level = "low"
	// LevelMedium covers scores 4 through 6.
	LevelMedium Level = "medium"
	// LevelHigh covers scores 7 and above.
	LevelHigh Level = "high"
)

// ParseLevel maps an API risk label to a Level. Unrecognized labels map
// to LevelLow.
func ParseLevel(s string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelMedium:
		return LevelMedium
	case LevelHigh:
		return LevelHigh
	default:
		return LevelLow
	}
}

// LevelFromScore derives a Level from a numeric risk score.
func LevelFromScore(score int) Level {
	switch {
	case score >= 7:
		return LevelHigh
	case score >= 4:
		return LevelMedium
	default:
		return LevelLow
	}
}
