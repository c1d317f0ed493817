package main

import (
	"cmp"
	"encoding/json"
	"maps"
	"os"
	"slices"

	xposedornot "github.com/xposedornot/client-go"
)

// Output structs decouple the --json wire shape from the client's
// result types.

type emailOutput struct {
	Address  string         `json:"address"`
	Breached bool           `json:"breached"`
	Breaches []string       `json:"breaches,omitempty"`
	Details  []breachOutput `json:"details,omitempty"`
	Error    string         `json:"error,omitempty"`
}

type breachOutput struct {
	ID             string   `json:"id"`
	Date           string   `json:"date,omitempty"`
	Domain         string   `json:"domain,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	PasswordRisk   string   `json:"passwordRisk,omitempty"`
	ExposedData    []string `json:"exposedData,omitempty"`
	ExposedRecords int64    `json:"exposedRecords,omitempty"`
	Verified       bool     `json:"verified"`
}

type analyticsOutput struct {
	Address        string           `json:"address"`
	Breached       bool             `json:"breached"`
	RiskLabel      string           `json:"riskLabel"`
	RiskScore      int              `json:"riskScore"`
	Sites          []string         `json:"sites,omitempty"`
	Breaches       []breachOutput   `json:"breaches,omitempty"`
	ExposedData    map[string]int64 `json:"exposedData,omitempty"`
	Industries     map[string]int64 `json:"industries,omitempty"`
	YearlyBreaches map[int]int64    `json:"yearlyBreaches,omitempty"`
	PasteCount     int64            `json:"pasteCount,omitempty"`
	LastPasteSeen  string           `json:"lastPasteSeen,omitempty"`
}

type passwordOutput struct {
	Exposed      bool  `json:"exposed"`
	Count        int64 `json:"count"`
	InWordlist   bool  `json:"inWordlist"`
	Digits       int   `json:"digits,omitempty"`
	Letters      int   `json:"letters,omitempty"`
	SpecialChars int   `json:"specialChars,omitempty"`
	Length       int   `json:"length,omitempty"`
}

const dateLayout = "2006-01-02"

func emailToOutput(e *xposedornot.EmailExposure) emailOutput {
	return emailOutput{
		Address:  e.Email,
		Breached: e.Breached,
		Breaches: e.Breaches,
		Details:  breachesToOutput(e.Details),
	}
}

func breachToOutput(b xposedornot.Breach) breachOutput {
	out := breachOutput{
		ID:             b.ID,
		Domain:         b.Domain,
		Industry:       b.Industry,
		PasswordRisk:   string(b.PasswordRisk),
		ExposedData:    b.ExposedData,
		ExposedRecords: b.ExposedRecords,
		Verified:       b.Verified,
	}
	if !b.Date.IsZero() {
		out.Date = b.Date.Format(dateLayout)
	}
	return out
}

func breachesToOutput(breaches []xposedornot.Breach) []breachOutput {
	if len(breaches) == 0 {
		return nil
	}
	out := make([]breachOutput, 0, len(breaches))
	for _, b := range breaches {
		out = append(out, breachToOutput(b))
	}
	return out
}

func analyticsToOutput(a *xposedornot.BreachAnalytics) analyticsOutput {
	out := analyticsOutput{
		Address:        a.Email,
		Breached:       a.Breached,
		RiskLabel:      string(a.Risk.Label),
		RiskScore:      a.Risk.Score,
		Sites:          a.Sites,
		Breaches:       breachesToOutput(a.Breaches),
		ExposedData:    a.ExposedData,
		Industries:     a.Industries,
		YearlyBreaches: a.YearlyBreaches,
		PasteCount:     a.Pastes.Count,
	}
	if !a.Pastes.LastSeen.IsZero() {
		out.LastPasteSeen = a.Pastes.LastSeen.Format(dateLayout)
	}
	return out
}

func passwordToOutput(p *xposedornot.PasswordExposure) passwordOutput {
	return passwordOutput{
		Exposed:      p.Exposed,
		Count:        p.Count,
		InWordlist:   p.InWordlist,
		Digits:       p.Characteristics.Digits,
		Letters:      p.Characteristics.Letters,
		SpecialChars: p.Characteristics.SpecialChars,
		Length:       p.Characteristics.Length,
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// sortedKeys returns the map's keys in ascending order, for stable
// human-readable output.
func sortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}
