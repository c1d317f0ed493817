package api

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The XposedOrNot API is loose with types: counts arrive as numbers or
// numeric strings, booleans as true/false, 0/1 or "Yes"/"No". FlexInt and
// FlexBool absorb those variations at the wire so the rest of the client
// sees ordinary values.

// FlexInt is an integer that may arrive as a JSON number or a numeric
// string. Anything unparseable decodes to zero.
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if fv, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			*f = FlexInt(fv)
			return nil
		}
		*f = 0
		return nil
	}
	*f = FlexInt(n)
	return nil
}

// FlexBool is a boolean that may arrive as JSON true/false, 0/1, or a
// "Yes"/"No" style string.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		*b = true
	default:
		*b = false
	}
	return nil
}

// CheckEmailResponse is the raw shape of GET /v1/check-email/{email}.
// The breach list is wrapped in an extra array level by the server.
type CheckEmailResponse struct {
	Email           string         `json:"email"`
	Breaches        [][]string     `json:"breaches"`
	BreachesDetails []BreachDetail `json:"breaches_details"`
}

// BreachDetail is one detailed breach record as returned by check-email
// (with include_details) and breach-analytics.
type BreachDetail struct {
	Breach        string   `json:"breach"`
	Details       string   `json:"details"`
	Domain        string   `json:"domain"`
	Industry      string   `json:"industry"`
	Logo          string   `json:"logo"`
	PasswordRisk  string   `json:"password_risk"`
	References    string   `json:"references"`
	Searchable    FlexBool `json:"searchable"`
	Sensitive     FlexBool `json:"sensitive"`
	Verified      FlexBool `json:"verified"`
	XposedData    string   `json:"xposed_data"`
	XposedDate    string   `json:"xposed_date"`
	XposedRecords FlexInt  `json:"xposed_records"`
}

// BreachesResponse is the raw shape of GET /v1/breaches.
type BreachesResponse struct {
	Status          string         `json:"status"`
	ExposedBreaches []BreachRecord `json:"exposedBreaches"`
}

// BreachRecord is one entry of the global breach catalog. List-valued
// fields such as exposedData arrive semicolon-delimited.
type BreachRecord struct {
	BreachID            string   `json:"breachID"`
	BreachedDate        string   `json:"breachedDate"`
	Domain              string   `json:"domain"`
	Industry            string   `json:"industry"`
	Logo                string   `json:"logo"`
	PasswordRisk        string   `json:"passwordRisk"`
	ExposedData         string   `json:"exposedData"`
	ExposedRecords      FlexInt  `json:"exposedRecords"`
	ExposureDescription string   `json:"exposureDescription"`
	ReferenceURL        string   `json:"referenceURL"`
	Searchable          FlexBool `json:"searchable"`
	Sensitive           FlexBool `json:"sensitive"`
	Verified            FlexBool `json:"verified"`
}

// BreachAnalyticsResponse is the raw shape of GET /v1/breach-analytics.
// Section names are PascalCase on the wire; absent sections decode to nil.
type BreachAnalyticsResponse struct {
	BreachesSummary *BreachesSummary `json:"BreachesSummary"`
	PastesSummary   *PastesSummary   `json:"PastesSummary"`
	BreachMetrics   *BreachMetrics   `json:"BreachMetrics"`
	ExposedBreaches *ExposedBreaches `json:"ExposedBreaches"`
}

// BreachesSummary carries the semicolon-joined list of breached sites.
type BreachesSummary struct {
	Site string `json:"site"`
}

// PastesSummary summarizes paste-site appearances of an address.
type PastesSummary struct {
	Count     FlexInt `json:"cnt"`
	Domain    string  `json:"domain"`
	Timestamp string  `json:"tmpstmp"`
}

// BreachMetrics holds the aggregate sections of a breach-analytics
// response.
type BreachMetrics struct {
	Industry          [][]IndustryPair    `json:"industry"`
	PasswordsStrength []PasswordsStrength `json:"passwords_strength"`
	Risk              []RiskEntry         `json:"risk"`
	XposedData        []XposedNode        `json:"xposed_data"`
	YearwiseDetails   []map[string]int64  `json:"yearwise_details"`
}

// IndustryPair is a ["name", count] tuple from the industry table.
type IndustryPair struct {
	Name  string
	Count int64
}

// UnmarshalJSON decodes the positional tuple. Malformed elements are
// skipped rather than failing the whole response.
func (p *IndustryPair) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) > 0 {
		_ = json.Unmarshal(tuple[0], &p.Name)
	}
	if len(tuple) > 1 {
		var f FlexInt
		_ = f.UnmarshalJSON(tuple[1])
		p.Count = int64(f)
	}
	return nil
}

// PasswordsStrength counts breached passwords by storage quality.
type PasswordsStrength struct {
	EasyToCrack FlexInt `json:"EasyToCrack"`
	PlainText   FlexInt `json:"PlainText"`
	StrongHash  FlexInt `json:"StrongHash"`
	Unknown     FlexInt `json:"Unknown"`
}

// RiskEntry is the service's risk assessment for an address.
type RiskEntry struct {
	Label string  `json:"risk_label"`
	Score FlexInt `json:"risk_score"`
}

// XposedNode is one node of the exposed-data tree. Leaves carry a value;
// interior nodes carry children.
type XposedNode struct {
	Name     string       `json:"name"`
	Value    int64        `json:"value"`
	Children []XposedNode `json:"children"`
}

// ExposedBreaches wraps the detailed breach records of an analytics
// response.
type ExposedBreaches struct {
	BreachesDetails []BreachDetail `json:"breaches_details"`
}

// PasswordAnonResponse is the raw shape of GET /v1/pass/anon/{prefix}
// on the passwords host.
type PasswordAnonResponse struct {
	SearchPassAnon *SearchPassAnon `json:"SearchPassAnon"`
}

// SearchPassAnon is the payload of an anonymous password lookup. Char
// encodes the password composition as "D:2;A:6;S:0;L:8".
type SearchPassAnon struct {
	Anon     string   `json:"anon"`
	Char     string   `json:"char"`
	Count    FlexInt  `json:"count"`
	Wordlist FlexBool `json:"wordlist"`
}
