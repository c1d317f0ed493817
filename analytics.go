package xposedornot

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/xposedornot/client-go/internal/api"
	"github.com/xposedornot/client-go/internal/validate"
	"github.com/xposedornot/client-go/risk"
)

// Risk is the service's overall risk assessment for an address.
type Risk struct {
	// Label is the risk level; always one of the risk.Level values.
	Label risk.Level
	// Score is the numeric risk score behind the label.
	Score int
}

// PasteSummary summarizes paste-site appearances of an address.
type PasteSummary struct {
	Count    int64
	Domain   string
	LastSeen time.Time
}

// PasswordStrength aggregates how the passwords exposed alongside an
// address were stored.
type PasswordStrength struct {
	EasyToCrack int64
	PlainText   int64
	StrongHash  int64
	Unknown     int64
}

// BreachAnalytics is the full exposure profile of an email address.
// The upstream response scatters this across inconsistently shaped
// sections; everything here is normalized.
type BreachAnalytics struct {
	// Email is the address that was analyzed.
	Email string
	// Breached reports whether the address appears in any breach.
	Breached bool
	// Risk is the service's risk assessment.
	Risk Risk
	// Breaches lists the full records of breaches the address is in.
	Breaches []Breach
	// Sites lists the breached site names.
	Sites []string
	// ExposedData counts exposures per leaked data class, e.g.
	// "Passwords" -> 2.
	ExposedData map[string]int64
	// Industries counts breaches per industry sector.
	Industries map[string]int64
	// YearlyBreaches counts breaches per calendar year. Years without
	// breaches are absent.
	YearlyBreaches map[int]int64
	// PasswordStrength breaks down password storage quality across the
	// address's breaches.
	PasswordStrength PasswordStrength
	// Pastes summarizes paste-site appearances.
	Pastes PasteSummary
}

// BreachAnalytics returns the full exposure profile for an address. An
// address with no exposure yields an empty profile, not an error.
func (c *Client) BreachAnalytics(ctx context.Context, email string) (*BreachAnalytics, error) {
	if err := validate.Email(email); err != nil {
		return nil, &ValidationError{Field: "email", Message: "invalid email address"}
	}

	c.log.Debug().Str("email", email).Msg("fetching breach analytics")

	resp, err := c.api.BreachAnalytics(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return &BreachAnalytics{
				Email: email,
				Risk:  Risk{Label: risk.LevelLow},
			}, nil
		}
		return nil, wrapError(err)
	}
	return analyticsFromResponse(email, resp), nil
}

// analyticsFromResponse normalizes the raw analytics sections. Absent
// sections leave their fields zero.
func analyticsFromResponse(email string, resp *api.BreachAnalyticsResponse) *BreachAnalytics {
	analytics := &BreachAnalytics{
		Email: email,
		Risk:  Risk{Label: risk.LevelLow},
	}

	if resp.BreachesSummary != nil {
		analytics.Sites = splitList(resp.BreachesSummary.Site)
	}
	if resp.ExposedBreaches != nil {
		analytics.Breaches = breachesFromDetails(resp.ExposedBreaches.BreachesDetails)
	}
	if resp.PastesSummary != nil {
		analytics.Pastes = PasteSummary{
			Count:    int64(resp.PastesSummary.Count),
			Domain:   resp.PastesSummary.Domain,
			LastSeen: parseBreachDate(resp.PastesSummary.Timestamp),
		}
	}

	if metrics := resp.BreachMetrics; metrics != nil {
		if len(metrics.Risk) > 0 {
			entry := metrics.Risk[0]
			score := int(entry.Score)
			label := risk.ParseLevel(entry.Label)
			if strings.TrimSpace(entry.Label) == "" {
				label = risk.LevelFromScore(score)
			}
			analytics.Risk = Risk{Label: label, Score: score}
		}
		if len(metrics.PasswordsStrength) > 0 {
			strength := metrics.PasswordsStrength[0]
			analytics.PasswordStrength = PasswordStrength{
				EasyToCrack: int64(strength.EasyToCrack),
				PlainText:   int64(strength.PlainText),
				StrongHash:  int64(strength.StrongHash),
				Unknown:     int64(strength.Unknown),
			}
		}
		analytics.Industries = industriesFromPairs(metrics.Industry)
		analytics.YearlyBreaches = yearsFromDetails(metrics.YearwiseDetails)
		analytics.ExposedData = exposedDataFromTree(metrics.XposedData)
	}

	analytics.Breached = len(analytics.Sites) > 0 || len(analytics.Breaches) > 0
	return analytics
}

// industriesFromPairs sums breach counts per industry, dropping the
// zero-count rows the API pads its table with.
func industriesFromPairs(groups [][]api.IndustryPair) map[string]int64 {
	industries := make(map[string]int64)
	for _, group := range groups {
		for _, pair := range group {
			if pair.Name == "" || pair.Count == 0 {
				continue
			}
			industries[pair.Name] += pair.Count
		}
	}
	if len(industries) == 0 {
		return nil
	}
	return industries
}

// yearsFromDetails converts y2013-style keys to numeric years, keeping
// only years with at least one breach.
func yearsFromDetails(details []map[string]int64) map[int]int64 {
	years := make(map[int]int64)
	for _, row := range details {
		for key, count := range row {
			if count == 0 {
				continue
			}
			year, err := strconv.Atoi(strings.TrimPrefix(key, "y"))
			if err != nil {
				continue
			}
			years[year] += count
		}
	}
	if len(years) == 0 {
		return nil
	}
	return years
}

// exposedDataFromTree flattens the leaves of the exposed-data tree.
// Leaf names carry a "data_" prefix on the wire.
func exposedDataFromTree(nodes []api.XposedNode) map[string]int64 {
	data := make(map[string]int64)

	var walk func(node api.XposedNode)
	walk = func(node api.XposedNode) {
		if len(node.Children) == 0 {
			name := strings.TrimPrefix(node.Name, "data_")
			if name != "" {
				data[name] += node.Value
			}
			return
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	for _, node := range nodes {
		walk(node)
	}

	if len(data) == 0 {
		return nil
	}
	return data
}
