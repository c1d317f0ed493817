package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	xposedornot "github.com/xposedornot/client-go"
	"github.com/xposedornot/client-go/risk"
)

func TestBreachToOutput(t *testing.T) {
	b := xposedornot.Breach{
		ID:             "Adobe",
		Date:           time.Date(2013, 10, 4, 0, 0, 0, 0, time.UTC),
		Domain:         "adobe.com",
		Industry:       "Information Technology",
		PasswordRisk:   risk.RiskEasyToCrack,
		ExposedData:    []string{"Email addresses", "Passwords"},
		ExposedRecords: 152445165,
		Verified:       true,
	}

	out := breachToOutput(b)

	assert.Equal(t, "Adobe", out.ID)
	assert.Equal(t, "2013-10-04", out.Date)
	assert.Equal(t, "adobe.com", out.Domain)
	assert.Equal(t, "easytocrack", out.PasswordRisk)
	assert.Equal(t, int64(152445165), out.ExposedRecords)
	assert.True(t, out.Verified)
}

func TestBreachToOutput_ZeroDate(t *testing.T) {
	out := breachToOutput(xposedornot.Breach{ID: "Mystery"})
	assert.Empty(t, out.Date)
}

func TestEmailToOutput(t *testing.T) {
	out := emailToOutput(&xposedornot.EmailExposure{
		Email:    "user@example.com",
		Breached: true,
		Breaches: []string{"Adobe", "LinkedIn"},
	})

	assert.Equal(t, "user@example.com", out.Address)
	assert.True(t, out.Breached)
	assert.Equal(t, []string{"Adobe", "LinkedIn"}, out.Breaches)
	assert.Nil(t, out.Details)
	assert.Empty(t, out.Error)
}

func TestAnalyticsToOutput(t *testing.T) {
	a := &xposedornot.BreachAnalytics{
		Email:    "user@example.com",
		Breached: true,
		Risk:     xposedornot.Risk{Label: risk.LevelMedium, Score: 5},
		Sites:    []string{"Adobe"},
	}

	out := analyticsToOutput(a)

	assert.Equal(t, "medium", out.RiskLabel)
	assert.Equal(t, 5, out.RiskScore)
	assert.Empty(t, out.LastPasteSeen, "zero paste time should not render")
}

func TestPasswordToOutput(t *testing.T) {
	out := passwordToOutput(&xposedornot.PasswordExposure{
		Exposed:    true,
		Count:      312,
		InWordlist: true,
		Characteristics: xposedornot.PasswordCharacteristics{
			Digits: 2, Letters: 6, Length: 8,
		},
	})

	assert.True(t, out.Exposed)
	assert.Equal(t, int64(312), out.Count)
	assert.True(t, out.InWordlist)
	assert.Equal(t, 8, out.Length)
}

func TestSortedKeys(t *testing.T) {
	m := map[int]int64{2019: 1, 2013: 3, 2021: 2}
	assert.Equal(t, []int{2013, 2019, 2021}, sortedKeys(m))
}
