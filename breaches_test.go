package xposedornot

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/xposedornot/client-go/risk"
)

func TestBreaches(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/breaches" {
			t.Errorf("path = %s, want /v1/breaches", r.URL.Path)
		}
		if _, ok := r.URL.Query()["domain"]; ok {
			t.Error("domain should be absent without WithBreachDomain")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "success",
			"exposedBreaches": [{
				"breachID": "Adobe",
				"breachedDate": "2013-10-04T00:00:00Z",
				"domain": "adobe.com",
				"exposedData": "Email addresses;Passwords;Usernames",
				"exposedRecords": 152445165,
				"exposureDescription": "Adobe customer accounts leaked.",
				"industry": "Technology",
				"passwordRisk": "easytocrack",
				"referenceURL": "https://example.com/adobe",
				"searchable": "Yes",
				"sensitive": "No",
				"verified": "Yes"
			}]
		}`))
	}))

	breaches, err := client.Breaches(context.Background())
	if err != nil {
		t.Fatalf("Breaches() error = %v", err)
	}
	if len(breaches) != 1 {
		t.Fatalf("got %d breaches, want 1", len(breaches))
	}

	breach := breaches[0]
	if breach.ID != "Adobe" {
		t.Errorf("ID = %s, want Adobe", breach.ID)
	}
	if breach.Date.Year() != 2013 || breach.Date.Month() != time.October {
		t.Errorf("Date = %v, want October 2013", breach.Date)
	}
	if breach.PasswordRisk != risk.RiskEasyToCrack {
		t.Errorf("PasswordRisk = %q, want easytocrack", breach.PasswordRisk)
	}
	if len(breach.ExposedData) != 3 || breach.ExposedData[2] != "Usernames" {
		t.Errorf("ExposedData = %v", breach.ExposedData)
	}
	if breach.ExposedRecords != 152445165 {
		t.Errorf("ExposedRecords = %d, want 152445165", breach.ExposedRecords)
	}
	if breach.Description != "Adobe customer accounts leaked." {
		t.Errorf("Description = %q", breach.Description)
	}
	if !breach.Searchable || breach.Sensitive || !breach.Verified {
		t.Errorf("flags = %v/%v/%v, want true/false/true",
			breach.Searchable, breach.Sensitive, breach.Verified)
	}
}

func TestBreaches_DomainFilter(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("domain"); got != "adobe.com" {
			t.Errorf("domain = %q, want adobe.com", got)
		}
		w.Write([]byte(`{"status": "success", "exposedBreaches": []}`))
	}))

	breaches, err := client.Breaches(context.Background(), WithBreachDomain("adobe.com"))
	if err != nil {
		t.Fatalf("Breaches() error = %v", err)
	}
	if len(breaches) != 0 {
		t.Errorf("got %d breaches, want 0", len(breaches))
	}
}

func TestBreaches_UnknownDomain(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	breaches, err := client.Breaches(context.Background(), WithBreachDomain("nobody.example"))
	if err != nil {
		t.Fatalf("Breaches() error = %v, want empty catalog for 404", err)
	}
	if len(breaches) != 0 {
		t.Errorf("got %d breaches, want 0", len(breaches))
	}
}

func TestBreaches_InvalidDomain(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be reached for a rejected input")
	}))

	_, err := client.Breaches(context.Background(), WithBreachDomain("not a domain"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrInvalidDomain) {
		t.Errorf("errors.Is(err, ErrInvalidDomain) = false, want true: %v", err)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Passwords", []string{"Passwords"}},
		{"multiple", "Email addresses;Passwords;Usernames", []string{"Email addresses", "Passwords", "Usernames"}},
		{"padded", " Email addresses ; Passwords ", []string{"Email addresses", "Passwords"}},
		{"trailing separator", "Passwords;", []string{"Passwords"}},
		{"only separators", ";;", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitList(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("splitList(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseBreachDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"RFC3339", "2013-10-04T00:00:00Z", time.Date(2013, 10, 4, 0, 0, 0, 0, time.UTC)},
		{"date only", "2016-05-17", time.Date(2016, 5, 17, 0, 0, 0, 0, time.UTC)},
		{"year only", "2013", time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "soon", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseBreachDate(tt.input); !got.Equal(tt.want) {
				t.Errorf("parseBreachDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
