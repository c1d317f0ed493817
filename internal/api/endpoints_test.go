package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestClient_CheckEmail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/v1/check-email/user@example.com" {
			t.Errorf("path = %s, want /v1/check-email/user@example.com", r.URL.Path)
		}
		if _, ok := r.URL.Query()["include_details"]; ok {
			t.Error("include_details should be absent")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"breaches": [["Adobe", "LinkedIn"]]}`))
	})

	resp, err := client.CheckEmail(context.Background(), "user@example.com", false)
	if err != nil {
		t.Fatalf("CheckEmail() error = %v", err)
	}
	if len(resp.Breaches) != 1 || len(resp.Breaches[0]) != 2 {
		t.Fatalf("Breaches = %v, want one group of two", resp.Breaches)
	}
	if resp.Breaches[0][0] != "Adobe" {
		t.Errorf("Breaches[0][0] = %s, want Adobe", resp.Breaches[0][0])
	}
}

func TestClient_CheckEmail_WithDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("include_details"); got != "true" {
			t.Errorf("include_details = %q, want %q", got, "true")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"email": "user@example.com",
			"breaches_details": [{
				"breach": "Adobe",
				"domain": "adobe.com",
				"industry": "Technology",
				"password_risk": "easytocrack",
				"searchable": "Yes",
				"verified": "Yes",
				"sensitive": "No",
				"xposed_data": "Email addresses;Passwords",
				"xposed_date": "2013",
				"xposed_records": 152445165
			}]
		}`))
	})

	resp, err := client.CheckEmail(context.Background(), "user@example.com", true)
	if err != nil {
		t.Fatalf("CheckEmail() error = %v", err)
	}
	if len(resp.BreachesDetails) != 1 {
		t.Fatalf("BreachesDetails has %d entries, want 1", len(resp.BreachesDetails))
	}

	detail := resp.BreachesDetails[0]
	if detail.Breach != "Adobe" {
		t.Errorf("Breach = %s, want Adobe", detail.Breach)
	}
	if !detail.Searchable {
		t.Error("Searchable = false, want true")
	}
	if detail.Sensitive {
		t.Error("Sensitive = true, want false")
	}
	if detail.XposedRecords != 152445165 {
		t.Errorf("XposedRecords = %d, want 152445165", detail.XposedRecords)
	}
}

func TestClient_CheckEmail_PathEscaping(t *testing.T) {
	// A slash is legal in an email local part and must stay inside the
	// path segment.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/v1/check-email/user%2Fname@example.com" {
			t.Errorf("escaped path = %s", r.URL.EscapedPath())
		}
		w.Write([]byte(`{"breaches": []}`))
	})

	if _, err := client.CheckEmail(context.Background(), "user/name@example.com", false); err != nil {
		t.Fatalf("CheckEmail() error = %v", err)
	}
}

func TestClient_Breaches(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/breaches" {
			t.Errorf("path = %s, want /v1/breaches", r.URL.Path)
		}
		if _, ok := r.URL.Query()["domain"]; ok {
			t.Error("domain should be absent when no filter is given")
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
				"industry": "Technology",
				"passwordRisk": "easytocrack",
				"searchable": "Yes",
				"sensitive": "No",
				"verified": "Yes"
			}]
		}`))
	})

	resp, err := client.Breaches(context.Background(), "")
	if err != nil {
		t.Fatalf("Breaches() error = %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("Status = %s, want success", resp.Status)
	}
	if len(resp.ExposedBreaches) != 1 {
		t.Fatalf("ExposedBreaches has %d entries, want 1", len(resp.ExposedBreaches))
	}

	record := resp.ExposedBreaches[0]
	if record.BreachID != "Adobe" {
		t.Errorf("BreachID = %s, want Adobe", record.BreachID)
	}
	if record.ExposedRecords != 152445165 {
		t.Errorf("ExposedRecords = %d, want 152445165", record.ExposedRecords)
	}
	if !record.Verified {
		t.Error("Verified = false, want true")
	}
}

func TestClient_Breaches_DomainFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("domain"); got != "adobe.com" {
			t.Errorf("domain = %q, want adobe.com", got)
		}
		w.Write([]byte(`{"status": "success", "exposedBreaches": []}`))
	})

	if _, err := client.Breaches(context.Background(), "adobe.com"); err != nil {
		t.Fatalf("Breaches() error = %v", err)
	}
}

func TestClient_BreachAnalytics(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/breach-analytics" {
			t.Errorf("path = %s, want /v1/breach-analytics", r.URL.Path)
		}
		if got := r.URL.Query().Get("email"); got != "user@example.com" {
			t.Errorf("email = %q, want user@example.com", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"BreachesSummary": {"site": "Adobe;LinkedIn"},
			"BreachMetrics": {
				"risk": [{"risk_label": "High", "risk_score": 8}],
				"passwords_strength": [{"EasyToCrack": 2, "PlainText": 1, "StrongHash": 0, "Unknown": 0}]
			},
			"PastesSummary": {"cnt": 0, "domain": "", "tmpstmp": ""}
		}`))
	})

	resp, err := client.BreachAnalytics(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("BreachAnalytics() error = %v", err)
	}
	if resp.BreachesSummary == nil || resp.BreachesSummary.Site != "Adobe;LinkedIn" {
		t.Errorf("BreachesSummary = %+v, want site Adobe;LinkedIn", resp.BreachesSummary)
	}
	if resp.BreachMetrics == nil || len(resp.BreachMetrics.Risk) != 1 {
		t.Fatalf("BreachMetrics = %+v, want one risk entry", resp.BreachMetrics)
	}
	if resp.BreachMetrics.Risk[0].Label != "High" {
		t.Errorf("risk label = %s, want High", resp.BreachMetrics.Risk[0].Label)
	}
	if resp.BreachMetrics.Risk[0].Score != 8 {
		t.Errorf("risk score = %d, want 8", resp.BreachMetrics.Risk[0].Score)
	}
}

func TestClient_CheckPasswordAnon(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/pass/anon/0eab42de4c" {
			t.Errorf("path = %s, want /v1/pass/anon/0eab42de4c", r.URL.Path)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"SearchPassAnon": {
				"anon": "0eab42de4c",
				"char": "D:2;A:6;S:0;L:8",
				"count": "312",
				"wordlist": 0
			}
		}`))
	})

	resp, err := client.CheckPasswordAnon(context.Background(), "0eab42de4c")
	if err != nil {
		t.Fatalf("CheckPasswordAnon() error = %v", err)
	}
	if resp.SearchPassAnon == nil {
		t.Fatal("SearchPassAnon is nil")
	}
	if resp.SearchPassAnon.Count != 312 {
		t.Errorf("Count = %d, want 312", resp.SearchPassAnon.Count)
	}
	if resp.SearchPassAnon.Wordlist {
		t.Error("Wordlist = true, want false")
	}
	if resp.SearchPassAnon.Char != "D:2;A:6;S:0;L:8" {
		t.Errorf("Char = %s, want D:2;A:6;S:0;L:8", resp.SearchPassAnon.Char)
	}
}
