package courtlistener

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/docketwatch/internal/model"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	c := NewClient(server.URL, "", 5*time.Second)
	return c, server
}

func TestBuildCaseSummaryZeroID(t *testing.T) {
	c := NewClient("http://unused", "", time.Second)
	if got := c.BuildCaseSummary(context.Background(), 0); got != nil {
		t.Errorf("expected nil for zero docket ID, got %+v", got)
	}
}

func TestBuildCaseSummarySnakeCase(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/rest/v4/dockets/42/"):
			fmt.Fprint(w, `{
				"case_name": "Authors Guild v. OpenAI",
				"docket_number": "1:23-cv-08292",
				"court": "nysd",
				"date_filed": "2023-09-19T00:00:00Z",
				"date_terminated": "",
				"assigned_to_str": "Sidney H. Stein",
				"referred_to_str": "",
				"nature_of_suit": "820 Copyright",
				"cause": "17:101 Copyright Infringement",
				"absolute_url": "/docket/67890/authors-guild-v-openai/"
			}`)
		case strings.HasPrefix(r.URL.Path, "/api/rest/v4/courts/nysd/"):
			fmt.Fprint(w, `{"short_name": "S.D.N.Y."}`)
		case strings.HasPrefix(r.URL.Path, "/api/rest/v4/parties/"):
			fmt.Fprint(w, `{"results": [
				{"name": "Authors Guild", "party_type": "Plaintiff"},
				{"name": "OpenAI, Inc.", "party_type": "Defendant"}
			]}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	s := c.BuildCaseSummary(context.Background(), 42)
	if s == nil {
		t.Fatal("expected a summary")
	}
	if s.CaseName != "Authors Guild v. OpenAI" {
		t.Errorf("CaseName = %q", s.CaseName)
	}
	if s.DocketNumber != "1:23-cv-08292" {
		t.Errorf("DocketNumber = %q", s.DocketNumber)
	}
	if s.CourtName != "S.D.N.Y." {
		t.Errorf("CourtName = %q", s.CourtName)
	}
	if s.DateFiled != "2023-09-19" {
		t.Errorf("DateFiled = %q, want calendar-date truncation", s.DateFiled)
	}
	if s.Status != "active/unknown" {
		t.Errorf("Status = %q", s.Status)
	}
	if s.Judge != "Sidney H. Stein" {
		t.Errorf("Judge = %q", s.Judge)
	}
	// Empty referred_to_str falls through to the sentinel.
	if s.Magistrate != model.Unconfirmed {
		t.Errorf("Magistrate = %q, want sentinel", s.Magistrate)
	}
	if s.Parties != "Authors Guild(Plaintiff); OpenAI, Inc.(Defendant)" {
		t.Errorf("Parties = %q", s.Parties)
	}
	if s.DocketURL != server.URL+"/docket/67890/authors-guild-v-openai/" {
		t.Errorf("DocketURL = %q, want relative path resolved", s.DocketURL)
	}
}

func TestBuildCaseSummaryCamelCaseDrift(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/rest/v4/dockets/"):
			fmt.Fprint(w, `{
				"caseName": "Doe v. GenAI Corp.",
				"docketNumber": "3:24-cv-00001",
				"courtId": "cand",
				"dateFiled": "2024-01-02",
				"dateTerminated": "2024-05-06T00:00:00Z",
				"assignedTo": "Jane Roe"
			}`)
		case strings.HasPrefix(r.URL.Path, "/api/rest/v4/courts/cand/"):
			fmt.Fprint(w, `{"short_name": "N.D. Cal."}`)
		default:
			fmt.Fprint(w, `{"results": []}`)
		}
	}))
	defer server.Close()

	s := c.BuildCaseSummary(context.Background(), 7)
	if s.CaseName != "Doe v. GenAI Corp." {
		t.Errorf("CaseName = %q, want camelCase fallback honored", s.CaseName)
	}
	if s.Court != "cand" {
		t.Errorf("Court = %q", s.Court)
	}
	if s.Status != "terminated(2024-05-06)" {
		t.Errorf("Status = %q", s.Status)
	}
	if s.Judge != "Jane Roe" {
		t.Errorf("Judge = %q, want assignedTo fallback", s.Judge)
	}
	// No parties returned.
	if s.Parties != model.Unconfirmed {
		t.Errorf("Parties = %q, want sentinel", s.Parties)
	}
}

func TestBuildCaseSummaryFetchFailure(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := c.BuildCaseSummary(context.Background(), 99)
	if s == nil {
		t.Fatal("fetch failure must still yield a summary")
	}

	for field, got := range map[string]string{
		"CaseName":     s.CaseName,
		"DocketNumber": s.DocketNumber,
		"Court":        s.Court,
		"DateFiled":    s.DateFiled,
		"Judge":        s.Judge,
		"Magistrate":   s.Magistrate,
		"NatureOfSuit": s.NatureOfSuit,
		"Cause":        s.Cause,
		"Parties":      s.Parties,
	} {
		if got != model.Unconfirmed {
			t.Errorf("%s = %q, want sentinel", field, got)
		}
	}
	if s.Status != "active/unknown" {
		t.Errorf("Status = %q", s.Status)
	}
	// Court metadata lookup is skipped entirely for the sentinel court ID.
	if s.CourtName != model.Unconfirmed || s.CourtAPIURL != "" {
		t.Errorf("CourtName = %q, CourtAPIURL = %q", s.CourtName, s.CourtAPIURL)
	}
}

func TestCourtMetadataEchoesIDOnFailure(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	short, apiURL := c.CourtMetadata(context.Background(), "txed")
	if short != "txed" {
		t.Errorf("short name = %q, want raw ID echoed", short)
	}
	if !strings.HasSuffix(apiURL, "/api/rest/v4/courts/txed/") {
		t.Errorf("apiURL = %q", apiURL)
	}
}

func TestFormatParties(t *testing.T) {
	party := func(name, typ string) map[string]any {
		m := map[string]any{"name": name}
		if typ != "" {
			m["party_type"] = typ
		}
		return m
	}

	t.Run("typed and bare names", func(t *testing.T) {
		got := formatParties([]map[string]any{
			party("Acme Corp", "Defendant"),
			party("John Doe", ""),
		})
		if got != "Acme Corp(Defendant); John Doe" {
			t.Errorf("formatParties = %q", got)
		}
	})

	t.Run("overflow ellipsis", func(t *testing.T) {
		var parties []map[string]any
		for i := 0; i < 15; i++ {
			parties = append(parties, party(fmt.Sprintf("Party %d", i), "Plaintiff"))
		}
		got := formatParties(parties)
		if !strings.HasSuffix(got, "; …") {
			t.Errorf("expected ellipsis marker, got %q", got)
		}
		if strings.Count(got, ";") != maxParties {
			t.Errorf("expected %d names plus marker, got %q", maxParties, got)
		}
	})

	t.Run("no usable names", func(t *testing.T) {
		got := formatParties([]map[string]any{{"party_type": "Plaintiff"}})
		if got != model.Unconfirmed {
			t.Errorf("formatParties = %q, want sentinel", got)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if got := formatParties(nil); got != model.Unconfirmed {
			t.Errorf("formatParties = %q, want sentinel", got)
		}
	})

	t.Run("role fallback", func(t *testing.T) {
		got := formatParties([]map[string]any{{"partyName": "Jane", "role": "Movant"}})
		if got != "Jane(Movant)" {
			t.Errorf("formatParties = %q", got)
		}
	})
}

func TestFirstNonEmpty(t *testing.T) {
	payload := map[string]any{
		"a": "",
		"b": "  ",
		"c": "value",
		"d": nil,
		"n": float64(820),
	}

	if got := firstNonEmpty(payload, "a", "b", "c"); got != "value" {
		t.Errorf("firstNonEmpty = %q, want first non-empty after trimming", got)
	}
	if got := firstNonEmpty(payload, "d", "missing"); got != "" {
		t.Errorf("firstNonEmpty = %q, want empty", got)
	}
	if got := firstNonEmpty(payload, "n"); got != "820" {
		t.Errorf("firstNonEmpty = %q, want integral number rendered plainly", got)
	}
}

func TestIsoDate(t *testing.T) {
	if got := isoDate("2024-05-06T12:30:00Z"); got != "2024-05-06" {
		t.Errorf("isoDate = %q", got)
	}
	if got := isoDate("2024-05-06"); got != "2024-05-06" {
		t.Errorf("isoDate = %q", got)
	}
	if got := isoDate(""); got != "" {
		t.Errorf("isoDate = %q", got)
	}
}

func TestSearchDockets(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") != "r" {
			t.Errorf("expected RECAP search type, got %q", r.URL.Query().Get("type"))
		}
		fmt.Fprint(w, `{"results": [
			{"docket_id": 101},
			{"docket_id": 102},
			{"docket_id": 101},
			{"case_name": "no id"}
		]}`)
	}))
	defer server.Close()

	ids := c.SearchDockets(context.Background(), "ai training copyright")
	if len(ids) != 2 || ids[0] != 101 || ids[1] != 102 {
		t.Errorf("SearchDockets = %v, want [101 102]", ids)
	}
}

func TestSearchDocketsFailure(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	if ids := c.SearchDockets(context.Background(), "q"); ids != nil {
		t.Errorf("expected nil on auth rejection, got %v", ids)
	}
}

func TestAuthHeader(t *testing.T) {
	var gotAuth string
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	authed := NewClient(server.URL, "secret-token", 5*time.Second)
	authed.FetchDocket(context.Background(), 1)
	if gotAuth != "Token secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}

	gotAuth = ""
	c.FetchDocket(context.Background(), 1)
	if gotAuth != "" {
		t.Errorf("expected no Authorization header without token, got %q", gotAuth)
	}
}

func TestAbsURL(t *testing.T) {
	c := NewClient("https://www.courtlistener.com", "", time.Second)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"https://example.com/x", "https://example.com/x"},
		{"/docket/1/", "https://www.courtlistener.com/docket/1/"},
		{"relative", "relative"},
	}
	for _, tc := range tests {
		if got := c.absURL(tc.in); got != tc.want {
			t.Errorf("absURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
