// Package courtlistener is a best-effort client for the CourtListener REST
// API (v4). Transport failures and auth rejections degrade to nil payloads;
// the summarizer then fills every field with its sentinel instead of
// failing the run.
package courtlistener

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/abelbrown/docketwatch/internal/logging"
	"github.com/abelbrown/docketwatch/internal/model"
)

// DefaultBaseURL is the public CourtListener instance.
const DefaultBaseURL = "https://www.courtlistener.com"

const userAgent = "docketwatch/1.0"

// Client talks to the CourtListener API. A zero token is fine for public
// endpoints; authenticated requests get higher rate limits.
type Client struct {
	base    string
	token   string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Client. baseURL falls back to DefaultBaseURL when
// empty. Requests are throttled client-side to stay under the API quota.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		token:  token,
		client: &http.Client{Timeout: timeout},
		// CourtListener allows 5000 req/hour authenticated; stay well under.
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
	}
}

// getJSON fetches path with params and decodes the response object.
// It returns nil on 401/403, on any transport error, and on undecodable
// bodies; callers treat nil as "no data" and fall back to sentinels.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values) map[string]any {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil
	}

	u := c.base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		logging.Debug("courtlistener request build failed", "url", u, "error", err)
		return nil
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logging.Debug("courtlistener fetch failed", "url", u, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		logging.Warn("courtlistener auth rejected", "status", resp.StatusCode)
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("courtlistener non-2xx", "url", u, "status", resp.StatusCode)
		return nil
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logging.Debug("courtlistener decode failed", "url", u, "error", err)
		return nil
	}
	return payload
}

// FetchDocket retrieves one docket payload, nil on any failure.
func (c *Client) FetchDocket(ctx context.Context, docketID int64) map[string]any {
	return c.getJSON(ctx, fmt.Sprintf("/api/rest/v4/dockets/%d/", docketID), nil)
}

// fetchParties retrieves the party list for a docket, empty on failure.
func (c *Client) fetchParties(ctx context.Context, docketID int64) []map[string]any {
	params := url.Values{"docket": {fmt.Sprintf("%d", docketID)}}
	payload := c.getJSON(ctx, "/api/rest/v4/parties/", params)
	if payload == nil {
		return nil
	}

	results, _ := payload["results"].([]any)
	parties := make([]map[string]any, 0, len(results))
	for _, r := range results {
		if m, ok := r.(map[string]any); ok {
			parties = append(parties, m)
		}
	}
	return parties
}

// CourtMetadata resolves a court identifier to its short name and the
// court's API URL. On failure the raw identifier is echoed back so the
// report still shows something recognizable.
func (c *Client) CourtMetadata(ctx context.Context, courtID string) (shortName, apiURL string) {
	if courtID == "" || courtID == model.Unconfirmed {
		return model.Unconfirmed, ""
	}

	u := fmt.Sprintf("/api/rest/v4/courts/%s/", courtID)
	payload := c.getJSON(ctx, u, nil)
	if payload == nil {
		return courtID, c.base + u
	}

	short := firstNonEmpty(payload, "short_name")
	if short == "" {
		short = courtID
	}
	return short, c.base + u
}

// SearchDockets queries the v4 search endpoint for RECAP dockets matching
// query and returns their IDs. Best effort: nil on any failure.
func (c *Client) SearchDockets(ctx context.Context, query string) []int64 {
	params := url.Values{
		"q":    {query},
		"type": {"r"},
	}
	payload := c.getJSON(ctx, "/api/rest/v4/search/", params)
	if payload == nil {
		return nil
	}

	results, _ := payload["results"].([]any)
	var ids []int64
	seen := make(map[int64]bool)
	for _, r := range results {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		id, ok := m["docket_id"].(float64)
		if !ok || id == 0 {
			continue
		}
		if seen[int64(id)] {
			continue
		}
		seen[int64(id)] = true
		ids = append(ids, int64(id))
	}
	return ids
}

// absURL resolves CourtListener-relative paths against the API base.
func (c *Client) absURL(u string) string {
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http") {
		return u
	}
	if strings.HasPrefix(u, "/") {
		return c.base + u
	}
	return u
}
