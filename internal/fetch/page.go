// Package fetch retrieves article pages and normalizes them to plain text.
//
// This is the best-effort edge of the pipeline: a fetch that fails for any
// reason (transport error, timeout, non-2xx status, unparseable markup)
// yields empty text rather than an error, so one unreachable page never
// aborts a run.
package fetch

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/abelbrown/docketwatch/internal/logging"
)

// MaxTextLen caps the normalized text returned per page.
const MaxTextLen = 20000

const userAgent = "docketwatch/1.0 (https://github.com/abelbrown/docketwatch)"

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// PageFetcher retrieves article pages over HTTP.
type PageFetcher struct {
	client *http.Client
}

// NewPageFetcher creates a PageFetcher with the given per-request timeout.
func NewPageFetcher(timeout time.Duration) *PageFetcher {
	return &PageFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchText retrieves url, strips markup, and returns (text, finalURL) where
// finalURL is the post-redirect address. On any failure it returns empty text
// and the original url; it never returns an error.
func (f *PageFetcher) FetchText(ctx context.Context, url string) (string, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logging.Debug("page request build failed", "url", url, "error", err)
		return "", url
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		logging.Debug("page fetch failed", "url", url, "error", err)
		return "", url
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logging.Debug("page fetch non-2xx", "url", url, "status", resp.StatusCode)
		return "", url
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = strings.TrimSpace(resp.Request.URL.String())
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		logging.Debug("page parse failed", "url", url, "error", err)
		return "", finalURL
	}

	return Normalize(doc), finalURL
}

// Normalize extracts readable text from a parsed document: script, style and
// noscript subtrees are dropped, whitespace runs collapsed, and the result
// capped at MaxTextLen runes.
func Normalize(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	text = spaceRuns.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > MaxTextLen {
		text = string(runes[:MaxTextLen])
	}
	return text
}
