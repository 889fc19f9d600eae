// Package extract turns raw news items into normalized regulation records:
// relevance filtering, jurisdiction/subject inference, curated overrides,
// and duplicate folding across sources.
package extract

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/abelbrown/docketwatch/internal/logging"
	"github.com/abelbrown/docketwatch/internal/model"
)

// relevanceKeywords gate inclusion: an article qualifies only when at least
// one of these appears in its title or normalized body text. English and
// Korean terms, matched case-insensitively. The matched subset is recorded
// on the record in this declaration order.
var relevanceKeywords = []string{
	"regulation", "governance", "act", "policy", "bill", "copyright", "dispute", "legal",
	"intellectual property", "framework", "safety summit", "guideline", "ethics",
	"규제", "거버넌스", "기본법", "정책", "가이드라인", "저작권", "책임법", "윤리", "지식재산권",
}

// TextFetcher retrieves an article page as plain text. Implementations are
// best-effort: empty text signals an unusable page, never an error.
type TextFetcher interface {
	FetchText(ctx context.Context, url string) (text, finalURL string)
}

// Builder constructs regulation records from news items.
type Builder struct {
	fetcher      TextFetcher
	lookbackDays int

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewBuilder creates a Builder. Items published more than lookbackDays
// before the run are excluded; items without a timestamp never are.
func NewBuilder(fetcher TextFetcher, lookbackDays int) *Builder {
	return &Builder{
		fetcher:      fetcher,
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
}

// BuildFromNews turns qualifying news items into merged regulation records.
// Items are rejected silently when stale, unreadable, or irrelevant; a
// rejection is never an error.
func (b *Builder) BuildFromNews(ctx context.Context, items []model.NewsItem, known []KnownCase) []model.Regulation {
	now := b.now().UTC()
	cutoff := now.Add(-time.Duration(b.lookbackDays) * 24 * time.Hour)
	logging.Debug("building regulations", "items", len(items), "lookback_days", b.lookbackDays)

	records := make([]model.Regulation, 0, len(items))
	for _, item := range items {
		if item.PublishedAt != nil && item.PublishedAt.UTC().Before(cutoff) {
			continue
		}

		text, finalURL := b.fetcher.FetchText(ctx, item.URL)
		if text == "" {
			continue
		}

		hay := item.Title + " " + text
		found := matchRelevance(hay)
		if len(found) == 0 {
			logging.Debug("skipped non-relevant news", "title", truncate(item.Title, 60))
			continue
		}

		enrich := EnrichFromKnown(text, item.Title, known)

		country := enrich.Country
		if country == "" {
			country = Country(text, item.Title)
		}
		subject := enrich.Subject
		if subject == "" {
			subject = Subject(text, item.Title)
		}
		caseNumber := enrich.CaseNumber
		if caseNumber == "" {
			caseNumber = model.NoCaseNumber
		}
		reason := enrich.Reason
		if reason == "" {
			reason = ReasonHeuristic(hay)
		}

		date := now
		if item.PublishedAt != nil {
			date = item.PublishedAt.UTC()
		}

		records = append(records, model.Regulation{
			UpdateOrFiledDate: date.Format("2006-01-02"),
			Country:           country,
			Subject:           subject,
			ArticleTitle:      item.Title,
			CaseNumber:        caseNumber,
			Reason:            reason,
			SourceURLs:        urlSet(finalURL, item.URL),
			MatchedKeywords:   strings.Join(found, ", "),
		})
	}

	return Merge(records)
}

// Merge folds records sharing the 4-tuple merge key. The first-seen record
// of each group survives: its URL set becomes the union of the group, its
// date the chronologically greatest, and its matched keywords the sorted
// deduplicated union. Running Merge over already-merged output is a no-op.
func Merge(records []model.Regulation) []model.Regulation {
	merged := make(map[model.MergeKey]*model.Regulation, len(records))
	order := make([]model.MergeKey, 0, len(records))

	for i := range records {
		r := records[i]
		key := r.Key()
		existing, ok := merged[key]
		if !ok {
			merged[key] = &r
			order = append(order, key)
			continue
		}

		existing.SourceURLs = unionStrings(existing.SourceURLs, r.SourceURLs)
		// ISO dates compare chronologically as strings.
		if r.UpdateOrFiledDate > existing.UpdateOrFiledDate {
			existing.UpdateOrFiledDate = r.UpdateOrFiledDate
		}
		existing.MatchedKeywords = unionKeywords(existing.MatchedKeywords, r.MatchedKeywords)
	}

	out := make([]model.Regulation, 0, len(order))
	for _, key := range order {
		out = append(out, *merged[key])
	}
	return out
}

// matchRelevance returns the relevance keywords present in hay, in table order.
func matchRelevance(hay string) []string {
	lower := strings.ToLower(hay)
	var found []string
	for _, k := range relevanceKeywords {
		if strings.Contains(lower, k) {
			found = append(found, k)
		}
	}
	return found
}

// urlSet returns the sorted distinct set of the given URLs, dropping empties.
func urlSet(urls ...string) []string {
	seen := make(map[string]bool, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

func unionStrings(a, b []string) []string {
	return urlSet(append(append([]string{}, a...), b...)...)
}

// unionKeywords merges two comma-joined keyword lists into a sorted,
// deduplicated, comma-joined list.
func unionKeywords(a, b string) string {
	seen := make(map[string]bool)
	var out []string
	for _, part := range strings.Split(a+","+b, ",") {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}
		seen[part] = true
		out = append(out, part)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
