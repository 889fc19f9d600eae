// Package rss fetches news items from RSS/Atom feeds.
package rss

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/abelbrown/docketwatch/internal/model"
)

// Source fetches items from a single RSS/Atom feed.
type Source struct {
	name   string
	url    string
	client *http.Client
	parser *gofeed.Parser
}

// New creates a new RSS source with the given per-request timeout.
func New(name, url string, timeout time.Duration) *Source {
	return &Source{
		name:   name,
		url:    url,
		client: &http.Client{Timeout: timeout},
		parser: gofeed.NewParser(),
	}
}

func (s *Source) Name() string {
	return s.name
}

// Fetch retrieves and parses the feed. Items without a usable publication
// timestamp carry a nil PublishedAt; the pipeline treats those as current.
func (s *Source) Fetch(ctx context.Context) ([]model.NewsItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "docketwatch/1.0 (https://github.com/abelbrown/docketwatch)")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error fetching %s: %d %s", s.url, resp.StatusCode, resp.Status)
	}

	feed, err := s.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed %s: %w", s.url, err)
	}

	items := make([]model.NewsItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry.Link == "" {
			continue
		}

		var published *time.Time
		if entry.PublishedParsed != nil {
			published = entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			published = entry.UpdatedParsed
		}

		items = append(items, model.NewsItem{
			Title:       entry.Title,
			URL:         entry.Link,
			PublishedAt: published,
			Source:      s.name,
		})
	}

	return items, nil
}
