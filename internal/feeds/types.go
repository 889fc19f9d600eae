// Package feeds defines news sources and the registry of feeds docketwatch
// monitors for AI regulation and litigation coverage.
package feeds

import (
	"context"

	"github.com/abelbrown/docketwatch/internal/model"
)

// Source is the interface all news sources implement.
type Source interface {
	// Name returns the human-readable source name.
	Name() string

	// Fetch retrieves the latest items from this source.
	Fetch(ctx context.Context) ([]model.NewsItem, error)
}

// SourceConfig describes one configured feed.
type SourceConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
