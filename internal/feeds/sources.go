package feeds

import (
	"time"

	"github.com/abelbrown/docketwatch/internal/feeds/rss"
)

// DefaultSources returns the curated feed list used when the config file
// does not specify its own.
func DefaultSources() []SourceConfig {
	return []SourceConfig{
		// Tech/AI policy coverage
		{Name: "TechCrunch AI", URL: "https://techcrunch.com/category/artificial-intelligence/feed/"},
		{Name: "The Verge AI", URL: "https://www.theverge.com/rss/ai-artificial-intelligence/index.xml"},
		{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index"},

		// Legal/regulatory coverage
		{Name: "MLex AI", URL: "https://mlexmarketinsight.com/rss/artificial-intelligence"},
		{Name: "IPWatchdog", URL: "https://ipwatchdog.com/feed/"},

		// Google News keyword feeds (broad recall, filtered downstream)
		{Name: "GN AI copyright", URL: "https://news.google.com/rss/search?q=AI+training+data+copyright"},
		{Name: "GN AI regulation", URL: "https://news.google.com/rss/search?q=AI+%EA%B7%9C%EC%A0%9C&hl=ko&gl=KR"},
	}
}

// Build creates fetchable sources from configs.
func Build(configs []SourceConfig, timeout time.Duration) []Source {
	sources := make([]Source, 0, len(configs))
	for _, cfg := range configs {
		sources = append(sources, rss.New(cfg.Name, cfg.URL, timeout))
	}
	return sources
}
