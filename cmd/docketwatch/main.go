// docketwatch polls news feeds and the CourtListener docket API, scores
// each record for AI-training legal risk, and writes a markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/docketwatch/internal/config"
	"github.com/abelbrown/docketwatch/internal/courtlistener"
	"github.com/abelbrown/docketwatch/internal/extract"
	"github.com/abelbrown/docketwatch/internal/feeds"
	"github.com/abelbrown/docketwatch/internal/fetch"
	"github.com/abelbrown/docketwatch/internal/logging"
	"github.com/abelbrown/docketwatch/internal/model"
	"github.com/abelbrown/docketwatch/internal/report"
	"github.com/abelbrown/docketwatch/internal/risk"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (default ~/.docketwatch/config.json)")
		lookback   = flag.Int("lookback", 0, "override lookback window in days")
		outPath    = flag.String("out", "report.md", "markdown output path")
		htmlPath   = flag.String("html", "", "also write an HTML rendering to this path")
		dockets    = flag.String("dockets", "", "comma-separated CourtListener docket IDs (overrides config)")
		query      = flag.String("query", "", "CourtListener search query; matching dockets are added to the run")
		keysFile   = flag.String("keys", "", "shell script to read COURTLISTENER_TOKEN from")
		verbose    = flag.Bool("verbose", false, "verbose logging and report legend")
	)
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := logging.Init(*verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("Failed to load config: %v", err)
	}
	if *keysFile != "" {
		if err := cfg.LoadKeysFromFile(*keysFile); err != nil {
			logging.Warn("Failed to load keys file", "path", *keysFile, "error", err)
		}
	}
	if *lookback > 0 {
		cfg.LookbackDays = *lookback
	}
	if *verbose {
		cfg.Report.Verbose = true
	}

	docketIDs := cfg.DocketIDs
	if *dockets != "" {
		docketIDs, err = parseDocketIDs(*dockets)
		if err != nil {
			fatal("Invalid -dockets value: %v", err)
		}
	}

	logging.Info("docketwatch starting", "lookback_days", cfg.LookbackDays, "dockets", len(docketIDs))

	fetchTimeout := time.Duration(cfg.FetchTimeoutSeconds) * time.Second

	// News pipeline: fetch every feed best-effort, then build and merge.
	sourceConfigs := cfg.Feeds
	if len(sourceConfigs) == 0 {
		sourceConfigs = feeds.DefaultSources()
	}
	sources := feeds.Build(sourceConfigs, fetchTimeout)

	var items []model.NewsItem
	failed := 0
	for _, src := range sources {
		got, err := src.Fetch(ctx)
		if err != nil {
			logging.Warn("Feed fetch failed", "source", src.Name(), "error", err)
			failed++
			continue
		}
		items = append(items, got...)
	}
	logging.Info("Feeds fetched", "sources", len(sources), "failed", failed, "items", len(items))

	known, err := extract.LoadKnownCases(cfg.KnownCasesFile)
	if err != nil {
		logging.Warn("Failed to load known cases", "path", cfg.KnownCasesFile, "error", err)
	}

	builder := extract.NewBuilder(fetch.NewPageFetcher(fetchTimeout), cfg.LookbackDays)
	regs := builder.BuildFromNews(ctx, items, known)
	logging.Info("News records built", "records", len(regs))

	// Docket pipeline: explicit IDs plus any search hits.
	client := courtlistener.NewClient(
		cfg.CourtListener.BaseURL,
		cfg.CourtListener.Token,
		time.Duration(cfg.CourtListener.TimeoutSeconds)*time.Second,
	)
	if *query != "" {
		hits := client.SearchDockets(ctx, *query)
		logging.Info("Docket search", "query", *query, "hits", len(hits))
		docketIDs = mergeIDs(docketIDs, hits)
	}

	var cases []*model.CaseSummary
	for _, id := range docketIDs {
		if ctx.Err() != nil {
			break
		}
		if cs := client.BuildCaseSummary(ctx, id); cs != nil {
			cases = append(cases, cs)
		}
	}
	logging.Info("Dockets summarized", "requested", len(docketIDs), "built", len(cases))

	md := report.RenderMarkdown(regs, cases, report.Options{
		LookbackDays: cfg.LookbackDays,
		Verbose:      cfg.Report.Verbose,
	})
	if err := os.WriteFile(*outPath, []byte(md), 0644); err != nil {
		fatal("Failed to write report: %v", err)
	}

	if *htmlPath != "" {
		html, err := report.RenderHTML(md, "docketwatch report")
		if err != nil {
			fatal("Failed to render HTML: %v", err)
		}
		if err := os.WriteFile(*htmlPath, []byte(html), 0644); err != nil {
			fatal("Failed to write HTML report: %v", err)
		}
	}

	printSummary(regs, cases, failed, *outPath)
}

func printSummary(regs []model.Regulation, cases []*model.CaseSummary, failedFeeds int, outPath string) {
	fmt.Println(titleStyle.Render("docketwatch"))
	fmt.Printf("  %s news records, %s docket summaries → %s\n",
		countStyle.Render(strconv.Itoa(len(regs))),
		countStyle.Render(strconv.Itoa(len(cases))),
		outPath,
	)
	if failedFeeds > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("  %d feed(s) failed; see the log", failedFeeds)))
	}

	top := topRisks(regs, 3)
	for _, r := range top {
		score := risk.ForNews(r.ArticleTitle, r.Reason)
		fmt.Printf("  %s %s\n", report.RiskBadge(score), r.ArticleTitle)
	}
}

// topRisks returns the n highest-scoring records, highest first.
func topRisks(regs []model.Regulation, n int) []model.Regulation {
	sorted := make([]model.Regulation, len(regs))
	copy(sorted, regs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return risk.ForNews(sorted[i].ArticleTitle, sorted[i].Reason) >
			risk.ForNews(sorted[j].ArticleTitle, sorted[j].Reason)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func parseDocketIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a docket ID", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// mergeIDs appends search hits not already requested, preserving order.
func mergeIDs(base, extra []int64) []int64 {
	seen := make(map[int64]bool, len(base))
	for _, id := range base {
		seen[id] = true
	}
	for _, id := range extra {
		if !seen[id] {
			seen[id] = true
			base = append(base, id)
		}
	}
	return base
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
