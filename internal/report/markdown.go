// Package report renders the final record sets as a markdown report.
// Pure presentation: every decision (scores, labels, merging) happened
// upstream; this package only formats and sorts.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abelbrown/docketwatch/internal/model"
	"github.com/abelbrown/docketwatch/internal/risk"
)

// Options controls report presentation. It is passed explicitly so the
// renderer stays free of process-wide state.
type Options struct {
	// LookbackDays is echoed in the report header.
	LookbackDays int

	// Verbose adds the risk-scale legend and scoring-criteria appendix.
	Verbose bool
}

// shortLimit is the cell length above which content folds into <details>.
const shortLimit = 140

// RenderMarkdown produces the full report for the merged regulation
// records and docket case summaries.
func RenderMarkdown(regs []model.Regulation, cases []*model.CaseSummary, opts Options) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("## 📊 Last %d days", opts.LookbackDays))
	lines = append(lines, fmt.Sprintf("└ 📰 News: %d · ⚖️ Dockets: %d", len(regs), len(cases)))
	lines = append(lines, "")

	lines = append(lines, renderNews(regs)...)
	lines = append(lines, renderCases(cases)...)
	lines = append(lines, renderSourceAppendix(regs)...)

	if opts.Verbose {
		lines = append(lines, renderRiskLegend()...)
	}

	return strings.Join(lines, "\n")
}

type scoredRegulation struct {
	score int
	rec   model.Regulation
}

func renderNews(regs []model.Regulation) []string {
	lines := []string{"## 📰 News"}
	if len(regs) == 0 {
		lines = append(lines, "No new items.", "")
		return lines
	}

	scored := make([]scoredRegulation, 0, len(regs))
	for _, r := range regs {
		scored = append(scored, scoredRegulation{risk.ForNews(r.ArticleTitle, r.Reason), r})
	}
	// Date descending, risk descending within the same date.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].rec.UpdateOrFiledDate != scored[j].rec.UpdateOrFiledDate {
			return scored[i].rec.UpdateOrFiledDate > scored[j].rec.UpdateOrFiledDate
		}
		return scored[i].score > scored[j].score
	})

	lines = append(lines,
		"| No. | Date⬇️ | Title | Country | Case No. | Reason | Risk |",
		mdSep(7),
	)
	for i, s := range scored {
		url := ""
		if len(s.rec.SourceURLs) > 0 {
			url = s.rec.SourceURLs[0]
		}
		lines = append(lines, fmt.Sprintf("| %d | %s | %s | %s | %s | %s | %s |",
			i+1,
			escape(s.rec.UpdateOrFiledDate),
			mdLink(s.rec.ArticleTitle, url),
			escape(s.rec.Country),
			escape(s.rec.CaseNumber),
			short(s.rec.Reason),
			RiskBadge(s.score),
		))
	}
	lines = append(lines, "")
	return lines
}

func renderCases(cases []*model.CaseSummary) []string {
	if len(cases) == 0 {
		return nil
	}

	lines := []string{
		"## ⚖️ Dockets",
		"| No. | Case | Docket No. | Court | Filed | Status | Judge | Nature of Suit | Parties | Risk |",
		mdSep(10),
	}
	for i, c := range cases {
		lines = append(lines, fmt.Sprintf("| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s |",
			i+1,
			mdLink(c.CaseName, c.DocketURL),
			escape(c.DocketNumber),
			escape(c.CourtName),
			escape(c.DateFiled),
			escape(c.Status),
			escape(c.Judge),
			escape(c.NatureOfSuit),
			short(c.Parties),
			RiskBadge(risk.ForCase(c)),
		))
	}
	lines = append(lines, "")
	return lines
}

func renderSourceAppendix(regs []model.Regulation) []string {
	if len(regs) == 0 {
		return nil
	}

	lines := []string{
		"<details>",
		"<summary><strong>📰 Source URLs</strong></summary>",
		"",
	}
	for _, r := range regs {
		lines = append(lines, fmt.Sprintf("### %s", escape(r.ArticleTitle)))
		for _, u := range r.SourceURLs {
			lines = append(lines, "- "+u)
		}
	}
	lines = append(lines, "</details>", "")
	return lines
}

func renderRiskLegend() []string {
	return []string{
		"<details>",
		"<summary><strong>📘 AI training risk score (0–100)</strong></summary>",
		"",
		"Quantifies how directly an event touches AI model training and how strong the legal exposure is.",
		"",
		"### 📊 Bands",
		"-  0– 39 🟢 : peripheral issue",
		"- 40– 59 🟡 : training question present",
		"- 60– 79 ⚠️ : model training named directly",
		"- 80–100 🔥 : unauthorized collection + training + commercial use",
		"",
		"### 🧮 Criteria",
		"| Signal | Trigger keywords | Points |",
		"|---|---|---|",
		"| Unauthorized data collection | scrape, crawl, ingest, unauthorized, ... | +30 |",
		"| Model training named | train, model, llm, generative ai, gpt, ... | +30 |",
		"| Commercial use | commercial, profit, monetiz, revenue, ... | +15 |",
		"| Copyright issue | nature of suit 820, copyright, infringement, dmca, ... | +15 |",
		"| Class action | class action, putative class, ... | +10 |",
		"",
		"</details>",
		"",
	}
}

// RiskBadge renders a score with its band marker. Banding is display-only;
// the score itself is computed upstream.
func RiskBadge(score int) string {
	switch {
	case score >= 80:
		return fmt.Sprintf("🔥 %d", score)
	case score >= 60:
		return fmt.Sprintf("⚠️ %d", score)
	case score >= 40:
		return fmt.Sprintf("🟡 %d", score)
	default:
		return fmt.Sprintf("🟢 %d", score)
	}
}

// escape makes a value safe inside a markdown table cell.
func escape(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "```", "&#96;&#96;&#96;")
	s = strings.ReplaceAll(s, "~~~", "&#126;&#126;&#126;")
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", "<br>")
	return s
}

func mdSep(cols int) string {
	return "|" + strings.Repeat("---|", cols)
}

// mdLink renders label as a link when url is present. Values that are
// already markdown links pass through untouched.
func mdLink(label, url string) string {
	label = escape(label)
	url = strings.TrimSpace(url)
	if url == "" {
		return label
	}
	if strings.HasPrefix(url, "[") && strings.Contains(url, "](") {
		return url
	}
	return fmt.Sprintf("[%s](%s)", label, url)
}

// short folds long values into a collapsed details block.
func short(val string) string {
	if len([]rune(val)) <= shortLimit {
		return escape(val)
	}
	return fmt.Sprintf("<details><summary>expand</summary>%s</details>", escape(val))
}
