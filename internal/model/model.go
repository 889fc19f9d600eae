// Package model defines the record types that flow through the docketwatch
// pipeline: raw news items on the way in, normalized regulation records and
// docket case summaries on the way out.
package model

import "time"

// Sentinel values for fields the upstream source did not confirm.
// These stand in for "unknown" so the renderer never sees an empty field.
const (
	// Unconfirmed marks a case-summary field absent from the docket payload.
	Unconfirmed = "unconfirmed"

	// NoCaseNumber marks a news-derived record with no associated filing.
	NoCaseNumber = "N/A"
)

// NewsItem is a single entry pulled from a news/RSS source, before any
// classification. PublishedAt is nil when the feed omits a timestamp.
type NewsItem struct {
	Title       string
	URL         string
	PublishedAt *time.Time
	Source      string // originating feed name, for logging only
}

// Regulation is one normalized news-derived record: a regulatory or legal
// event relevant to AI training data, post-extraction and post-merge.
type Regulation struct {
	// UpdateOrFiledDate is an ISO calendar date (YYYY-MM-DD): the publication
	// date when the feed supplied one, otherwise the date of the run.
	UpdateOrFiledDate string
	Country           string
	Subject           string
	ArticleTitle      string
	CaseNumber        string
	Reason            string
	// SourceURLs is a sorted, deduplicated set. Never empty for a record
	// that survived filtering.
	SourceURLs []string
	// MatchedKeywords is the comma-joined sorted set of relevance keywords
	// that qualified this record.
	MatchedKeywords string
}

// MergeKey identifies the logical matter a Regulation describes. Two records
// with equal keys are folded into one; records differing in any component
// stay distinct even when textually similar.
type MergeKey struct {
	CaseNumber   string
	Country      string
	Subject      string
	ArticleTitle string
}

// Key returns the 4-tuple merge key for this record.
func (r *Regulation) Key() MergeKey {
	return MergeKey{
		CaseNumber:   r.CaseNumber,
		Country:      r.Country,
		Subject:      r.Subject,
		ArticleTitle: r.ArticleTitle,
	}
}

// CaseSummary is one docket-derived record built from the CourtListener API.
// Every string field holds the Unconfirmed sentinel when the payload omitted
// it; none are left empty for the renderer.
type CaseSummary struct {
	DocketID      int64
	CaseName      string
	DocketNumber  string
	Court         string // court identifier, e.g. "cand"
	CourtName     string // court short name resolved from the courts endpoint
	CourtAPIURL   string
	DateFiled     string
	Status        string // "terminated(YYYY-MM-DD)" or "active/unknown"
	Judge         string
	Magistrate    string
	NatureOfSuit  string
	Cause         string
	Parties       string
	// DocketURL is the public docket page, when the payload linked one.
	DocketURL string

	// Complaint linkage and extracted text are populated by a downstream
	// document-matching step, not by the summarizer itself.
	ComplaintDocNo     string
	ComplaintLink      string
	ExtractedCauses    string
	ExtractedAISnippet string
}
