package extract

import "strings"

// Canonical subject labels. DefaultSubject is the fallback when no named
// regulation matches.
const (
	SubjectEUAIAct      = "EU AI Act"
	SubjectKRBasicAct   = "AI Framework Act (KR)"
	SubjectCopyright    = "AI Copyright Guidelines"
	SubjectCaliforniaSB = "California AI Safety Bill"
	DefaultSubject      = "Domestic/international regulatory trend"
)

// Subject infers the regulatory subject from title and body text. The
// cascade is ordered: an article touching both the EU AI Act and copyright
// is classified under the EU AI Act.
func Subject(text, title string) string {
	hay := strings.ToLower(title + " " + text)

	switch {
	case strings.Contains(hay, "eu ai act") || strings.Contains(hay, "유럽연합") || strings.Contains(hay, "european union"):
		return SubjectEUAIAct
	case strings.Contains(hay, "기본법") || strings.Contains(hay, "대한민국") || strings.Contains(hay, "korea"):
		return SubjectKRBasicAct
	case strings.Contains(hay, "copyright") || strings.Contains(hay, "저작권"):
		return SubjectCopyright
	case strings.Contains(hay, "california") || strings.Contains(hay, "sb 1047"):
		return SubjectCaliforniaSB
	}

	return DefaultSubject
}

// ReasonHeuristic produces the canned justification sentence for a record
// from the concatenated title and body. The cascade is ordered; the first
// matching category wins.
func ReasonHeuristic(hay string) string {
	h := strings.ToLower(hay)

	if strings.Contains(h, "copyright") || strings.Contains(h, "저작권") {
		return "Copyright guidance or intellectual-property protection measures covering AI training data."
	}
	if strings.Contains(h, "governance") || strings.Contains(h, "policy") || strings.Contains(h, "거버넌스") || strings.Contains(h, "정책") {
		return "Policy guidance or a regulatory framework for AI ethics compliance and governance."
	}
	if strings.Contains(h, "ai act") || strings.Contains(h, "eu") {
		return "Progress on the EU AI Act or comparably stringent AI regulation requiring a response."
	}
	return "Recent developments in AI regulation, guideline releases, and policy trends at home and abroad."
}
