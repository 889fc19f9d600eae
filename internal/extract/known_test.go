package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadKnownCases(t *testing.T) {
	yml := `- match:
    any: ["getty images", "stability ai"]
  enrich:
    country: "United States"
    case_title: "Getty Images v. Stability AI"
    case_number: "1:23-cv-00135"
    reason: "Stock-photo corpus allegedly used for diffusion model training."
- match:
    any: ["nyt", "new york times"]
  enrich:
    case_number: "1:23-cv-11195"
`
	path := filepath.Join(t.TempDir(), "known_cases.yml")
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}

	known, err := LoadKnownCases(path)
	if err != nil {
		t.Fatalf("LoadKnownCases failed: %v", err)
	}
	if len(known) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(known))
	}
	if known[0].Enrich.Subject != "Getty Images v. Stability AI" {
		t.Errorf("unexpected subject override: %q", known[0].Enrich.Subject)
	}
	if known[1].Enrich.Country != "" {
		t.Errorf("expected empty country for partial enrich, got %q", known[1].Enrich.Country)
	}
}

func TestLoadKnownCasesMissingFile(t *testing.T) {
	known, err := LoadKnownCases(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if known != nil {
		t.Errorf("expected empty table, got %v", known)
	}
}

func TestEnrichFromKnownFirstHitWins(t *testing.T) {
	known := make([]KnownCase, 2)
	known[0].Match.Any = []string{"stability ai"}
	known[0].Enrich = Enrichment{CaseNumber: "first"}
	known[1].Match.Any = []string{"stability"}
	known[1].Enrich = Enrichment{CaseNumber: "second"}

	got := EnrichFromKnown("Stability AI faces new claims", "title", known)
	if got.CaseNumber != "first" {
		t.Errorf("expected first table entry to win, got %q", got.CaseNumber)
	}
}

func TestEnrichFromKnownCaseInsensitive(t *testing.T) {
	known := make([]KnownCase, 1)
	known[0].Match.Any = []string{"Getty Images"}
	known[0].Enrich = Enrichment{Country: "United States"}

	got := EnrichFromKnown("ruling against GETTY IMAGES reversed", "", known)
	if got.Country != "United States" {
		t.Errorf("expected case-insensitive trigger match, got %+v", got)
	}
}

func TestEnrichFromKnownNoMatch(t *testing.T) {
	known := make([]KnownCase, 1)
	known[0].Match.Any = []string{"getty"}
	known[0].Enrich = Enrichment{Country: "United States"}

	got := EnrichFromKnown("unrelated story", "title", known)
	if got != (Enrichment{}) {
		t.Errorf("expected zero enrichment, got %+v", got)
	}
}
