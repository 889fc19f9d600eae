package extract

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// KnownCase is one manually curated override. When any of its trigger terms
// appears in an article, the enrich payload replaces heuristic extraction
// for the fields it specifies; unset fields still come from the heuristics.
type KnownCase struct {
	Match struct {
		Any []string `yaml:"any"`
	} `yaml:"match"`
	Enrich Enrichment `yaml:"enrich"`
}

// Enrichment carries the per-field overrides for a known case. Empty
// fields mean "no override".
type Enrichment struct {
	Country    string `yaml:"country"`
	Subject    string `yaml:"case_title"`
	CaseNumber string `yaml:"case_number"`
	Reason     string `yaml:"reason"`
}

// LoadKnownCases reads the curated override table from a YAML file.
// A missing file is not an error; it yields an empty table.
func LoadKnownCases(path string) ([]KnownCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read known cases: %w", err)
	}

	var known []KnownCase
	if err := yaml.Unmarshal(data, &known); err != nil {
		return nil, fmt.Errorf("failed to parse known cases: %w", err)
	}
	return known, nil
}

// EnrichFromKnown scans the table in order and returns the enrich payload
// of the first entry with a case-insensitive trigger hit in title or body.
// A zero Enrichment is returned when nothing matches.
func EnrichFromKnown(text, title string, known []KnownCase) Enrichment {
	hay := strings.ToLower(title + "\n" + text)
	for _, entry := range known {
		for _, term := range entry.Match.Any {
			if term != "" && strings.Contains(hay, strings.ToLower(term)) {
				return entry.Enrich
			}
		}
	}
	return Enrichment{}
}
