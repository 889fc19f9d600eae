// Package risk computes the 0-100 AI-training legal-risk score.
//
// The score is a sum of independent signal categories. Each category
// contributes its fixed weight when any of its keywords appears in the
// lowercased input text; keyword count within a category does not matter.
// The same algorithm serves news-derived and docket-derived records, only
// the concatenated source fields differ.
package risk

import (
	"strings"

	"github.com/abelbrown/docketwatch/internal/model"
)

// MaxScore bounds the total. Current category weights sum to exactly 100,
// so the cap is a safety bound rather than an active constraint.
const MaxScore = 100

// copyrightNatureOfSuit is the federal nature-of-suit code for copyright.
const copyrightNatureOfSuit = "820"

type category struct {
	name     string
	points   int
	keywords []string
}

// Category order matches the report legend. Weights: 30+30+15+15+10 = 100.
var categories = []category{
	{
		name:   "unauthorized collection",
		points: 30,
		keywords: []string{
			"scrape", "crawl", "ingest", "harvest", "mining", "extraction",
			"bulk", "collection", "robots.txt", "common crawl", "laion",
			"the pile", "bookcorpus", "unauthorized",
		},
	},
	{
		name:   "model training",
		points: 30,
		keywords: []string{
			"train", "training", "model", "llm", "generative ai", "genai",
			"gpt", "transformer", "weight", "fine-tune", "diffusion",
			"inference",
		},
	},
	{
		name:   "commercial use",
		points: 15,
		keywords: []string{
			"commercial", "profit", "monetiz", "revenue", "subscription",
			"enterprise", "paid", "for-profit",
		},
	},
	{
		name:   "copyright litigation",
		points: 15,
		keywords: []string{
			"copyright", "infringement", "dmca", "fair use", "derivative",
			"exclusive", "820",
		},
	},
	{
		name:   "class action",
		points: 10,
		keywords: []string{
			"class action", "putative class", "representative",
		},
	},
}

// Score returns the risk score for arbitrary text.
func Score(text string) int {
	return score(text, "")
}

// ForNews scores a news-derived record from its title and reason fields.
func ForNews(title, reason string) int {
	return score(title+" "+reason, "")
}

// ForCase scores a docket-derived record. The copyright-litigation category
// also triggers when the docket's nature-of-suit field carries code 820,
// even if no copyright keyword appears in the extracted text.
func ForCase(c *model.CaseSummary) int {
	return score(c.ExtractedAISnippet+" "+c.ExtractedCauses, c.NatureOfSuit)
}

func score(text, natureOfSuit string) int {
	hay := strings.ToLower(text)
	total := 0
	for _, cat := range categories {
		if cat.matches(hay) || (cat.name == "copyright litigation" && strings.Contains(natureOfSuit, copyrightNatureOfSuit)) {
			total += cat.points
		}
	}
	if total > MaxScore {
		total = MaxScore
	}
	return total
}

func (c category) matches(hay string) bool {
	for _, k := range c.keywords {
		if strings.Contains(hay, k) {
			return true
		}
	}
	return false
}
