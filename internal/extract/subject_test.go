package extract

import "testing"

func TestSubjectCascade(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
		want  string
	}{
		{"eu ai act", "EU AI Act timeline", "", SubjectEUAIAct},
		{"korea framework act", "", "대한민국의 ai 기본법 통과", SubjectKRBasicAct},
		{"copyright", "", "new copyright rules for training data", SubjectCopyright},
		{"california", "", "california lawmakers revisit sb 1047", SubjectCaliforniaSB},
		{"fallback", "", "general committee meeting notes", DefaultSubject},
		// Ordered cascade: EU AI Act outranks copyright when both appear.
		{"eu beats copyright", "EU AI Act and copyright", "", SubjectEUAIAct},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Subject(tc.text, tc.title); got != tc.want {
				t.Errorf("Subject(%q, %q) = %q, want %q", tc.text, tc.title, got, tc.want)
			}
		})
	}
}

func TestReasonHeuristicCascade(t *testing.T) {
	copyright := ReasonHeuristic("copyright claims over training data")
	governance := ReasonHeuristic("new governance framework published")
	euAct := ReasonHeuristic("the eu ai act moves forward")
	fallback := ReasonHeuristic("quarterly industry roundup")

	if copyright == governance || governance == euAct || copyright == euAct {
		t.Error("expected distinct canned sentences per category")
	}
	if fallback == copyright || fallback == governance || fallback == euAct {
		t.Error("expected a distinct default sentence")
	}

	// Copyright is checked before governance.
	both := ReasonHeuristic("copyright governance debate")
	if both != copyright {
		t.Error("expected copyright branch to win when both categories match")
	}
}
