package courtlistener

import (
	"fmt"
	"strings"
)

// firstNonEmpty reads an ordered list of alternative key spellings from a
// payload and returns the first non-empty value, whitespace-trimmed. The
// API has drifted between snake_case and camelCase over versions; every
// field read goes through this one helper so the first-non-empty-wins
// contract stays in one place.
func firstNonEmpty(payload map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := payload[key]
		if !ok || v == nil {
			continue
		}
		s := strings.TrimSpace(stringify(v))
		if s != "" {
			return s
		}
	}
	return ""
}

// orSentinel substitutes sentinel for an empty value.
func orSentinel(s, sentinel string) string {
	if s == "" {
		return sentinel
	}
	return s
}

// isoDate truncates an ISO-ish timestamp to its calendar-date portion.
func isoDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		// JSON numbers; docket numbers and IDs are integral in practice.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
