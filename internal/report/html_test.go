package report

import (
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	md := strings.Join([]string{
		"## 📰 News",
		"| No. | Date | Title |",
		"|---|---|---|",
		"| 1 | 2024-06-09 | [A](https://example.com) |",
		"",
		"<details><summary>expand</summary>long reason</details>",
	}, "\n")

	out, err := RenderHTML(md, "docketwatch report")
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Error("missing document wrapper")
	}
	if !strings.Contains(out, "<title>docketwatch report</title>") {
		t.Error("missing title")
	}
	if !strings.Contains(out, "<table>") {
		t.Error("GFM table should render as <table>")
	}
	if !strings.Contains(out, "<details>") {
		t.Error("raw <details> blocks must survive conversion")
	}
	if !strings.Contains(out, `<a href="https://example.com"`) {
		t.Error("links should render")
	}
}
