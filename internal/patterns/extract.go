// Package patterns evaluates the script side of an artifact: required and
// forbidden textual patterns, integration ordering, and syntax sanity checks.
// All checks are textual; nothing here executes or parses JavaScript.
package patterns

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractInlineScript concatenates the text of every inline script block in
// the markup. Blocks with a src attribute reference external resources and
// are excluded, since their content is not inline. Malformed markup degrades
// to an empty result.
func ExtractInlineScript(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if _, external := s.Attr("src"); external {
			return
		}
		sb.WriteString(s.Text())
		sb.WriteString("\n")
	})
	return sb.String()
}
