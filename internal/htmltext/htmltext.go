// Package htmltext flattens backend-served HTML (job descriptions) into plain
// text suitable for terminal rendering.
package htmltext

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Flatten parses an HTML fragment and returns its text content with
// normalized whitespace. Script and style elements are dropped.
func Flatten(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	// Keep list items and paragraphs on their own lines.
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.SetText("- " + strings.TrimSpace(s.Text()) + "\n")
	})
	doc.Find("p, br, h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		s.SetText(strings.TrimSpace(s.Text()) + "\n")
	})

	return cleanWhitespace(doc.Text()), nil
}

// cleanWhitespace trims each line and drops empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
