// ABOUTME: HTML utilities for turning markup into plain text
// ABOUTME: Used to clean AniList descriptions before they are served or translated

package html

import (
	stdhtml "html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes tags and decodes entities. <br> becomes a line break and
// runs of blank lines collapse to one, so paragraphs survive.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return normalizeWhitespace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return normalizeWhitespace(stdhtml.UnescapeString(s))
	}

	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")

	return normalizeWhitespace(doc.Text())
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")

	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
