package ingest

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.UGCPolicy()

// TruncateText cuts a string to max length, appending ellipsis if truncated.
func TruncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen > 3 {
		return text[:maxLen-3] + "..."
	}
	return text[:maxLen]
}

// HTMLToText converts HTML to plain text, collapsing whitespace.
// The markup is sanitized first so script and style payloads from
// scraped pages never reach the stored content.
func HTMLToText(html string) string {
	clean := htmlPolicy.Sanitize(html)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(clean))
	if err != nil {
		return cleanText(clean)
	}
	return cleanText(doc.Text())
}

// Excerpt produces a short preview of document content: whitespace
// collapsed, cut at 200 characters with an ellipsis.
func Excerpt(content string) string {
	clean := cleanText(content)
	if len(clean) > 200 {
		return clean[:200] + "..."
	}
	return clean
}

// sanitizeUTF8 drops invalid byte sequences so values are safe for
// Postgres text columns.
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}
