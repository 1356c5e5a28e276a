package service

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// stripHTML reduces an HTML fragment to whitespace-normalised text.
// Plain text passes through untouched apart from whitespace collapsing.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// truncateUTF8 cuts s to at most n runes without splitting a code point.
func truncateUTF8(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
