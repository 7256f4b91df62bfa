package export

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText strips markup from a description and collapses whitespace.
func PlainText(value string) string {
	if !strings.ContainsAny(value, "<&") {
		return strings.Join(strings.Fields(value), " ")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(value))
	if err != nil {
		return strings.Join(strings.Fields(html.UnescapeString(value)), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Snippet returns the first max bytes of the plain-text description,
// cut on a rune boundary and suffixed with "..." when shortened.
func Snippet(value string, max int) string {
	text := PlainText(value)
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !isRuneStart(text[cut]) {
		cut--
	}
	return strings.TrimSpace(text[:cut]) + "..."
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
