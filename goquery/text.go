// Package goquery extracts countable text from HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/tokcount"
)

var _ tokcount.ContentExtractor = (*TextExtractor)(nil)

// HTMLExtensions are the file extensions TextExtractor is registered for.
var HTMLExtensions = []string{".html", ".htm"}

// nonContentSelector matches elements whose text is never shown to a reader.
const nonContentSelector = "script, style, noscript, template"

// TextExtractor reduces HTML documents to their visible text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText parses content as HTML and returns its text with scripts and
// styles removed.
func (e *TextExtractor) ExtractText(content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", tokcount.Errorf(tokcount.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(nonContentSelector).Remove()

	return doc.Text(), nil
}

// Extractors returns a TextExtractor registered for every HTML extension.
func Extractors() map[string]tokcount.ContentExtractor {
	x := NewTextExtractor()
	m := make(map[string]tokcount.ContentExtractor, len(HTMLExtensions))
	for _, ext := range HTMLExtensions {
		m[ext] = x
	}
	return m
}
