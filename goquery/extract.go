// Package goquery extracts paragraph text from HTML using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/urlsum"
)

// Ensure Extractor implements urlsum.Extractor at compile time.
var _ urlsum.Extractor = (*Extractor)(nil)

// Extractor returns the text of every <p> element on a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses raw HTML and returns its title and paragraph text.
func (e *Extractor) Extract(html string) (*urlsum.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, urlsum.Errorf(urlsum.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, urlsum.Errorf(urlsum.EINVALID, "failed to parse HTML: %v", err)
	}

	return &urlsum.ExtractResult{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Text:  paragraphText(doc.Selection),
	}, nil
}

// ParagraphText returns the space-joined text of all <p> elements in an
// HTML fragment, trimmed.
func ParagraphText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", urlsum.Errorf(urlsum.EINVALID, "failed to parse HTML: %v", err)
	}
	return paragraphText(doc.Selection), nil
}

func paragraphText(sel *goquery.Selection) string {
	paragraphs := sel.Find("p")
	texts := make([]string, 0, paragraphs.Length())
	paragraphs.Each(func(_ int, p *goquery.Selection) {
		texts = append(texts, p.Text())
	})
	return strings.TrimSpace(strings.Join(texts, " "))
}
