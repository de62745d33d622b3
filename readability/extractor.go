// Package readability extracts article paragraphs using go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/urlsum"
	"github.com/fwojciec/urlsum/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements urlsum.Extractor at compile time.
var _ urlsum.Extractor = (*Extractor)(nil)

// Extractor strips page boilerplate with go-readability and returns the
// paragraph text of the remaining article.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article's paragraph text.
func (e *Extractor) Extract(rawHTML string) (*urlsum.ExtractResult, error) {
	if rawHTML == "" {
		return nil, urlsum.Errorf(urlsum.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	text, err := goquery.ParagraphText(article.Content)
	if err != nil {
		return nil, err
	}

	return &urlsum.ExtractResult{
		Title: article.Title,
		Text:  text,
	}, nil
}
