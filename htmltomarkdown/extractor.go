// Package htmltomarkdown extracts the main article of a page as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/urlsum"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements urlsum.Extractor at compile time.
var _ urlsum.Extractor = (*Extractor)(nil)

// Extractor isolates the article with go-readability and renders it as
// Markdown, keeping headings, lists and tables that plain paragraph text
// loses.
type Extractor struct {
	conv *converter.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Extractor{conv: conv}
}

// Extract processes raw HTML and returns the article as Markdown.
func (e *Extractor) Extract(rawHTML string) (*urlsum.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, urlsum.Errorf(urlsum.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	text, err := e.Convert(article.Content)
	if err != nil {
		return nil, err
	}

	return &urlsum.ExtractResult{
		Title: article.Title,
		Text:  text,
	}, nil
}

// Convert transforms an HTML fragment into trimmed Markdown. An empty
// fragment converts to an empty string.
func (e *Extractor) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	md, err := e.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
