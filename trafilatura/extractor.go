// Package trafilatura extracts main-content paragraphs using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/urlsum"
	"github.com/fwojciec/urlsum/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements urlsum.Extractor at compile time.
var _ urlsum.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to drop boilerplate before collecting
// paragraph text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content's paragraph text.
func (e *Extractor) Extract(rawHTML string) (*urlsum.ExtractResult, error) {
	if rawHTML == "" {
		return nil, urlsum.Errorf(urlsum.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var text string
	if result.ContentNode != nil {
		contentHTML, err := renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
		if text, err = goquery.ParagraphText(contentHTML); err != nil {
			return nil, err
		}
	}

	return &urlsum.ExtractResult{
		Title: result.Metadata.Title,
		Text:  text,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
