package urlsum

// ExtractResult holds the text extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, if one was found.
	Title string

	// Text is the space-joined text of the page's paragraphs, trimmed.
	Text string
}

// Extractor pulls the readable paragraph text out of an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns its paragraph text.
	// A page without paragraphs yields an empty Text, not an error.
	Extract(html string) (*ExtractResult, error)
}
