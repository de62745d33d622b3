package mock

import "github.com/fwojciec/urlsum"

var _ urlsum.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of urlsum.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*urlsum.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*urlsum.ExtractResult, error) {
	return e.ExtractFn(html)
}
