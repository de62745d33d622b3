package mock

import (
	"context"

	"github.com/fwojciec/urlsum"
)

var _ urlsum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of urlsum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string, opts urlsum.SummaryOptions) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string, opts urlsum.SummaryOptions) (string, error) {
	return s.SummarizeFn(ctx, text, opts)
}

var _ urlsum.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of urlsum.SummaryService.
type SummaryService struct {
	SummarizeURLFn func(ctx context.Context, url string) (*urlsum.Summary, error)
}

func (s *SummaryService) SummarizeURL(ctx context.Context, url string) (*urlsum.Summary, error) {
	return s.SummarizeURLFn(ctx, url)
}

var _ urlsum.SummaryWriter = (*SummaryWriter)(nil)

// SummaryWriter is a mock implementation of urlsum.SummaryWriter.
type SummaryWriter struct {
	WriteSummaryFn func(ctx context.Context, summary *urlsum.Summary) (string, error)
}

func (w *SummaryWriter) WriteSummary(ctx context.Context, summary *urlsum.Summary) (string, error) {
	return w.WriteSummaryFn(ctx, summary)
}
