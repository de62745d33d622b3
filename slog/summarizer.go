package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/urlsum"
	"github.com/fwojciec/urlsum/summarize"
)

// Ensure LoggingSummarizer implements urlsum.Summarizer.
var _ urlsum.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   urlsum.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next urlsum.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize logs input and output sizes and delegates to the wrapped summarizer.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string, opts urlsum.SummaryOptions) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"input_bytes", len(text),
			"output_bytes", len(summary),
			"max_length", opts.MaxLength,
			"min_length", opts.MinLength,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, text, opts)
}

// Ensure LoggingSummaryService implements urlsum.SummaryService.
var _ urlsum.SummaryService = (*LoggingSummaryService)(nil)

// LoggingSummaryService wraps a SummaryService with logging.
type LoggingSummaryService struct {
	next   urlsum.SummaryService
	logger *slog.Logger
}

// NewLoggingSummaryService creates a new LoggingSummaryService.
func NewLoggingSummaryService(next urlsum.SummaryService, logger *slog.Logger) *LoggingSummaryService {
	return &LoggingSummaryService{next: next, logger: logger}
}

// SummarizeURL logs the run outcome and delegates to the wrapped service.
func (s *LoggingSummaryService) SummarizeURL(ctx context.Context, url string) (summary *urlsum.Summary, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "duration", time.Since(begin)}
		if summary != nil {
			attrs = append(attrs, "chunks", summary.Chunks, "failed", summary.Failed, "hash", summary.ContentHash)
		}
		if err != nil {
			attrs = append(attrs, "code", urlsum.ErrorCode(err), "err", err)
		}
		s.logger.Info("summarize url", attrs...)
	}(time.Now())
	return s.next.SummarizeURL(ctx, url)
}

// ProgressLogger returns a summarize.ProgressFunc that logs chunk outcomes.
// Failed and oversized chunks are logged at warn level.
func ProgressLogger(logger *slog.Logger) summarize.ProgressFunc {
	return func(e summarize.ProgressEvent) {
		switch e.Type {
		case summarize.ProgressStarted:
			logger.Debug("summarizing chunks", "total", e.Total)
		case summarize.ProgressChunkCompleted:
			logger.Debug("chunk summarized", "chunk", e.Chunk, "completed", e.Completed, "total", e.Total)
		case summarize.ProgressChunkFailed:
			logger.Warn("chunk failed", "chunk", e.Chunk, "total", e.Total, "err", urlsum.ErrorMessage(e.Error))
		case summarize.ProgressChunkOversized:
			logger.Warn("chunk exceeds model token limit", "chunk", e.Chunk, "tokens", e.Tokens)
		case summarize.ProgressFinished:
			logger.Debug("chunks finished", "total", e.Total)
		}
	}
}
