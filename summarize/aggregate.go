// Package summarize runs the summarization pipeline. It fetches a page,
// extracts its paragraphs, summarizes them chunk by chunk and formats the
// combined result.
package summarize

import (
	"context"
	"strings"

	"github.com/fwojciec/urlsum"
	"golang.org/x/sync/errgroup"
)

// Aggregator summarizes a document one chunk at a time and joins the
// partial summaries in chunk order. A chunk that fails to summarize is
// reported and skipped.
type Aggregator struct {
	Summarizer urlsum.Summarizer

	// ChunkSize is the chunk threshold. Zero selects
	// urlsum.DefaultChunkSize; a negative size puts every word in its own
	// chunk.
	ChunkSize int

	// Options bound every chunk summary. The zero value selects
	// urlsum.DefaultSummaryOptions.
	Options urlsum.SummaryOptions

	// Concurrency is the number of chunks summarized at once. Values
	// below one mean one chunk at a time.
	Concurrency int

	// TokenCounter, if set, measures the real token count of each chunk.
	TokenCounter urlsum.TokenCounter

	// TokenLimit flags chunks whose token count exceeds it. Zero disables
	// the check.
	TokenLimit int
}

// AggregateResult holds the outcome of summarizing one document.
type AggregateResult struct {
	// Summary is the space-joined chunk summaries. Empty if every chunk
	// failed or the document had no words.
	Summary string

	Chunks    int
	Failed    int
	Tokens    int
	Oversized int

	// Errors holds one ESUMMARIZE error per failed chunk, in chunk order.
	Errors []error
}

// ProgressEvent reports progress while a document is summarized.
type ProgressEvent struct {
	Type      ProgressType
	Chunk     int // 1-based chunk number
	Completed int
	Total     int
	Tokens    int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressChunkCompleted
	ProgressChunkFailed
	ProgressChunkOversized
	ProgressFinished
)

// ProgressFunc is a callback for reporting summarization progress.
// It is always called from the goroutine that called Aggregate.
type ProgressFunc func(event ProgressEvent)

// chunkResult holds the outcome of summarizing a single chunk.
type chunkResult struct {
	position int
	summary  string
	tokens   int
	err      error
}

// Aggregate splits text into chunks, summarizes each and joins the results.
// Only context cancellation aborts the run; chunk failures are collected
// in the result.
func (a *Aggregator) Aggregate(ctx context.Context, text string, progress ProgressFunc) (*AggregateResult, error) {
	size := a.ChunkSize
	if size == 0 {
		size = urlsum.DefaultChunkSize
	}
	opts := a.Options
	if opts == (urlsum.SummaryOptions{}) {
		opts = urlsum.DefaultSummaryOptions()
	}
	concurrency := a.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	chunks := urlsum.SplitChunks(text, size)
	total := len(chunks)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan chunkResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, chunk := range chunks {
			g.Go(func() error {
				resultCh <- a.summarizeChunk(gctx, i, chunk, opts)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results by position; completion order may differ.
	results := make([]chunkResult, total)
	completed := 0
	for result := range resultCh {
		completed++
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressChunkCompleted,
			Chunk:     result.position + 1,
			Completed: completed,
			Total:     total,
			Tokens:    result.tokens,
		}
		if result.err != nil {
			event.Type = ProgressChunkFailed
			event.Error = result.err
		}
		progress(event)

		if a.TokenLimit > 0 && result.tokens > a.TokenLimit {
			progress(ProgressEvent{
				Type:      ProgressChunkOversized,
				Chunk:     result.position + 1,
				Completed: completed,
				Total:     total,
				Tokens:    result.tokens,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := &AggregateResult{Chunks: total}
	summaries := make([]string, 0, total)
	for _, result := range results {
		out.Tokens += result.tokens
		if a.TokenLimit > 0 && result.tokens > a.TokenLimit {
			out.Oversized++
		}
		if result.err != nil {
			out.Failed++
			out.Errors = append(out.Errors, result.err)
			continue
		}
		summaries = append(summaries, result.summary)
	}
	out.Summary = strings.Join(summaries, " ")

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return out, nil
}

// summarizeChunk summarizes a single chunk.
func (a *Aggregator) summarizeChunk(ctx context.Context, position int, chunk string, opts urlsum.SummaryOptions) chunkResult {
	result := chunkResult{position: position}

	if a.TokenCounter != nil {
		if tokens, err := a.TokenCounter.CountTokens(ctx, chunk); err == nil {
			result.tokens = tokens
		}
	}

	summary, err := a.Summarizer.Summarize(ctx, chunk, opts)
	if err != nil {
		result.err = urlsum.Errorf(urlsum.ESUMMARIZE, "Error summarizing chunk %d: %v", position+1, err)
		return result
	}

	result.summary = summary
	return result
}
