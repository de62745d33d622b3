package summarize

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/urlsum"
)

// Ensure Pipeline implements urlsum.SummaryService at compile time.
var _ urlsum.SummaryService = (*Pipeline)(nil)

// Pipeline fetches a page, extracts its paragraph text, summarizes it with
// an Aggregator and formats the result.
type Pipeline struct {
	Fetcher     urlsum.Fetcher
	Extractor   urlsum.Extractor
	Aggregator  *Aggregator
	RateLimiter urlsum.DomainLimiter

	// Progress, if set, receives chunk progress for every run.
	Progress ProgressFunc
}

// SummarizeURL runs the pipeline for one URL.
func (p *Pipeline) SummarizeURL(ctx context.Context, rawURL string) (*urlsum.Summary, error) {
	u, err := parseURL(rawURL)
	if err != nil {
		return nil, err
	}

	if p.RateLimiter != nil {
		if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := p.Fetcher.Fetch(ctx, u.String())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, urlsum.Errorf(urlsum.EFETCH, "%s", causeMessage(err))
	}

	extracted, err := p.Extractor.Extract(html)
	if err != nil {
		return nil, urlsum.Errorf(urlsum.ENOCONTENT, "no content found at %s: %v", u, err)
	}
	if strings.TrimSpace(extracted.Text) == "" {
		return nil, urlsum.Errorf(urlsum.ENOCONTENT, "no paragraph text found at %s", u)
	}

	result, err := p.Aggregator.Aggregate(ctx, extracted.Text, p.Progress)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.Summary) == "" {
		return nil, urlsum.Errorf(urlsum.EEMPTYSUMMARY, "all %d chunks failed to summarize", result.Chunks)
	}

	var chunkErrors []string
	for _, err := range result.Errors {
		chunkErrors = append(chunkErrors, urlsum.ErrorMessage(err))
	}

	return &urlsum.Summary{
		URL:         u.String(),
		Title:       extracted.Title,
		ContentHash: ComputeHash(extracted.Text),
		Raw:         result.Summary,
		Formatted:   urlsum.FormatSummary(result.Summary),
		Chunks:      result.Chunks,
		Failed:      result.Failed,
		ChunkErrors: chunkErrors,
		Tokens:      result.Tokens,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// causeMessage returns the message of an application error or the plain
// error text otherwise.
func causeMessage(err error) string {
	var e *urlsum.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// parseURL accepts absolute http and https URLs only.
func parseURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, urlsum.Errorf(urlsum.EINVALID, "URL required")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, urlsum.Errorf(urlsum.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, urlsum.Errorf(urlsum.EINVALID, "URL must use http or https: %q", rawURL)
	}
	if u.Host == "" {
		return nil, urlsum.Errorf(urlsum.EINVALID, "URL must include a host: %q", rawURL)
	}
	return u, nil
}
