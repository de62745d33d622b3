package urlsum

import (
	"context"
	"time"
)

// Default summary length bounds, in words.
const (
	DefaultMaxLength = 200
	DefaultMinLength = 50
)

// SummaryOptions bounds the output of a single summarization call.
type SummaryOptions struct {
	MaxLength int
	MinLength int

	// Sample enables non-deterministic decoding.
	Sample bool
}

// DefaultSummaryOptions returns the options used for every chunk unless
// configured otherwise.
func DefaultSummaryOptions() SummaryOptions {
	return SummaryOptions{
		MaxLength: DefaultMaxLength,
		MinLength: DefaultMinLength,
		Sample:    false,
	}
}

// Summarizer condenses a piece of text with an external model.
// Implementations must be safe for concurrent, independent calls.
type Summarizer interface {
	// Summarize returns a summary of text bounded by opts.
	// Returns EINVALID if text is empty.
	Summarize(ctx context.Context, text string, opts SummaryOptions) (string, error)
}

// Summary is the outcome of summarizing one URL.
type Summary struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	ContentHash string `json:"contentHash"`

	// Raw is the aggregate of all chunk summaries, in chunk order.
	Raw string `json:"raw"`

	// Formatted is Raw after sentence re-punctuation.
	Formatted string `json:"formatted"`

	Chunks int `json:"chunks"`
	Failed int `json:"failed"`

	// ChunkErrors holds one message per failed chunk, in chunk order.
	ChunkErrors []string `json:"chunkErrors,omitempty"`
	Tokens int `json:"tokens,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// SummaryService summarizes the content behind a URL.
type SummaryService interface {
	// SummarizeURL fetches, extracts, summarizes and formats a page.
	// Returns EFETCH if the page cannot be retrieved, ENOCONTENT if it has
	// no paragraph text and EEMPTYSUMMARY if no chunk could be summarized.
	SummarizeURL(ctx context.Context, url string) (*Summary, error)
}

// SummaryWriter persists a summary outside the process.
type SummaryWriter interface {
	// WriteSummary stores the formatted summary and returns where it went.
	WriteSummary(ctx context.Context, summary *Summary) (string, error)
}
