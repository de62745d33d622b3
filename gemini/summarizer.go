// Package gemini implements summarization and token counting with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/urlsum"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for summaries.
const DefaultModel = "gemini-2.5-flash"

// outputTokensPerWord converts a word budget into an output token budget.
const outputTokensPerWord = 2

// Ensure Summarizer implements urlsum.Summarizer at compile time.
var _ urlsum.Summarizer = (*Summarizer)(nil)

// Summarizer implements urlsum.Summarizer using Google Gemini.
// It is safe for concurrent use.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize returns a summary of text between opts.MinLength and
// opts.MaxLength words.
func (s *Summarizer) Summarize(ctx context.Context, text string, opts urlsum.SummaryOptions) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", urlsum.Errorf(urlsum.EINVALID, "text required")
	}
	if opts.MaxLength <= 0 {
		return "", urlsum.Errorf(urlsum.EINVALID, "max length must be positive")
	}
	if opts.MinLength < 0 || opts.MinLength > opts.MaxLength {
		return "", urlsum.Errorf(urlsum.EINVALID, "min length must be between 0 and %d", opts.MaxLength)
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(text, opts)}},
		}},
		BuildConfig(opts),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", urlsum.Errorf(urlsum.EINTERNAL, "gemini returned nil result")
	}

	summary := strings.TrimSpace(result.Text())
	if summary == "" {
		return "", urlsum.Errorf(urlsum.EINTERNAL, "gemini returned empty summary")
	}
	return summary, nil
}

// BuildConfig returns the GenerateContentConfig for a summary request.
// Without sampling the temperature is pinned to zero so repeated calls
// produce the same summary.
func BuildConfig(opts urlsum.SummaryOptions) *genai.GenerateContentConfig {
	thinkingBudget := int32(0)
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You summarize web articles. Write plain prose sentences in the article's language. Do not use lists, headings, markdown or preambles. Use only facts from the text provided.",
			}},
		},
		MaxOutputTokens: int32(opts.MaxLength * outputTokensPerWord),
		ThinkingConfig:  &genai.ThinkingConfig{ThinkingBudget: &thinkingBudget},
	}
	if !opts.Sample {
		temp := float32(0)
		config.Temperature = &temp
	}
	return config
}

// BuildUserPrompt builds the user prompt holding the text to summarize.
func BuildUserPrompt(text string, opts urlsum.SummaryOptions) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Summarize the following text in %d to %d words.\n\n", opts.MinLength, opts.MaxLength)
	sb.WriteString("<text>\n")
	sb.WriteString(text)
	sb.WriteString("\n</text>")
	return sb.String()
}
