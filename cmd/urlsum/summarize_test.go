package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/urlsum"
	main "github.com/fwojciec/urlsum/cmd/urlsum"
	"github.com/fwojciec/urlsum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCmd_Run(t *testing.T) {
	t.Parallel()

	summaries := func(s *urlsum.Summary, err error) *mock.SummaryService {
		return &mock.SummaryService{
			SummarizeURLFn: func(context.Context, string) (*urlsum.Summary, error) {
				return s, err
			},
		}
	}

	t.Run("prints formatted summary", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Summaries: summaries(&urlsum.Summary{Formatted: "Cats nap. Dogs bark.", Chunks: 2}, nil),
		}

		err := (&main.SummarizeCmd{URL: "https://example.com"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Cats nap. Dogs bark.\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("warns about failed chunks", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Summaries: summaries(&urlsum.Summary{
				Formatted:   "A.",
				Chunks:      3,
				Failed:      1,
				ChunkErrors: []string{"Error summarizing chunk 2: timeout"},
			}, nil),
		}

		err := (&main.SummarizeCmd{URL: "https://example.com"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "1 of 3 chunks failed")
		assert.Contains(t, stderr.String(), "Error summarizing chunk 2: timeout")
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Summaries: summaries(&urlsum.Summary{URL: "https://example.com", Formatted: "A."}, nil),
		}

		err := (&main.SummarizeCmd{URL: "https://example.com", JSON: true}).Run(deps)

		require.NoError(t, err)
		var got urlsum.Summary
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "https://example.com", got.URL)
		assert.Equal(t, "A.", got.Formatted)
	})

	t.Run("writes summary when out is set", func(t *testing.T) {
		t.Parallel()

		var written *urlsum.Summary
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Summaries: summaries(&urlsum.Summary{Formatted: "A."}, nil),
			Writer: &mock.SummaryWriter{
				WriteSummaryFn: func(_ context.Context, s *urlsum.Summary) (string, error) {
					written = s
					return "/tmp/out/example.com/index.txt", nil
				},
			},
		}

		err := (&main.SummarizeCmd{URL: "https://example.com", Out: "/tmp/out"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, written)
		assert.Contains(t, stderr.String(), "Saved to /tmp/out/example.com/index.txt")
	})

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid URL", urlsum.Errorf(urlsum.EINVALID, "bad"), "Please enter a valid URL."},
		{"fetch error", urlsum.Errorf(urlsum.EFETCH, "HTTP 500 for x"), "Error fetching content: HTTP 500 for x"},
		{"no content", urlsum.Errorf(urlsum.ENOCONTENT, "empty"), "No content found to summarize."},
		{"empty summary", urlsum.Errorf(urlsum.EEMPTYSUMMARY, "all failed"), "Summarization failed."},
		{"other error", errors.New("boom"), "Internal error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			deps := &main.Dependencies{
				Ctx:       context.Background(),
				Stdout:    stdout,
				Stderr:    stderr,
				Summaries: summaries(nil, tt.err),
			}

			err := (&main.SummarizeCmd{URL: "https://example.com"}).Run(deps)

			require.Error(t, err)
			assert.Contains(t, stderr.String(), tt.want)
			assert.Empty(t, stdout.String())
		})
	}
}
