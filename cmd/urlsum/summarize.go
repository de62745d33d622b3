package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/urlsum"
	"github.com/fwojciec/urlsum/chi"
	"github.com/fwojciec/urlsum/fs"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	summary, err := deps.Summaries.SummarizeURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", summarizeMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(deps.Stdout, summary.Formatted)
	}

	if summary.Failed > 0 {
		fmt.Fprintf(deps.Stderr, "warning: %d of %d chunks failed to summarize\n", summary.Failed, summary.Chunks)
		for _, msg := range summary.ChunkErrors {
			fmt.Fprintf(deps.Stderr, "warning: %s\n", msg)
		}
	}

	if c.Out == "" {
		return nil
	}

	writer := deps.Writer
	if writer == nil {
		writer = fs.NewWriter(c.Out)
	}
	path, err := writer.WriteSummary(deps.Ctx, summary)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urlsum.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stderr, "Saved to %s\n", path)
	return nil
}

// summarizeMessage returns the user-facing message for a pipeline error.
func summarizeMessage(err error) string {
	switch urlsum.ErrorCode(err) {
	case urlsum.EINVALID:
		return chi.MsgInvalidURL
	case urlsum.EFETCH:
		return chi.MsgFetchFailed + urlsum.ErrorMessage(err)
	case urlsum.ENOCONTENT:
		return chi.MsgNoContent
	case urlsum.EEMPTYSUMMARY:
		return chi.MsgSummarizeFailed
	default:
		return urlsum.ErrorMessage(err)
	}
}
