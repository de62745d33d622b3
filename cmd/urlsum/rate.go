package main

import (
	"fmt"

	"github.com/fwojciec/urlsum"
	"github.com/fwojciec/urlsum/chi"
)

// Run executes the rate command.
func (c *RateCmd) Run(deps *Dependencies) error {
	_, err := urlsum.SubmitRating(deps.Ctx, c.Stars, deps.Ratings, deps.Notifier)
	switch urlsum.ErrorCode(err) {
	case "":
		fmt.Fprintln(deps.Stdout, chi.MsgRatingThanks)
		return nil
	case urlsum.ENOTIFY:
		fmt.Fprintf(deps.Stderr, "warning: %s\n", urlsum.ErrorMessage(err))
		fmt.Fprintln(deps.Stdout, chi.MsgRatingThanks+chi.MsgNotifyFailed)
		return nil
	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", urlsum.ErrorMessage(err))
		return err
	}
}
