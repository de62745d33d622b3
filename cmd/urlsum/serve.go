package main

import (
	"fmt"

	"github.com/fwojciec/urlsum"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	deps.Server.SummaryService = deps.Summaries
	deps.Server.RatingService = deps.Ratings
	deps.Server.Notifier = deps.Notifier

	if err := deps.Server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urlsum.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", deps.Server.URL())

	<-deps.Ctx.Done()

	deps.Logger.Info("shutting down")
	return deps.Server.Close()
}
