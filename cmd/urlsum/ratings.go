package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/urlsum"
)

// Run executes the ratings command.
func (c *RatingsCmd) Run(deps *Dependencies) error {
	ratings, err := deps.Ratings.FindRatings(deps.Ctx, urlsum.RatingFilter{Stars: c.Stars, Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", urlsum.ErrorMessage(err))
		return err
	}

	if len(ratings) == 0 {
		fmt.Fprintln(deps.Stdout, "No ratings found. Use 'urlsum rate' to add one.")
		return nil
	}

	for _, r := range ratings {
		notified := "notified"
		if !r.Notified {
			notified = "not notified"
		}
		fmt.Fprintf(deps.Stdout, "%s  %-5s  %s  %s\n",
			r.CreatedAt.Local().Format(time.DateTime),
			strings.Repeat("★", r.Stars),
			notified,
			r.ID,
		)
	}

	return nil
}
