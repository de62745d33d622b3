package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/urlsum"
	main "github.com/fwojciec/urlsum/cmd/urlsum"
	"github.com/fwojciec/urlsum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists ratings with stars and notification state", func(t *testing.T) {
		t.Parallel()

		var gotFilter urlsum.RatingFilter
		ratings := &mock.RatingService{
			FindRatingsFn: func(_ context.Context, filter urlsum.RatingFilter) ([]*urlsum.Rating, error) {
				gotFilter = filter
				return []*urlsum.Rating{
					{ID: "r-2", Stars: 5, Notified: true, CreatedAt: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)},
					{ID: "r-1", Stars: 2, Notified: false, CreatedAt: time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Ratings: ratings,
		}

		stars := 5
		err := (&main.RatingsCmd{Stars: &stars, Limit: 10}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Stars)
		assert.Equal(t, 5, *gotFilter.Stars)
		assert.Equal(t, 10, gotFilter.Limit)

		output := stdout.String()
		assert.Contains(t, output, "r-2")
		assert.Contains(t, output, "★★★★★")
		assert.Contains(t, output, "r-1")
		assert.Contains(t, output, "not notified")
	})

	t.Run("shows helpful message when no ratings exist", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Ratings: &mock.RatingService{
				FindRatingsFn: func(context.Context, urlsum.RatingFilter) ([]*urlsum.Rating, error) {
					return nil, nil
				},
			},
		}

		err := (&main.RatingsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No ratings found")
	})

	t.Run("returns storage error", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Ratings: &mock.RatingService{
				FindRatingsFn: func(context.Context, urlsum.RatingFilter) ([]*urlsum.Rating, error) {
					return nil, errors.New("database locked")
				},
			},
		}

		err := (&main.RatingsCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
