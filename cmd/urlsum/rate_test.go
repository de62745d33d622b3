package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/urlsum"
	main "github.com/fwojciec/urlsum/cmd/urlsum"
	"github.com/fwojciec/urlsum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("records notified rating", func(t *testing.T) {
		t.Parallel()

		var notified int
		var recorded *urlsum.Rating
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Notifier: &mock.Notifier{
				NotifyRatingFn: func(_ context.Context, stars int) error {
					notified = stars
					return nil
				},
			},
			Ratings: &mock.RatingService{
				CreateRatingFn: func(_ context.Context, r *urlsum.Rating) error {
					recorded = r
					return nil
				},
				UpdateRatingFn: func(_ context.Context, id string, _ urlsum.RatingUpdate) (*urlsum.Rating, error) {
					return &urlsum.Rating{ID: id, Stars: 5, Notified: true}, nil
				},
			},
		}

		err := (&main.RateCmd{Stars: 5}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, notified)
		require.NotNil(t, recorded)
		assert.True(t, recorded.Notified)
		assert.Equal(t, "Thank you for the rating 🗿\n", stdout.String())
	})

	t.Run("succeeds with warning when notification fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Notifier: &mock.Notifier{
				NotifyRatingFn: func(context.Context, int) error { return errors.New("dial tcp: timeout") },
			},
		}

		err := (&main.RateCmd{Stars: 2}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "(Email notification failed)")
		assert.Contains(t, stderr.String(), "dial tcp: timeout")
	})

	t.Run("rejects invalid stars", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.RateCmd{Stars: 7}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, urlsum.EINVALID, urlsum.ErrorCode(err))
		assert.Contains(t, stderr.String(), "between 1 and 5")
	})
}
