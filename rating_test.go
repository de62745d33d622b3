package urlsum_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/urlsum"
	"github.com/fwojciec/urlsum/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRating_Validate(t *testing.T) {
	t.Parallel()

	for stars := urlsum.MinStars; stars <= urlsum.MaxStars; stars++ {
		r := &urlsum.Rating{Stars: stars}
		assert.NoError(t, r.Validate())
	}

	for _, stars := range []int{-1, 0, 6} {
		r := &urlsum.Rating{Stars: stars}
		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, urlsum.EINVALID, urlsum.ErrorCode(err))
	}
}

func TestSubmitRating(t *testing.T) {
	t.Parallel()

	t.Run("records rating, notifies, then marks it notified", func(t *testing.T) {
		t.Parallel()

		var calls []string
		notifier := &mock.Notifier{
			NotifyRatingFn: func(_ context.Context, stars int) error {
				calls = append(calls, "notify")
				assert.Equal(t, 4, stars)
				return nil
			},
		}
		var recorded *urlsum.Rating
		var gotUpdate urlsum.RatingUpdate
		var gotID string
		ratings := &mock.RatingService{
			CreateRatingFn: func(_ context.Context, r *urlsum.Rating) error {
				calls = append(calls, "create")
				assert.False(t, r.Notified)
				r.ID = "rating-1"
				recorded = r
				return nil
			},
			UpdateRatingFn: func(_ context.Context, id string, upd urlsum.RatingUpdate) (*urlsum.Rating, error) {
				calls = append(calls, "update")
				gotID, gotUpdate = id, upd
				return &urlsum.Rating{ID: id, Stars: 4, Notified: true}, nil
			},
		}

		rating, err := urlsum.SubmitRating(context.Background(), 4, ratings, notifier)

		require.NoError(t, err)
		assert.Equal(t, []string{"create", "notify", "update"}, calls)
		assert.Equal(t, 4, rating.Stars)
		assert.True(t, rating.Notified)
		assert.Same(t, rating, recorded)
		assert.Equal(t, "rating-1", gotID)
		require.NotNil(t, gotUpdate.Notified)
		assert.True(t, *gotUpdate.Notified)
	})

	t.Run("does not notify when storage fails", func(t *testing.T) {
		t.Parallel()

		notifier := &mock.Notifier{
			NotifyRatingFn: func(context.Context, int) error {
				t.Fatal("notifier should not be called")
				return nil
			},
		}
		ratings := &mock.RatingService{
			CreateRatingFn: func(context.Context, *urlsum.Rating) error {
				return errors.New("disk full")
			},
		}

		rating, err := urlsum.SubmitRating(context.Background(), 5, ratings, notifier)

		require.Error(t, err)
		assert.Nil(t, rating)
	})

	t.Run("returns rating when marking notified fails", func(t *testing.T) {
		t.Parallel()

		notifier := &mock.Notifier{
			NotifyRatingFn: func(context.Context, int) error { return nil },
		}
		ratings := &mock.RatingService{
			CreateRatingFn: func(context.Context, *urlsum.Rating) error { return nil },
			UpdateRatingFn: func(context.Context, string, urlsum.RatingUpdate) (*urlsum.Rating, error) {
				return nil, errors.New("database locked")
			},
		}

		rating, err := urlsum.SubmitRating(context.Background(), 2, ratings, notifier)

		require.Error(t, err)
		require.NotNil(t, rating)
		assert.Equal(t, urlsum.EINTERNAL, urlsum.ErrorCode(err))
	})

	t.Run("acknowledges rating when notification fails", func(t *testing.T) {
		t.Parallel()

		notifier := &mock.Notifier{
			NotifyRatingFn: func(context.Context, int) error {
				return errors.New("smtp down")
			},
		}
		var recorded *urlsum.Rating
		ratings := &mock.RatingService{
			CreateRatingFn: func(_ context.Context, r *urlsum.Rating) error {
				recorded = r
				return nil
			},
			UpdateRatingFn: func(context.Context, string, urlsum.RatingUpdate) (*urlsum.Rating, error) {
				t.Fatal("rating should not be marked notified")
				return nil, nil
			},
		}

		rating, err := urlsum.SubmitRating(context.Background(), 2, ratings, notifier)

		require.Error(t, err)
		assert.Equal(t, urlsum.ENOTIFY, urlsum.ErrorCode(err))
		assert.Contains(t, urlsum.ErrorMessage(err), "smtp down")
		require.NotNil(t, rating)
		assert.False(t, rating.Notified)
		require.NotNil(t, recorded)
		assert.Equal(t, 2, recorded.Stars)
	})

	t.Run("rejects out of range rating without notifying", func(t *testing.T) {
		t.Parallel()

		notifier := &mock.Notifier{
			NotifyRatingFn: func(context.Context, int) error {
				t.Fatal("notifier should not be called")
				return nil
			},
		}

		rating, err := urlsum.SubmitRating(context.Background(), 6, nil, notifier)

		require.Error(t, err)
		assert.Nil(t, rating)
		assert.Equal(t, urlsum.EINVALID, urlsum.ErrorCode(err))
	})

	t.Run("propagates storage error", func(t *testing.T) {
		t.Parallel()

		ratings := &mock.RatingService{
			CreateRatingFn: func(context.Context, *urlsum.Rating) error {
				return errors.New("disk full")
			},
		}

		rating, err := urlsum.SubmitRating(context.Background(), 5, ratings, nil)

		require.Error(t, err)
		assert.Nil(t, rating)
		assert.Equal(t, urlsum.EINTERNAL, urlsum.ErrorCode(err))
	})

	t.Run("works without notifier or storage", func(t *testing.T) {
		t.Parallel()

		rating, err := urlsum.SubmitRating(context.Background(), 3, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, rating.Stars)
		assert.False(t, rating.Notified)
	})
}
