package urlsum

import (
	"context"
	"time"
)

// Rating bounds.
const (
	MinStars = 1
	MaxStars = 5
)

// Rating is a star rating left by a user of the app.
type Rating struct {
	ID        string    `json:"id"`
	Stars     int       `json:"stars"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the rating contains invalid fields.
func (r *Rating) Validate() error {
	if r.Stars < MinStars || r.Stars > MaxStars {
		return Errorf(EINVALID, "rating must be between %d and %d stars, got %d", MinStars, MaxStars, r.Stars)
	}
	return nil
}

// RatingService represents a service for recording ratings.
type RatingService interface {
	// CreateRating records a new rating.
	CreateRating(ctx context.Context, rating *Rating) error

	// FindRatings retrieves ratings matching the filter, newest first.
	FindRatings(ctx context.Context, filter RatingFilter) ([]*Rating, error)

	// UpdateRating updates an existing rating.
	// Returns ENOTFOUND if the rating does not exist.
	UpdateRating(ctx context.Context, id string, upd RatingUpdate) (*Rating, error)
}

// RatingUpdate represents a set of fields to update on a rating.
type RatingUpdate struct {
	Notified *bool `json:"notified"`
}

// RatingFilter represents a filter for FindRatings.
type RatingFilter struct {
	Stars *int `json:"stars"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Notifier delivers rating notifications to the app's author.
type Notifier interface {
	// NotifyRating makes a single delivery attempt for the rating.
	NotifyRating(ctx context.Context, stars int) error
}

// SubmitRating validates a rating, records it and then notifies the author.
// The author is only emailed about ratings that were stored. After a
// successful notification the stored rating is marked notified.
//
// A failed notification does not reject the rating: the returned rating is
// non-nil and the error has code ENOTIFY. A failure to mark the rating
// notified also returns the non-nil rating. Either ratings or notifier may
// be nil.
func SubmitRating(ctx context.Context, stars int, ratings RatingService, notifier Notifier) (*Rating, error) {
	rating := &Rating{Stars: stars}
	if err := rating.Validate(); err != nil {
		return nil, err
	}

	if ratings != nil {
		if err := ratings.CreateRating(ctx, rating); err != nil {
			return nil, err
		}
	}

	if notifier == nil {
		return rating, nil
	}
	if err := notifier.NotifyRating(ctx, stars); err != nil {
		return rating, Errorf(ENOTIFY, "failed to send rating notification: %v", err)
	}
	rating.Notified = true

	if ratings != nil {
		notified := true
		if _, err := ratings.UpdateRating(ctx, rating.ID, RatingUpdate{Notified: &notified}); err != nil {
			return rating, err
		}
	}
	return rating, nil
}
