package mock

import (
	"context"

	"github.com/fwojciec/urlsum"
)

var _ urlsum.RatingService = (*RatingService)(nil)

// RatingService is a mock implementation of urlsum.RatingService.
type RatingService struct {
	CreateRatingFn func(ctx context.Context, rating *urlsum.Rating) error
	FindRatingsFn  func(ctx context.Context, filter urlsum.RatingFilter) ([]*urlsum.Rating, error)
	UpdateRatingFn func(ctx context.Context, id string, upd urlsum.RatingUpdate) (*urlsum.Rating, error)
}

func (s *RatingService) CreateRating(ctx context.Context, rating *urlsum.Rating) error {
	return s.CreateRatingFn(ctx, rating)
}

func (s *RatingService) FindRatings(ctx context.Context, filter urlsum.RatingFilter) ([]*urlsum.Rating, error) {
	return s.FindRatingsFn(ctx, filter)
}

func (s *RatingService) UpdateRating(ctx context.Context, id string, upd urlsum.RatingUpdate) (*urlsum.Rating, error) {
	return s.UpdateRatingFn(ctx, id, upd)
}

var _ urlsum.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of urlsum.Notifier.
type Notifier struct {
	NotifyRatingFn func(ctx context.Context, stars int) error
}

func (n *Notifier) NotifyRating(ctx context.Context, stars int) error {
	return n.NotifyRatingFn(ctx, stars)
}
