package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/urlsum"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ urlsum.RatingService = (*RatingService)(nil)

// RatingService implements urlsum.RatingService using SQLite.
type RatingService struct {
	db *DB
}

// NewRatingService creates a new RatingService.
func NewRatingService(db *DB) *RatingService {
	return &RatingService{db: db}
}

// CreateRating records a new rating with a generated ID and timestamp.
func (s *RatingService) CreateRating(ctx context.Context, rating *urlsum.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	rating.ID = uuid.New().String()
	rating.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ratings (id, stars, notified, created_at)
		VALUES (?, ?, ?, ?)
	`, rating.ID, rating.Stars, rating.Notified, rating.CreatedAt.Format(time.RFC3339))

	return err
}

// UpdateRating applies upd to the rating with the given ID and returns the
// stored rating.
func (s *RatingService) UpdateRating(ctx context.Context, id string, upd urlsum.RatingUpdate) (*urlsum.Rating, error) {
	if upd.Notified != nil {
		res, err := s.db.ExecContext(ctx, "UPDATE ratings SET notified = ? WHERE id = ?", *upd.Notified, id)
		if err != nil {
			return nil, err
		}
		if n, err := res.RowsAffected(); err != nil {
			return nil, err
		} else if n == 0 {
			return nil, urlsum.Errorf(urlsum.ENOTFOUND, "rating not found")
		}
	}

	var rating urlsum.Rating
	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, stars, notified, created_at
		FROM ratings
		WHERE id = ?
	`, id).Scan(&rating.ID, &rating.Stars, &rating.Notified, &createdAt)
	if err == sql.ErrNoRows {
		return nil, urlsum.Errorf(urlsum.ENOTFOUND, "rating not found")
	}
	if err != nil {
		return nil, err
	}

	if rating.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &rating, nil
}

// FindRatings retrieves ratings matching the filter, newest first.
func (s *RatingService) FindRatings(ctx context.Context, filter urlsum.RatingFilter) ([]*urlsum.Rating, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, stars, notified, created_at FROM ratings WHERE 1=1")

	if filter.Stars != nil {
		query.WriteString(" AND stars = ?")
		args = append(args, *filter.Stars)
	}

	// rowid breaks ties between ratings created in the same second.
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []*urlsum.Rating
	for rows.Next() {
		var rating urlsum.Rating
		var createdAt string

		if err := rows.Scan(&rating.ID, &rating.Stars, &rating.Notified, &createdAt); err != nil {
			return nil, err
		}

		rating.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		ratings = append(ratings, &rating)
	}

	return ratings, rows.Err()
}
