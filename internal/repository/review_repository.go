package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"movie-curator-service/internal/models"
)

// ErrMissingReference is returned when a write points at a row that does not exist.
var ErrMissingReference = errors.New("referenced row does not exist")

// ReviewRepository handles database operations for reviews.
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview stores a review for movieID.
func (r *ReviewRepository) CreateReview(ctx context.Context, movieID int, req models.CreateReviewRequest) (*models.Review, error) {
	var rev models.Review
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (movie_id, rating, review_text)
		VALUES ($1, $2, $3)
		RETURNING id, movie_id, rating, review_text, added_at
	`, movieID, req.Rating, req.ReviewText).Scan(&rev.ID, &rev.MovieID, &rev.Rating, &rev.ReviewText, &rev.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", mapConstraintError(err))
	}
	return &rev, nil
}

// ListReviews returns the reviews of a movie, newest first.
func (r *ReviewRepository) ListReviews(ctx context.Context, movieID int) ([]models.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, movie_id, rating, review_text, added_at
		FROM reviews
		WHERE movie_id = $1
		ORDER BY added_at DESC, id DESC
	`, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var rev models.Review
		if err := rows.Scan(&rev.ID, &rev.MovieID, &rev.Rating, &rev.ReviewText, &rev.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// mapConstraintError turns a Postgres foreign key violation into ErrMissingReference.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return fmt.Errorf("%w: %s", ErrMissingReference, pqErr.Message)
	}
	return err
}
