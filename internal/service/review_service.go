package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"movie-curator-service/internal/models"
	"movie-curator-service/internal/repository"
)

// ReviewStore is the persistence the review service needs.
type ReviewStore interface {
	CreateReview(ctx context.Context, movieID int, req models.CreateReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context, movieID int) ([]models.Review, error)
}

// MovieLookup loads stored movies by internal ID.
type MovieLookup interface {
	GetMovieByID(ctx context.Context, id int) (*models.Movie, error)
}

// ReviewService validates and stores reviews of stored movies.
type ReviewService struct {
	repo   ReviewStore
	movies MovieLookup
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo ReviewStore, movies MovieLookup) *ReviewService {
	return &ReviewService{repo: repo, movies: movies}
}

// AddReview validates and stores a review for a stored movie.
func (s *ReviewService) AddReview(ctx context.Context, movieID int, req models.CreateReviewRequest) (*models.Review, error) {
	if err := validate(req, reviewMessages); err != nil {
		return nil, err
	}
	if err := s.ensureMovie(ctx, movieID); err != nil {
		return nil, err
	}

	review, err := s.repo.CreateReview(ctx, movieID, req)
	if err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return review, nil
}

// ListReviews returns the reviews of a stored movie, newest first.
func (s *ReviewService) ListReviews(ctx context.Context, movieID int) ([]models.Review, error) {
	if err := s.ensureMovie(ctx, movieID); err != nil {
		return nil, err
	}
	return s.repo.ListReviews(ctx, movieID)
}

func (s *ReviewService) ensureMovie(ctx context.Context, movieID int) error {
	if _, err := s.movies.GetMovieByID(ctx, movieID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMovieNotFound
		}
		return fmt.Errorf("failed to get movie: %w", err)
	}
	return nil
}
