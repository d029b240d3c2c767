package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"movie-curator-service/internal/models"
)

func TestAddReview(t *testing.T) {
	store := &fakeStore{}
	movie := store.addMovie(models.Movie{TMDBId: 27205, Title: "Inception"})
	svc := NewReviewService(store, store)
	ctx := context.Background()

	review, err := svc.AddReview(ctx, movie.ID, models.CreateReviewRequest{Rating: 8.5, ReviewText: "Great"})
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	if review.MovieID != movie.ID || review.Rating != 8.5 {
		t.Errorf("review = %+v", review)
	}

	reviews, err := svc.ListReviews(ctx, movie.ID)
	if err != nil || len(reviews) != 1 {
		t.Errorf("ListReviews() = %v, %v", reviews, err)
	}
}

func TestAddReviewValidation(t *testing.T) {
	store := &fakeStore{}
	movie := store.addMovie(models.Movie{TMDBId: 1})
	svc := NewReviewService(store, store)

	tests := []struct {
		name string
		req  models.CreateReviewRequest
		want []string
	}{
		{"out of range and missing text", models.CreateReviewRequest{Rating: 41}, []string{MsgRatingInvalid, MsgReviewTextInvalid}},
		{"integer rating", models.CreateReviewRequest{Rating: 8, ReviewText: "ok"}, []string{MsgRatingInvalid}},
		{"text too long", models.CreateReviewRequest{Rating: 7.5, ReviewText: strings.Repeat("a", 501)}, []string{MsgReviewTextInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddReview(context.Background(), movie.ID, tt.req)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			if !reflect.DeepEqual(verr.Messages, tt.want) {
				t.Errorf("messages = %v, want %v", verr.Messages, tt.want)
			}
		})
	}
	if len(store.reviews) != 0 {
		t.Errorf("reviews = %d, want 0", len(store.reviews))
	}
}

func TestAddReviewMissingMovie(t *testing.T) {
	store := &fakeStore{}
	svc := NewReviewService(store, store)

	_, err := svc.AddReview(context.Background(), 5, models.CreateReviewRequest{Rating: 7.5, ReviewText: "ok"})
	if !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("error = %v, want ErrMovieNotFound", err)
	}
	if _, err := svc.ListReviews(context.Background(), 5); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("ListReviews error = %v, want ErrMovieNotFound", err)
	}
}
