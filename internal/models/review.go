package models

import "time"

// Review is a user rating with text for a stored movie.
type Review struct {
	ID         int       `json:"id"`
	MovieID    int       `json:"movieId"`
	Rating     float64   `json:"rating"`
	ReviewText string    `json:"reviewText"`
	AddedAt    time.Time `json:"addedAt"`
}

// CreateReviewRequest is the request body for adding a review.
// Ratings must carry a fractional part: 8.5 is accepted, 8 is not.
type CreateReviewRequest struct {
	Rating     float64 `json:"rating" validate:"required,nonintegral,gte=0,lte=10"`
	ReviewText string  `json:"reviewText" validate:"required,max=500"`
}
