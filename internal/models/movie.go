package models

import "time"

// Movie represents a movie materialized from the catalog into our database.
type Movie struct {
	ID          int       `json:"id"`
	TMDBId      int       `json:"tmdbId"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Actors      string    `json:"actors"`
	ReleaseYear int       `json:"releaseYear"`
	Rating      float64   `json:"rating"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SearchResult is one enriched entry of a catalog search.
type SearchResult struct {
	Title       string  `json:"title"`
	TMDBId      int     `json:"tmdbId"`
	Genre       string  `json:"genre"`
	Actors      string  `json:"actors"`
	ReleaseYear int     `json:"releaseYear"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
}

// ReviewSummary is the derived review block of a top-rated entry.
type ReviewSummary struct {
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
}

// TopMovie is the response shape of the top-5 ranking.
type TopMovie struct {
	Title  string        `json:"title"`
	Rating float64       `json:"rating"`
	Review ReviewSummary `json:"review"`
}

// SaveMovieRequest is the request body for watchlist and wishlist attachment.
type SaveMovieRequest struct {
	MovieID int `json:"movieId" validate:"required,gt=0"`
}

// SortParams holds the query parameters of the sort endpoint.
type SortParams struct {
	List   string `query:"list" validate:"required,oneof=watchlist wishlist curatedlist"`
	SortBy string `query:"sortBy" validate:"required,oneof=rating releaseYear"`
	Order  string `query:"order" validate:"required,oneof=asc desc"`
}

// Sort fields and orders.
const (
	SortByRating      = "rating"
	SortByReleaseYear = "releaseYear"
	OrderAsc          = "asc"
	OrderDesc         = "desc"
)
