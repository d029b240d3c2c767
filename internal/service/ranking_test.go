package service

import (
	"testing"

	"movie-curator-service/internal/models"
)

func ratings(movies []models.Movie) []float64 {
	out := make([]float64, len(movies))
	for i, m := range movies {
		out[i] = m.Rating
	}
	return out
}

func TestSortMoviesByRating(t *testing.T) {
	tests := []struct {
		order string
		want  []float64
	}{
		{"asc", []float64{6.4, 8.368}},
		{"ASC", []float64{6.4, 8.368}},
		{"desc", []float64{8.368, 6.4}},
		{"Desc", []float64{8.368, 6.4}},
	}

	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			movies := []models.Movie{{Rating: 8.368}, {Rating: 6.4}}
			SortMovies(movies, models.SortByRating, tt.order)
			got := ratings(movies)
			if got[0] != tt.want[0] || got[1] != tt.want[1] {
				t.Errorf("order %s = %v, want %v", tt.order, got, tt.want)
			}
		})
	}
}

func TestSortMoviesByReleaseYearIsStable(t *testing.T) {
	movies := []models.Movie{
		{Title: "a", ReleaseYear: 2010},
		{Title: "b", ReleaseYear: 1999},
		{Title: "c", ReleaseYear: 2010},
		{Title: "d", ReleaseYear: 2024},
	}

	SortMovies(movies, models.SortByReleaseYear, "desc")

	var got string
	for _, m := range movies {
		got += m.Title
	}
	if got != "dacb" {
		t.Errorf("order = %q, want %q", got, "dacb")
	}
}

func TestWordCount(t *testing.T) {
	desc := "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets"
	if got := WordCount(desc); got != 15 {
		t.Errorf("WordCount() = %d, want 15", got)
	}
	if got := WordCount("  spaced\tout \n words "); got != 3 {
		t.Errorf("WordCount() = %d, want 3", got)
	}
	if got := WordCount(""); got != 0 {
		t.Errorf("WordCount(\"\") = %d, want 0", got)
	}
}
