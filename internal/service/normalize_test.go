package service

import (
	"errors"
	"testing"

	"movie-curator-service/internal/tmdb"
)

func TestNormalize(t *testing.T) {
	cat := inceptionCatalog()
	m, err := Normalize(cat.details[27205], cat.credits[27205])
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if m.Genre != "Action, Science Fiction, Adventure" {
		t.Errorf("Genre = %q", m.Genre)
	}
	if want := "Leonardo DiCaprio, Joseph Gordon-Levitt, Ken Watanabe, Tom Hardy, Elliot Page"; m.Actors != want {
		t.Errorf("Actors = %q, want %q", m.Actors, want)
	}
	if m.ReleaseYear != 2010 {
		t.Errorf("ReleaseYear = %d, want 2010", m.ReleaseYear)
	}
	if m.Title != "Inception" || m.Rating != 8.368 || m.TMDBId != 27205 {
		t.Errorf("pass-through fields = %+v", m)
	}
}

func TestNormalizeShortCastAndNoGenres(t *testing.T) {
	detail := &tmdb.MovieDetail{ID: 1, Title: "Short", ReleaseDate: "1999-01-01"}
	credits := &tmdb.Credits{Cast: []tmdb.CastMember{{Name: "A"}, {Name: "B"}}}

	m, err := Normalize(detail, credits)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if m.Genre != "" {
		t.Errorf("Genre = %q, want empty", m.Genre)
	}
	if m.Actors != "A, B" {
		t.Errorf("Actors = %q, want %q", m.Actors, "A, B")
	}

	m, err = Normalize(detail, nil)
	if err != nil {
		t.Fatalf("Normalize(nil credits) error = %v", err)
	}
	if m.Actors != "" {
		t.Errorf("Actors = %q, want empty", m.Actors)
	}
}

func TestParseReleaseYear(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"2010-07-15", 2010, false},
		{"1999", 1999, false},
		{"", 0, true},
		{"20-01-01", 0, true},
		{"abcd-01-01", 0, true},
		{"201007", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseReleaseYear(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnparseableReleaseDate) {
					t.Fatalf("parseReleaseYear(%q) error = %v, want ErrUnparseableReleaseDate", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("parseReleaseYear(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
			}
		})
	}
}
