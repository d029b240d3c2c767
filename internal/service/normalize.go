package service

import (
	"fmt"
	"strconv"
	"strings"

	"movie-curator-service/internal/models"
	"movie-curator-service/internal/tmdb"
)

// maxActors is how many billed cast members are kept on a movie.
const maxActors = 5

// Normalize turns raw catalog payloads into the stored movie shape.
func Normalize(detail *tmdb.MovieDetail, credits *tmdb.Credits) (*models.Movie, error) {
	year, err := parseReleaseYear(detail.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("tmdb id %d: %w", detail.ID, err)
	}

	genres := make([]string, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		genres = append(genres, g.Name)
	}

	actors := topActors(castOf(credits))

	return &models.Movie{
		TMDBId:      detail.ID,
		Title:       detail.Title,
		Genre:       strings.Join(genres, ", "),
		Actors:      actors,
		ReleaseYear: year,
		Rating:      detail.VoteAverage,
		Description: detail.Overview,
	}, nil
}

func topActors(cast []tmdb.CastMember) string {
	n := min(len(cast), maxActors)
	names := make([]string, 0, n)
	for _, c := range cast[:n] {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// parseReleaseYear reads the 4-digit year prefix of a YYYY-MM-DD date.
func parseReleaseYear(date string) (int, error) {
	if len(date) < 4 || (len(date) > 4 && date[4] != '-') {
		return 0, fmt.Errorf("%w %q", ErrUnparseableReleaseDate, date)
	}
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w %q", ErrUnparseableReleaseDate, date)
		}
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrUnparseableReleaseDate, date)
	}
	return year, nil
}
