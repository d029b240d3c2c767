package service

import (
	"cmp"
	"slices"
	"strings"

	"movie-curator-service/internal/models"
)

// topRatedLimit is the size of the top-rated ranking.
const topRatedLimit = 5

// SortMovies orders movies in place by rating or release year. The sort is
// stable, so equal keys keep the order the list returned them in.
func SortMovies(movies []models.Movie, sortBy, order string) {
	desc := strings.EqualFold(order, models.OrderDesc)
	slices.SortStableFunc(movies, func(a, b models.Movie) int {
		var c int
		if sortBy == models.SortByReleaseYear {
			c = cmp.Compare(a.ReleaseYear, b.ReleaseYear)
		} else {
			c = cmp.Compare(a.Rating, b.Rating)
		}
		if desc {
			return -c
		}
		return c
	})
}

// WordCount counts whitespace-separated tokens.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

func toTopMovies(movies []models.Movie) []models.TopMovie {
	top := make([]models.TopMovie, 0, len(movies))
	for _, m := range movies {
		top = append(top, models.TopMovie{
			Title:  m.Title,
			Rating: m.Rating,
			Review: models.ReviewSummary{
				Text:      m.Description,
				WordCount: WordCount(m.Description),
			},
		})
	}
	return top
}
