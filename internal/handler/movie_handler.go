package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"movie-curator-service/internal/models"
)

// MovieService is what the movie handler needs from the service layer.
type MovieService interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
	SearchByGenreAndActor(ctx context.Context, genre, actor string) ([]models.Movie, error)
	SortList(ctx context.Context, params models.SortParams) ([]models.Movie, error)
	TopRated(ctx context.Context) ([]models.TopMovie, error)
	GetMovie(ctx context.Context, id int) (*models.Movie, error)
}

// MovieHandler handles catalog search and stored-movie queries.
type MovieHandler struct {
	svc MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *MovieHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "movie-curator",
	})
}

// Search searches the catalog and enriches each result with its cast.
// @Summary Search TMDB
// @Tags search
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {object} map[string][]models.SearchResult
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /search [get]
func (h *MovieHandler) Search(c fiber.Ctx) error {
	movies, err := h.svc.Search(c.Context(), c.Query("query"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"movies": movies})
}

// SearchByGenreAndActor filters stored movies by genre and actor substrings.
// @Summary Search stored movies by genre and actor
// @Tags movies
// @Produce json
// @Param genre query string false "Genre substring"
// @Param actor query string false "Actor substring"
// @Success 200 {array} models.Movie
// @Failure 404 {object} ErrorResponse
// @Router /movies/searchByGenreAndActor [get]
func (h *MovieHandler) SearchByGenreAndActor(c fiber.Ctx) error {
	movies, err := h.svc.SearchByGenreAndActor(c.Context(), c.Query("genre"), c.Query("actor"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movies)
}

// Sort returns the movies of a list sorted by rating or release year.
// @Summary Sort a list
// @Tags movies
// @Produce json
// @Param list query string true "List" Enums(watchlist,wishlist,curatedlist)
// @Param sortBy query string true "Sort field" Enums(rating,releaseYear)
// @Param order query string true "Sort order" Enums(asc,desc)
// @Success 200 {object} map[string][]models.Movie
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/sort [get]
func (h *MovieHandler) Sort(c fiber.Ctx) error {
	params := models.SortParams{
		List:   c.Query("list"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}

	movies, err := h.svc.SortList(c.Context(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"movies": movies})
}

// Top5 returns the five highest-rated stored movies.
// @Summary Top 5 movies by rating
// @Tags movies
// @Produce json
// @Success 200 {array} models.TopMovie
// @Failure 404 {object} ErrorResponse
// @Router /movies/top5 [get]
func (h *MovieHandler) Top5(c fiber.Ctx) error {
	top, err := h.svc.TopRated(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(top)
}

// GetMovie returns a stored movie.
// @Summary Get stored movie
// @Tags movies
// @Produce json
// @Param movieId path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 404 {object} ErrorResponse
// @Router /movies/{movieId} [get]
func (h *MovieHandler) GetMovie(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("movieId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	movie, err := h.svc.GetMovie(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movie)
}
