package handler

import (
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp creates the Fiber app with the JSON codec, error handler and
// recover/cors middleware used by the service.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Movie Curator",
		ServerHeader: "Movie-Curator",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New())
	return app
}

// RegisterRoutes mounts the API on r. Static /movies paths are registered
// before /movies/:movieId so they are matched first.
func RegisterRoutes(r fiber.Router, movies *MovieHandler, lists *ListHandler, reviews *ReviewHandler) {
	r.Get("/health", movies.Health)
	r.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	r.Get("/search", movies.Search)

	r.Post("/curated-lists", lists.CreateCuratedList)
	r.Get("/curated-lists/:curatedListId", lists.GetCuratedList)
	r.Put("/curated-lists/:curatedListId", lists.UpdateCuratedList)

	r.Post("/movies/watchlist", lists.SaveToWatchlist)
	r.Post("/movies/wishlist", lists.SaveToWishlist)
	r.Post("/movies/curated-list", lists.SaveToCuratedList)

	r.Get("/movies/searchByGenreAndActor", movies.SearchByGenreAndActor)
	r.Get("/movies/sort", movies.Sort)
	r.Get("/movies/top5", movies.Top5)
	r.Get("/movies/:movieId", movies.GetMovie)

	r.Post("/movies/:movieId/reviews", reviews.AddReview)
	r.Get("/movies/:movieId/reviews", reviews.ListReviews)
}
