package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v3/middleware/logger"

	"movie-curator-service/internal/config"
	"movie-curator-service/internal/database"
	"movie-curator-service/internal/handler"
	"movie-curator-service/internal/repository"
	"movie-curator-service/internal/service"
	"movie-curator-service/internal/tmdb"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})))

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	}

	// Initialize TMDB client
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Timeout)

	// Initialize layers
	movieRepo := repository.NewMovieRepository(db)
	listRepo := repository.NewListRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	movieSvc := service.NewMovieService(movieRepo, tmdbClient, rdb, service.MovieServiceConfig{
		CacheTTL:          cfg.TMDB.CacheTTL,
		SearchConcurrency: cfg.Search.Concurrency,
	})
	listSvc := service.NewListService(listRepo, movieSvc)
	reviewSvc := service.NewReviewService(reviewRepo, movieRepo)

	// Create Fiber app
	app := handler.NewApp()
	app.Use(logger.New())

	// Swagger docs
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, "Movie Curator", swaggerYAML)
	}

	// API routes
	handler.RegisterRoutes(app,
		handler.NewMovieHandler(movieSvc),
		handler.NewListHandler(listSvc),
		handler.NewReviewHandler(reviewSvc),
	)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down movie curator...")
		_ = app.Shutdown()
		if rdb != nil {
			_ = rdb.Close()
		}
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting movie curator", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
