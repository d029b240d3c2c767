package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"movie-curator-service/internal/metrics"
	"movie-curator-service/internal/models"
	"movie-curator-service/internal/tmdb"
)

// MovieStore is the persistence the movie service needs.
type MovieStore interface {
	GetMovieByTMDBId(ctx context.Context, tmdbID int) (*models.Movie, error)
	GetMovieByID(ctx context.Context, id int) (*models.Movie, error)
	InsertMovie(ctx context.Context, m *models.Movie) (*models.Movie, bool, error)
	SearchByGenreAndActor(ctx context.Context, genre, actor string) ([]models.Movie, error)
	TopRated(ctx context.Context, limit int) ([]models.Movie, error)
	ListMovies(ctx context.Context, kind models.ListKind) ([]models.Movie, error)
}

// Catalog is the external movie metadata source.
type Catalog interface {
	SearchMovies(ctx context.Context, query string) (*tmdb.SearchResponse, error)
	GetMovieDetail(ctx context.Context, tmdbID int) (*tmdb.MovieDetail, error)
	GetMovieCredits(ctx context.Context, tmdbID int) (*tmdb.Credits, error)
	GetGenres(ctx context.Context) ([]tmdb.Genre, error)
}

// Resolution says whether Resolve found an existing movie or created one.
type Resolution int

const (
	ResolutionFound Resolution = iota
	ResolutionCreated
)

func (r Resolution) String() string {
	if r == ResolutionCreated {
		return "created"
	}
	return "found"
}

// MovieServiceConfig tunes catalog caching and search fan-out.
type MovieServiceConfig struct {
	CacheTTL          time.Duration
	SearchConcurrency int
}

// MovieService resolves catalog movies into local records and answers the
// search, sort and ranking queries.
type MovieService struct {
	repo        MovieStore
	catalog     Catalog
	redis       *redis.Client
	cacheTTL    time.Duration
	concurrency int
	inflight    singleflight.Group
}

// NewMovieService creates a new MovieService. rdb may be nil.
func NewMovieService(repo MovieStore, catalog Catalog, rdb *redis.Client, cfg MovieServiceConfig) *MovieService {
	if cfg.SearchConcurrency < 1 {
		cfg.SearchConcurrency = 1
	}
	return &MovieService{
		repo:        repo,
		catalog:     catalog,
		redis:       rdb,
		cacheTTL:    cfg.CacheTTL,
		concurrency: cfg.SearchConcurrency,
	}
}

type materialized struct {
	movie   *models.Movie
	created bool
}

// Resolve returns the local movie for tmdbID, materializing it from the
// catalog on first reference. At most one movie row exists per TMDB ID: the
// insert relies on the unique constraint, and concurrent callers for the same
// unseen ID share one catalog fetch.
func (s *MovieService) Resolve(ctx context.Context, tmdbID int) (*models.Movie, Resolution, error) {
	movie, err := s.repo.GetMovieByTMDBId(ctx, tmdbID)
	if err == nil {
		metrics.Resolutions.WithLabelValues(ResolutionFound.String()).Inc()
		return movie, ResolutionFound, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, ResolutionFound, fmt.Errorf("failed to look up movie: %w", err)
	}

	// Detached so one caller's cancellation does not fail the others sharing the call.
	// Only the caller whose function ran may report the insert as its own.
	var leader bool
	v, err, _ := s.inflight.Do(strconv.Itoa(tmdbID), func() (any, error) {
		leader = true
		return s.materialize(context.WithoutCancel(ctx), tmdbID)
	})
	if err != nil {
		return nil, ResolutionFound, err
	}

	res := v.(materialized)
	if res.movie == nil || res.movie.ID == 0 {
		return nil, ResolutionFound, ErrMovieNotResolved
	}

	outcome := ResolutionFound
	if res.created && leader {
		outcome = ResolutionCreated
		slog.Info("materialized movie", "tmdb_id", tmdbID, "id", res.movie.ID, "title", res.movie.Title)
	}
	metrics.Resolutions.WithLabelValues(outcome.String()).Inc()
	return res.movie, outcome, nil
}

func (s *MovieService) materialize(ctx context.Context, tmdbID int) (materialized, error) {
	detail, credits, err := s.fetchCatalogMovie(ctx, tmdbID)
	if err != nil {
		return materialized{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	fields, err := Normalize(detail, credits)
	if err != nil {
		return materialized{}, err
	}
	fields.TMDBId = tmdbID

	movie, created, err := s.repo.InsertMovie(ctx, fields)
	if err != nil {
		return materialized{}, fmt.Errorf("failed to persist movie: %w", err)
	}
	return materialized{movie: movie, created: created}, nil
}

func (s *MovieService) fetchCatalogMovie(ctx context.Context, tmdbID int) (*tmdb.MovieDetail, *tmdb.Credits, error) {
	var (
		detail  *tmdb.MovieDetail
		credits *tmdb.Credits
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		detail, err = cached(gctx, s.redis, fmt.Sprintf("tmdb:movie:%d", tmdbID), "movie", s.cacheTTL,
			func() (*tmdb.MovieDetail, error) { return s.catalog.GetMovieDetail(gctx, tmdbID) })
		return err
	})
	g.Go(func() error {
		var err error
		credits, err = s.credits(gctx, tmdbID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return detail, credits, nil
}

func (s *MovieService) credits(ctx context.Context, tmdbID int) (*tmdb.Credits, error) {
	return cached(ctx, s.redis, fmt.Sprintf("tmdb:credits:%d", tmdbID), "credits", s.cacheTTL,
		func() (*tmdb.Credits, error) { return s.catalog.GetMovieCredits(ctx, tmdbID) })
}

func (s *MovieService) genreNames(ctx context.Context) (map[int]string, error) {
	genres, err := cached(ctx, s.redis, "tmdb:genres", "genres", s.cacheTTL,
		func() ([]tmdb.Genre, error) { return s.catalog.GetGenres(ctx) })
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(genres))
	for _, g := range genres {
		names[g.ID] = g.Name
	}
	return names, nil
}

// Search queries the catalog and enriches every result with its top cast.
// Results keep the catalog's order.
func (s *MovieService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, newValidationError(MsgQueryRequired)
	}

	resp, err := s.catalog.SearchMovies(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if len(resp.Results) == 0 {
		return nil, ErrNoMoviesFound
	}

	genres, err := s.genreNames(ctx)
	if err != nil {
		slog.Warn("genre list unavailable, using genre ids", "error", err)
	}

	results := make([]models.SearchResult, len(resp.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, m := range resp.Results {
		g.Go(func() error {
			credits, err := s.credits(gctx, m.ID)
			if err != nil {
				return fmt.Errorf("credits for tmdb id %d: %w", m.ID, err)
			}
			year, _ := parseReleaseYear(m.ReleaseDate)
			results[i] = models.SearchResult{
				Title:       m.OriginalTitle,
				TMDBId:      m.ID,
				Genre:       joinGenres(m.GenreIDs, genres),
				Actors:      topActors(castOf(credits)),
				ReleaseYear: year,
				Rating:      m.VoteAverage,
				Description: m.Overview,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	return results, nil
}

func castOf(c *tmdb.Credits) []tmdb.CastMember {
	if c == nil {
		return nil
	}
	return c.Cast
}

func joinGenres(ids []int, names map[int]string) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, strconv.Itoa(id))
	}
	return strings.Join(parts, ", ")
}

// SearchByGenreAndActor filters stored movies by case-insensitive substrings.
func (s *MovieService) SearchByGenreAndActor(ctx context.Context, genre, actor string) ([]models.Movie, error) {
	movies, err := s.repo.SearchByGenreAndActor(ctx, strings.TrimSpace(genre), strings.TrimSpace(actor))
	if err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, ErrNoMoviesFound
	}
	return movies, nil
}

// SortList returns the movies of a list ordered by the requested field.
func (s *MovieService) SortList(ctx context.Context, params models.SortParams) ([]models.Movie, error) {
	params.Order = strings.ToLower(params.Order)
	if err := validate(params, sortMessages); err != nil {
		return nil, err
	}

	movies, err := s.repo.ListMovies(ctx, models.ListKind(params.List))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", params.List, err)
	}
	if len(movies) == 0 {
		return nil, ErrNoMoviesFound
	}

	SortMovies(movies, params.SortBy, params.Order)
	return movies, nil
}

// TopRated returns the five highest-rated movies with a review summary.
func (s *MovieService) TopRated(ctx context.Context) ([]models.TopMovie, error) {
	movies, err := s.repo.TopRated(ctx, topRatedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top rated movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, ErrNoMoviesFound
	}
	return toTopMovies(movies), nil
}

// GetMovie returns a stored movie by internal ID.
func (s *MovieService) GetMovie(ctx context.Context, id int) (*models.Movie, error) {
	movie, err := s.repo.GetMovieByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return movie, nil
}
