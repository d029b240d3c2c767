package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gosimple/slug"

	"movie-curator-service/internal/metrics"
	"movie-curator-service/internal/models"
	"movie-curator-service/internal/repository"
)

// ListStore is the persistence the list service needs.
type ListStore interface {
	CreateCuratedList(ctx context.Context, name, slug, description string) (*models.CuratedListRecord, error)
	GetCuratedList(ctx context.Context, id int) (*models.CuratedListRecord, error)
	UpdateCuratedList(ctx context.Context, id int, req models.UpdateCuratedListRequest) (*models.CuratedListRecord, error)
	CuratedListMovies(ctx context.Context, listID int) ([]models.Movie, error)
	AddToWatchlist(ctx context.Context, movieID int) (*models.ListEntry, error)
	AddToWishlist(ctx context.Context, movieID int) (*models.ListEntry, error)
	AddCuratedListItem(ctx context.Context, listID, movieID int) (*models.CuratedListItem, bool, error)
}

// MovieResolver finds or creates the local movie for a TMDB ID.
type MovieResolver interface {
	Resolve(ctx context.Context, tmdbID int) (*models.Movie, Resolution, error)
}

// ListService manages curated lists and attaches movies to lists.
type ListService struct {
	repo     ListStore
	resolver MovieResolver
}

// NewListService creates a new ListService.
func NewListService(repo ListStore, resolver MovieResolver) *ListService {
	return &ListService{repo: repo, resolver: resolver}
}

// CreateCuratedList creates a curated list, deriving the slug from the name when absent.
func (s *ListService) CreateCuratedList(ctx context.Context, req models.CreateCuratedListRequest) (*models.CuratedListRecord, error) {
	if err := validate(req, createCuratedListMessages); err != nil {
		return nil, err
	}

	listSlug := req.Slug
	if listSlug == "" {
		listSlug = slug.Make(req.Name)
	}

	return s.repo.CreateCuratedList(ctx, req.Name, listSlug, req.Description)
}

// UpdateCuratedList changes the provided fields of a curated list.
func (s *ListService) UpdateCuratedList(ctx context.Context, id int, req models.UpdateCuratedListRequest) (*models.CuratedListRecord, error) {
	if err := validateUpdateCuratedList(id, req); err != nil {
		return nil, err
	}

	list, err := s.repo.UpdateCuratedList(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCuratedListNotFound
		}
		return nil, fmt.Errorf("failed to update curated list: %w", err)
	}
	return list, nil
}

// GetCuratedList returns a curated list with its movies.
func (s *ListService) GetCuratedList(ctx context.Context, id int) (*models.CuratedListDetail, error) {
	list, err := s.getCuratedList(ctx, id)
	if err != nil {
		return nil, err
	}

	movies, err := s.repo.CuratedListMovies(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.CuratedListDetail{CuratedListRecord: *list, Movies: movies}, nil
}

// AddToWatchlist resolves the movie and appends a watchlist entry. Repeated
// calls append repeated entries.
func (s *ListService) AddToWatchlist(ctx context.Context, req models.SaveMovieRequest) (*models.ListEntry, error) {
	return s.addEntry(ctx, req, models.Watchlist, s.repo.AddToWatchlist)
}

// AddToWishlist resolves the movie and appends a wishlist entry.
func (s *ListService) AddToWishlist(ctx context.Context, req models.SaveMovieRequest) (*models.ListEntry, error) {
	return s.addEntry(ctx, req, models.Wishlist, s.repo.AddToWishlist)
}

func (s *ListService) addEntry(ctx context.Context, req models.SaveMovieRequest, kind models.ListKind,
	insert func(context.Context, int) (*models.ListEntry, error)) (*models.ListEntry, error) {
	if err := validate(req, saveMovieMessages); err != nil {
		return nil, err
	}

	movie, err := s.resolve(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}

	entry, err := insert(ctx, movie.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, ErrMovieNotResolved
		}
		return nil, err
	}
	metrics.ListAttachments.WithLabelValues(string(kind), "attached").Inc()
	return entry, nil
}

// AddToCuratedList attaches a movie to a curated list. A movie already present
// in any curated list is not attached again; the call still succeeds and the
// returned flag is false.
func (s *ListService) AddToCuratedList(ctx context.Context, req models.SaveToCuratedListRequest) (*models.CuratedListItem, bool, error) {
	if err := validate(req, saveToCuratedListMessages); err != nil {
		return nil, false, err
	}

	if _, err := s.getCuratedList(ctx, req.CuratedListID); err != nil {
		return nil, false, err
	}

	movie, err := s.resolve(ctx, req.MovieID)
	if err != nil {
		return nil, false, err
	}

	item, created, err := s.repo.AddCuratedListItem(ctx, req.CuratedListID, movie.ID)
	if err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, false, ErrCuratedListNotFound
		}
		return nil, false, err
	}

	if !created {
		slog.Info("movie already in a curated list", "movie_id", movie.ID, "curated_list_id", req.CuratedListID)
		metrics.ListAttachments.WithLabelValues(string(models.CuratedList), "skipped").Inc()
		return nil, false, nil
	}
	metrics.ListAttachments.WithLabelValues(string(models.CuratedList), "attached").Inc()
	return item, true, nil
}

func (s *ListService) getCuratedList(ctx context.Context, id int) (*models.CuratedListRecord, error) {
	list, err := s.repo.GetCuratedList(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCuratedListNotFound
		}
		return nil, fmt.Errorf("failed to get curated list: %w", err)
	}
	return list, nil
}

func (s *ListService) resolve(ctx context.Context, tmdbID int) (*models.Movie, error) {
	movie, outcome, err := s.resolver.Resolve(ctx, tmdbID)
	if err != nil {
		slog.Error("failed to resolve movie", "tmdb_id", tmdbID, "error", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotResolved
	}
	slog.Debug("resolved movie", "tmdb_id", tmdbID, "id", movie.ID, "outcome", outcome.String())
	return movie, nil
}
