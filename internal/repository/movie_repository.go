package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"movie-curator-service/internal/models"
)

const movieColumns = `m.id, m.tmdb_id, m.title, m.genre, m.actors, m.release_year,
	m.rating, m.description, m.created_at, m.updated_at`

// membershipTables maps a list kind to its membership table. Only these names
// are ever interpolated into SQL.
var membershipTables = map[models.ListKind]string{
	models.Watchlist:   "watchlists",
	models.Wishlist:    "wishlists",
	models.CuratedList: "curated_list_items",
}

// MovieRepository handles database operations for movies.
type MovieRepository struct {
	db *sql.DB
}

// NewMovieRepository creates a new MovieRepository.
func NewMovieRepository(db *sql.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (*models.Movie, error) {
	var m models.Movie
	err := row.Scan(&m.ID, &m.TMDBId, &m.Title, &m.Genre, &m.Actors, &m.ReleaseYear,
		&m.Rating, &m.Description, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanMovies(rows *sql.Rows) ([]models.Movie, error) {
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			slog.Error("failed to scan movie row", "error", err)
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, *m)
	}
	return movies, rows.Err()
}

// GetMovieByTMDBId returns the movie materialized from the given TMDB ID.
// It returns sql.ErrNoRows when none exists.
func (r *MovieRepository) GetMovieByTMDBId(ctx context.Context, tmdbID int) (*models.Movie, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies m WHERE m.tmdb_id = $1`, tmdbID)
	return scanMovie(row)
}

// GetMovieByID returns a movie by internal ID. It returns sql.ErrNoRows when none exists.
func (r *MovieRepository) GetMovieByID(ctx context.Context, id int) (*models.Movie, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies m WHERE m.id = $1`, id)
	return scanMovie(row)
}

// InsertMovie stores m unless a movie with the same TMDB ID already exists.
// The returned flag is true when this call created the row; on conflict the
// existing row is returned instead.
func (r *MovieRepository) InsertMovie(ctx context.Context, m *models.Movie) (*models.Movie, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO movies AS m (tmdb_id, title, genre, actors, release_year, rating, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tmdb_id) DO NOTHING
		RETURNING `+movieColumns,
		m.TMDBId, m.Title, m.Genre, m.Actors, m.ReleaseYear, m.Rating, m.Description)

	created, err := scanMovie(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to insert movie: %w", err)
	}

	existing, err := r.GetMovieByTMDBId(ctx, m.TMDBId)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load conflicting movie: %w", err)
	}
	return existing, false, nil
}

// SearchByGenreAndActor returns movies whose genre and actors strings contain
// the given substrings, case-insensitively.
func (r *MovieRepository) SearchByGenreAndActor(ctx context.Context, genre, actor string) ([]models.Movie, error) {
	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if genre != "" {
		conditions = append(conditions, fmt.Sprintf(`LOWER(m.genre) LIKE $%d ESCAPE '\'`, argIdx))
		args = append(args, likePattern(genre))
		argIdx++
	}
	if actor != "" {
		conditions = append(conditions, fmt.Sprintf(`LOWER(m.actors) LIKE $%d ESCAPE '\'`, argIdx))
		args = append(args, likePattern(actor))
	}

	query := fmt.Sprintf(`SELECT %s FROM movies m WHERE %s ORDER BY m.id`,
		movieColumns, strings.Join(conditions, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	return scanMovies(rows)
}

// TopRated returns up to limit movies by rating, highest first. Ties keep insertion order.
func (r *MovieRepository) TopRated(ctx context.Context, limit int) ([]models.Movie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+movieColumns+` FROM movies m
		ORDER BY m.rating DESC, m.id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top rated query failed: %w", err)
	}
	return scanMovies(rows)
}

// ListMovies returns the movie of every membership row of the given list, in
// the order the rows were added. A movie attached twice appears twice.
func (r *MovieRepository) ListMovies(ctx context.Context, kind models.ListKind) ([]models.Movie, error) {
	table, ok := membershipTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown list %q", kind)
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s FROM %s l
		INNER JOIN movies m ON m.id = l.movie_id
		ORDER BY l.id
	`, movieColumns, table))
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	return scanMovies(rows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
