package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"movie-curator-service/internal/models"
)

// ListRepository handles curated lists and the watchlist/wishlist/curated memberships.
type ListRepository struct {
	db *sql.DB
}

// NewListRepository creates a new ListRepository.
func NewListRepository(db *sql.DB) *ListRepository {
	return &ListRepository{db: db}
}

// CreateCuratedList inserts a curated list.
func (r *ListRepository) CreateCuratedList(ctx context.Context, name, slug, description string) (*models.CuratedListRecord, error) {
	var l models.CuratedListRecord
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO curated_lists (name, slug, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, slug, description, created_at, updated_at
	`, name, slug, description).Scan(&l.ID, &l.Name, &l.Slug, &l.Description, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create curated list: %w", err)
	}
	return &l, nil
}

// GetCuratedList returns a curated list by ID. It returns sql.ErrNoRows when none exists.
func (r *ListRepository) GetCuratedList(ctx context.Context, id int) (*models.CuratedListRecord, error) {
	var l models.CuratedListRecord
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, slug, description, created_at, updated_at
		FROM curated_lists WHERE id = $1
	`, id).Scan(&l.ID, &l.Name, &l.Slug, &l.Description, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateCuratedList changes the non-empty fields of req. It returns
// sql.ErrNoRows when the list does not exist.
func (r *ListRepository) UpdateCuratedList(ctx context.Context, id int, req models.UpdateCuratedListRequest) (*models.CuratedListRecord, error) {
	var l models.CuratedListRecord
	err := r.db.QueryRowContext(ctx, `
		UPDATE curated_lists SET
			name = COALESCE(NULLIF($2::text, ''), name),
			description = COALESCE(NULLIF($3::text, ''), description),
			slug = COALESCE(NULLIF($4::text, ''), slug),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, slug, description, created_at, updated_at
	`, id, req.Name, req.Description, req.Slug).Scan(&l.ID, &l.Name, &l.Slug, &l.Description, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// CuratedListMovies returns the movies attached to a curated list in attach order.
func (r *ListRepository) CuratedListMovies(ctx context.Context, listID int) ([]models.Movie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+movieColumns+` FROM curated_list_items l
		INNER JOIN movies m ON m.id = l.movie_id
		WHERE l.curated_list_id = $1
		ORDER BY l.id
	`, listID)
	if err != nil {
		return nil, fmt.Errorf("curated list movies query failed: %w", err)
	}
	return scanMovies(rows)
}

// AddToWatchlist appends a watchlist row for movieID.
func (r *ListRepository) AddToWatchlist(ctx context.Context, movieID int) (*models.ListEntry, error) {
	return r.addEntry(ctx, "watchlists", movieID)
}

// AddToWishlist appends a wishlist row for movieID.
func (r *ListRepository) AddToWishlist(ctx context.Context, movieID int) (*models.ListEntry, error) {
	return r.addEntry(ctx, "wishlists", movieID)
}

func (r *ListRepository) addEntry(ctx context.Context, table string, movieID int) (*models.ListEntry, error) {
	var e models.ListEntry
	err := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (movie_id) VALUES ($1)
		RETURNING id, movie_id, added_at
	`, table), movieID).Scan(&e.ID, &e.MovieID, &e.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, mapConstraintError(err))
	}
	return &e, nil
}

// AddCuratedListItem attaches movieID to listID unless the movie is already
// attached to any curated list. The flag reports whether a row was created.
func (r *ListRepository) AddCuratedListItem(ctx context.Context, listID, movieID int) (*models.CuratedListItem, bool, error) {
	var item models.CuratedListItem
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO curated_list_items (curated_list_id, movie_id)
		VALUES ($1, $2)
		ON CONFLICT (movie_id) DO NOTHING
		RETURNING id, curated_list_id, movie_id, added_at
	`, listID, movieID).Scan(&item.ID, &item.CuratedListID, &item.MovieID, &item.AddedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert curated list item: %w", mapConstraintError(err))
	}
	return &item, true, nil
}
