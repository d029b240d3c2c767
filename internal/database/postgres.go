package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"movie-curator-service/internal/config"
)

// NewPostgres creates a new PostgreSQL connection and runs migrations.
func NewPostgres(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// RunMigrations creates the schema if it does not exist yet.
func RunMigrations(db *sql.DB) error {
	migrations := []string{
		// tmdb_id is UNIQUE so find-or-create can rely on ON CONFLICT
		`CREATE TABLE IF NOT EXISTS movies (
			id SERIAL PRIMARY KEY,
			tmdb_id INTEGER UNIQUE NOT NULL,
			title VARCHAR(500) NOT NULL,
			genre TEXT NOT NULL DEFAULT '',
			actors TEXT NOT NULL DEFAULT '',
			release_year INTEGER NOT NULL,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS curated_lists (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			slug VARCHAR(255) NOT NULL,
			description VARCHAR(1000) NOT NULL,
			created_at TIMESTAMP DEFAULT NOW(),
			updated_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS curated_list_items (
			id SERIAL PRIMARY KEY,
			curated_list_id INTEGER NOT NULL REFERENCES curated_lists(id) ON DELETE CASCADE,
			movie_id INTEGER NOT NULL UNIQUE REFERENCES movies(id) ON DELETE CASCADE,
			added_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS watchlists (
			id SERIAL PRIMARY KEY,
			movie_id INTEGER NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
			added_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS wishlists (
			id SERIAL PRIMARY KEY,
			movie_id INTEGER NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
			added_at TIMESTAMP DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			movie_id INTEGER NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
			rating DOUBLE PRECISION NOT NULL CHECK (rating >= 0 AND rating <= 10),
			review_text VARCHAR(500) NOT NULL,
			added_at TIMESTAMP DEFAULT NOW()
		)`,
		// Indexes for common query patterns
		`CREATE INDEX IF NOT EXISTS idx_movies_rating ON movies(rating)`,
		`CREATE INDEX IF NOT EXISTS idx_watchlists_movie_id ON watchlists(movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_wishlists_movie_id ON wishlists(movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_curated_list_items_list_id ON curated_list_items(curated_list_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_movie_id ON reviews(movie_id)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}
