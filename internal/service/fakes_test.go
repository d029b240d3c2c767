package service

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"movie-curator-service/internal/models"
	"movie-curator-service/internal/tmdb"
)

// fakeStore is an in-memory MovieStore, ListStore and ReviewStore. InsertMovie
// and AddCuratedListItem honour the same uniqueness rules as the SQL schema.
type fakeStore struct {
	mu           sync.Mutex
	movies       []models.Movie
	watchlist    []int
	wishlist     []int
	curatedLists []models.CuratedListRecord
	curatedItems []models.CuratedListItem
	reviews      []models.Review
	lookupDelay  time.Duration
}

func (f *fakeStore) addMovie(m models.Movie) models.Movie {
	f.mu.Lock()
	defer f.mu.Unlock()
	m.ID = len(f.movies) + 1
	f.movies = append(f.movies, m)
	return m
}

func (f *fakeStore) movieCount(tmdbID int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.movies {
		if m.TMDBId == tmdbID {
			n++
		}
	}
	return n
}

func (f *fakeStore) GetMovieByTMDBId(_ context.Context, tmdbID int) (*models.Movie, error) {
	if f.lookupDelay > 0 {
		time.Sleep(f.lookupDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.movies {
		if m.TMDBId == tmdbID {
			return &m, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) GetMovieByID(_ context.Context, id int) (*models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.movies {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) InsertMovie(_ context.Context, m *models.Movie) (*models.Movie, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.movies {
		if existing.TMDBId == m.TMDBId {
			return &existing, false, nil
		}
	}
	created := *m
	created.ID = len(f.movies) + 1
	f.movies = append(f.movies, created)
	return &created, true, nil
}

func (f *fakeStore) SearchByGenreAndActor(_ context.Context, genre, actor string) ([]models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Movie{}
	for _, m := range f.movies {
		if strings.Contains(strings.ToLower(m.Genre), strings.ToLower(genre)) &&
			strings.Contains(strings.ToLower(m.Actors), strings.ToLower(actor)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) TopRated(_ context.Context, limit int) ([]models.Movie, error) {
	f.mu.Lock()
	movies := slices.Clone(f.movies)
	f.mu.Unlock()
	slices.SortStableFunc(movies, func(a, b models.Movie) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})
	if len(movies) > limit {
		movies = movies[:limit]
	}
	return movies, nil
}

func (f *fakeStore) ListMovies(ctx context.Context, kind models.ListKind) ([]models.Movie, error) {
	f.mu.Lock()
	var ids []int
	switch kind {
	case models.Watchlist:
		ids = slices.Clone(f.watchlist)
	case models.Wishlist:
		ids = slices.Clone(f.wishlist)
	case models.CuratedList:
		for _, it := range f.curatedItems {
			ids = append(ids, it.MovieID)
		}
	}
	f.mu.Unlock()

	out := []models.Movie{}
	for _, id := range ids {
		m, err := f.GetMovieByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeStore) CreateCuratedList(_ context.Context, name, slug, description string) (*models.CuratedListRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l := models.CuratedListRecord{ID: len(f.curatedLists) + 1, Name: name, Slug: slug, Description: description}
	f.curatedLists = append(f.curatedLists, l)
	return &l, nil
}

func (f *fakeStore) GetCuratedList(_ context.Context, id int) (*models.CuratedListRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.curatedLists {
		if l.ID == id {
			return &l, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) UpdateCuratedList(_ context.Context, id int, req models.UpdateCuratedListRequest) (*models.CuratedListRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.curatedLists {
		l := &f.curatedLists[i]
		if l.ID != id {
			continue
		}
		if req.Name != nil && *req.Name != "" {
			l.Name = *req.Name
		}
		if req.Description != nil && *req.Description != "" {
			l.Description = *req.Description
		}
		if req.Slug != nil && *req.Slug != "" {
			l.Slug = *req.Slug
		}
		out := *l
		return &out, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStore) CuratedListMovies(ctx context.Context, listID int) ([]models.Movie, error) {
	f.mu.Lock()
	var ids []int
	for _, it := range f.curatedItems {
		if it.CuratedListID == listID {
			ids = append(ids, it.MovieID)
		}
	}
	f.mu.Unlock()

	out := []models.Movie{}
	for _, id := range ids {
		m, _ := f.GetMovieByID(ctx, id)
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeStore) AddToWatchlist(_ context.Context, movieID int) (*models.ListEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.watchlist = append(f.watchlist, movieID)
	return &models.ListEntry{ID: len(f.watchlist), MovieID: movieID}, nil
}

func (f *fakeStore) AddToWishlist(_ context.Context, movieID int) (*models.ListEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wishlist = append(f.wishlist, movieID)
	return &models.ListEntry{ID: len(f.wishlist), MovieID: movieID}, nil
}

func (f *fakeStore) AddCuratedListItem(_ context.Context, listID, movieID int) (*models.CuratedListItem, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.curatedItems {
		if it.MovieID == movieID {
			return nil, false, nil
		}
	}
	item := models.CuratedListItem{ID: len(f.curatedItems) + 1, CuratedListID: listID, MovieID: movieID}
	f.curatedItems = append(f.curatedItems, item)
	return &item, true, nil
}

func (f *fakeStore) CreateReview(_ context.Context, movieID int, req models.CreateReviewRequest) (*models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := models.Review{ID: len(f.reviews) + 1, MovieID: movieID, Rating: req.Rating, ReviewText: req.ReviewText}
	f.reviews = append(f.reviews, r)
	return &r, nil
}

func (f *fakeStore) ListReviews(_ context.Context, movieID int) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Review{}
	for i := len(f.reviews) - 1; i >= 0; i-- {
		if f.reviews[i].MovieID == movieID {
			out = append(out, f.reviews[i])
		}
	}
	return out, nil
}

// fakeCatalog serves canned TMDB payloads.
type fakeCatalog struct {
	details     map[int]*tmdb.MovieDetail
	credits     map[int]*tmdb.Credits
	search      *tmdb.SearchResponse
	genres      []tmdb.Genre
	err         error
	genresErr   error
	delays      map[int]time.Duration
	detailCalls atomic.Int32
}

func (c *fakeCatalog) SearchMovies(context.Context, string) (*tmdb.SearchResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.search == nil {
		return &tmdb.SearchResponse{}, nil
	}
	return c.search, nil
}

func (c *fakeCatalog) GetMovieDetail(_ context.Context, id int) (*tmdb.MovieDetail, error) {
	c.detailCalls.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	d, ok := c.details[id]
	if !ok {
		return nil, &tmdb.APIError{StatusCode: 404, Message: "The resource you requested could not be found."}
	}
	return d, nil
}

func (c *fakeCatalog) GetMovieCredits(ctx context.Context, id int) (*tmdb.Credits, error) {
	if c.err != nil {
		return nil, c.err
	}
	if d := c.delays[id]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if cr, ok := c.credits[id]; ok {
		return cr, nil
	}
	return &tmdb.Credits{ID: id}, nil
}

func (c *fakeCatalog) GetGenres(context.Context) ([]tmdb.Genre, error) {
	if c.genresErr != nil {
		return nil, c.genresErr
	}
	return c.genres, nil
}

func inceptionCatalog() *fakeCatalog {
	return &fakeCatalog{
		details: map[int]*tmdb.MovieDetail{
			27205: {
				ID:          27205,
				Title:       "Inception",
				ReleaseDate: "2010-07-15",
				VoteAverage: 8.368,
				Overview:    "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets",
				Genres:      []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}, {ID: 12, Name: "Adventure"}},
			},
		},
		credits: map[int]*tmdb.Credits{
			27205: {ID: 27205, Cast: []tmdb.CastMember{
				{Name: "Leonardo DiCaprio"}, {Name: "Joseph Gordon-Levitt"}, {Name: "Ken Watanabe"},
				{Name: "Tom Hardy"}, {Name: "Elliot Page"}, {Name: "Dileep Rao"},
			}},
		},
	}
}
