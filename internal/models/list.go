package models

import "time"

// ListKind names one of the membership tables a movie can be attached to.
type ListKind string

const (
	Watchlist   ListKind = "watchlist"
	Wishlist    ListKind = "wishlist"
	CuratedList ListKind = "curatedlist"
)

// Valid reports whether k is a known list kind.
func (k ListKind) Valid() bool {
	switch k {
	case Watchlist, Wishlist, CuratedList:
		return true
	}
	return false
}

// ListEntry is a watchlist or wishlist row.
type ListEntry struct {
	ID      int       `json:"id"`
	MovieID int       `json:"movieId"`
	AddedAt time.Time `json:"addedAt"`
}

// CuratedListRecord is a named, user-curated collection of movies.
type CuratedListRecord struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CuratedListItem links a movie to a curated list.
type CuratedListItem struct {
	ID            int       `json:"id"`
	CuratedListID int       `json:"curatedListId"`
	MovieID       int       `json:"movieId"`
	AddedAt       time.Time `json:"addedAt"`
}

// CuratedListDetail is a curated list together with its movies.
type CuratedListDetail struct {
	CuratedListRecord
	Movies []Movie `json:"movies"`
}

// CreateCuratedListRequest is the request body for creating a curated list.
type CreateCuratedListRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Slug        string `json:"slug"`
}

// UpdateCuratedListRequest is the request body for updating a curated list.
// Nil fields are left unchanged.
type UpdateCuratedListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
}

// Empty reports whether the request carries no non-empty field.
func (r UpdateCuratedListRequest) Empty() bool {
	return isBlank(r.Name) && isBlank(r.Description) && isBlank(r.Slug)
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

// SaveToCuratedListRequest is the request body for attaching a movie to a curated list.
type SaveToCuratedListRequest struct {
	MovieID       int `json:"movieId" validate:"required,gt=0"`
	CuratedListID int `json:"curatedListId" validate:"required,gt=0"`
}
