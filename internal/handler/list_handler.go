package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"movie-curator-service/internal/models"
	"movie-curator-service/internal/service"
)

// ListService is what the list handler needs from the service layer.
type ListService interface {
	CreateCuratedList(ctx context.Context, req models.CreateCuratedListRequest) (*models.CuratedListRecord, error)
	UpdateCuratedList(ctx context.Context, id int, req models.UpdateCuratedListRequest) (*models.CuratedListRecord, error)
	GetCuratedList(ctx context.Context, id int) (*models.CuratedListDetail, error)
	AddToWatchlist(ctx context.Context, req models.SaveMovieRequest) (*models.ListEntry, error)
	AddToWishlist(ctx context.Context, req models.SaveMovieRequest) (*models.ListEntry, error)
	AddToCuratedList(ctx context.Context, req models.SaveToCuratedListRequest) (*models.CuratedListItem, bool, error)
}

// ListHandler handles curated lists and list membership.
type ListHandler struct {
	svc ListService
}

// NewListHandler creates a new ListHandler.
func NewListHandler(svc ListService) *ListHandler {
	return &ListHandler{svc: svc}
}

// CreateCuratedList creates a curated list.
// @Summary Create curated list
// @Tags curated-lists
// @Accept json
// @Produce json
// @Param body body models.CreateCuratedListRequest true "Curated list"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /curated-lists [post]
func (h *ListHandler) CreateCuratedList(c fiber.Ctx) error {
	var req models.CreateCuratedListRequest
	if err := bindJSON(c, &req); err != nil {
		return invalidBody(c)
	}

	list, err := h.svc.CreateCuratedList(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Curated list created successfully.",
		"curatedList": list,
	})
}

// UpdateCuratedList updates the provided fields of a curated list.
// @Summary Update curated list
// @Tags curated-lists
// @Accept json
// @Produce json
// @Param curatedListId path int true "Curated list ID"
// @Param body body models.UpdateCuratedListRequest true "Fields to change"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /curated-lists/{curatedListId} [put]
func (h *ListHandler) UpdateCuratedList(c fiber.Ctx) error {
	// A non-numeric id reaches the service as 0 and fails validation there.
	id, _ := strconv.Atoi(c.Params("curatedListId"))

	var req models.UpdateCuratedListRequest
	if err := bindJSON(c, &req); err != nil {
		return invalidBody(c)
	}

	list, err := h.svc.UpdateCuratedList(c.Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Curated list updated successfully.",
		"curatedList": list,
	})
}

// GetCuratedList returns a curated list with its movies.
// @Summary Get curated list
// @Tags curated-lists
// @Produce json
// @Param curatedListId path int true "Curated list ID"
// @Success 200 {object} models.CuratedListDetail
// @Failure 404 {object} ErrorResponse
// @Router /curated-lists/{curatedListId} [get]
func (h *ListHandler) GetCuratedList(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("curatedListId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid curated list ID"})
	}

	list, err := h.svc.GetCuratedList(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// SaveToWatchlist adds a TMDB movie to the watchlist.
// @Summary Add movie to watchlist
// @Tags lists
// @Accept json
// @Produce json
// @Param body body models.SaveMovieRequest true "TMDB movie ID"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /movies/watchlist [post]
func (h *ListHandler) SaveToWatchlist(c fiber.Ctx) error {
	var req models.SaveMovieRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, &service.ValidationError{Messages: []string{service.MsgMovieIDRequired}})
	}

	entry, err := h.svc.AddToWatchlist(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Movie added to watchlist successfully.",
		"entry":   entry,
	})
}

// SaveToWishlist adds a TMDB movie to the wishlist.
// @Summary Add movie to wishlist
// @Tags lists
// @Accept json
// @Produce json
// @Param body body models.SaveMovieRequest true "TMDB movie ID"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /movies/wishlist [post]
func (h *ListHandler) SaveToWishlist(c fiber.Ctx) error {
	var req models.SaveMovieRequest
	if err := bindJSON(c, &req); err != nil {
		return respondError(c, &service.ValidationError{Messages: []string{service.MsgMovieIDRequired}})
	}

	entry, err := h.svc.AddToWishlist(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Movie added to wishlist successfully.",
		"entry":   entry,
	})
}

// SaveToCuratedList adds a TMDB movie to a curated list.
// @Summary Add movie to curated list
// @Tags lists
// @Accept json
// @Produce json
// @Param body body models.SaveToCuratedListRequest true "TMDB movie ID and curated list ID"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/curated-list [post]
func (h *ListHandler) SaveToCuratedList(c fiber.Ctx) error {
	var req models.SaveToCuratedListRequest
	if err := bindJSON(c, &req); err != nil {
		return invalidBody(c)
	}

	item, added, err := h.svc.AddToCuratedList(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Movie added to curated list items successfully.",
		"added":   added,
		"item":    item,
	})
}
