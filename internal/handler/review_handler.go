package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"movie-curator-service/internal/models"
)

// ReviewService is what the review handler needs from the service layer.
type ReviewService interface {
	AddReview(ctx context.Context, movieID int, req models.CreateReviewRequest) (*models.Review, error)
	ListReviews(ctx context.Context, movieID int) ([]models.Review, error)
}

// ReviewHandler handles movie reviews.
type ReviewHandler struct {
	svc ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(svc ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// AddReview adds a review to a stored movie.
// @Summary Add review
// @Tags reviews
// @Accept json
// @Produce json
// @Param movieId path int true "Movie ID"
// @Param body body models.CreateReviewRequest true "Review"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/{movieId}/reviews [post]
func (h *ReviewHandler) AddReview(c fiber.Ctx) error {
	movieID, err := strconv.Atoi(c.Params("movieId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	var req models.CreateReviewRequest
	if err := bindJSON(c, &req); err != nil {
		return invalidBody(c)
	}

	review, err := h.svc.AddReview(c.Context(), movieID, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "review created successfully.",
		"review":  review,
	})
}

// ListReviews returns the reviews of a stored movie, newest first.
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param movieId path int true "Movie ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/{movieId}/reviews [get]
func (h *ReviewHandler) ListReviews(c fiber.Ctx) error {
	movieID, err := strconv.Atoi(c.Params("movieId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid movie ID"})
	}

	reviews, err := h.svc.ListReviews(c.Context(), movieID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"movieId": movieID, "reviews": reviews})
}
