package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-curator-service/internal/service"
	"movie-curator-service/internal/tmdb"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists every failed input check.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse acknowledges a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps service errors onto HTTP statuses.
func respondError(c fiber.Ctx, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(ValidationErrorResponse{Errors: verr.Messages})
	}

	switch {
	case errors.Is(err, service.ErrNoMoviesFound),
		errors.Is(err, service.ErrMovieNotFound),
		errors.Is(err, service.ErrCuratedListNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	}

	// TMDB's own messages for a bad key or unknown resource are passed through.
	var apiErr *tmdb.APIError
	if errors.As(err, &apiErr) &&
		(apiErr.StatusCode == fiber.StatusUnauthorized || apiErr.StatusCode == fiber.StatusNotFound) {
		return c.Status(apiErr.StatusCode).JSON(ErrorResponse{Error: apiErr.Message})
	}

	slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
}

// bindJSON decodes the request body into out. An empty body leaves out at its
// zero value so the service reports the missing fields.
func bindJSON(c fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.Bind().JSON(out)
}

func invalidBody(c fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
}
