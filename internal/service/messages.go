package service

import (
	"movie-curator-service/internal/models"
	"movie-curator-service/internal/validation"
)

// Validation messages returned to API clients.
const (
	MsgQueryRequired         = "query parameter is required."
	MsgNameRequired          = "name is required."
	MsgDescriptionRequired   = "description is required"
	MsgIDRequired            = "id is required."
	MsgEmptyBody             = "request body is empty."
	MsgMovieIDRequired       = "movieId is required in request body and should be a number."
	MsgCuratedListIDRequired = "curatedListId is required and should be a number."
	MsgRatingInvalid         = "rating is required must be a float between 0 and 10."
	MsgReviewTextInvalid     = "reviewText is required and should have maximum 500 characters."
	MsgListInvalid           = "list query param is required and must be watchlist, wishlist or curatedlist."
	MsgSortByInvalid         = "sortBy query param is required and must be either rating or releaseYear."
	MsgOrderInvalid          = "order query param is required and must be either ASC or DESC."
)

var (
	createCuratedListMessages = map[string]string{
		"Name":        MsgNameRequired,
		"Description": MsgDescriptionRequired,
	}
	saveMovieMessages = map[string]string{
		"MovieID": MsgMovieIDRequired,
	}
	saveToCuratedListMessages = map[string]string{
		"MovieID":       MsgMovieIDRequired,
		"CuratedListID": MsgCuratedListIDRequired,
	}
	reviewMessages = map[string]string{
		"Rating":     MsgRatingInvalid,
		"ReviewText": MsgReviewTextInvalid,
	}
	sortMessages = map[string]string{
		"List":   MsgListInvalid,
		"SortBy": MsgSortByInvalid,
		"Order":  MsgOrderInvalid,
	}
)

func validate(v any, messages map[string]string) error {
	return newValidationError(validation.Messages(v, messages)...)
}

func validateUpdateCuratedList(id int, req models.UpdateCuratedListRequest) error {
	var msgs []string
	if id <= 0 {
		msgs = append(msgs, MsgIDRequired)
	}
	if req.Empty() {
		msgs = append(msgs, MsgEmptyBody)
	}
	return newValidationError(msgs...)
}
