package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"movie-curator-service/internal/service"
)

// Stores embedding a nil interface panic when called; recover turns that
// into a 500, so these tests fail if validation lets a request through.
type untouchedListStore struct{ service.ListStore }
type untouchedResolver struct{ service.MovieResolver }
type untouchedReviewStore struct{ service.ReviewStore }
type untouchedLookup struct{ service.MovieLookup }

func TestEmptyBodyReportsFieldMessages(t *testing.T) {
	app := NewApp()
	RegisterRoutes(app,
		NewMovieHandler(&stubMovies{}),
		NewListHandler(service.NewListService(untouchedListStore{}, untouchedResolver{})),
		NewReviewHandler(service.NewReviewService(untouchedReviewStore{}, untouchedLookup{})),
	)

	tests := []struct {
		method string
		path   string
		want   []string
	}{
		{http.MethodPost, "/curated-lists", []string{service.MsgNameRequired, service.MsgDescriptionRequired}},
		{http.MethodPut, "/curated-lists/3", []string{service.MsgEmptyBody}},
		{http.MethodPost, "/movies/watchlist", []string{service.MsgMovieIDRequired}},
		{http.MethodPost, "/movies/wishlist", []string{service.MsgMovieIDRequired}},
		{http.MethodPost, "/movies/curated-list", []string{service.MsgMovieIDRequired, service.MsgCuratedListIDRequired}},
		{http.MethodPost, "/movies/1/reviews", []string{service.MsgRatingInvalid, service.MsgReviewTextInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			if err != nil {
				t.Fatalf("app.Test error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			raw, _ := io.ReadAll(resp.Body)
			var body ValidationErrorResponse
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("decoding %s: %v", raw, err)
			}
			if !reflect.DeepEqual(body.Errors, tt.want) {
				t.Errorf("errors = %q, want %q", body.Errors, tt.want)
			}
		})
	}
}
