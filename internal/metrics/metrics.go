// Package metrics holds the Prometheus collectors of the movie curator service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogRequests counts TMDB calls by endpoint and outcome (ok, cache_hit, error, breaker_open).
	CatalogRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movie_curator_catalog_requests_total",
		Help: "Catalog API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	// Resolutions counts find-or-create outcomes (found, created).
	Resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movie_curator_resolutions_total",
		Help: "Movie resolutions by outcome.",
	}, []string{"outcome"})

	// ListAttachments counts membership writes by list and result (attached, skipped).
	ListAttachments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "movie_curator_list_attachments_total",
		Help: "Movie list attachments by list and result.",
	}, []string{"list", "result"})
)
