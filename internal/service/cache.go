package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"movie-curator-service/internal/metrics"
)

// cached returns the JSON value stored under key, or calls fetch and stores
// its result for ttl. A nil client or any Redis failure falls through to fetch.
func cached[T any](ctx context.Context, rdb *redis.Client, key, endpoint string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if rdb != nil {
		if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
			var v T
			if json.Unmarshal(raw, &v) == nil {
				slog.Debug("cache hit", "key", key)
				metrics.CatalogRequests.WithLabelValues(endpoint, "cache_hit").Inc()
				return v, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			slog.Warn("cache read failed", "key", key, "error", err)
		}
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}

	if rdb != nil {
		if data, err := json.Marshal(v); err == nil {
			if err := rdb.Set(ctx, key, data, ttl).Err(); err != nil {
				slog.Error("failed to set cache", "key", key, "error", err)
			}
		}
	}
	return v, nil
}
