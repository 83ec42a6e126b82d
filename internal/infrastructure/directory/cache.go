package directory

import (
	"context"
	"encoding/json"
	"time"

	domain "github.com/mailroom/backend/internal/domain/directory"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedDirectory wraps a CompanyDirectory with a Redis lookup cache. A cache
// failure never fails a search; the wrapper falls through to the inner
// directory and logs.
type CachedDirectory struct {
	inner     domain.CompanyDirectory
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
	logger    *zap.Logger
}

// NewCachedDirectory creates a cached directory with the given TTL. A zero or
// negative TTL disables caching entirely and returns the inner directory.
func NewCachedDirectory(inner domain.CompanyDirectory, client *redis.Client, ttl time.Duration, logger *zap.Logger) domain.CompanyDirectory {
	if ttl <= 0 || client == nil {
		return inner
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedDirectory{
		inner:     inner,
		client:    client,
		ttl:       ttl,
		keyPrefix: "directory:search:",
		logger:    logger,
	}
}

// SearchByName serves search results from Redis when fresh, consulting the
// inner directory on a miss. Only successful lookups are cached, so an outage
// is never masked by a stale empty entry.
func (d *CachedDirectory) SearchByName(ctx context.Context, name string) ([]domain.CustomerRecord, error) {
	key := d.keyPrefix + name

	cached, err := d.client.Get(ctx, key).Result()
	if err == nil {
		var records []domain.CustomerRecord
		if unmarshalErr := json.Unmarshal([]byte(cached), &records); unmarshalErr == nil {
			return records, nil
		}
		d.logger.Warn("Discarding malformed directory cache entry", zap.String("key", key))
	} else if err != redis.Nil {
		d.logger.Warn("Directory cache read failed", zap.String("key", key), zap.Error(err))
	}

	records, err := d.inner.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if data, marshalErr := json.Marshal(records); marshalErr == nil {
		if setErr := d.client.Set(ctx, key, data, d.ttl).Err(); setErr != nil {
			d.logger.Warn("Directory cache write failed", zap.String("key", key), zap.Error(setErr))
		}
	}

	return records, nil
}
