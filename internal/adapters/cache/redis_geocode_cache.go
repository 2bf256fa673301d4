package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"vedic-chart-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache is a Redis-backed cache mapping geocode query
// strings to coordinates. Entries expire after TTL (0 = no expiry).
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

type redisCoordEntry struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Get fetches cached coordinates for the query.
func (r *RedisGeocodeCache) Get(ctx context.Context, query string) (domain.Coordinates, bool, error) {
	if r.Client == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: redis client is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Coordinates{}, false, nil
	}

	raw, err := r.Client.Get(ctx, redisKeyPrefix+query).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: redis get: %w", err)
	}

	var entry redisCoordEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		// Treat a corrupt entry as a miss; it will be overwritten.
		return domain.Coordinates{}, false, nil
	}

	return domain.Coordinates{Lat: entry.Lat, Lon: entry.Lon}, true, nil
}

// Put stores or replaces the coordinates for a query.
func (r *RedisGeocodeCache) Put(ctx context.Context, query string, coord domain.Coordinates) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return errors.New("insert geocode cache: empty query key")
	}

	raw, err := json.Marshal(redisCoordEntry{Lat: coord.Lat, Lon: coord.Lon})
	if err != nil {
		return fmt.Errorf("insert geocode cache: marshal entry: %w", err)
	}

	if err := r.Client.Set(ctx, redisKeyPrefix+query, raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("insert geocode cache query=%q: redis set: %w", query, err)
	}

	return nil
}
