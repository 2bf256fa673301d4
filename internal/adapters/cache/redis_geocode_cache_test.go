package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"vedic-chart-service/internal/domain"
)

func newTestRedisCache(t *testing.T) *RedisGeocodeCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisGeocodeCache(client, time.Hour)
}

func TestRedisCachePutGet(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	coord := domain.Coordinates{Lat: 19.076, Lon: 72.8777}
	if err := c.Put(ctx, "Mumbai, Maharashtra, India", coord); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, hit, err := c.Get(ctx, "Mumbai, Maharashtra, India")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit")
	}
	if got != coord {
		t.Fatalf("coord = %v, want %v", got, coord)
	}
}

func TestRedisCacheMiss(t *testing.T) {
	c := newTestRedisCache(t)

	_, hit, err := c.Get(context.Background(), "Nowhere, Nostate, Nocountry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("expected cache miss")
	}
}

func TestRedisCacheCorruptEntryIsMiss(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	if err := srv.Set(redisKeyPrefix+"Mumbai, India", "not-json"); err != nil {
		t.Fatalf("seed miniredis: %v", err)
	}

	c := NewRedisGeocodeCache(client, 0)

	_, hit, err := c.Get(context.Background(), "Mumbai, India")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit {
		t.Fatal("corrupt entry should read as a miss")
	}
}

func TestRedisCachePutOverwrites(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "Pune, India", domain.Coordinates{Lat: 1, Lon: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := domain.Coordinates{Lat: 18.5204, Lon: 73.8567}
	if err := c.Put(ctx, "Pune, India", updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, hit, err := c.Get(ctx, "Pune, India")
	if err != nil || !hit {
		t.Fatalf("hit=%v err=%v", hit, err)
	}
	if got != updated {
		t.Fatalf("coord = %v, want %v", got, updated)
	}
}
