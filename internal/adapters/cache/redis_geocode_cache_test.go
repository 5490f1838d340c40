package cache

import (
	"city-distance-service/internal/domain"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	_, client := newTestRedis(t)
	c := NewRedisGeocodeCache(client, time.Hour)
	ctx := context.Background()

	err := c.PutMany(ctx, map[string]domain.Coordinates{
		"paris":  {Lat: 48.8566, Lon: 2.3522},
		"berlin": {Lat: 52.52, Lon: 13.405},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.GetMany(ctx, []string{"paris", "berlin", "paris", "madrid", " "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(got), got)
	}
	if got["paris"] != (domain.Coordinates{Lat: 48.8566, Lon: 2.3522}) {
		t.Errorf("paris = %+v", got["paris"])
	}
	if _, ok := got["madrid"]; ok {
		t.Errorf("madrid should be a miss")
	}
}

func TestRedisGeocodeCacheExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisGeocodeCache(client, time.Minute)
	ctx := context.Background()

	if err := c.PutMany(ctx, map[string]domain.Coordinates{"rome": {Lat: 41.9, Lon: 12.5}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ttl := mr.TTL(redisKeyPrefix + "rome"); ttl != time.Minute {
		t.Errorf("ttl = %v, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)

	got, err := c.GetMany(ctx, []string{"rome"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected expired entry to be gone, got %v", got)
	}
}

func TestRedisGeocodeCacheSkipsCorruptEntries(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisGeocodeCache(client, time.Hour)

	if err := mr.Set(redisKeyPrefix+"oslo", "not-json"); err != nil {
		t.Fatalf("seed miniredis: %v", err)
	}

	got, err := c.GetMany(context.Background(), []string{"oslo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("corrupt entry should be a miss, got %v", got)
	}
}

func TestRedisGeocodeCacheRejectsInvalid(t *testing.T) {
	_, client := newTestRedis(t)
	c := NewRedisGeocodeCache(client, time.Hour)

	err := c.PutMany(context.Background(), map[string]domain.Coordinates{"nowhere": {Lat: 120, Lon: 0}})
	if err == nil {
		t.Fatal("expected error for out-of-range coordinates")
	}
}

func TestRedisGeocodeCacheUnavailable(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewRedisGeocodeCache(client, time.Hour)
	mr.Close()

	if _, err := c.GetMany(context.Background(), []string{"paris"}); err == nil {
		t.Fatal("expected error when redis is down")
	}
}
