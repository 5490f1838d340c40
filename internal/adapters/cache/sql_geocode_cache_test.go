package cache

import (
	"city-distance-service/internal/domain"
	"city-distance-service/internal/platform/db"
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

func TestSQLGeocodeCachePostgres(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		t.Fatalf("open postgres: %v", err)
	}
	defer conn.Close()

	if err := InitSchema(ctx, conn, DialectPostgres); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	c := NewSQLGeocodeCache(conn)
	key := fmt.Sprintf("test place %d", time.Now().UnixNano())
	t.Cleanup(func() {
		_, _ = conn.ExecContext(context.Background(), `DELETE FROM geocode_cache WHERE place = $1`, key)
	})

	want := domain.Coordinates{Lat: 10.5, Lon: -20.25}
	if err := c.PutMany(ctx, map[string]domain.Coordinates{key: want}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.GetMany(ctx, []string{key, "definitely missing " + key})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[key] != want {
		t.Errorf("got %v, want {%q: %v}", got, key, want)
	}
}
