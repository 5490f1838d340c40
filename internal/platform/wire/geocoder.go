package wire

import (
	"city-distance-service/internal/adapters/cache"
	"city-distance-service/internal/adapters/geocode"
	"city-distance-service/internal/config"
	"city-distance-service/internal/platform/db"
	"city-distance-service/internal/ports"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewProvider builds the geocoding provider selected by cfg.Provider.
func NewProvider(cfg config.GeocoderConfig) (ports.Geocoder, error) {
	switch cfg.Provider {
	case config.GeocoderNominatim:
		return geocode.NewNominatimGeocoder(cfg.NominatimURL, cfg.UserAgent, cfg.Timeout)
	case config.GeocoderORS:
		return geocode.NewORSGeocoder(cfg.ORSAPIKey, cfg.ORSURL, cfg.BoundaryCountry, cfg.Timeout)
	case config.GeocoderGoogle:
		return geocode.NewGoogleGeocoder(cfg.GoogleAPIKey, "", cfg.Timeout)
	default:
		return nil, fmt.Errorf("wire: unknown geocoder %q", cfg.Provider)
	}
}

// NewCache opens the cache backend selected by cfg.Backend and ensures its
// schema exists. It returns (nil, nil, nil) for the "none" backend. The
// returned closer releases the underlying connection.
func NewCache(ctx context.Context, cfg config.CacheConfig) (ports.GeocodeCache, io.Closer, error) {
	switch cfg.Backend {
	case config.CacheNone, "":
		return nil, nil, nil

	case config.CacheSqlite:
		conn, err := db.OpenSqlite(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(ctx, conn, cache.DialectSqlite); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return cache.NewSqliteGeocodeCache(conn), conn, nil

	case config.CachePostgres:
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := cache.InitSchema(ctx, conn, cache.DialectPostgres); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return cache.NewSQLGeocodeCache(conn), conn, nil

	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("wire: ping redis at %s: %w", cfg.RedisAddr, err)
		}
		return cache.NewRedisGeocodeCache(client, cfg.TTL), client, nil

	default:
		return nil, nil, fmt.Errorf("wire: unknown cache backend %q", cfg.Backend)
	}
}

// NewGeocoder composes the configured provider with the optional cache.
// The returned closer is never nil.
func NewGeocoder(ctx context.Context, cfg config.Config) (ports.Geocoder, io.Closer, error) {
	provider, err := NewProvider(cfg.Geocoder)
	if err != nil {
		return nil, nil, err
	}

	c, closer, err := NewCache(ctx, cfg.Cache)
	if err != nil {
		return nil, nil, fmt.Errorf("wire: geocode cache: %w", err)
	}
	if c == nil {
		log.Printf("geocoder=%s cache=none", cfg.Geocoder.Provider)
		return provider, nopCloser{}, nil
	}

	cached, err := geocode.NewCachedGeocoder(provider, c)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}

	log.Printf("geocoder=%s cache=%s", cfg.Geocoder.Provider, cfg.Cache.Backend)
	return cached, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
