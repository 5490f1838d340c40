package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Supported GEOCODER values.
const (
	GeocoderNominatim = "nominatim"
	GeocoderORS       = "ors"
	GeocoderGoogle    = "google"
)

// Supported GEOCODE_CACHE values.
const (
	CacheNone     = "none"
	CacheSqlite   = "sqlite"
	CachePostgres = "postgres"
	CacheRedis    = "redis"
)

type GeocoderConfig struct {
	Provider        string
	Timeout         time.Duration
	NominatimURL    string
	UserAgent       string
	ORSURL          string
	ORSAPIKey       string
	BoundaryCountry string
	GoogleAPIKey    string
}

type CacheConfig struct {
	Backend       string
	DBPath        string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	TTL           time.Duration
	SeedPath      string
}

// Config is the process configuration read from the environment.
type Config struct {
	Port     string
	Geocoder GeocoderConfig
	Cache    CacheConfig
}

// Load reads configuration from environment variables, applying defaults,
// and validates provider/backend selection and their required settings.
func Load() (Config, error) {
	var cfg Config
	var err error

	cfg.Port = Get("PORT", "5000")

	cfg.Geocoder.Provider = strings.ToLower(Get("GEOCODER", GeocoderNominatim))
	cfg.Geocoder.NominatimURL = Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	cfg.Geocoder.UserAgent = Get("GEOCODER_USER_AGENT", "city-distance-service/1.0")
	cfg.Geocoder.ORSURL = Get("ORS_URL", "https://api.openrouteservice.org")
	cfg.Geocoder.ORSAPIKey = strings.TrimSpace(os.Getenv("ORS_API_KEY"))
	cfg.Geocoder.BoundaryCountry = strings.TrimSpace(os.Getenv("ORS_BOUNDARY_COUNTRY"))
	cfg.Geocoder.GoogleAPIKey = strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY"))
	if cfg.Geocoder.Timeout, err = GetDuration("GEOCODE_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	cfg.Cache.Backend = strings.ToLower(Get("GEOCODE_CACHE", CacheNone))
	cfg.Cache.DBPath = Get("DB_PATH", "data/app.db")
	cfg.Cache.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.Cache.RedisAddr = Get("REDIS_ADDR", "localhost:6379")
	cfg.Cache.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.Cache.SeedPath = Get("SEED_PATH", "data/seeds/places.json")
	if cfg.Cache.TTL, err = GetDuration("GEOCODE_CACHE_TTL", 30*24*time.Hour); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Geocoder.Provider {
	case GeocoderNominatim:
		if strings.TrimSpace(c.Geocoder.UserAgent) == "" {
			return errors.New("config: GEOCODER_USER_AGENT is required for nominatim")
		}
	case GeocoderORS:
		if c.Geocoder.ORSAPIKey == "" {
			return errors.New("config: ORS_API_KEY is required when GEOCODER=ors")
		}
	case GeocoderGoogle:
		if c.Geocoder.GoogleAPIKey == "" {
			return errors.New("config: GOOGLE_MAPS_API_KEY is required when GEOCODER=google")
		}
	default:
		return fmt.Errorf("config: unknown GEOCODER %q", c.Geocoder.Provider)
	}

	if c.Geocoder.Timeout <= 0 {
		return errors.New("config: GEOCODE_TIMEOUT must be positive")
	}

	switch c.Cache.Backend {
	case CacheNone, CacheSqlite, CacheRedis:
	case CachePostgres:
		if c.Cache.DatabaseURL == "" {
			return errors.New("config: DATABASE_URL is required when GEOCODE_CACHE=postgres")
		}
	default:
		return fmt.Errorf("config: unknown GEOCODE_CACHE %q", c.Cache.Backend)
	}

	return nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, v, err)
	}
	return d, nil
}
