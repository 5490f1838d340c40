package config

import (
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GEOCODER", "NOMINATIM_URL", "GEOCODER_USER_AGENT", "ORS_URL", "ORS_API_KEY",
		"ORS_BOUNDARY_COUNTRY", "GOOGLE_MAPS_API_KEY", "GEOCODE_TIMEOUT", "GEOCODE_CACHE",
		"DB_PATH", "DATABASE_URL", "REDIS_ADDR", "REDIS_PASSWORD", "GEOCODE_CACHE_TTL", "SEED_PATH",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.Geocoder.Provider != GeocoderNominatim {
		t.Errorf("Provider = %q, want %q", cfg.Geocoder.Provider, GeocoderNominatim)
	}
	if cfg.Geocoder.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Geocoder.Timeout)
	}
	if cfg.Cache.Backend != CacheNone {
		t.Errorf("Backend = %q, want %q", cfg.Cache.Backend, CacheNone)
	}
	if cfg.Cache.TTL != 720*time.Hour {
		t.Errorf("TTL = %v, want 720h", cfg.Cache.TTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("GEOCODER", "ORS")
	t.Setenv("ORS_API_KEY", "secret")
	t.Setenv("GEOCODE_TIMEOUT", "3s")
	t.Setenv("GEOCODE_CACHE", "redis")
	t.Setenv("GEOCODE_CACHE_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want 8081", cfg.Port)
	}
	if cfg.Geocoder.Provider != GeocoderORS {
		t.Errorf("Provider = %q, want %q", cfg.Geocoder.Provider, GeocoderORS)
	}
	if cfg.Geocoder.ORSAPIKey != "secret" {
		t.Errorf("ORSAPIKey = %q, want secret", cfg.Geocoder.ORSAPIKey)
	}
	if cfg.Geocoder.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Geocoder.Timeout)
	}
	if cfg.Cache.Backend != CacheRedis || cfg.Cache.TTL != time.Hour {
		t.Errorf("Cache = %+v, want redis with 1h ttl", cfg.Cache)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "unknown geocoder", env: map[string]string{"GEOCODER": "bing"}, wantErr: "unknown GEOCODER"},
		{name: "ors without key", env: map[string]string{"GEOCODER": "ors"}, wantErr: "ORS_API_KEY"},
		{name: "google without key", env: map[string]string{"GEOCODER": "google"}, wantErr: "GOOGLE_MAPS_API_KEY"},
		{name: "postgres without dsn", env: map[string]string{"GEOCODE_CACHE": "postgres"}, wantErr: "DATABASE_URL"},
		{name: "unknown cache", env: map[string]string{"GEOCODE_CACHE": "memcached"}, wantErr: "unknown GEOCODE_CACHE"},
		{name: "bad timeout", env: map[string]string{"GEOCODE_TIMEOUT": "soon"}, wantErr: "GEOCODE_TIMEOUT"},
		{name: "negative timeout", env: map[string]string{"GEOCODE_TIMEOUT": "-1s"}, wantErr: "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
