package geocode

import (
	"city-distance-service/internal/domain"
	"city-distance-service/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"googlemaps.github.io/maps"
)

// GoogleGeocoder implements Geocoder using the Google Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a geocoder for the given API key. baseURL is only
// overridden in tests; pass "" for the public endpoint.
func NewGoogleGeocoder(apiKey, baseURL string, timeout time.Duration) (*GoogleGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google maps api key is empty")
	}

	opts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" {
		opts = append(opts, maps.WithBaseURL(strings.TrimRight(baseURL, "/")))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

// Resolve returns the first geocoding result. The maps client reports
// ZERO_RESULTS as an empty slice and every other non-OK status as an error.
func (g *GoogleGeocoder) Resolve(ctx context.Context, placeName string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "google.Resolve")(&err)

	norm, err := checkPlace(placeName)
	if err != nil {
		return domain.Coordinates{}, err
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: norm})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("google geocode %q: %w: maps api error: %w", norm, domain.ErrUpstream, err)
	}

	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("google geocode: %w: no results for %q", domain.ErrNotFound, norm)
	}

	loc := results[0].Geometry.Location
	return checkCoordinates(norm, domain.Coordinates{Lat: loc.Lat, Lon: loc.Lng})
}
