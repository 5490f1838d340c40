package geocode

import (
	"city-distance-service/internal/domain"
	"city-distance-service/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type orsGeocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// ORSGeocoder implements Geocoder using OpenRouteService (/geocode/search).
type ORSGeocoder struct {
	client          *httpClient
	baseURL         string
	boundaryCountry string
}

func NewORSGeocoder(apiKey, baseURL, boundaryCountry string, timeout time.Duration) (*ORSGeocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.openrouteservice.org"
	}

	header := http.Header{}
	header.Set("Authorization", apiKey)

	return &ORSGeocoder{
		client:          newHTTPClient(timeout, header),
		baseURL:         strings.TrimRight(baseURL, "/"),
		boundaryCountry: boundaryCountry,
	}, nil
}

// Resolve asks ORS for the single best feature; GeoJSON order is [lon, lat].
func (o *ORSGeocoder) Resolve(ctx context.Context, placeName string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Resolve")(&err)

	norm, err := checkPlace(placeName)
	if err != nil {
		return domain.Coordinates{}, err
	}

	q := url.Values{}
	q.Set("text", norm)
	q.Set("size", "1")
	if o.boundaryCountry != "" {
		q.Set("boundary.country", o.boundaryCountry)
	}

	var decoded orsGeocodeResponse
	if err := o.client.getJSON(ctx, o.baseURL+"/geocode/search", q, &decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("ors geocode %q: %w", norm, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("ors geocode: %w: no results for %q", domain.ErrNotFound, norm)
	}

	coords := decoded.Features[0].Geometry.Coordinates
	if len(coords) != 2 {
		return domain.Coordinates{}, fmt.Errorf("ors geocode: %w: invalid coordinate format for %q", domain.ErrUpstream, norm)
	}

	return checkCoordinates(norm, domain.Coordinates{Lon: coords[0], Lat: coords[1]})
}
