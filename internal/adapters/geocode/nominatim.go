package geocode

import (
	"city-distance-service/internal/domain"
	"city-distance-service/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Nominatim returns coordinates as decimal strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimGeocoder implements Geocoder using the OpenStreetMap Nominatim
// search API. The public instance requires an identifying User-Agent.
type NominatimGeocoder struct {
	client  *httpClient
	baseURL string
}

func NewNominatimGeocoder(baseURL, userAgent string, timeout time.Duration) (*NominatimGeocoder, error) {
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	header := http.Header{}
	header.Set("User-Agent", userAgent)

	return &NominatimGeocoder{
		client:  newHTTPClient(timeout, header),
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (n *NominatimGeocoder) Resolve(ctx context.Context, placeName string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Resolve")(&err)

	norm, err := checkPlace(placeName)
	if err != nil {
		return domain.Coordinates{}, err
	}

	q := url.Values{}
	q.Set("q", norm)
	q.Set("format", "json")
	q.Set("limit", "1")

	var decoded []nominatimPlace
	if err := n.client.getJSON(ctx, n.baseURL+"/search", q, &decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim search %q: %w", norm, err)
	}

	if len(decoded) == 0 {
		return domain.Coordinates{}, fmt.Errorf("nominatim search: %w: no results for %q", domain.ErrNotFound, norm)
	}

	lat, err := strconv.ParseFloat(decoded[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim search: %w: parse lat for %q: %w", domain.ErrUpstream, norm, err)
	}
	lon, err := strconv.ParseFloat(decoded[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim search: %w: parse lon for %q: %w", domain.ErrUpstream, norm, err)
	}

	return checkCoordinates(norm, domain.Coordinates{Lat: lat, Lon: lon})
}
