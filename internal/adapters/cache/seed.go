package cache

import (
	"city-distance-service/internal/domain"
	"city-distance-service/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type PlaceSeed struct {
	Place string  `json:"place"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Populate the geocode cache with known places from a JSON file.
// Returns the number of entries written.
func SeedFromJSON(ctx context.Context, c ports.GeocodeCache, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed geocode cache: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed geocode cache: parse json: %w", err)
	}

	entries := make(map[string]domain.Coordinates, len(data))
	for i, item := range data {
		if strings.TrimSpace(item.Place) == "" {
			return 0, fmt.Errorf("seed geocode cache: item at index %d: place cannot be empty", i+1)
		}

		coord := domain.Coordinates{Lat: item.Lat, Lon: item.Lng}
		if err := coord.Validate(); err != nil {
			return 0, fmt.Errorf("seed geocode cache: item %q at index %d: %w", item.Place, i+1, err)
		}
		entries[domain.PlaceKey(item.Place)] = coord
	}

	if err := c.PutMany(ctx, entries); err != nil {
		return 0, fmt.Errorf("seed geocode cache: %w", err)
	}

	return len(entries), nil
}
