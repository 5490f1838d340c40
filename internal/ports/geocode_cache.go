package ports

import (
	"city-distance-service/internal/domain"
	"context"
)

// Port: storage for previously resolved place names.
// Keys are expected to be normalized by the caller.
type GeocodeCache interface {
	// Return cached coordinates for the given keys; misses are simply absent.
	GetMany(ctx context.Context, keys []string) (map[string]domain.Coordinates, error)
	// Store key -> coordinate mappings, overwriting existing entries.
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
