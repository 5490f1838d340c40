package ports

import (
	"city-distance-service/internal/domain"
	"context"
)

// Contract for resolving a free-text place name to coordinates.
type Geocoder interface {
	// Return the best-match coordinates for placeName.
	// Fails with domain.ErrNotFound when nothing matches and domain.ErrUpstream
	// when the lookup itself fails.
	Resolve(ctx context.Context, placeName string) (domain.Coordinates, error)
}
