package geocode

import (
	"city-distance-service/internal/domain"
	"city-distance-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
)

// CachedGeocoder wraps a Geocoder with a persistent GeocodeCache.
//
// Cache failures are logged and never fail a lookup; the cache is an
// optimization only. Not-found results are not cached.
type CachedGeocoder struct {
	next  ports.Geocoder
	cache ports.GeocodeCache
}

func NewCachedGeocoder(next ports.Geocoder, cache ports.GeocodeCache) (*CachedGeocoder, error) {
	if next == nil {
		return nil, errors.New("cached geocoder: inner geocoder is nil")
	}
	if cache == nil {
		return nil, errors.New("cached geocoder: cache is nil")
	}
	return &CachedGeocoder{next: next, cache: cache}, nil
}

func (c *CachedGeocoder) Resolve(ctx context.Context, placeName string) (domain.Coordinates, error) {
	key := domain.PlaceKey(placeName)
	if key == "" {
		return domain.Coordinates{}, fmt.Errorf("%w: place name must be non-empty", domain.ErrValidation)
	}

	hits, err := c.cache.GetMany(ctx, []string{key})
	if err != nil {
		log.Printf("geocode cache read failed: key=%q err=%v", key, err)
	} else if coord, ok := hits[key]; ok {
		return coord, nil
	}

	coord, err := c.next.Resolve(ctx, placeName)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if err := c.cache.PutMany(ctx, map[string]domain.Coordinates{key: coord}); err != nil {
		log.Printf("geocode cache write failed: key=%q err=%v", key, err)
	}

	return coord, nil
}
