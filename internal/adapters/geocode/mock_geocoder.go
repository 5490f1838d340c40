package geocode

import (
	"city-distance-service/internal/domain"
	"context"
	"fmt"
	"sync/atomic"
)

type MockPlace struct {
	Name     string
	Lat, Lon float64
}

// MockGeocoder resolves from a fixed table. Unknown names are reported as
// domain.ErrNotFound and names listed in Failing as domain.ErrUpstream.
type MockGeocoder struct {
	m       map[string]domain.Coordinates
	Failing map[string]bool
	calls   atomic.Int64
}

func NewMockGeocoder(places []MockPlace) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(places))
	for _, p := range places {
		m[domain.PlaceKey(p.Name)] = domain.Coordinates{Lat: p.Lat, Lon: p.Lon}
	}
	return &MockGeocoder{m: m, Failing: map[string]bool{}}
}

func (g *MockGeocoder) Resolve(ctx context.Context, placeName string) (domain.Coordinates, error) {
	g.calls.Add(1)

	if err := ctx.Err(); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	key := domain.PlaceKey(placeName)
	if g.Failing[key] {
		return domain.Coordinates{}, fmt.Errorf("%w: mock failure for %q", domain.ErrUpstream, placeName)
	}

	c, ok := g.m[key]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%w: missing place %q", domain.ErrNotFound, placeName)
	}
	return c, nil
}

// Calls reports how many times Resolve has been invoked.
func (g *MockGeocoder) Calls() int64 { return g.calls.Load() }
