package services

import (
	"city-distance-service/internal/domain"
	"city-distance-service/internal/platform/obs"
	"city-distance-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrMissingPlaces is returned (wrapping domain.ErrValidation) when either
// place name is blank.
var ErrMissingPlaces = fmt.Errorf("%w: both fields required", domain.ErrValidation)

// ComputeDistance resolves both place names and returns the great-circle
// distance between them.
//
// Input is validated before any geocoding call. The two lookups run
// concurrently; the first failure cancels the other and is returned wrapped
// in domain.ErrUpstream together with its original cause, so callers can
// still match domain.ErrNotFound.
func ComputeDistance(
	ctx context.Context,
	query domain.DistanceQuery,
	geocoder ports.Geocoder,
) (_ *domain.DistanceResult, err error) {
	source := strings.TrimSpace(query.Source)
	destination := strings.TrimSpace(query.Destination)
	if source == "" || destination == "" {
		return nil, ErrMissingPlaces
	}

	if geocoder == nil {
		return nil, errors.New("compute distance: geocoder is nil")
	}

	defer obs.Time(ctx, "distance.Compute")(&err)

	var srcCoord, dstCoord domain.Coordinates

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := resolve(gctx, geocoder, "source", source)
		if err != nil {
			return err
		}
		srcCoord = c
		return nil
	})
	g.Go(func() error {
		c, err := resolve(gctx, geocoder, "destination", destination)
		if err != nil {
			return err
		}
		dstCoord = c
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compute distance: %w", err)
	}

	km := domain.RoundKm(domain.HaversineKm(srcCoord, dstCoord))

	return domain.NewDistanceResult(km, srcCoord, dstCoord), nil
}

// resolve tags a geocoding failure with its stage and place name for logs.
func resolve(
	ctx context.Context,
	geocoder ports.Geocoder,
	stage string,
	place string,
) (domain.Coordinates, error) {
	c, err := geocoder.Resolve(ctx, place)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			return domain.Coordinates{}, fmt.Errorf("resolve %s %q: %w", stage, place, err)
		}
		return domain.Coordinates{}, fmt.Errorf("resolve %s %q: %w: %w", stage, place, domain.ErrUpstream, err)
	}

	if err := c.Validate(); err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve %s %q: %w: %w", stage, place, domain.ErrUpstream, err)
	}

	return c, nil
}
