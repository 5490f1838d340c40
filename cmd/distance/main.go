// Command distance computes the straight-line distance between two places
// from the terminal, using the same geocoder configuration as the server.
package main

import (
	"city-distance-service/internal/adapters/cache"
	"city-distance-service/internal/adapters/geocode"
	"city-distance-service/internal/api/dto"
	"city-distance-service/internal/config"
	"city-distance-service/internal/domain"
	"city-distance-service/internal/platform/wire"
	"city-distance-service/internal/ports"
	"city-distance-service/internal/services"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	from := flag.String("from", "", "source place name")
	to := flag.String("to", "", "destination place name")
	asJSON := flag.Bool("json", false, "print the result as JSON")
	offline := flag.Bool("offline", false, "resolve only places present in SEED_PATH, without network calls")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
	log.SetOutput(io.Discard)

	if err := run(*from, *to, *asJSON, *offline); err != nil {
		fmt.Fprintln(os.Stderr, "distance:", err)
		if errors.Is(err, domain.ErrValidation) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(from, to string, asJSON, offline bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.Geocoder.Timeout+5*time.Second)
	defer cancel()

	var geocoder ports.Geocoder
	if offline {
		geocoder, err = seededGeocoder(cfg.Cache.SeedPath)
		if err != nil {
			return err
		}
	} else {
		g, closer, err := wire.NewGeocoder(ctx, cfg)
		if err != nil {
			return err
		}
		defer closer.Close()
		geocoder = g
	}

	res, err := services.ComputeDistance(ctx, domain.DistanceQuery{Source: from, Destination: to}, geocoder)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewDistanceResponse(res))
	}

	fmt.Printf("%s (%.4f, %.4f) -> %s (%.4f, %.4f): %.2f km\n",
		from, res.Source.Lat, res.Source.Lon,
		to, res.Destination.Lat, res.Destination.Lon,
		res.DistanceKm)
	return nil
}

// seededGeocoder serves lookups from the seed file used by dbtool.
func seededGeocoder(path string) (ports.Geocoder, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %q: %w", path, err)
	}

	var seeds []cache.PlaceSeed
	if err := json.Unmarshal(b, &seeds); err != nil {
		return nil, fmt.Errorf("parse seed file %q: %w", path, err)
	}

	places := make([]geocode.MockPlace, 0, len(seeds))
	for _, s := range seeds {
		places = append(places, geocode.MockPlace{Name: s.Place, Lat: s.Lat, Lon: s.Lng})
	}
	return geocode.NewMockGeocoder(places), nil
}
