package main

import (
	"city-distance-service/internal/adapters/cache"
	"city-distance-service/internal/config"
	"city-distance-service/internal/platform/wire"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const usage = `usage: dbtool <command>

commands:
  init   create the geocode cache schema for GEOCODE_CACHE (sqlite or postgres)
  seed   create the schema and load SEED_PATH into the geocode cache`

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Cache.Backend == config.CacheNone {
		log.Fatal("GEOCODE_CACHE is none; set it to sqlite, postgres or redis")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	switch os.Args[1] {
	case "init":
		err = initSchema(ctx, cfg.Cache)
	case "seed":
		err = initAndSeed(ctx, cfg.Cache)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// NewCache creates the schema as part of opening the backend.
func initSchema(ctx context.Context, cfg config.CacheConfig) error {
	log.Printf("Initializing %s geocode cache schema...", cfg.Backend)
	_, closer, err := wire.NewCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	defer closer.Close()
	log.Println("Schema ready.")

	return nil
}

func initAndSeed(ctx context.Context, cfg config.CacheConfig) error {
	c, closer, err := wire.NewCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	defer closer.Close()
	log.Println("Schema ready.")

	log.Printf("Seeding geocode cache from %s...", cfg.SeedPath)
	n, err := cache.SeedFromJSON(ctx, c, cfg.SeedPath)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Printf("Seeding complete. entries=%d", n)

	return nil
}
