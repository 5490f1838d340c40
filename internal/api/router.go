package api

import (
	"city-distance-service/internal/api/handlers"
	"city-distance-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(geocoder ports.Geocoder) http.Handler {
	mux := http.NewServeMux()

	distanceHandler := &handlers.DistanceHandler{Geocoder: geocoder}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/calculate-distance", distanceHandler.Calculate)

	return requestIDMiddleware(loggingMiddleware(mux))
}
