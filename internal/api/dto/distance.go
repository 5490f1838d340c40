package dto

import (
	"city-distance-service/internal/domain"
	"strconv"
)

// Pointers distinguish a missing field from an empty one; both are rejected.
type DistanceRequest struct {
	Source      *string `json:"source"`
	Destination *string `json:"destination"`
}

type CoordsResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance is a fixed two-decimal string ("0.00" for identical points).
type DistanceResponse struct {
	Distance          string           `json:"distance"`
	SourceCoords      CoordsResponse   `json:"sourceCoords"`
	DestinationCoords CoordsResponse   `json:"destinationCoords"`
	Route             []CoordsResponse `json:"route"`
}

func NewDistanceResponse(res *domain.DistanceResult) DistanceResponse {
	route := make([]CoordsResponse, 0, len(res.Route))
	for _, c := range res.Route {
		route = append(route, toCoords(c))
	}

	return DistanceResponse{
		Distance:          strconv.FormatFloat(res.DistanceKm, 'f', 2, 64),
		SourceCoords:      toCoords(res.Source),
		DestinationCoords: toCoords(res.Destination),
		Route:             route,
	}
}

func toCoords(c domain.Coordinates) CoordsResponse {
	return CoordsResponse{Lat: c.Lat, Lng: c.Lon}
}
