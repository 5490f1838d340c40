package domain

// A request to measure the straight-line distance between two named places.
// Neither field is persisted.
type DistanceQuery struct {
	Source      string
	Destination string
}

// Represents the outcome of a distance computation.
// Route is always exactly [Source, Destination], in that order; it is the pair
// of endpoints to draw, not a computed path.
type DistanceResult struct {
	DistanceKm  float64
	Source      Coordinates
	Destination Coordinates
	Route       []Coordinates
}

func NewDistanceResult(km float64, src, dst Coordinates) *DistanceResult {
	return &DistanceResult{
		DistanceKm:  km,
		Source:      src,
		Destination: dst,
		Route:       []Coordinates{src, dst},
	}
}
