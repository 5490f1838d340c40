package domain

import (
	"math"
	"testing"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Coordinates
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         Coordinates{Lat: 48.8566, Lon: 2.3522},
			b:         Coordinates{Lat: 48.8566, Lon: 2.3522},
			wantKm:    0,
			tolerance: 0.0001,
		},
		{
			name:      "one degree of longitude on the equator",
			a:         Coordinates{Lat: 0, Lon: 0},
			b:         Coordinates{Lat: 0, Lon: 1},
			wantKm:    111.19,
			tolerance: 0.005,
		},
		{
			name:      "New York to Los Angeles (~3936km)",
			a:         Coordinates{Lat: 40.7128, Lon: -74.0060},
			b:         Coordinates{Lat: 34.0522, Lon: -118.2437},
			wantKm:    3936,
			tolerance: 10,
		},
		{
			name:      "antipodal points",
			a:         Coordinates{Lat: 0, Lon: 0},
			b:         Coordinates{Lat: 0, Lon: 180},
			wantKm:    math.Pi * EarthRadiusKm,
			tolerance: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("HaversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := Coordinates{Lat: 28.6139, Lon: 77.2090}
	b := Coordinates{Lat: 19.0760, Lon: 72.8777}

	if d1, d2 := HaversineKm(a, b), HaversineKm(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

func TestRoundKm(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 111.19492664455873, want: 111.19},
		{in: 0.004, want: 0},
		{in: 0.005, want: 0.01},
		{in: 1234.5678, want: 1234.57},
		{in: 0, want: 0},
	}

	for _, tt := range tests {
		if got := RoundKm(tt.in); got != tt.want {
			t.Errorf("RoundKm(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundKm_NoNegativeZero(t *testing.T) {
	if got := RoundKm(-0.001); math.Signbit(got) {
		t.Errorf("RoundKm(-0.001) = %v, want positive zero", got)
	}
}

func TestCoordinatesValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Coordinates
		wantErr bool
	}{
		{name: "origin", c: Coordinates{}, wantErr: false},
		{name: "corners", c: Coordinates{Lat: -90, Lon: 180}, wantErr: false},
		{name: "lat too high", c: Coordinates{Lat: 90.01, Lon: 0}, wantErr: true},
		{name: "lon too low", c: Coordinates{Lat: 0, Lon: -180.5}, wantErr: true},
		{name: "nan", c: Coordinates{Lat: math.NaN(), Lon: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewDistanceResultRouteOrder(t *testing.T) {
	src := Coordinates{Lat: 1, Lon: 2}
	dst := Coordinates{Lat: 3, Lon: 4}

	res := NewDistanceResult(12.34, src, dst)

	if len(res.Route) != 2 {
		t.Fatalf("route length = %d, want 2", len(res.Route))
	}
	if res.Route[0] != src || res.Route[1] != dst {
		t.Errorf("route = %v, want [%v %v]", res.Route, src, dst)
	}
}
