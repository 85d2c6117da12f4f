package costkernel

import (
	"math"
	"testing"

	"logistics/pkg/domain"
)

func TestHaversine_SamePoint(t *testing.T) {
	p := domain.Coordinates{Lat: 40.7, Lng: -74.0}
	if d := Haversine(p, p); math.Abs(d) > 1e-6 {
		t.Errorf("Haversine(p, p) = %v, want 0", d)
	}
}

func TestHaversine_KnownDistance(t *testing.T) {
	ny := domain.Coordinates{Lat: 40.7128, Lng: -74.0060}
	la := domain.Coordinates{Lat: 34.0522, Lng: -118.2437}

	d := Haversine(ny, la)
	// NY-LA great circle distance is approximately 3935 km.
	if d < 3800 || d > 4100 {
		t.Errorf("Haversine(ny, la) = %v, want ~3935 km", d)
	}
}

func TestHeuristic_ZeroWeights(t *testing.T) {
	ny := domain.Coordinates{Lat: 40.7, Lng: -74.0}
	la := domain.Coordinates{Lat: 34.0, Lng: -118.2}

	if h := Heuristic(ny, la, Weights{}); h != 0 {
		t.Errorf("Heuristic with zero weights = %v, want 0", h)
	}
}

func TestHeuristic_NonZeroWeights(t *testing.T) {
	ny := domain.Coordinates{Lat: 40.7, Lng: -74.0}
	la := domain.Coordinates{Lat: 34.0, Lng: -118.2}

	h := Heuristic(ny, la, Weights{Cost: 1})
	if h <= 0 {
		t.Errorf("Heuristic with non-zero weight = %v, want > 0", h)
	}
}
