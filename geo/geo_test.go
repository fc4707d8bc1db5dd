package geo

import "testing"

func TestDistance_KnownPair(t *testing.T) {
	// ~0.02 degree offset at NYC latitude.
	a := Point{Lat: 40.7128, Lng: -74.0060}
	b := Point{Lat: 40.7328, Lng: -73.9860}

	if got := Distance(a, b); got != 2.8 {
		t.Fatalf("expected 2.8 km, got %v", got)
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := []struct {
		a, b Point
	}{
		{Point{40.7128, -74.0060}, Point{40.7428, -73.9960}},
		{Point{51.5074, -0.1278}, Point{48.8566, 2.3522}},
		{Point{-33.8688, 151.2093}, Point{35.6762, 139.6503}},
		{Point{0, 0}, Point{0, 180}},
	}

	for _, p := range pairs {
		ab := Distance(p.a, p.b)
		ba := Distance(p.b, p.a)
		if ab != ba {
			t.Errorf("distance not symmetric: %v vs %v for %+v", ab, ba, p)
		}
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	points := []Point{
		{0, 0},
		{40.7128, -74.0060},
		{-90, 0},
		{90, 180},
	}

	for _, p := range points {
		if got := Distance(p, p); got != 0 {
			t.Errorf("expected 0 for identical points %+v, got %v", p, got)
		}
	}
}

func TestDistance_RoundedToOneDecimal(t *testing.T) {
	a := Point{Lat: 40.7128, Lng: -74.0060}
	b := Point{Lat: 40.7428, Lng: -73.9960}

	d := Distance(a, b)
	if d*10 != float64(int64(d*10)) {
		t.Fatalf("expected one decimal place, got %v", d)
	}
}
