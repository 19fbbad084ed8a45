package geo

import (
	"math"
	"testing"
)

func TestHaversineM(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		tolerance              float64
	}{
		{
			name: "zero distance",
			lat1: 35.4676, lon1: -97.5164, lat2: 35.4676, lon2: -97.5164,
			expected: 0, tolerance: 0.001,
		},
		{
			name: "one degree of latitude",
			lat1: 0, lon1: 0, lat2: 1, lon2: 0,
			expected: 111194.9, tolerance: 10,
		},
		{
			name: "one degree of longitude at 60N is half as wide",
			lat1: 60, lon1: 0, lat2: 60, lon2: 1,
			expected: 55597.4, tolerance: 30,
		},
		{
			name: "short hop stays under a session window",
			lat1: 35.46760, lon1: -97.51640, lat2: 35.46770, lon2: -97.51640,
			expected: 11.1, tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineM(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("Expected %.1f ± %.1f, got %.1f", tt.expected, tt.tolerance, got)
			}

			back := HaversineM(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
			if math.Abs(got-back) > 1e-9 {
				t.Errorf("Expected symmetric distance, got %.6f vs %.6f", got, back)
			}
		})
	}
}

func TestCentroid(t *testing.T) {
	lat, lon, ok := Centroid([]float64{10, 20, 30}, []float64{-10, -20, -30})
	if !ok {
		t.Fatal("Expected centroid for non-empty set")
	}
	if math.Abs(lat-20) > 1e-9 || math.Abs(lon-(-20)) > 1e-9 {
		t.Errorf("Expected (20, -20), got (%f, %f)", lat, lon)
	}

	if _, _, ok := Centroid(nil, nil); ok {
		t.Error("Expected no centroid for empty set")
	}
}
