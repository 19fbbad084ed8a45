// Package geo has the small amount of spherical geometry the clustering and
// scoring passes need.
package geo

import "math"

// earthRadiusM is the mean Earth radius used by the haversine formula.
const earthRadiusM = 6371000.0

// HaversineM returns the great-circle distance in meters between two
// coordinates in decimal degrees.
func HaversineM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusM * c
}

// Centroid returns the mean of a set of coordinates. The bool is false for an
// empty set.
func Centroid(lats, lons []float64) (float64, float64, bool) {
	if len(lats) == 0 || len(lons) == 0 {
		return 0, 0, false
	}
	var latSum, lonSum float64
	for _, v := range lats {
		latSum += v
	}
	for _, v := range lons {
		lonSum += v
	}
	return latSum / float64(len(lats)), lonSum / float64(len(lons)), true
}
