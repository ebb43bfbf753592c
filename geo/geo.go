// Package geo holds the coordinate type shared by the catalog and the
// search core, and great-circle distance over it.
package geo

import "math"

const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate in degrees. Callers pass *Point and use nil
// for "no location", so 0.0 is a legal latitude or longitude.
type Point struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

func NewPoint(lat, lon float64) *Point {
	return &Point{Lat: lat, Lon: lon}
}

func (p *Point) Valid() bool {
	if p == nil {
		return false
	}
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// DistanceKm returns the Haversine distance between a and b. ok is false
// when either point is missing or invalid, or the computation is not finite.
func DistanceKm(a, b *Point) (km float64, ok bool) {
	if !a.Valid() || !b.Valid() {
		return 0, false
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// round-off can push h a hair past 1
	h = math.Min(1, math.Max(0, h))

	km = 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
	if math.IsNaN(km) || math.IsInf(km, 0) {
		return 0, false
	}
	return km, true
}

// Round2 rounds to two decimals, the precision distances are reported at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
