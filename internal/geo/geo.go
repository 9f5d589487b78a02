package geo

import (
	"math"
)

// EarthRadiusKm is the mean Earth radius used for all great-circle math.
const EarthRadiusKm = 6371.0

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the point lies in the lat [-90,90], lon [-180,180]
// ranges. Upstream data is not validated, so callers check defensively.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Position is a GeoJSON position: longitude first, then latitude.
type Position [2]float64

func (p Position) Lon() float64 { return p[0] }
func (p Position) Lat() float64 { return p[1] }

// Point converts a GeoJSON position back to a lat/lon point.
func (p Position) Point() Point {
	return Point{Lat: p[1], Lon: p[0]}
}

// HaversineKm computes the great-circle distance between two points in
// kilometers. Identical points yield 0.
func HaversineKm(a, b Point) float64 {
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return 0
	}

	lat1 := deg2rad(a.Lat)
	lat2 := deg2rad(b.Lat)
	dLat := deg2rad(b.Lat - a.Lat)
	dLon := deg2rad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// DistanceToSegmentKm returns the distance from p to the great-circle segment
// between a and b, in kilometers. Uses the cross-track formula with an
// along-track bound so points beyond either endpoint fall back to the endpoint
// distance. Adequate for the short segments of decoded route geometry.
func DistanceToSegmentKm(p, a, b Point) float64 {
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return HaversineKm(p, a)
	}

	distToA := HaversineKm(p, a)
	distToB := HaversineKm(p, b)
	segLen := HaversineKm(a, b)

	// Degenerate segment, under a meter.
	if segLen < 0.001 {
		return math.Min(distToA, distToB)
	}

	lat1 := deg2rad(a.Lat)
	lon1 := deg2rad(a.Lon)
	lat2 := deg2rad(b.Lat)
	lon2 := deg2rad(b.Lon)
	lat3 := deg2rad(p.Lat)
	lon3 := deg2rad(p.Lon)

	d13 := distToA / EarthRadiusKm

	y := math.Sin(lon2-lon1) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lon2-lon1)
	bearingAB := math.Atan2(y, x)

	y = math.Sin(lon3-lon1) * math.Cos(lat3)
	x = math.Cos(lat1)*math.Sin(lat3) - math.Sin(lat1)*math.Cos(lat3)*math.Cos(lon3-lon1)
	bearingAP := math.Atan2(y, x)

	dxt := math.Asin(math.Sin(d13) * math.Sin(bearingAP-bearingAB))
	crossTrack := math.Abs(dxt) * EarthRadiusKm

	dat := math.Acos(math.Cos(d13) / math.Cos(dxt))
	alongTrack := dat * EarthRadiusKm

	if alongTrack > segLen {
		return distToB
	}
	if math.Cos(bearingAP-bearingAB) < 0 {
		// Projection falls behind the segment start.
		return distToA
	}
	return crossTrack
}

// MinDistanceToPathKm returns the minimum distance from p to a path given as
// GeoJSON positions. An empty path yields +Inf, a single position the plain
// point distance.
func MinDistanceToPathKm(p Point, path []Position) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}
	if len(path) == 1 {
		return HaversineKm(p, path[0].Point())
	}

	min := math.Inf(1)
	for i := 0; i < len(path)-1; i++ {
		d := DistanceToSegmentKm(p, path[i].Point(), path[i+1].Point())
		if d < min {
			min = d
		}
	}
	return min
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
