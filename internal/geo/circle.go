package geo

import (
	"math"

	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"
)

// DefaultCircleSteps is the ring resolution used for alert-radius previews.
const DefaultCircleSteps = 64

// CirclePolygon approximates a circle of radiusKm around center as a closed
// ring of steps+1 GeoJSON positions (first == last). Longitude extent is
// stretched by 1/cos(lat) so the ring stays circular away from the equator.
// steps <= 0 falls back to DefaultCircleSteps. radiusKm <= 0 returns
// e.ErrInvalidRadius.
func CirclePolygon(center Point, radiusKm float64, steps int) ([]Position, error) {
	if radiusKm <= 0 {
		return nil, e.Wrap("geo.CirclePolygon", e.ErrInvalidRadius)
	}
	if steps <= 0 {
		steps = DefaultCircleSteps
	}

	// 1 degree of latitude is ~111.32 km everywhere; longitude compresses
	// toward the poles.
	latRadiusDeg := radiusKm / 111.32
	lonRadiusDeg := latRadiusDeg / math.Cos(deg2rad(center.Lat))

	ring := make([]Position, 0, steps+1)
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		lon := center.Lon + lonRadiusDeg*math.Cos(angle)
		lat := center.Lat + latRadiusDeg*math.Sin(angle)
		ring = append(ring, Position{lon, lat})
	}
	ring = append(ring, ring[0])

	return ring, nil
}
