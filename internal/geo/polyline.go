package geo

import (
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"
	"github.com/twpayne/go-polyline"
)

// DecodePolyline decodes a Google encoded polyline (5-decimal precision) into
// GeoJSON positions, longitude first. The routing provider sends geometry in
// this format; the map renderer consumes GeoJSON, hence the ordering flip.
// An empty string decodes to an empty sequence. Malformed or truncated input
// returns e.ErrMalformedPolyline; decoding never loops on bad bytes.
func DecodePolyline(encoded string) ([]Position, error) {
	if encoded == "" {
		return []Position{}, nil
	}

	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, e.Wrap("geo.DecodePolyline", e.ErrMalformedPolyline)
	}
	if len(rest) != 0 {
		return nil, e.Wrap("geo.DecodePolyline: trailing bytes", e.ErrMalformedPolyline)
	}

	positions := make([]Position, len(coords))
	for i, c := range coords {
		// go-polyline yields (lat, lon); GeoJSON wants (lon, lat).
		positions[i] = Position{c[1], c[0]}
		if !positions[i].Point().Valid() {
			return nil, e.Wrap("geo.DecodePolyline: coordinate out of range", e.ErrMalformedPolyline)
		}
	}
	return positions, nil
}

// EncodePolyline is the inverse of DecodePolyline, taking GeoJSON positions.
func EncodePolyline(positions []Position) string {
	coords := make([][]float64, len(positions))
	for i, p := range positions {
		coords[i] = []float64{p.Lat(), p.Lon()}
	}
	return string(polyline.EncodeCoords(coords))
}
