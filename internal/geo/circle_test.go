package geo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"
)

func TestCirclePolygon_ClosedRing(t *testing.T) {
	center := Point{Lat: -22.9068, Lon: -43.1729}

	ring, err := CirclePolygon(center, 2.0, 64)
	require.NoError(t, err)

	// steps+1 positions, first == last.
	require.Len(t, ring, 65)
	assert.Equal(t, ring[0], ring[len(ring)-1])
}

func TestCirclePolygon_RadiusAccuracy(t *testing.T) {
	center := Point{Lat: -22.9068, Lon: -43.1729}
	const radiusKm = 2.0

	ring, err := CirclePolygon(center, radiusKm, 32)
	require.NoError(t, err)

	// Every vertex should sit close to radiusKm from the center; the
	// cos(lat) longitude correction keeps east-west vertices honest.
	for _, pos := range ring {
		d := HaversineKm(center, pos.Point())
		assert.InDelta(t, radiusKm, d, 0.05)
	}
}

func TestCirclePolygon_DefaultSteps(t *testing.T) {
	ring, err := CirclePolygon(Point{Lat: 0, Lon: 0}, 1.0, 0)
	require.NoError(t, err)
	assert.Len(t, ring, DefaultCircleSteps+1)
}

func TestCirclePolygon_InvalidRadius(t *testing.T) {
	for _, radius := range []float64{0, -1, -0.001} {
		_, err := CirclePolygon(Point{}, radius, 64)
		require.Error(t, err)
		assert.True(t, errors.Is(err, e.ErrInvalidRadius))
	}
}
