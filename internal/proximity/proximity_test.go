package proximity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/geo"
)

// pointAtKm returns a point shifted north of origin by the given distance.
// 1 degree of latitude is ~111.32km, accurate enough for test geometry.
func pointAtKm(origin geo.Point, km float64) geo.Point {
	return geo.Point{Lat: origin.Lat + km/111.32, Lon: origin.Lon}
}

var userPos = geo.Point{Lat: -22.9068, Lon: -43.1729}

func savedAt(id int64, t domain.LocationType, p geo.Point) domain.SavedLocation {
	return domain.SavedLocation{ID: id, Label: string(t), Type: t, Lat: p.Lat, Lon: p.Lon}
}

func TestNearestWithin_StrictThreshold(t *testing.T) {
	loc := savedAt(1, domain.LocationHome, pointAtKm(userPos, 0.5))
	d := geo.HaversineKm(userPos, geo.Point{Lat: loc.Lat, Lon: loc.Lon})

	// A location exactly at the threshold distance does not qualify: the
	// comparison is strict.
	_, ok := NearestWithin(userPos, []domain.SavedLocation{loc}, d)
	assert.False(t, ok)

	// Any margin inside the threshold does.
	got, ok := NearestWithin(userPos, []domain.SavedLocation{loc}, d+1e-9)
	require.True(t, ok)
	assert.Equal(t, int64(1), got.ID)

	// Sanity: 499m inside the default 500m threshold qualifies.
	inside := savedAt(2, domain.LocationHome, pointAtKm(userPos, 0.499))
	got, ok = NearestWithin(userPos, []domain.SavedLocation{inside}, DefaultThresholdKm)
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
}

func TestNearestWithin_PicksClosest(t *testing.T) {
	locs := []domain.SavedLocation{
		savedAt(1, domain.LocationFavorite, pointAtKm(userPos, 0.4)),
		savedAt(2, domain.LocationHome, pointAtKm(userPos, 0.1)),
		savedAt(3, domain.LocationWork, pointAtKm(userPos, 0.3)),
	}

	got, ok := NearestWithin(userPos, locs, DefaultThresholdKm)
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
}

func TestNearestWithin_FirstWinsOnTie(t *testing.T) {
	same := pointAtKm(userPos, 0.2)
	locs := []domain.SavedLocation{
		savedAt(1, domain.LocationHome, same),
		savedAt(2, domain.LocationWork, same),
	}

	got, ok := NearestWithin(userPos, locs, DefaultThresholdKm)
	require.True(t, ok)
	assert.Equal(t, int64(1), got.ID, "equal distance must not overwrite the current best")
}

func TestNearestWithin_EmptyCandidates(t *testing.T) {
	_, ok := NearestWithin(userPos, nil, DefaultThresholdKm)
	assert.False(t, ok)
}

func TestSuggestCommute_NearHomeSuggestsWork(t *testing.T) {
	home := savedAt(1, domain.LocationHome, pointAtKm(userPos, 0.1))
	workNear := savedAt(2, domain.LocationWork, pointAtKm(userPos, 8))
	workFar := savedAt(3, domain.LocationWork, pointAtKm(userPos, 20))

	s := SuggestCommute(userPos, []domain.SavedLocation{workFar, home, workNear})
	require.Equal(t, domain.CommuteToWork, s.Kind)
	require.NotNil(t, s.Origin)
	require.NotNil(t, s.Destination)
	assert.Equal(t, int64(1), s.Origin.ID)
	assert.Equal(t, int64(2), s.Destination.ID, "nearest work location wins")
}

func TestSuggestCommute_NearWorkSuggestsHome(t *testing.T) {
	work := savedAt(1, domain.LocationWork, pointAtKm(userPos, 0.2))
	home := savedAt(2, domain.LocationHome, pointAtKm(userPos, 12))

	s := SuggestCommute(userPos, []domain.SavedLocation{work, home})
	require.Equal(t, domain.CommuteToHome, s.Kind)
	assert.Equal(t, int64(1), s.Origin.ID)
	assert.Equal(t, int64(2), s.Destination.ID)
}

func TestSuggestCommute_ManualFallbacks(t *testing.T) {
	// Not near anything.
	far := savedAt(1, domain.LocationHome, pointAtKm(userPos, 5))
	s := SuggestCommute(userPos, []domain.SavedLocation{far})
	assert.Equal(t, domain.CommuteManual, s.Kind)
	assert.Nil(t, s.Origin)

	// Near a favorite: no counterpart type.
	fav := savedAt(2, domain.LocationFavorite, pointAtKm(userPos, 0.1))
	s = SuggestCommute(userPos, []domain.SavedLocation{fav})
	assert.Equal(t, domain.CommuteManual, s.Kind)

	// Near home but no work saved.
	home := savedAt(3, domain.LocationHome, pointAtKm(userPos, 0.1))
	s = SuggestCommute(userPos, []domain.SavedLocation{home})
	assert.Equal(t, domain.CommuteManual, s.Kind)

	// No locations at all.
	s = SuggestCommute(userPos, nil)
	assert.Equal(t, domain.CommuteManual, s.Kind)
}
