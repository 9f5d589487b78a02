// Package proximity finds the nearest saved location to a point and applies
// the smart-commute policy on top of it: standing near home suggests routing
// to work, standing near work suggests home, anything else falls back to the
// manual origin/destination picker.
package proximity

import (
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/geo"
)

// DefaultThresholdKm is how close the user must be to a saved location for it
// to count as "being there".
const DefaultThresholdKm = 0.5

// NearestWithin scans candidates in order and returns the one closest to p,
// provided its distance is strictly below thresholdKm. On exact distance ties
// the earlier candidate wins: only a strict improvement replaces the current
// best. Returns false when no candidate qualifies.
func NearestWithin(p geo.Point, candidates []domain.SavedLocation, thresholdKm float64) (domain.SavedLocation, bool) {
	var best domain.SavedLocation
	bestDist := thresholdKm
	found := false

	for _, loc := range candidates {
		d := geo.HaversineKm(p, geo.Point{Lat: loc.Lat, Lon: loc.Lon})
		if d < bestDist {
			best = loc
			bestDist = d
			found = true
		}
	}

	return best, found
}

// SuggestCommute resolves the three-way commute policy for the user's current
// position. The destination is the saved location of the opposite type
// nearest to the matched origin; a match without a counterpart degrades to
// the manual fallback.
func SuggestCommute(current geo.Point, locs []domain.SavedLocation) domain.CommuteSuggestion {
	origin, ok := NearestWithin(current, locs, DefaultThresholdKm)
	if !ok {
		return domain.CommuteSuggestion{Kind: domain.CommuteManual}
	}

	var wantDest domain.LocationType
	var kind domain.CommuteKind
	switch origin.Type {
	case domain.LocationHome:
		wantDest, kind = domain.LocationWork, domain.CommuteToWork
	case domain.LocationWork:
		wantDest, kind = domain.LocationHome, domain.CommuteToHome
	default:
		// Near a favorite: no obvious counterpart, let the user pick.
		return domain.CommuteSuggestion{Kind: domain.CommuteManual}
	}

	dest, ok := nearestOfType(geo.Point{Lat: origin.Lat, Lon: origin.Lon}, locs, wantDest)
	if !ok {
		return domain.CommuteSuggestion{Kind: domain.CommuteManual}
	}

	return domain.CommuteSuggestion{
		Kind:        kind,
		Origin:      &origin,
		Destination: &dest,
	}
}

// nearestOfType is an unbounded nearest scan restricted to one location type,
// with the same first-wins tie behavior as NearestWithin.
func nearestOfType(p geo.Point, locs []domain.SavedLocation, t domain.LocationType) (domain.SavedLocation, bool) {
	var best domain.SavedLocation
	bestDist := 0.0
	found := false

	for _, loc := range locs {
		if loc.Type != t {
			continue
		}
		d := geo.HaversineKm(p, geo.Point{Lat: loc.Lat, Lon: loc.Lon})
		if !found || d < bestDist {
			best = loc
			bestDist = d
			found = true
		}
	}

	return best, found
}
