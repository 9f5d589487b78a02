package domain

import (
	"bytes"
	"encoding/json"
)

type RouteProfile string

const (
	ProfileDrivingCar     RouteProfile = "driving-car"
	ProfileCyclingRegular RouteProfile = "cycling-regular"
	ProfileFootWalking    RouteProfile = "foot-walking"
)

// RouteCandidate is one alternative returned by the routing provider, enriched
// with the incidents found along its corridor and a risk score in [0,1].
// Geometry is either a JSON string holding an encoded polyline, a GeoJSON
// LineString object, or null when the provider returned no geometry.
type RouteCandidate struct {
	Geometry         json.RawMessage `json:"geometry"`
	DurationSeconds  float64         `json:"duration_seconds"`
	DistanceMeters   float64         `json:"distance_meters"`
	IncidentsOnRoute []Incident      `json:"incidents_on_route"`
	RiskScore        float64         `json:"risk_score"`
}

var jsonNull = []byte("null")

// GeometryEmpty reports whether the candidate carries no usable geometry.
func (r RouteCandidate) GeometryEmpty() bool {
	trimmed := bytes.TrimSpace(r.Geometry)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) || bytes.Equal(trimmed, []byte(`""`))
}

// EncodedGeometry returns the geometry as an encoded polyline string when the
// provider sent it in that form.
func (r RouteCandidate) EncodedGeometry() (string, bool) {
	trimmed := bytes.TrimSpace(r.Geometry)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}

// LineStringGeometry returns the geometry as GeoJSON LineString coordinates
// (lon, lat pairs) when the provider sent an object instead of a polyline.
func (r RouteCandidate) LineStringGeometry() ([][]float64, bool) {
	trimmed := bytes.TrimSpace(r.Geometry)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var ls struct {
		Type        string      `json:"type"`
		Coordinates [][]float64 `json:"coordinates"`
	}
	if err := json.Unmarshal(trimmed, &ls); err != nil || ls.Type != "LineString" {
		return nil, false
	}
	return ls.Coordinates, true
}
