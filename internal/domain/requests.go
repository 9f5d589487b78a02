package domain

import "github.com/google/uuid"

// MapItemsRequest selects open incidents in the viewport and the zoom level
// that drives clustering.
type MapItemsRequest struct {
	MinLat float64 `json:"min_lat" validate:"lat"`
	MinLon float64 `json:"min_lon" validate:"lng"`
	MaxLat float64 `json:"max_lat" validate:"lat"`
	MaxLon float64 `json:"max_lon" validate:"lng"`
	Zoom   float64 `json:"zoom" validate:"min=0,max=22"`
}

type MapItemsResponse struct {
	Items []MapItem `json:"items"`
	Total int       `json:"total"` // incidents in viewport before clustering
}

type CustomRouteRequest struct {
	OriginLat float64      `json:"origin_lat" validate:"required,lat"`
	OriginLon float64      `json:"origin_lon" validate:"required,lng"`
	DestLat   float64      `json:"dest_lat" validate:"required,lat"`
	DestLon   float64      `json:"dest_lon" validate:"required,lng"`
	Profile   RouteProfile `json:"profile" validate:"required,profile"`
}

type CommuteRouteRequest struct {
	UserID  string       `json:"user_id" validate:"required"`
	Profile RouteProfile `json:"profile" validate:"required,profile"`
}

// ScoredRoute pairs a candidate with its display band.
type ScoredRoute struct {
	RouteCandidate
	RiskBand string `json:"risk_band"`
	Color    string `json:"color"` // overlay color matching the band
}

// RouteQueryResponse is the display-ready result of one route query. When the
// routing provider is not configured every candidate is degenerate and
// Unavailable is set instead of Routes.
type RouteQueryResponse struct {
	QueryID     uuid.UUID     `json:"query_id"`
	Routes      []ScoredRoute `json:"routes,omitempty"`
	Unavailable bool          `json:"unavailable,omitempty"`
}

type CommuteSuggestionRequest struct {
	UserID string  `json:"user_id" validate:"required"`
	Lat    float64 `json:"lat" validate:"required,lat"`
	Lon    float64 `json:"lon" validate:"required,lng"`
}

type AlertPreviewRequest struct {
	Lat      float64 `json:"lat" validate:"required,lat"`
	Lon      float64 `json:"lon" validate:"required,lng"`
	RadiusKm float64 `json:"radius_km" validate:"required,radius_km"`
}

// AlertPreviewResponse carries a GeoJSON Polygon approximating the alert
// radius, ready for the map renderer.
type AlertPreviewResponse struct {
	Type        string        `json:"type"` // always "Polygon"
	Coordinates [][][]float64 `json:"coordinates"`
}
