package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertEvent is queued when an open incident matches a user's alert radius.
// Dispatched to the notification webhook by the alert worker.
type AlertEvent struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	IncidentID int64     `json:"incident_id"`
	Type       string    `json:"type"`
	Severity   Severity  `json:"severity"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	DistanceKm float64   `json:"distance_km"`
	CreatedAt  time.Time `json:"created_at"`
}

// AlertPreference mirrors the backend's radius-mode alert subscription. Used
// to match fresh incidents against subscribed users.
type AlertPreference struct {
	ID          int64    `json:"id"`
	UserID      string   `json:"user_id"`
	CenterLat   float64  `json:"center_lat" validate:"required,lat"`
	CenterLon   float64  `json:"center_lon" validate:"required,lng"`
	RadiusKm    float64  `json:"radius_km" validate:"required,radius_km"`
	MinSeverity Severity `json:"min_severity" validate:"omitempty,severity"`
	Enabled     bool     `json:"enabled"`
}
