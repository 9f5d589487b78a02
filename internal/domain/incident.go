package domain

import (
	"time"
)

type IncidentStatus string

const (
	IncidentOpen     IncidentStatus = "open"
	IncidentResolved IncidentStatus = "resolved"
	IncidentDisputed IncidentStatus = "disputed"
)

// Severity is a closed enum; unrecognized values coming from the backend fall
// back to SeverityUnknown so display mapping never panics.
type Severity string

const (
	SeverityBaixa   Severity = "baixa"
	SeverityMedia   Severity = "media"
	SeverityAlta    Severity = "alta"
	SeverityUnknown Severity = "unknown"
)

func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityBaixa, SeverityMedia, SeverityAlta:
		return Severity(s)
	}
	return SeverityUnknown
}

// Weight orders severities for cluster dominance: alta=3, media=2, baixa=1.
// Unknown severities never dominate.
func (s Severity) Weight() int {
	switch s {
	case SeverityAlta:
		return 3
	case SeverityMedia:
		return 2
	case SeverityBaixa:
		return 1
	}
	return 0
}

// Color returns the marker color used by the map renderer. Unknown severities
// get the neutral gray.
func (s Severity) Color() string {
	switch s {
	case SeverityBaixa:
		return "#00ff88"
	case SeverityMedia:
		return "#ffbe0b"
	case SeverityAlta:
		return "#ff3366"
	}
	return "#8b8fa3"
}

type Incident struct {
	ID            int64          `json:"id"`
	Type          string         `json:"type"`
	Severity      Severity       `json:"severity" validate:"omitempty,severity"`
	Lat           float64        `json:"lat" validate:"required,lat"` // -90..90
	Lon           float64        `json:"lon" validate:"required,lng"` // -180..180
	CreatedAt     time.Time      `json:"created_at"`
	Confirmations int            `json:"confirmations"`
	Refutations   int            `json:"refutations"`
	Status        IncidentStatus `json:"status"`
}
