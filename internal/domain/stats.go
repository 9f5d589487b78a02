package domain

// IncidentStats summarizes open incidents for the map filter panel.
type IncidentStats struct {
	Total      int64              `json:"total"`
	BySeverity map[Severity]int64 `json:"by_severity"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // 1 day max
}
