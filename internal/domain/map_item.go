package domain

type MapItemKind string

const (
	MapItemCluster MapItemKind = "cluster"
	MapItemSingle  MapItemKind = "single"
)

// MapItem is the tagged union rendered on the map: either an aggregate cluster
// marker or a single incident marker. Exactly one of Cluster/Single is set,
// matching Kind.
type MapItem struct {
	Kind    MapItemKind  `json:"type"`
	Cluster *ClusterItem `json:"cluster,omitempty"`
	Single  *SingleItem  `json:"single,omitempty"`
}

// ClusterItem aggregates incidents that share a grid cell at the current zoom.
// Center is the member centroid, not a real incident location. Ephemeral:
// recomputed on every incidents/zoom change, never persisted.
type ClusterItem struct {
	ID               string     `json:"id"`
	Lat              float64    `json:"lat"`
	Lon              float64    `json:"lon"`
	Count            int        `json:"count"`
	Incidents        []Incident `json:"incidents"`
	DominantSeverity Severity   `json:"dominant_severity"`
}

// SingleItem wraps one incident that was not merged into a cluster.
type SingleItem struct {
	Incident Incident `json:"incident"`
}

// MemberIDs returns the incident IDs contained in the item, cluster or single.
func (m MapItem) MemberIDs() []int64 {
	switch m.Kind {
	case MapItemCluster:
		if m.Cluster == nil {
			return nil
		}
		ids := make([]int64, len(m.Cluster.Incidents))
		for i, inc := range m.Cluster.Incidents {
			ids[i] = inc.ID
		}
		return ids
	case MapItemSingle:
		if m.Single == nil {
			return nil
		}
		return []int64{m.Single.Incident.ID}
	}
	return nil
}
