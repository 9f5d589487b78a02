package cluster

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
)

func mkIncident(id int64, lat, lon float64, sev domain.Severity) domain.Incident {
	return domain.Incident{
		ID:       id,
		Type:     "assalto",
		Severity: sev,
		Lat:      lat,
		Lon:      lon,
		Status:   domain.IncidentOpen,
	}
}

// Downtown Rio spread over a few hundred meters: clusters together at low
// zoom, splits apart at high zoom.
func rioIncidents() []domain.Incident {
	return []domain.Incident{
		mkIncident(1, -22.9068, -43.1729, domain.SeverityBaixa),
		mkIncident(2, -22.9070, -43.1731, domain.SeverityMedia),
		mkIncident(3, -22.9072, -43.1733, domain.SeverityBaixa),
		mkIncident(4, -22.9075, -43.1735, domain.SeverityAlta),
		mkIncident(5, -22.9500, -43.3900, domain.SeverityBaixa), // Barra, far away
		mkIncident(6, -22.9080, -43.1740, domain.SeverityMedia),
	}
}

func memberIDs(items []domain.MapItem) []int64 {
	var ids []int64
	for _, item := range items {
		ids = append(ids, item.MemberIDs()...)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestBuild_HighZoomNoClustering(t *testing.T) {
	incidents := rioIncidents()

	items := Build(incidents, 15)
	require.Len(t, items, len(incidents))
	for i, item := range items {
		assert.Equal(t, domain.MapItemSingle, item.Kind)
		require.NotNil(t, item.Single)
		// Order preserved in the no-clustering path.
		assert.Equal(t, incidents[i].ID, item.Single.Incident.ID)
	}
}

func TestBuild_FewIncidentsNoClustering(t *testing.T) {
	incidents := rioIncidents()[:3]

	// Zoomed far out, but 3 incidents is below the clustering threshold.
	items := Build(incidents, 5)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, domain.MapItemSingle, item.Kind)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	assert.Empty(t, Build(nil, 10))
	assert.Empty(t, Build([]domain.Incident{}, 10))
}

func TestBuild_PartitionInvariant(t *testing.T) {
	incidents := rioIncidents()
	want := []int64{1, 2, 3, 4, 5, 6}

	for _, zoom := range []float64{5, 8, 10, 12, 13, 14, 14.9, 15, 18} {
		items := Build(incidents, zoom)
		assert.Equal(t, want, memberIDs(items), "zoom=%v", zoom)
	}
}

func TestBuild_ClustersNearbyIncidents(t *testing.T) {
	items := Build(rioIncidents(), 10)

	// At zoom 10 the grid is 0.125 degrees: the five downtown incidents
	// merge, the Barra one stays single.
	var clusters, singles int
	for _, item := range items {
		switch item.Kind {
		case domain.MapItemCluster:
			clusters++
			require.NotNil(t, item.Cluster)
			assert.Equal(t, len(item.Cluster.Incidents), item.Cluster.Count)
			assert.GreaterOrEqual(t, item.Cluster.Count, 2)
		case domain.MapItemSingle:
			singles++
		}
	}
	assert.Equal(t, 1, clusters)
	assert.Equal(t, 1, singles)
}

func TestBuild_ClusterCentroid(t *testing.T) {
	incidents := []domain.Incident{
		mkIncident(1, -22.90, -43.10, domain.SeverityBaixa),
		mkIncident(2, -22.92, -43.12, domain.SeverityBaixa),
		mkIncident(3, -22.94, -43.14, domain.SeverityBaixa),
		mkIncident(4, -22.96, -43.16, domain.SeverityBaixa),
	}

	// Zoom 5 puts everything in one huge cell.
	items := Build(incidents, 5)
	require.Len(t, items, 1)
	require.Equal(t, domain.MapItemCluster, items[0].Kind)

	c := items[0].Cluster
	assert.InDelta(t, -22.93, c.Lat, 1e-9)
	assert.InDelta(t, -43.13, c.Lon, 1e-9)
	assert.Equal(t, 4, c.Count)
}

func TestBuild_Determinism(t *testing.T) {
	incidents := rioIncidents()

	first := Build(incidents, 11)
	for i := 0; i < 20; i++ {
		again := Build(incidents, 11)
		require.Len(t, again, len(first))
		for j := range first {
			assert.Equal(t, first[j].Kind, again[j].Kind)
			assert.Equal(t, first[j].MemberIDs(), again[j].MemberIDs())
			if first[j].Kind == domain.MapItemCluster {
				assert.InDelta(t, first[j].Cluster.Lat, again[j].Cluster.Lat, 1e-9)
				assert.InDelta(t, first[j].Cluster.Lon, again[j].Cluster.Lon, 1e-9)
			}
		}
	}
}

func TestDominantSeverity_WeightBeatsCount(t *testing.T) {
	// One alta (3*100+1=301) outranks five baixa (1*100+5=105).
	incidents := []domain.Incident{
		mkIncident(1, -22.9001, -43.1001, domain.SeverityAlta),
		mkIncident(2, -22.9002, -43.1002, domain.SeverityBaixa),
		mkIncident(3, -22.9003, -43.1003, domain.SeverityBaixa),
		mkIncident(4, -22.9004, -43.1004, domain.SeverityBaixa),
		mkIncident(5, -22.9005, -43.1005, domain.SeverityBaixa),
		mkIncident(6, -22.9006, -43.1006, domain.SeverityBaixa),
	}

	items := Build(incidents, 5)
	require.Len(t, items, 1)
	require.Equal(t, domain.MapItemCluster, items[0].Kind)
	assert.Equal(t, domain.SeverityAlta, items[0].Cluster.DominantSeverity)
}

func TestDominantSeverity_UnknownNeverDominates(t *testing.T) {
	incidents := []domain.Incident{
		mkIncident(1, -22.9001, -43.1001, domain.Severity("whatever")),
		mkIncident(2, -22.9002, -43.1002, domain.Severity("whatever")),
		mkIncident(3, -22.9003, -43.1003, domain.Severity("whatever")),
		mkIncident(4, -22.9004, -43.1004, domain.SeverityBaixa),
		mkIncident(5, -22.9005, -43.1005, domain.SeverityBaixa),
	}

	items := Build(incidents, 5)
	require.Len(t, items, 1)
	assert.Equal(t, domain.SeverityBaixa, items[0].Cluster.DominantSeverity)
}

func TestDominantSeverity_TieBreak(t *testing.T) {
	// 105 media (2*100+105=305) ties 205 baixa (1*100+205=305): higher
	// weight wins the tie.
	var incidents []domain.Incident
	id := int64(1)
	for i := 0; i < 105; i++ {
		incidents = append(incidents, mkIncident(id, -22.9, -43.1, domain.SeverityMedia))
		id++
	}
	for i := 0; i < 205; i++ {
		incidents = append(incidents, mkIncident(id, -22.9, -43.1, domain.SeverityBaixa))
		id++
	}

	items := Build(incidents, 5)
	require.Len(t, items, 1)
	assert.Equal(t, domain.SeverityMedia, items[0].Cluster.DominantSeverity)
}

func TestGridSizeDeg_ShrinksWithZoom(t *testing.T) {
	prev := GridSizeDeg(5)
	for zoom := 6.0; zoom <= 15; zoom++ {
		cur := GridSizeDeg(zoom)
		assert.Less(t, cur, prev, "grid must shrink as zoom grows")
		prev = cur
	}

	assert.InDelta(t, 0.125, GridSizeDeg(10), 1e-12)
}

func TestBuild_ClusterIDStable(t *testing.T) {
	incidents := rioIncidents()
	items := Build(incidents, 10)

	for _, item := range items {
		if item.Kind == domain.MapItemCluster {
			assert.Regexp(t, `^cluster_-?\d+_-?\d+$`, item.Cluster.ID)
			// Same input, same IDs.
			again := Build(incidents, 10)
			found := false
			for _, a := range again {
				if a.Kind == domain.MapItemCluster && a.Cluster.ID == item.Cluster.ID {
					found = true
				}
			}
			assert.True(t, found, fmt.Sprintf("cluster id %s must be stable", item.Cluster.ID))
		}
	}
}
