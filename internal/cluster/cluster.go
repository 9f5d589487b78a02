// Package cluster implements grid-based spatial clustering of incident
// markers. Cell size shrinks as zoom grows, so the map aggregates aggressively
// when zoomed out and not at all when zoomed in. A flat map keyed by integer
// cell coordinates stands in for a real spatial index; at the volumes the map
// serves (hundreds of incidents per viewport) that is plenty.
package cluster

import (
	"fmt"
	"math"
	"sort"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
)

const (
	// NoClusterZoom is the zoom level at and above which incidents are
	// always rendered individually.
	NoClusterZoom = 15.0

	// minClusterInput: clustering is pointless below a handful of markers.
	minClusterInput = 3
)

// GridSizeDeg returns the clustering cell size in degrees for a zoom level.
// At zoom 10 this is ~0.01 degrees (~1.1km), at zoom 13 ~0.001 (~111m).
func GridSizeDeg(zoom float64) float64 {
	return 0.5 / math.Pow(2, zoom-8)
}

type cellKey struct {
	x, y int
}

type cell struct {
	incidents []domain.Incident
	latSum    float64
	lonSum    float64
}

// Build groups incidents into map items for the given zoom level. Pure and
// deterministic: identical input always yields identical membership. The
// items partition the input exactly, with no incident lost or duplicated.
// Output order is an implementation detail; callers must treat the result as
// a set.
func Build(incidents []domain.Incident, zoom float64) []domain.MapItem {
	if zoom >= NoClusterZoom || len(incidents) <= minClusterInput {
		items := make([]domain.MapItem, len(incidents))
		for i, inc := range incidents {
			items[i] = singleItem(inc)
		}
		return items
	}

	gridSize := GridSizeDeg(zoom)

	grid := make(map[cellKey]*cell)
	order := make([]cellKey, 0)
	for _, inc := range incidents {
		key := cellKey{
			x: int(math.Floor(inc.Lon / gridSize)),
			y: int(math.Floor(inc.Lat / gridSize)),
		}
		c, ok := grid[key]
		if !ok {
			c = &cell{}
			grid[key] = c
			order = append(order, key)
		}
		c.incidents = append(c.incidents, inc)
		c.latSum += inc.Lat
		c.lonSum += inc.Lon
	}

	// Sort cells for deterministic output; map iteration order is not.
	sort.Slice(order, func(i, j int) bool {
		if order[i].x != order[j].x {
			return order[i].x < order[j].x
		}
		return order[i].y < order[j].y
	})

	items := make([]domain.MapItem, 0, len(order))
	for _, key := range order {
		c := grid[key]
		if len(c.incidents) == 1 {
			items = append(items, singleItem(c.incidents[0]))
			continue
		}

		n := float64(len(c.incidents))
		items = append(items, domain.MapItem{
			Kind: domain.MapItemCluster,
			Cluster: &domain.ClusterItem{
				ID:               fmt.Sprintf("cluster_%d_%d", key.x, key.y),
				Lat:              c.latSum / n,
				Lon:              c.lonSum / n,
				Count:            len(c.incidents),
				Incidents:        c.incidents,
				DominantSeverity: dominantSeverity(c.incidents),
			},
		})
	}

	return items
}

// dominantSeverity picks the severity that maximizes weight*100 + count.
// Priority ties break deterministically: higher weight first, then higher
// count, then lexicographic order.
func dominantSeverity(incidents []domain.Incident) domain.Severity {
	counts := make(map[domain.Severity]int)
	for _, inc := range incidents {
		counts[domain.ParseSeverity(string(inc.Severity))]++
	}

	type candidate struct {
		sev      domain.Severity
		weight   int
		count    int
		priority int
	}

	candidates := make([]candidate, 0, len(counts))
	for sev, count := range counts {
		candidates = append(candidates, candidate{
			sev:      sev,
			weight:   sev.Weight(),
			count:    count,
			priority: sev.Weight()*100 + count,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		if a.weight != b.weight {
			return a.weight > b.weight
		}
		if a.count != b.count {
			return a.count > b.count
		}
		return a.sev < b.sev
	})

	return candidates[0].sev
}

func singleItem(inc domain.Incident) domain.MapItem {
	return domain.MapItem{
		Kind:   domain.MapItemSingle,
		Single: &domain.SingleItem{Incident: inc},
	}
}
