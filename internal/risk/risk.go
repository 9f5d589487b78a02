// Package risk classifies route candidates for display: it buckets continuous
// risk scores into bands, detects the degenerate "routing provider not
// configured" response, and tracks the per-query session state the client
// renders from.
package risk

import (
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
)

// Band is the discrete display classification of a risk score.
type Band string

const (
	BandLow    Band = "LOW"
	BandMedium Band = "MEDIUM"
	BandHigh   Band = "HIGH"
)

// Classify buckets a score into its band. Boundaries are half-open: 0.3 is
// already MEDIUM, 0.7 already HIGH.
func Classify(score float64) Band {
	switch {
	case score < 0.3:
		return BandLow
	case score < 0.7:
		return BandMedium
	default:
		return BandHigh
	}
}

// Color returns the route overlay color for a band. Bands reuse the severity
// palette so route risk and incident markers read the same on the map.
func (b Band) Color() string {
	switch b {
	case BandLow:
		return domain.SeverityBaixa.Color()
	case BandMedium:
		return domain.SeverityMedia.Color()
	case BandHigh:
		return domain.SeverityAlta.Color()
	}
	return domain.SeverityUnknown.Color()
}

// RoutingUnavailable reports whether the provider answered with nothing but
// placeholder routes: every candidate with zero duration, zero distance and
// no geometry. This is what the backend returns when no routing API key is
// configured, and it must surface as a distinct condition instead of
// rendering zero-length routes. The predicate is all-of: a single real route
// suppresses it. An empty candidate list is not "unavailable" - it is an
// empty result.
func RoutingUnavailable(routes []domain.RouteCandidate) bool {
	if len(routes) == 0 {
		return false
	}
	for _, r := range routes {
		if r.DurationSeconds != 0 || r.DistanceMeters != 0 || !r.GeometryEmpty() {
			return false
		}
	}
	return true
}

// Score pairs each candidate with its band and overlay color.
func Score(routes []domain.RouteCandidate) []domain.ScoredRoute {
	scored := make([]domain.ScoredRoute, len(routes))
	for i, r := range routes {
		band := Classify(r.RiskScore)
		scored[i] = domain.ScoredRoute{
			RouteCandidate: r,
			RiskBand:       string(band),
			Color:          band.Color(),
		}
	}
	return scored
}
