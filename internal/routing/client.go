// Package routing wraps the OpenRouteService directions API. The provider
// computes path geometry; this client only fetches candidates and enriches
// them with the incidents sitting along each route corridor.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/geo"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"
)

const (
	// alternativeCount asks the provider for up to 3 route alternatives.
	alternativeCount = 3

	// corridorKm is how far an open incident may sit from the route
	// geometry and still count as "on route" (200m).
	corridorKm = 0.2

	// riskPerIncident: each incident on the corridor adds 0.15 to the
	// risk score, capped at 1.0.
	riskPerIncident = 0.15

	// maxIncidentsOnRoute caps the incident list attached to one route.
	maxIncidentsOnRoute = 20
)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Configured reports whether a provider API key is present. Without one the
// service degrades to degenerate placeholder routes.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type directionsRequest struct {
	Coordinates       [][]float64 `json:"coordinates"`
	AlternativeRoutes struct {
		TargetCount int `json:"target_count"`
	} `json:"alternative_routes"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Duration float64 `json:"duration"`
			Distance float64 `json:"distance"`
		} `json:"summary"`
		Geometry json.RawMessage `json:"geometry"`
	} `json:"routes"`
}

// FetchRoutes asks the provider for alternatives between origin and
// destination and scores each against the supplied open incidents. When no
// API key is configured it returns the single degenerate placeholder
// candidate that the risk layer reports as RoutingUnavailable.
func (c *Client) FetchRoutes(ctx context.Context, origin, dest geo.Point, profile domain.RouteProfile, incidents []domain.Incident) ([]domain.RouteCandidate, error) {
	if !c.Configured() {
		c.logger.Warn("routing provider not configured, returning placeholder route")
		return []domain.RouteCandidate{{
			Geometry:         json.RawMessage("null"),
			IncidentsOnRoute: []domain.Incident{},
		}}, nil
	}

	reqBody := directionsRequest{
		Coordinates: [][]float64{
			{origin.Lon, origin.Lat},
			{dest.Lon, dest.Lat},
		},
	}
	reqBody.AlternativeRoutes.TargetCount = alternativeCount

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, e.Wrap("routing.FetchRoutes.Marshal", err)
	}

	requestURL := fmt.Sprintf("%s/v2/directions/%s", c.baseURL, profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return nil, e.Wrap("routing.FetchRoutes.NewRequest", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("routing provider request failed", slog.Any("error", err))
		return nil, fmt.Errorf("routing.FetchRoutes: %w", e.ErrRoutingProviderDown)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("routing provider error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(raw)),
		)
		return nil, fmt.Errorf("routing.FetchRoutes: status %d: %w", resp.StatusCode, e.ErrRoutingProviderDown)
	}

	var parsed directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, e.Wrap("routing.FetchRoutes.Decode", err)
	}

	candidates := make([]domain.RouteCandidate, 0, len(parsed.Routes))
	for _, r := range parsed.Routes {
		candidate := domain.RouteCandidate{
			Geometry:        r.Geometry,
			DurationSeconds: r.Summary.Duration,
			DistanceMeters:  r.Summary.Distance,
		}

		onRoute := c.incidentsOnRoute(candidate, incidents)
		candidate.IncidentsOnRoute = onRoute
		candidate.RiskScore = riskScore(len(onRoute))

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// incidentsOnRoute keeps the incidents within corridorKm of the route
// geometry. A candidate whose geometry cannot be decoded gets an empty list
// rather than an error: a bad polyline from the provider should not sink the
// whole query.
func (c *Client) incidentsOnRoute(candidate domain.RouteCandidate, incidents []domain.Incident) []domain.Incident {
	path, err := routePath(candidate)
	if err != nil {
		c.logger.Warn("undecodable route geometry, skipping incident match", slog.Any("error", err))
		return []domain.Incident{}
	}
	if len(path) == 0 {
		return []domain.Incident{}
	}

	onRoute := make([]domain.Incident, 0)
	for _, inc := range incidents {
		if inc.Status != domain.IncidentOpen {
			continue
		}
		p := geo.Point{Lat: inc.Lat, Lon: inc.Lon}
		if !p.Valid() {
			continue
		}
		if geo.MinDistanceToPathKm(p, path) <= corridorKm {
			onRoute = append(onRoute, inc)
			if len(onRoute) == maxIncidentsOnRoute {
				break
			}
		}
	}
	return onRoute
}

// routePath decodes candidate geometry into GeoJSON positions, handling both
// the encoded-polyline and GeoJSON LineString forms the provider may send.
func routePath(candidate domain.RouteCandidate) ([]geo.Position, error) {
	if encoded, ok := candidate.EncodedGeometry(); ok {
		return geo.DecodePolyline(encoded)
	}
	if coords, ok := candidate.LineStringGeometry(); ok {
		path := make([]geo.Position, 0, len(coords))
		for _, c := range coords {
			if len(c) < 2 {
				return nil, e.Wrap("routing.routePath: short coordinate", e.ErrMalformedPolyline)
			}
			path = append(path, geo.Position{c[0], c[1]})
		}
		return path, nil
	}
	return nil, nil
}

func riskScore(incidentCount int) float64 {
	score := float64(incidentCount) * riskPerIncident
	if score > 1.0 {
		return 1.0
	}
	return score
}
