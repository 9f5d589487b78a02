package service

import (
	"context"
	"time"

	"log/slog"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/geo"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"

	"github.com/google/uuid"
)

type alertService struct {
	alerts AlertRepository
	queue  AlertQueue
	logger *slog.Logger
}

func NewAlertService(alerts AlertRepository, queue AlertQueue, logger *slog.Logger) AlertService {
	return &alertService{
		alerts: alerts,
		queue:  queue,
		logger: logger,
	}
}

func (s *alertService) Preview(ctx context.Context, req domain.AlertPreviewRequest) (domain.AlertPreviewResponse, error) {
	center := geo.Point{Lat: req.Lat, Lon: req.Lon}
	if !center.Valid() {
		return domain.AlertPreviewResponse{}, e.ErrInvalidCoordinates
	}

	ring, err := geo.CirclePolygon(center, req.RadiusKm, geo.DefaultCircleSteps)
	if err != nil {
		return domain.AlertPreviewResponse{}, err
	}

	coords := make([][]float64, len(ring))
	for i, pos := range ring {
		coords[i] = []float64{pos.Lon(), pos.Lat()}
	}

	return domain.AlertPreviewResponse{
		Type:        "Polygon",
		Coordinates: [][][]float64{coords},
	}, nil
}

// MatchIncident fans a fresh open incident out to every enabled subscription
// whose radius covers it. Returns the number of alerts enqueued.
func (s *alertService) MatchIncident(ctx context.Context, inc domain.Incident) (int, error) {
	if inc.Status != domain.IncidentOpen {
		return 0, nil
	}

	prefs, err := s.alerts.ListEnabledPreferences(ctx)
	if err != nil {
		return 0, err
	}

	point := geo.Point{Lat: inc.Lat, Lon: inc.Lon}
	matched := 0

	for _, pref := range prefs {
		if inc.Severity.Weight() < pref.MinSeverity.Weight() {
			continue
		}

		dist := geo.HaversineKm(geo.Point{Lat: pref.CenterLat, Lon: pref.CenterLon}, point)
		if dist > pref.RadiusKm {
			continue
		}

		event := domain.AlertEvent{
			ID:         uuid.New(),
			UserID:     pref.UserID,
			IncidentID: inc.ID,
			Type:       inc.Type,
			Severity:   inc.Severity,
			Lat:        inc.Lat,
			Lon:        inc.Lon,
			DistanceKm: dist,
			CreatedAt:  time.Now().UTC(),
		}

		if err := s.alerts.SaveEvent(ctx, &event); err != nil {
			s.logger.Error("save alert event failed", slog.Any("error", err), slog.String("user_id", pref.UserID))
			continue
		}
		if err := s.queue.Enqueue(ctx, event); err != nil {
			s.logger.Error("enqueue alert failed", slog.Any("error", err), slog.String("user_id", pref.UserID))
			continue
		}
		matched++
	}

	s.logger.Info("incident matched against alert preferences",
		slog.Int64("incident_id", inc.ID),
		slog.Int("subscriptions", len(prefs)),
		slog.Int("alerts", matched),
	)

	return matched, nil
}
