package service

import (
	"context"

	"log/slog"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/cluster"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"
)

type mapService struct {
	incidents IncidentRepository
	cache     IncidentCache
	logger    *slog.Logger
}

func NewMapService(incidents IncidentRepository, cache IncidentCache, logger *slog.Logger) MapService {
	return &mapService{
		incidents: incidents,
		cache:     cache,
		logger:    logger,
	}
}

func (s *mapService) MapItems(ctx context.Context, req domain.MapItemsRequest) (domain.MapItemsResponse, error) {
	if req.MinLat > req.MaxLat || req.MinLon > req.MaxLon {
		return domain.MapItemsResponse{}, e.ErrInvalidCoordinates
	}

	viewport, err := s.viewportIncidents(ctx, req)
	if err != nil {
		return domain.MapItemsResponse{}, err
	}

	items := cluster.Build(viewport, req.Zoom)

	s.logger.Debug("map items built",
		slog.Int("incidents", len(viewport)),
		slog.Int("items", len(items)),
		slog.Float64("zoom", req.Zoom),
	)

	return domain.MapItemsResponse{
		Items: items,
		Total: len(viewport),
	}, nil
}

// IncidentDetail backs the marker-tap panel. Detail reads bypass the cache:
// the panel shows confirmation counts, which go stale faster than the 30 s
// refresh window.
func (s *mapService) IncidentDetail(ctx context.Context, id int64) (*domain.Incident, error) {
	if id <= 0 {
		return nil, e.ErrInvalidInput
	}
	return s.incidents.Get(ctx, id)
}

// viewportIncidents serves from the warmed cache when possible; a cache miss
// or error falls through to the PostGIS bbox query.
func (s *mapService) viewportIncidents(ctx context.Context, req domain.MapItemsRequest) ([]domain.Incident, error) {
	cached, err := s.cache.GetOpen(ctx)
	if err != nil {
		s.logger.Warn("incident cache read failed", slog.Any("error", err))
	}
	if err == nil && cached != nil {
		return filterViewport(cached, req), nil
	}

	return s.incidents.ListViewport(ctx, req.MinLat, req.MinLon, req.MaxLat, req.MaxLon)
}

func filterViewport(incidents []domain.Incident, req domain.MapItemsRequest) []domain.Incident {
	out := make([]domain.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if inc.Status != domain.IncidentOpen {
			continue
		}
		if inc.Lat < req.MinLat || inc.Lat > req.MaxLat || inc.Lon < req.MinLon || inc.Lon > req.MaxLon {
			continue
		}
		out = append(out, inc)
	}
	return out
}
