package service

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/geo"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/risk"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"

	"github.com/google/uuid"
)

type routeService struct {
	routing   RoutingClient
	incidents IncidentRepository
	locations LocationRepository
	incCache  IncidentCache
	cache     RouteCache
	logger    *slog.Logger
}

func NewRouteService(
	routing RoutingClient,
	incidents IncidentRepository,
	locations LocationRepository,
	incCache IncidentCache,
	cache RouteCache,
	logger *slog.Logger,
) RouteService {
	return &routeService{
		routing:   routing,
		incidents: incidents,
		locations: locations,
		incCache:  incCache,
		cache:     cache,
		logger:    logger,
	}
}

func (s *routeService) CustomRoute(ctx context.Context, req domain.CustomRouteRequest) (*domain.RouteQueryResponse, error) {
	origin := geo.Point{Lat: req.OriginLat, Lon: req.OriginLon}
	dest := geo.Point{Lat: req.DestLat, Lon: req.DestLon}
	if !origin.Valid() || !dest.Valid() {
		return nil, e.ErrInvalidCoordinates
	}

	return s.query(ctx, origin, dest, req.Profile)
}

func (s *routeService) CommuteRoute(ctx context.Context, req domain.CommuteRouteRequest) (*domain.RouteQueryResponse, error) {
	const op = "service.Route.CommuteRoute"

	locs, err := s.locations.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	home, okHome := firstOfType(locs, domain.LocationHome)
	work, okWork := firstOfType(locs, domain.LocationWork)
	if !okHome || !okWork {
		return nil, fmt.Errorf("%s: %w", op, e.ErrMissingHomeOrWork)
	}

	origin := geo.Point{Lat: home.Lat, Lon: home.Lon}
	dest := geo.Point{Lat: work.Lat, Lon: work.Lon}

	return s.query(ctx, origin, dest, req.Profile)
}

func (s *routeService) query(ctx context.Context, origin, dest geo.Point, profile domain.RouteProfile) (*domain.RouteQueryResponse, error) {
	if cached, err := s.cache.Get(ctx, profile, origin, dest); err != nil {
		s.logger.Warn("route cache read failed", slog.Any("error", err))
	} else if cached != nil {
		s.logger.Debug("route cache hit", slog.String("profile", string(profile)))
		return cached, nil
	}

	session := risk.NewSession()
	if err := session.Begin(); err != nil {
		return nil, err
	}

	incidents, err := s.openIncidents(ctx)
	if err != nil {
		_ = session.Fail(err)
		return nil, err
	}

	candidates, err := s.routing.FetchRoutes(ctx, origin, dest, profile, incidents)
	if err != nil {
		_ = session.Fail(err)
		return nil, err
	}

	if err := session.Succeed(candidates); err != nil {
		return nil, err
	}

	resp := &domain.RouteQueryResponse{QueryID: uuid.New()}
	if session.State() == risk.StateUnavailable {
		resp.Unavailable = true
	} else {
		resp.Routes = session.Routes()
	}

	if err := s.cache.Set(ctx, profile, origin, dest, resp); err != nil {
		s.logger.Warn("route cache write failed", slog.Any("error", err))
	}

	return resp, nil
}

func (s *routeService) openIncidents(ctx context.Context) ([]domain.Incident, error) {
	cached, err := s.incCache.GetOpen(ctx)
	if err != nil {
		s.logger.Warn("incident cache read failed", slog.Any("error", err))
	}
	if err == nil && cached != nil {
		return cached, nil
	}
	return s.incidents.ListOpen(ctx)
}

func firstOfType(locs []domain.SavedLocation, t domain.LocationType) (domain.SavedLocation, bool) {
	for _, loc := range locs {
		if loc.Type == t {
			return loc, true
		}
	}
	return domain.SavedLocation{}, false
}
