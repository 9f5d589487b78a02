package service

import (
	"context"
	"time"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/geo"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type MapService interface {
	MapItems(ctx context.Context, req domain.MapItemsRequest) (domain.MapItemsResponse, error)
	IncidentDetail(ctx context.Context, id int64) (*domain.Incident, error)
}

type RouteService interface {
	CustomRoute(ctx context.Context, req domain.CustomRouteRequest) (*domain.RouteQueryResponse, error)
	CommuteRoute(ctx context.Context, req domain.CommuteRouteRequest) (*domain.RouteQueryResponse, error)
}

type CommuteService interface {
	Suggest(ctx context.Context, req domain.CommuteSuggestionRequest) (domain.CommuteSuggestion, error)
}

type AlertService interface {
	Preview(ctx context.Context, req domain.AlertPreviewRequest) (domain.AlertPreviewResponse, error)
	MatchIncident(ctx context.Context, inc domain.Incident) (int, error)
}

type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.IncidentStats, error)
}

// Consumer-side ports. The storage, redis and routing packages satisfy them.
type IncidentRepository interface {
	Get(ctx context.Context, id int64) (*domain.Incident, error)
	ListOpen(ctx context.Context) ([]domain.Incident, error)
	ListViewport(ctx context.Context, minLat, minLon, maxLat, maxLon float64) ([]domain.Incident, error)
}

type LocationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.SavedLocation, error)
}

type AlertRepository interface {
	ListEnabledPreferences(ctx context.Context) ([]domain.AlertPreference, error)
	SaveEvent(ctx context.Context, event *domain.AlertEvent) error
}

type StatsRepository interface {
	SeverityStats(ctx context.Context, minutes int) (*domain.IncidentStats, error)
}

type IncidentCache interface {
	GetOpen(ctx context.Context) ([]domain.Incident, error)
	SetOpen(ctx context.Context, incidents []domain.Incident, ttl time.Duration) error
}

type RouteCache interface {
	Get(ctx context.Context, profile domain.RouteProfile, origin, dest geo.Point) (*domain.RouteQueryResponse, error)
	Set(ctx context.Context, profile domain.RouteProfile, origin, dest geo.Point, resp *domain.RouteQueryResponse) error
}

type RoutingClient interface {
	FetchRoutes(ctx context.Context, origin, dest geo.Point, profile domain.RouteProfile, incidents []domain.Incident) ([]domain.RouteCandidate, error)
}

type AlertQueue interface {
	Enqueue(ctx context.Context, event domain.AlertEvent) error
}

type Service struct {
	MapService     MapService
	RouteService   RouteService
	CommuteService CommuteService
	AlertService   AlertService
	StatsService   StatsService
}

func NewService(
	mapService MapService,
	routeService RouteService,
	commuteService CommuteService,
	alertService AlertService,
	statsService StatsService,
) *Service {
	return &Service{
		MapService:     mapService,
		RouteService:   routeService,
		CommuteService: commuteService,
		AlertService:   alertService,
		StatsService:   statsService,
	}
}
