package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/geo"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/service"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"

	mock_service "github.com/mcoutinho2512/app-Sentynela-Urban/internal/service/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func customReq() domain.CustomRouteRequest {
	return domain.CustomRouteRequest{
		OriginLat: -22.9068, OriginLon: -43.1729,
		DestLat: -22.9500, DestLon: -43.1800,
		Profile: domain.ProfileDrivingCar,
	}
}

func realCandidate(score float64) domain.RouteCandidate {
	return domain.RouteCandidate{
		Geometry:        json.RawMessage(`"_p~iF~ps|U"`),
		DurationSeconds: 600,
		DistanceMeters:  4200,
		RiskScore:       score,
	}
}

func TestRouteService_CustomRoute_ScoresAndCaches(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routing := mock_service.NewMockRoutingClient(ctrl)
	incidents := mock_service.NewMockIncidentRepository(ctrl)
	locations := mock_service.NewMockLocationRepository(ctrl)
	incCache := mock_service.NewMockIncidentCache(ctrl)
	cache := mock_service.NewMockRouteCache(ctrl)

	open := []domain.Incident{{ID: 1, Status: domain.IncidentOpen, Lat: -22.91, Lon: -43.18}}

	cache.EXPECT().
		Get(gomock.Any(), domain.ProfileDrivingCar, gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)
	incCache.EXPECT().
		GetOpen(gomock.Any()).
		Return(open, nil).
		Times(1)
	routing.EXPECT().
		FetchRoutes(gomock.Any(), gomock.Any(), gomock.Any(), domain.ProfileDrivingCar, open).
		Return([]domain.RouteCandidate{realCandidate(0.15), realCandidate(0.75)}, nil).
		Times(1)

	var cached *domain.RouteQueryResponse
	cache.EXPECT().
		Set(gomock.Any(), domain.ProfileDrivingCar, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.RouteProfile, _, _ geo.Point, resp *domain.RouteQueryResponse) error {
			cached = resp
			return nil
		}).
		Times(1)

	svc := service.NewRouteService(routing, incidents, locations, incCache, cache, testLogger())

	resp, err := svc.CustomRoute(context.Background(), customReq())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.QueryID == uuid.Nil {
		t.Fatalf("expected non-nil query id")
	}
	if resp.Unavailable {
		t.Fatalf("expected available result")
	}
	if len(resp.Routes) != 2 {
		t.Fatalf("expected 2 routes got=%d", len(resp.Routes))
	}
	if resp.Routes[0].RiskBand != "LOW" || resp.Routes[1].RiskBand != "HIGH" {
		t.Fatalf("unexpected bands: %s, %s", resp.Routes[0].RiskBand, resp.Routes[1].RiskBand)
	}
	if cached != resp {
		t.Fatalf("expected response written to cache")
	}
}

func TestRouteService_CustomRoute_CacheHitSkipsRouting(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routing := mock_service.NewMockRoutingClient(ctrl)
	incidents := mock_service.NewMockIncidentRepository(ctrl)
	locations := mock_service.NewMockLocationRepository(ctrl)
	incCache := mock_service.NewMockIncidentCache(ctrl)
	cache := mock_service.NewMockRouteCache(ctrl)

	want := &domain.RouteQueryResponse{QueryID: uuid.New()}
	cache.EXPECT().
		Get(gomock.Any(), domain.ProfileDrivingCar, gomock.Any(), gomock.Any()).
		Return(want, nil).
		Times(1)

	svc := service.NewRouteService(routing, incidents, locations, incCache, cache, testLogger())

	resp, err := svc.CustomRoute(context.Background(), customReq())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp != want {
		t.Fatalf("expected cached response")
	}
}

func TestRouteService_CustomRoute_AllDegenerateIsUnavailable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routing := mock_service.NewMockRoutingClient(ctrl)
	incidents := mock_service.NewMockIncidentRepository(ctrl)
	locations := mock_service.NewMockLocationRepository(ctrl)
	incCache := mock_service.NewMockIncidentCache(ctrl)
	cache := mock_service.NewMockRouteCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	incCache.EXPECT().GetOpen(gomock.Any()).Return([]domain.Incident{}, nil).Times(1)
	routing.EXPECT().
		FetchRoutes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.RouteCandidate{{Geometry: json.RawMessage("null")}}, nil).
		Times(1)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewRouteService(routing, incidents, locations, incCache, cache, testLogger())

	resp, err := svc.CustomRoute(context.Background(), customReq())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !resp.Unavailable {
		t.Fatalf("expected unavailable result")
	}
	if len(resp.Routes) != 0 {
		t.Fatalf("expected no routes got=%d", len(resp.Routes))
	}
}

func TestRouteService_CustomRoute_IncidentCacheMissFallsBackToRepo(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routing := mock_service.NewMockRoutingClient(ctrl)
	incidents := mock_service.NewMockIncidentRepository(ctrl)
	locations := mock_service.NewMockLocationRepository(ctrl)
	incCache := mock_service.NewMockIncidentCache(ctrl)
	cache := mock_service.NewMockRouteCache(ctrl)

	open := []domain.Incident{{ID: 5, Status: domain.IncidentOpen, Lat: -22.9, Lon: -43.2}}

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	gomock.InOrder(
		incCache.EXPECT().GetOpen(gomock.Any()).Return(nil, nil).Times(1),
		incidents.EXPECT().ListOpen(gomock.Any()).Return(open, nil).Times(1),
	)
	routing.EXPECT().
		FetchRoutes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), open).
		Return([]domain.RouteCandidate{realCandidate(0)}, nil).
		Times(1)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewRouteService(routing, incidents, locations, incCache, cache, testLogger())

	if _, err := svc.CustomRoute(context.Background(), customReq()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRouteService_CustomRoute_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewRouteService(
		mock_service.NewMockRoutingClient(ctrl),
		mock_service.NewMockIncidentRepository(ctrl),
		mock_service.NewMockLocationRepository(ctrl),
		mock_service.NewMockIncidentCache(ctrl),
		mock_service.NewMockRouteCache(ctrl),
		testLogger(),
	)

	req := customReq()
	req.OriginLat = 91

	_, err := svc.CustomRoute(context.Background(), req)
	if !errors.Is(err, e.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got: %v", err)
	}
}

func TestRouteService_CustomRoute_RoutingError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routing := mock_service.NewMockRoutingClient(ctrl)
	incCache := mock_service.NewMockIncidentCache(ctrl)
	cache := mock_service.NewMockRouteCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	incCache.EXPECT().GetOpen(gomock.Any()).Return([]domain.Incident{}, nil).Times(1)
	routing.EXPECT().
		FetchRoutes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, e.ErrRoutingProviderDown).
		Times(1)

	svc := service.NewRouteService(
		routing,
		mock_service.NewMockIncidentRepository(ctrl),
		mock_service.NewMockLocationRepository(ctrl),
		incCache,
		cache,
		testLogger(),
	)

	_, err := svc.CustomRoute(context.Background(), customReq())
	if !errors.Is(err, e.ErrRoutingProviderDown) {
		t.Fatalf("expected ErrRoutingProviderDown, got: %v", err)
	}
}

func TestRouteService_CommuteRoute_UsesHomeAndWork(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	routing := mock_service.NewMockRoutingClient(ctrl)
	locations := mock_service.NewMockLocationRepository(ctrl)
	incCache := mock_service.NewMockIncidentCache(ctrl)
	cache := mock_service.NewMockRouteCache(ctrl)

	home := domain.SavedLocation{ID: 1, Type: domain.LocationHome, Lat: -22.9068, Lon: -43.1729}
	work := domain.SavedLocation{ID: 2, Type: domain.LocationWork, Lat: -22.9500, Lon: -43.1800}

	locations.EXPECT().
		ListByUser(gomock.Any(), "u1").
		Return([]domain.SavedLocation{home, work}, nil).
		Times(1)
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	incCache.EXPECT().GetOpen(gomock.Any()).Return([]domain.Incident{}, nil).Times(1)
	routing.EXPECT().
		FetchRoutes(gomock.Any(), geo.Point{Lat: home.Lat, Lon: home.Lon}, geo.Point{Lat: work.Lat, Lon: work.Lon}, domain.ProfileCyclingRegular, gomock.Any()).
		Return([]domain.RouteCandidate{realCandidate(0.1)}, nil).
		Times(1)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	svc := service.NewRouteService(routing, mock_service.NewMockIncidentRepository(ctrl), locations, incCache, cache, testLogger())

	resp, err := svc.CommuteRoute(context.Background(), domain.CommuteRouteRequest{
		UserID:  "u1",
		Profile: domain.ProfileCyclingRegular,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(resp.Routes) != 1 {
		t.Fatalf("expected 1 route got=%d", len(resp.Routes))
	}
}

func TestRouteService_CommuteRoute_MissingHomeOrWork(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	locations := mock_service.NewMockLocationRepository(ctrl)
	locations.EXPECT().
		ListByUser(gomock.Any(), "u1").
		Return([]domain.SavedLocation{
			{ID: 1, Type: domain.LocationHome, Lat: -22.9, Lon: -43.1},
		}, nil).
		Times(1)

	svc := service.NewRouteService(
		mock_service.NewMockRoutingClient(ctrl),
		mock_service.NewMockIncidentRepository(ctrl),
		locations,
		mock_service.NewMockIncidentCache(ctrl),
		mock_service.NewMockRouteCache(ctrl),
		testLogger(),
	)

	_, err := svc.CommuteRoute(context.Background(), domain.CommuteRouteRequest{
		UserID:  "u1",
		Profile: domain.ProfileDrivingCar,
	})
	if !errors.Is(err, e.ErrMissingHomeOrWork) {
		t.Fatalf("expected ErrMissingHomeOrWork, got: %v", err)
	}
}
