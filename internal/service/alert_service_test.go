package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/geo"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/service"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"

	mock_service "github.com/mcoutinho2512/app-Sentynela-Urban/internal/service/mocks"
)

func TestAlertService_Preview_ClosedRing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewAlertService(
		mock_service.NewMockAlertRepository(ctrl),
		mock_service.NewMockAlertQueue(ctrl),
		testLogger(),
	)

	resp, err := svc.Preview(context.Background(), domain.AlertPreviewRequest{
		Lat: -22.9068, Lon: -43.1729, RadiusKm: 1,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if resp.Type != "Polygon" {
		t.Fatalf("expected Polygon got=%s", resp.Type)
	}
	if len(resp.Coordinates) != 1 {
		t.Fatalf("expected 1 ring got=%d", len(resp.Coordinates))
	}

	ring := resp.Coordinates[0]
	if len(ring) != geo.DefaultCircleSteps+1 {
		t.Fatalf("expected %d positions got=%d", geo.DefaultCircleSteps+1, len(ring))
	}
	first, last := ring[0], ring[len(ring)-1]
	if first[0] != last[0] || first[1] != last[1] {
		t.Fatalf("expected closed ring: first=%v last=%v", first, last)
	}
}

func TestAlertService_Preview_InvalidRadius(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewAlertService(
		mock_service.NewMockAlertRepository(ctrl),
		mock_service.NewMockAlertQueue(ctrl),
		testLogger(),
	)

	_, err := svc.Preview(context.Background(), domain.AlertPreviewRequest{
		Lat: -22.9068, Lon: -43.1729, RadiusKm: 0,
	})
	if !errors.Is(err, e.ErrInvalidRadius) {
		t.Fatalf("expected ErrInvalidRadius, got: %v", err)
	}
}

func TestAlertService_MatchIncident_EnqueuesMatches(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAlertRepository(ctrl)
	queue := mock_service.NewMockAlertQueue(ctrl)

	inc := domain.Incident{
		ID:       7,
		Type:     "assalto",
		Severity: domain.SeverityAlta,
		Lat:      -22.9068,
		Lon:      -43.1729,
		Status:   domain.IncidentOpen,
	}

	prefs := []domain.AlertPreference{
		// ~0 km away, matches
		{ID: 1, UserID: "near", CenterLat: -22.9068, CenterLon: -43.1729, RadiusKm: 0.5, MinSeverity: domain.SeverityBaixa, Enabled: true},
		// São Paulo, far outside the radius
		{ID: 2, UserID: "far", CenterLat: -23.5505, CenterLon: -46.6333, RadiusKm: 1, MinSeverity: domain.SeverityBaixa, Enabled: true},
	}

	repo.EXPECT().ListEnabledPreferences(gomock.Any()).Return(prefs, nil).Times(1)

	var saved *domain.AlertEvent
	repo.EXPECT().
		SaveEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.AlertEvent) error {
			saved = event
			return nil
		}).
		Times(1)

	var queued domain.AlertEvent
	queue.EXPECT().
		Enqueue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event domain.AlertEvent) error {
			queued = event
			return nil
		}).
		Times(1)

	svc := service.NewAlertService(repo, queue, testLogger())

	matched, err := svc.MatchIncident(context.Background(), inc)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if matched != 1 {
		t.Fatalf("expected 1 match got=%d", matched)
	}
	if saved == nil || saved.UserID != "near" || saved.IncidentID != 7 {
		t.Fatalf("unexpected saved event: %+v", saved)
	}
	if queued.UserID != "near" || queued.Severity != domain.SeverityAlta {
		t.Fatalf("unexpected queued event: %+v", queued)
	}
	if queued.DistanceKm > 0.01 {
		t.Fatalf("expected near-zero distance got=%v", queued.DistanceKm)
	}
}

func TestAlertService_MatchIncident_SeverityFloor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAlertRepository(ctrl)
	queue := mock_service.NewMockAlertQueue(ctrl)

	inc := domain.Incident{
		ID:       7,
		Severity: domain.SeverityBaixa,
		Lat:      -22.9068,
		Lon:      -43.1729,
		Status:   domain.IncidentOpen,
	}

	// Subscriber only wants alta; baixa incident must not alert.
	repo.EXPECT().
		ListEnabledPreferences(gomock.Any()).
		Return([]domain.AlertPreference{
			{ID: 1, UserID: "u1", CenterLat: -22.9068, CenterLon: -43.1729, RadiusKm: 1, MinSeverity: domain.SeverityAlta, Enabled: true},
		}, nil).
		Times(1)

	svc := service.NewAlertService(repo, queue, testLogger())

	matched, err := svc.MatchIncident(context.Background(), inc)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if matched != 0 {
		t.Fatalf("expected 0 matches got=%d", matched)
	}
}

func TestAlertService_MatchIncident_SkipsNonOpen(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewAlertService(
		mock_service.NewMockAlertRepository(ctrl),
		mock_service.NewMockAlertQueue(ctrl),
		testLogger(),
	)

	matched, err := svc.MatchIncident(context.Background(), domain.Incident{
		ID:     1,
		Status: domain.IncidentResolved,
		Lat:    -22.9, Lon: -43.1,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if matched != 0 {
		t.Fatalf("expected 0 matches got=%d", matched)
	}
}

func TestAlertService_MatchIncident_SaveErrorSkipsEnqueue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockAlertRepository(ctrl)
	queue := mock_service.NewMockAlertQueue(ctrl)

	repo.EXPECT().
		ListEnabledPreferences(gomock.Any()).
		Return([]domain.AlertPreference{
			{ID: 1, UserID: "u1", CenterLat: -22.9068, CenterLon: -43.1729, RadiusKm: 1, MinSeverity: domain.SeverityBaixa, Enabled: true},
		}, nil).
		Times(1)
	repo.EXPECT().
		SaveEvent(gomock.Any(), gomock.Any()).
		Return(errors.New("db down")).
		Times(1)
	// queue.Enqueue must not be called

	svc := service.NewAlertService(repo, queue, testLogger())

	matched, err := svc.MatchIncident(context.Background(), domain.Incident{
		ID:       1,
		Severity: domain.SeverityMedia,
		Lat:      -22.9068,
		Lon:      -43.1729,
		Status:   domain.IncidentOpen,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if matched != 0 {
		t.Fatalf("expected 0 matches got=%d", matched)
	}
}
