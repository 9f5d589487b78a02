package postgres

import (
	"context"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
)

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

func (p *Postgres) Incidents() IncidentRepository { return p.Incident }
func (p *Postgres) Locations() LocationRepository { return p.Location }
func (p *Postgres) Alerts() AlertRepository       { return p.Alert }
func (p *Postgres) Stats() StatsRepository        { return p.Stat }
