package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Alerts struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAlerts(pool *pgxpool.Pool, logger *slog.Logger) *Alerts {
	return &Alerts{pool: pool, logger: logger}
}

func (p *Alerts) ListEnabledPreferences(ctx context.Context) ([]domain.AlertPreference, error) {
	const op = "postgres.Alert.ListEnabledPreferences"

	const query = `
		SELECT id,
			   user_id,
			   ST_Y(center::geometry) AS center_lat,
			   ST_X(center::geometry) AS center_lon,
			   radius_km,
			   min_severity,
			   enabled
		FROM alert_preferences
		WHERE enabled = true
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	prefs := make([]domain.AlertPreference, 0, 8)
	for rows.Next() {
		var (
			pref     domain.AlertPreference
			severity string
		)
		if err := rows.Scan(
			&pref.ID,
			&pref.UserID,
			&pref.CenterLat,
			&pref.CenterLon,
			&pref.RadiusKm,
			&severity,
			&pref.Enabled,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		pref.MinSeverity = domain.ParseSeverity(severity)
		prefs = append(prefs, pref)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return prefs, nil
}

func (p *Alerts) SaveEvent(ctx context.Context, event *domain.AlertEvent) error {
	const op = "postgres.Alert.SaveEvent"

	if event == nil || event.UserID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if event.Lat < -90 || event.Lat > 90 || event.Lon < -180 || event.Lon > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO alert_events (id, user_id, incident_id, type, severity, geo_point, distance_km, created_at)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326), $8, $9)
	`

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	_, err := p.pool.Exec(ctx, query,
		event.ID,
		event.UserID,
		event.IncidentID,
		event.Type,
		string(event.Severity),
		event.Lon,
		event.Lat,
		event.DistanceKm,
		event.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("user_id", event.UserID),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}
