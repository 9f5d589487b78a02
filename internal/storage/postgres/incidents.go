package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Incidents struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIncidents(pool *pgxpool.Pool, logger *slog.Logger) *Incidents {
	return &Incidents{pool: pool, logger: logger}
}

const incidentColumns = `
	id,
	type,
	severity,
	ST_Y(geo_point::geometry) AS lat,
	ST_X(geo_point::geometry) AS lon,
	created_at,
	confirmations,
	refutations,
	status
`

func (p *Incidents) Get(ctx context.Context, id int64) (*domain.Incident, error) {
	const op = "postgres.Incident.Get"

	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`

	inc, err := scanIncident(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.Int64("id", id))
		return nil, e.WrapError(ctx, op, err)
	}

	return inc, nil
}

func (p *Incidents) ListOpen(ctx context.Context) ([]domain.Incident, error) {
	const op = "postgres.Incident.ListOpen"

	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE status = 'open' ORDER BY created_at DESC`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return collectIncidents(ctx, op, rows, p.logger)
}

func (p *Incidents) ListViewport(ctx context.Context, minLat, minLon, maxLat, maxLon float64) ([]domain.Incident, error) {
	const op = "postgres.Incident.ListViewport"

	if minLat > maxLat || minLon > maxLon {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	// geo_point carries a GiST index; && against the envelope keeps the
	// viewport query on the index.
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE status = 'open'
		  AND geo_point && ST_MakeEnvelope($1, $2, $3, $4, 4326)
		ORDER BY created_at DESC`

	rows, err := p.pool.Query(ctx, query, minLon, minLat, maxLon, maxLat)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	return collectIncidents(ctx, op, rows, p.logger)
}

func scanIncident(row pgx.Row) (*domain.Incident, error) {
	var (
		inc      domain.Incident
		severity string
		status   string
	)
	err := row.Scan(
		&inc.ID,
		&inc.Type,
		&severity,
		&inc.Lat,
		&inc.Lon,
		&inc.CreatedAt,
		&inc.Confirmations,
		&inc.Refutations,
		&status,
	)
	if err != nil {
		return nil, err
	}
	inc.Severity = domain.ParseSeverity(severity)
	inc.Status = domain.IncidentStatus(status)
	return &inc, nil
}

func collectIncidents(ctx context.Context, op string, rows pgx.Rows, logger *slog.Logger) ([]domain.Incident, error) {
	incidents := make([]domain.Incident, 0, 32)
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		incidents = append(incidents, *inc)
	}
	if err := rows.Err(); err != nil {
		logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return incidents, nil
}
