package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Locations struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewLocations(pool *pgxpool.Pool, logger *slog.Logger) *Locations {
	return &Locations{pool: pool, logger: logger}
}

func (p *Locations) ListByUser(ctx context.Context, userID string) ([]domain.SavedLocation, error) {
	const op = "postgres.Location.ListByUser"

	if userID == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT id,
			   label,
			   type,
			   ST_Y(geo_point::geometry) AS lat,
			   ST_X(geo_point::geometry) AS lon
		FROM saved_locations
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := p.pool.Query(ctx, query, userID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err), slog.String("user_id", userID))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	locations := make([]domain.SavedLocation, 0, 4)
	for rows.Next() {
		var (
			loc domain.SavedLocation
			typ string
		)
		if err := rows.Scan(&loc.ID, &loc.Label, &typ, &loc.Lat, &loc.Lon); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		loc.Type = domain.LocationType(typ)
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return locations, nil
}
