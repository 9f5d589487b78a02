package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) SeverityStats(ctx context.Context, minutes int) (*domain.IncidentStats, error) {
	const op = "postgres.Stats.SeverityStats"

	if minutes <= 0 || minutes > 1440 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		SELECT severity, COUNT(*)
		FROM incidents
		WHERE status = 'open'
		  AND created_at >= NOW() - ($1 * INTERVAL '1 minute')
		GROUP BY severity
	`

	rows, err := p.pool.Query(ctx, query, minutes)
	if err != nil {
		p.logger.Error("db query failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.Int("minutes", minutes),
		)
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	stats := &domain.IncidentStats{
		BySeverity: make(map[domain.Severity]int64, 3),
	}
	for rows.Next() {
		var (
			severity string
			count    int64
		)
		if err := rows.Scan(&severity, &count); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats.BySeverity[domain.ParseSeverity(severity)] += count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}
