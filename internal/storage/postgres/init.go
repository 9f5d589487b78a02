package postgres

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/config"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	Pool     *pgxpool.Pool
	Incident IncidentRepository
	Location LocationRepository
	Alert    AlertRepository
	Stat     StatsRepository
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	logger.Info("Connecting to Postgres", "host", cfg.Postgres.Host, "db", cfg.Postgres.Database)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("Failed to parse pgx config", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		logger.Error("Failed to create pgx pool", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	logger.Info("Pinging Postgres database")
	err = pool.Ping(ctx)
	if err != nil {
		logger.Error("Failed to ping Postgres database", slog.String("error", err.Error()))
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("Connected to Postgres successfully")

	pg := &Postgres{
		Pool:     pool,
		Incident: NewIncidents(pool, logger),
		Location: NewLocations(pool, logger),
		Alert:    NewAlerts(pool, logger),
		Stat:     NewStats(pool, logger),
	}

	logger.Info("Postgres repositories created")
	return pg, nil
}
