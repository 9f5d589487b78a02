package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/api"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/config"
	appredis "github.com/mcoutinho2512/app-Sentynela-Urban/internal/redis"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/routing"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/service"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/storage/postgres"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/workers"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/logger"
)

const alertQueueKey = "alerts:queue"

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *appredis.Redis
	Refresher  *workers.CacheRefresher
	Dispatcher *workers.AlertDispatcher // nil when no webhook is configured
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := appredis.NewRedis(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	incidentCache := appredis.NewIncidentCache(redisClient)
	routeCache := appredis.NewRouteCache(redisClient)
	alertQueue := appredis.NewAlertQueue(redisClient.Client, alertQueueKey)

	routingClient := routing.NewClient(cfg.Routing.BaseURL, cfg.Routing.APIKey, logger)

	mapSvc := service.NewMapService(storage.Incidents(), incidentCache, logger)
	routeSvc := service.NewRouteService(routingClient, storage.Incidents(), storage.Locations(), incidentCache, routeCache, logger)
	commuteSvc := service.NewCommuteService(storage.Locations(), logger)
	alertSvc := service.NewAlertService(storage.Alerts(), alertQueue, logger)
	statsSvc := service.NewStatsService(storage.Stats())

	srv := service.NewService(mapSvc, routeSvc, commuteSvc, alertSvc, statsSvc)

	refresher := workers.NewCacheRefresher(storage.Incidents(), incidentCache, alertSvc, logger)

	var dispatcher *workers.AlertDispatcher
	if cfg.Webhook.URL != "" {
		dispatcher = workers.NewAlertDispatcher(logger, cfg.Webhook, alertQueue)
	} else {
		logger.Warn("webhook disabled, alert events stay queued")
	}

	httpServer := api.NewServer(cfg, logger, srv)
	logger.Info("Initialized server")

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		Refresher:  refresher,
		Dispatcher: dispatcher,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
