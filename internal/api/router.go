package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/api/handlers/http/alerts"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/api/handlers/http/maps"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/api/handlers/http/routes"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/api/handlers/http/system"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/config"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/middleware"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	mapHandler := maps.NewHandler(logger, svc.MapService, svc.StatsService)
	routeHandler := routes.NewHandler(logger, svc.RouteService, svc.CommuteService)
	alertHandler := alerts.NewHandler(logger, svc.AlertService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, mapHandler, routeHandler, alertHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	cfg *config.Config,
	mapHandler *maps.Handler,
	routeHandler *routes.Handler,
	alertHandler *alerts.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// MAP
		api.Route("/map", func(mr chi.Router) {
			mr.Use(middleware.Limit(20, 40, 5*time.Minute, logger))
			mr.Get("/items", mapHandler.MapItems)
			mr.Get("/incidents/{id}", mapHandler.IncidentDetail)

			// stats feed the ops dashboard, not the app
			mr.Group(func(sr chi.Router) {
				sr.Use(middleware.APIKeyMiddleware(cfg.APIKey))
				sr.Get("/stats", mapHandler.IncidentStats)
			})
		})

		// ROUTES, rate limited tighter: every miss hits the directions provider
		api.Route("/routes", func(rr chi.Router) {
			rr.Use(middleware.Limit(5, 10, 5*time.Minute, logger))
			rr.Post("/custom", routeHandler.CustomRoute)
			rr.Post("/commute", routeHandler.CommuteRoute)
		})

		// COMMUTE
		api.Route("/commute", func(cr chi.Router) {
			cr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			cr.Get("/suggestion", routeHandler.CommuteSuggestion)
		})

		// ALERTS
		api.Route("/alerts", func(ar chi.Router) {
			ar.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			ar.Get("/preview", alertHandler.AlertPreview)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
