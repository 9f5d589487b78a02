package workers

import (
	"context"
	"time"

	"log/slog"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
)

const (
	refreshInterval = 30 * time.Second
	// TTL outlives two refresh cycles so a slow Postgres query does not
	// leave the map and routing paths without a cache.
	cacheTTL = 90 * time.Second
)

type IncidentSource interface {
	ListOpen(ctx context.Context) ([]domain.Incident, error)
}

type IncidentSink interface {
	SetOpen(ctx context.Context, incidents []domain.Incident, ttl time.Duration) error
}

type AlertMatcher interface {
	MatchIncident(ctx context.Context, inc domain.Incident) (int, error)
}

// CacheRefresher keeps the Redis open-incident set warm. The map and route
// services read the cache first and fall back to Postgres on a miss. It is
// also the point where fresh incidents enter the system, so incidents not
// seen on a previous pass are fanned out to the alert matcher.
type CacheRefresher struct {
	source  IncidentSource
	sink    IncidentSink
	matcher AlertMatcher
	logger  *slog.Logger

	seen   map[int64]struct{}
	warmed bool
}

func NewCacheRefresher(source IncidentSource, sink IncidentSink, matcher AlertMatcher, logger *slog.Logger) *CacheRefresher {
	return &CacheRefresher{
		source:  source,
		sink:    sink,
		matcher: matcher,
		logger:  logger,
		seen:    make(map[int64]struct{}),
	}
}

func (w *CacheRefresher) Run(ctx context.Context) {
	w.logger.Info("cacheRefresher STARTED")

	// warm the cache immediately, then tick
	w.refresh(ctx)

	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("cacheRefresher STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *CacheRefresher) refresh(ctx context.Context) {
	incidents, err := w.source.ListOpen(ctx)
	if err != nil {
		w.logger.Error("load open incidents failed", slog.Any("error", err))
		return
	}

	if err := w.sink.SetOpen(ctx, incidents, cacheTTL); err != nil {
		w.logger.Error("write incident cache failed", slog.Any("error", err))
		return
	}

	w.matchNew(ctx, incidents)

	w.logger.Debug("incident cache refreshed", slog.Int("incidents", len(incidents)))
}

// matchNew runs alert matching for incidents that appeared since the last
// pass. The warm-up pass only seeds the seen set: incidents already open at
// startup were either matched before a restart or are stale, and re-alerting
// on them would spam every subscriber.
func (w *CacheRefresher) matchNew(ctx context.Context, incidents []domain.Incident) {
	fresh := make([]domain.Incident, 0)
	next := make(map[int64]struct{}, len(incidents))
	for _, inc := range incidents {
		next[inc.ID] = struct{}{}
		if _, ok := w.seen[inc.ID]; !ok {
			fresh = append(fresh, inc)
		}
	}
	w.seen = next

	if !w.warmed {
		w.warmed = true
		return
	}

	for _, inc := range fresh {
		matched, err := w.matcher.MatchIncident(ctx, inc)
		if err != nil {
			w.logger.Error("alert matching failed",
				slog.Int64("incident_id", inc.ID),
				slog.Any("error", err),
			)
			continue
		}
		if matched > 0 {
			w.logger.Info("alerts queued",
				slog.Int64("incident_id", inc.ID),
				slog.Int("matched", matched),
			)
		}
	}
}
