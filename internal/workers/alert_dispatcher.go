package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"log/slog"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/config"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"
)

type AlertQueue interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.AlertEvent, error)
}

// AlertDispatcher drains the Redis alert queue and delivers each event to the
// notification webhook.
type AlertDispatcher struct {
	logger *slog.Logger
	cfg    config.WebhookConfig
	queue  AlertQueue
	http   *http.Client
}

func NewAlertDispatcher(logger *slog.Logger, cfg config.WebhookConfig, queue AlertQueue) *AlertDispatcher {
	return &AlertDispatcher{
		logger: logger,
		cfg:    cfg,
		queue:  queue,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (w *AlertDispatcher) Run(ctx context.Context) {
	w.logger.Info("alertDispatcher STARTED", slog.String("url", w.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("alertDispatcher STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		event, err := w.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) {
				continue
			}
			w.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		w.logger.Info("dispatching alert",
			slog.String("user_id", event.UserID),
			slog.Int64("incident_id", event.IncidentID),
		)
		w.sendWithRetry(ctx, event)
	}
}

func (w *AlertDispatcher) sendWithRetry(ctx context.Context, event domain.AlertEvent) {
	const maxRetries = 3

	body, err := json.Marshal(event)
	if err != nil {
		w.logger.Error("marshal alert event failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			w.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.URL, bytes.NewReader(body))
		if err != nil {
			w.logger.Error("create alert request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := w.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		w.logger.Warn("alert delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", w.cfg.URL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}

	w.logger.Error("alert dropped after retries",
		slog.String("user_id", event.UserID),
		slog.Int64("incident_id", event.IncidentID),
	)
}
