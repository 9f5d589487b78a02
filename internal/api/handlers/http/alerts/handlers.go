package alerts

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/validator"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type AlertPreviewer interface {
	Preview(ctx context.Context, req domain.AlertPreviewRequest) (domain.AlertPreviewResponse, error)
}

type Handler struct {
	logger *slog.Logger
	Alerts AlertPreviewer
}

func NewHandler(logger *slog.Logger, alerts AlertPreviewer) *Handler {
	return &Handler{
		logger: logger,
		Alerts: alerts,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// AlertPreview returns the GeoJSON polygon the map renders while the user
// drags the alert-radius slider.
func (h *Handler) AlertPreview(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AlertPreview", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	req := domain.AlertPreviewRequest{
		Lat:      parseFloat(q.Get("lat"), 0),
		Lon:      parseFloat(q.Get("lon"), 0),
		RadiusKm: parseFloat(q.Get("radius_km"), 0),
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("invalid preview request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.Alerts.Preview(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}
