package maps

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type MapQuerier interface {
	MapItems(ctx context.Context, req domain.MapItemsRequest) (domain.MapItemsResponse, error)
	IncidentDetail(ctx context.Context, id int64) (*domain.Incident, error)
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.IncidentStats, error)
}

type Handler struct {
	logger *slog.Logger
	Map    MapQuerier
	Stats  StatsGetter
}

func NewHandler(logger *slog.Logger, mapSvc MapQuerier, stats StatsGetter) *Handler {
	return &Handler{
		logger: logger,
		Map:    mapSvc,
		Stats:  stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) MapItems(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("MapItems", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()
	req := domain.MapItemsRequest{
		MinLat: parseFloat(q.Get("min_lat"), 0),
		MinLon: parseFloat(q.Get("min_lon"), 0),
		MaxLat: parseFloat(q.Get("max_lat"), 0),
		MaxLon: parseFloat(q.Get("max_lon"), 0),
		Zoom:   parseFloat(q.Get("zoom"), 12),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("invalid viewport", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid viewport"})
		return
	}

	resp, err := h.Map.MapItems(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("map items served",
		slog.Int("items", len(resp.Items)),
		slog.Int("total", resp.Total),
		slog.Float64("zoom", req.Zoom),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) IncidentDetail(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid incident id"})
		return
	}

	inc, err := h.Map.IncidentDetail(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("incident detail served", slog.Int64("incident_id", id))
	h.writeJSON(w, http.StatusOK, inc)
}

func (h *Handler) IncidentStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("IncidentStats", slog.String("query", r.URL.RawQuery))

	req := domain.StatsRequest{
		Minutes: parseInt(r.URL.Query().Get("minutes"), 60),
	}

	stats, err := h.Stats.GetStats(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
