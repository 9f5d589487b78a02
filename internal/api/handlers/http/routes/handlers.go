package routes

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/validator"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type RouteQuerier interface {
	CustomRoute(ctx context.Context, req domain.CustomRouteRequest) (*domain.RouteQueryResponse, error)
	CommuteRoute(ctx context.Context, req domain.CommuteRouteRequest) (*domain.RouteQueryResponse, error)
}

type CommuteSuggester interface {
	Suggest(ctx context.Context, req domain.CommuteSuggestionRequest) (domain.CommuteSuggestion, error)
}

type Handler struct {
	logger  *slog.Logger
	Routes  RouteQuerier
	Commute CommuteSuggester
}

func NewHandler(logger *slog.Logger, routes RouteQuerier, commute CommuteSuggester) *Handler {
	return &Handler{
		logger:  logger,
		Routes:  routes,
		Commute: commute,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// decodeStrict rejects unknown fields and trailing data after the first
// JSON object.
func (h *Handler) decodeStrict(w http.ResponseWriter, r *http.Request, target any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}
	return true
}

func (h *Handler) CustomRoute(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CustomRoute", slog.String("remote", r.RemoteAddr))

	var req domain.CustomRouteRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("invalid route request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.Routes.CustomRoute(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("route query served",
		slog.String("profile", string(req.Profile)),
		slog.Int("routes", len(resp.Routes)),
		slog.Bool("unavailable", resp.Unavailable),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) CommuteRoute(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CommuteRoute", slog.String("remote", r.RemoteAddr))

	var req domain.CommuteRouteRequest
	if !h.decodeStrict(w, r, &req) {
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("invalid commute request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.Routes.CommuteRoute(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("commute route served",
		slog.String("user_id", req.UserID),
		slog.Int("routes", len(resp.Routes)),
		slog.Bool("unavailable", resp.Unavailable),
	)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) CommuteSuggestion(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("CommuteSuggestion", slog.String("query", r.URL.RawQuery))

	q := r.URL.Query()
	req := domain.CommuteSuggestionRequest{
		UserID: q.Get("user_id"),
		Lat:    parseFloat(q.Get("lat"), 0),
		Lon:    parseFloat(q.Get("lon"), 0),
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("invalid suggestion request", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	suggestion, err := h.Commute.Suggest(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("commute suggestion served",
		slog.String("user_id", req.UserID),
		slog.String("kind", string(suggestion.Kind)),
	)
	h.writeJSON(w, http.StatusOK, suggestion)
}
