package service

import (
	"context"

	"log/slog"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/geo"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/proximity"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"
)

type commuteService struct {
	locations LocationRepository
	logger    *slog.Logger
}

func NewCommuteService(locations LocationRepository, logger *slog.Logger) CommuteService {
	return &commuteService{locations: locations, logger: logger}
}

func (s *commuteService) Suggest(ctx context.Context, req domain.CommuteSuggestionRequest) (domain.CommuteSuggestion, error) {
	current := geo.Point{Lat: req.Lat, Lon: req.Lon}
	if !current.Valid() {
		return domain.CommuteSuggestion{}, e.ErrInvalidCoordinates
	}

	locs, err := s.locations.ListByUser(ctx, req.UserID)
	if err != nil {
		return domain.CommuteSuggestion{}, err
	}

	suggestion := proximity.SuggestCommute(current, locs)

	s.logger.Debug("commute suggestion",
		slog.String("user_id", req.UserID),
		slog.String("kind", string(suggestion.Kind)),
	)

	return suggestion, nil
}
