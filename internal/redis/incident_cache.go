package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

type IncidentCacheService interface {
	GetOpen(ctx context.Context) ([]domain.Incident, error)
	SetOpen(ctx context.Context, incidents []domain.Incident, ttl time.Duration) error
}

// IncidentCache holds the full open-incident set, warmed by the refresher
// worker. A miss returns (nil, nil) so callers fall back to Postgres.
type IncidentCache struct {
	client *goredis.Client
	key    string
}

func NewIncidentCache(r *Redis) *IncidentCache {
	return &IncidentCache{
		client: r.Client,
		key:    "incidents:open",
	}
}

func (c *IncidentCache) GetOpen(ctx context.Context) ([]domain.Incident, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var incidents []domain.Incident
	if err := json.Unmarshal(data, &incidents); err != nil {
		return nil, err
	}

	return incidents, nil
}

func (c *IncidentCache) SetOpen(ctx context.Context, incidents []domain.Incident, ttl time.Duration) error {
	b, err := json.Marshal(incidents)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
