package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/geo"

	goredis "github.com/redis/go-redis/v9"
)

const RouteCacheTTL = 120 * time.Second

type RouteCacheService interface {
	Get(ctx context.Context, profile domain.RouteProfile, origin, dest geo.Point) (*domain.RouteQueryResponse, error)
	Set(ctx context.Context, profile domain.RouteProfile, origin, dest geo.Point, resp *domain.RouteQueryResponse) error
}

// RouteCache keeps scored route results for a short window so repeated
// queries for the same leg skip the routing provider. Keys bucket coordinates
// at 5 decimals (~1 m), matching the provider's own polyline precision.
type RouteCache struct {
	client *goredis.Client
}

func NewRouteCache(r *Redis) *RouteCache {
	return &RouteCache{client: r.Client}
}

func routeKey(profile domain.RouteProfile, origin, dest geo.Point) string {
	return fmt.Sprintf("route:%s:%.5f,%.5f-%.5f,%.5f",
		profile, origin.Lat, origin.Lon, dest.Lat, dest.Lon)
}

func (c *RouteCache) Get(ctx context.Context, profile domain.RouteProfile, origin, dest geo.Point) (*domain.RouteQueryResponse, error) {
	data, err := c.client.Get(ctx, routeKey(profile, origin, dest)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var resp domain.RouteQueryResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *RouteCache) Set(ctx context.Context, profile domain.RouteProfile, origin, dest geo.Point, resp *domain.RouteQueryResponse) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, routeKey(profile, origin, dest), b, RouteCacheTTL).Err()
}
