package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mcoutinho2512/app-Sentynela-Urban/internal/domain"
	"github.com/mcoutinho2512/app-Sentynela-Urban/pkg/e"

	"github.com/redis/go-redis/v9"
)

// AlertQueue is the Redis list between incident matching and webhook
// dispatch. LPush/BRPop gives FIFO delivery with a blocking consumer.
type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, event domain.AlertEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.AlertEvent, error) {
	var event domain.AlertEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return event, e.ErrAlertQueueEmpty
		}
		return event, err
	}
	if len(res) < 2 {
		return event, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &event); err != nil {
		return event, err
	}
	return event, nil
}
