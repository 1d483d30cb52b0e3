package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"citygis/internal/domain"
	"citygis/pkg/e"

	"github.com/redis/go-redis/v9"
)

// OrphanQueue is a redis list carrying OrphanRecords from a failed
// compensation to the reconciler worker.
type OrphanQueue struct {
	client *redis.Client
	key    string
}

func NewOrphanQueue(client *redis.Client, key string) *OrphanQueue {
	return &OrphanQueue{client: client, key: key}
}

func (q *OrphanQueue) Enqueue(ctx context.Context, record domain.OrphanRecord) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *OrphanQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.OrphanRecord, error) {
	var rec domain.OrphanRecord

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return rec, e.ErrQueueEmpty
		}
		return rec, err
	}
	if len(res) < 2 {
		return rec, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &rec); err != nil {
		return rec, err
	}
	return rec, nil
}
