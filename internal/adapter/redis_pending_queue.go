package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"readiness-engine/internal/cache"
	"readiness-engine/internal/domain"

	"github.com/redis/go-redis/v9"
)

// PendingTTL is how long a failed submission stays queued for replay before
// it is dropped. After that the data is gone; replay is best effort.
const PendingTTL = 24 * time.Hour

// RedisPendingQueue implements domain.PendingQueue with one Redis list per
// client fingerprint. The list key carries the expiry, so an abandoned queue
// cleans itself up.
type RedisPendingQueue struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPendingQueue creates a queue with the default entry lifetime.
func NewRedisPendingQueue(client *redis.Client) domain.PendingQueue {
	return &RedisPendingQueue{client: client, ttl: PendingTTL}
}

func pendingKey(fingerprint string) string {
	return cache.GenerateCacheKey("queue", "pending", fingerprint)
}

// Enqueue appends a submission to the client's pending list and refreshes
// the list expiry.
func (q *RedisPendingQueue) Enqueue(ctx context.Context, fingerprint string, sub *domain.Submission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal pending submission: %w", err)
	}

	key := pendingKey(fingerprint)
	if err := q.client.RPush(ctx, key, string(payload)).Err(); err != nil {
		return err
	}
	return q.client.Expire(ctx, key, q.ttl).Err()
}

// List returns the client's queued submissions in enqueue order.
func (q *RedisPendingQueue) List(ctx context.Context, fingerprint string) ([]*domain.Submission, error) {
	entries, err := q.client.LRange(ctx, pendingKey(fingerprint), 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	subs := make([]*domain.Submission, 0, len(entries))
	for _, entry := range entries {
		var sub domain.Submission
		if err := json.Unmarshal([]byte(entry), &sub); err != nil {
			// A corrupt entry is skipped, not fatal: the queue is best effort.
			continue
		}
		subs = append(subs, &sub)
	}
	return subs, nil
}

// Clear drops the client's pending list.
func (q *RedisPendingQueue) Clear(ctx context.Context, fingerprint string) error {
	return q.client.Del(ctx, pendingKey(fingerprint)).Err()
}
