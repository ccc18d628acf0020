package sink

import (
	"context"
	"encoding/json"
	"fmt"

	redisV9 "github.com/redis/go-redis/v9"

	"github.com/syncq/go-syncq/pkg/database/redis"
)

// ListPusher is the subset of redis commands the sink needs.
// It is satisfied by redis.UniversalClient.
type ListPusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redisV9.IntCmd
}

var _ ListPusher = (redisV9.UniversalClient)(nil)

// RedisList delivers batches to the tail of a Redis list.
// Each item is appended as one JSON-encoded element.
type RedisList[T any] struct {
	client ListPusher
	key    string
}

var _ Sink[any] = (*RedisList[any])(nil)

// NewRedisList creates a Redis list sink backed by the given engine.
func NewRedisList[T any](engine *redis.RedisEngine, key string) *RedisList[T] {
	return NewRedisListWithClient[T](engine.Client(), key)
}

// NewRedisListWithClient creates a Redis list sink on top of an existing client.
func NewRedisListWithClient[T any](client ListPusher, key string) *RedisList[T] {
	return &RedisList[T]{
		client: client,
		key:    key,
	}
}

// Consume appends the batch with a single RPUSH call.
func (r *RedisList[T]) Consume(ctx context.Context, batch []T) error {
	if len(batch) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(batch))
	for _, item := range batch {
		value, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}

		values = append(values, value)
	}

	if err := r.client.RPush(ctx, r.key, values...).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return nil
}
