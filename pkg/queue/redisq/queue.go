package redisq

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisV9 "github.com/redis/go-redis/v9"

	"github.com/syncq/go-syncq/pkg/database/redis"
	"github.com/syncq/go-syncq/pkg/queue"
	"github.com/syncq/go-syncq/pkg/utils"
)

const (
	defaultKey             = "syncq:queue"
	defaultBlockInterval   = time.Second
	defaultMinRetryBackoff = 8 * time.Millisecond
	defaultMaxRetryBackoff = 512 * time.Millisecond
)

// closedSentinel marks the end of a closed queue. The leading NUL byte
// keeps it out of the JSON value space.
const closedSentinel = "\x00closed\x00"

// Push outcomes of pushScript.
const (
	pushClosed = -1
	pushFull   = 0
	pushOK     = 1
)

// pushScript appends an item unless the queue is closed or at capacity.
// KEYS[1] list, KEYS[2] closed marker, ARGV[1] payload, ARGV[2] capacity.
var pushScript = redisV9.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 1 then
	return -1
end
local cap = tonumber(ARGV[2])
if cap > 0 and redis.call('LLEN', KEYS[1]) >= cap then
	return 0
end
redis.call('RPUSH', KEYS[1], ARGV[1])
return 1
`)

// Config holds the queue keys and timing knobs.
type Config struct {
	Key             string        // list key, default "syncq:queue"
	Capacity        int           // max items, 0 = unbounded
	BlockInterval   time.Duration // BLPOP time slice, default 1s
	MinRetryBackoff time.Duration // initial full-queue retry delay, default 8ms
	MaxRetryBackoff time.Duration // full-queue retry delay cap, default 512ms
}

// Queue is a FIFO queue over a Redis list shared by multiple processes.
//
// It implements the same contract as queue.Blocking: Enqueue blocks while
// the queue is at capacity, Dequeue blocks while it is empty, and Close
// lets consumers drain the remaining items before they observe ErrClosed.
// Redis has no cross-process condition variable, so a full queue is waited
// out with a capped backoff poll and an empty one with BLPOP time slices.
type Queue[T any] struct {
	client    redisV9.UniversalClient
	codec     Codec[T]
	config    Config
	closedKey string
}

var _ queue.Queue[int] = (*Queue[int])(nil)

// New creates a distributed queue backed by the given engine.
func New[T any](engine *redis.RedisEngine, config Config) (*Queue[T], error) {
	return NewWithClient[T](engine.Client(), config)
}

// NewWithClient creates a distributed queue on top of an existing client.
func NewWithClient[T any](client redisV9.UniversalClient, config Config) (*Queue[T], error) {
	if config.Capacity < 0 {
		return nil, queue.ErrNegativeCapacity
	}

	q := &Queue[T]{
		client: client,
		codec:  JSONCodec[T]{},
		config: config,
	}
	q.setDefaultConfig()
	q.closedKey = q.config.Key + ":closed"

	return q, nil
}

func (q *Queue[T]) setDefaultConfig() {
	if q.config.Key == "" {
		q.config.Key = defaultKey
	}

	if q.config.BlockInterval <= 0 {
		q.config.BlockInterval = defaultBlockInterval
	}

	if q.config.MinRetryBackoff <= 0 {
		q.config.MinRetryBackoff = defaultMinRetryBackoff
	}

	if q.config.MaxRetryBackoff < q.config.MinRetryBackoff {
		q.config.MaxRetryBackoff = defaultMaxRetryBackoff
	}
}

// SetCodec replaces the default JSON codec. Call it before first use.
func (q *Queue[T]) SetCodec(codec Codec[T]) {
	q.codec = codec
}

// Enqueue adds an item at the tail of the queue.
// It blocks while the queue is at capacity, until space becomes available,
// the queue is closed, or ctx is done.
func (q *Queue[T]) Enqueue(ctx context.Context, item T) error {
	payload, err := q.codec.Encode(item)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	backoff := q.config.MinRetryBackoff
	for {
		pushed, err := q.push(ctx, payload)
		if err != nil {
			return err
		}

		switch pushed {
		case pushOK:
			return nil
		case pushClosed:
			return queue.ErrClosed
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
		if backoff > q.config.MaxRetryBackoff {
			backoff = q.config.MaxRetryBackoff
		}
	}
}

// TryEnqueue adds an item at the tail of the queue without blocking.
// It fails with queue.ErrFull when the queue is at capacity.
func (q *Queue[T]) TryEnqueue(ctx context.Context, item T) error {
	payload, err := q.codec.Encode(item)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	pushed, err := q.push(ctx, payload)
	if err != nil {
		return err
	}

	switch pushed {
	case pushClosed:
		return queue.ErrClosed
	case pushFull:
		return queue.ErrFull
	}
	return nil
}

func (q *Queue[T]) push(ctx context.Context, payload []byte) (int, error) {
	pushed, err := pushScript.Run(ctx, q.client, []string{q.config.Key, q.closedKey}, payload, q.config.Capacity).Int()
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		return 0, fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}
	return pushed, nil
}

// Dequeue removes and returns the item at the head of the queue.
// It blocks in BLPOP time slices while the queue is empty, until an item
// arrives, the queue is closed and drained, or ctx is done.
func (q *Queue[T]) Dequeue(ctx context.Context) (T, error) {
	var zero T

	for {
		values, err := q.client.BLPop(ctx, q.config.BlockInterval, q.config.Key).Result()
		if err != nil {
			if errors.Is(err, redisV9.Nil) {
				// Slice elapsed with no item; check ctx and block again.
				if ctx.Err() != nil {
					return zero, ctx.Err()
				}
				continue
			}
			if ctx.Err() != nil {
				return zero, ctx.Err()
			}
			return zero, fmt.Errorf("%w: %v", ErrCommandFailed, err)
		}

		return q.decodePopped(ctx, values[1])
	}
}

// TryDequeue removes and returns the item at the head of the queue
// without blocking. It fails with queue.ErrEmpty when no item is available.
func (q *Queue[T]) TryDequeue(ctx context.Context) (T, error) {
	var zero T

	value, err := q.client.LPop(ctx, q.config.Key).Result()
	if err != nil {
		if errors.Is(err, redisV9.Nil) {
			return zero, queue.ErrEmpty
		}
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		return zero, fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}

	return q.decodePopped(ctx, value)
}

// decodePopped turns a popped list value into an item. A popped close
// sentinel is put back for sibling consumers and reported as ErrClosed;
// items enqueued while it was at the head rotate in front of it again.
func (q *Queue[T]) decodePopped(ctx context.Context, value string) (T, error) {
	var zero T

	if value == closedSentinel {
		if err := q.client.RPush(ctx, q.config.Key, closedSentinel).Err(); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrCommandFailed, err)
		}
		return zero, queue.ErrClosed
	}

	item, err := q.codec.Decode(utils.StringToBytes(value))
	if err != nil {
		return zero, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return item, nil
}

// Close marks the queue as closed. Enqueue fails from here on; consumers
// keep draining the items enqueued before the close and then observe
// ErrClosed. Closing an already closed queue is a no-op.
func (q *Queue[T]) Close() error {
	ctx := context.Background()

	set, err := q.client.SetNX(ctx, q.closedKey, "1", 0).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}
	if !set {
		return nil
	}

	// The sentinel lands behind every item already in the list, so
	// consumers drain before they see it.
	if err := q.client.RPush(ctx, q.config.Key, closedSentinel).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}
	return nil
}

// Size returns the length of the backing list. After Close the count
// includes the close sentinel while it sits in the list.
func (q *Queue[T]) Size(ctx context.Context) (int64, error) {
	size, err := q.client.LLen(ctx, q.config.Key).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}
	return size, nil
}

// IsClosed reports whether the queue has been closed.
func (q *Queue[T]) IsClosed(ctx context.Context) (bool, error) {
	exists, err := q.client.Exists(ctx, q.closedKey).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCommandFailed, err)
	}
	return exists == 1, nil
}
