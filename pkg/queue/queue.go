package queue

import "context"

// Queue is a generic interface for blocking FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item at the tail of the queue.
	// It blocks while the queue is full, until space becomes available,
	// the queue is closed, or ctx is done.
	Enqueue(ctx context.Context, item T) error

	// Dequeue removes and returns the item at the head of the queue.
	// It blocks while the queue is empty, until an item arrives,
	// the queue is closed and drained, or ctx is done.
	Dequeue(ctx context.Context) (T, error)

	// Close marks the queue as closed and wakes all blocked callers.
	// After Close, Enqueue fails with ErrClosed; Dequeue keeps draining
	// the remaining items and then fails with ErrClosed.
	Close() error
}
