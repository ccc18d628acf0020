package pump

import "context"

// Source is the queue surface the pump drains.
// It is satisfied by *queue.Blocking and *redisq.Queue.
type Source[T any] interface {
	// Dequeue removes and returns the item at the head of the queue.
	// It blocks while the queue is empty, until an item arrives,
	// the queue is closed and drained, or ctx is done.
	Dequeue(ctx context.Context) (T, error)
}
