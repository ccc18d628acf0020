package queue

import (
	"context"
	"fmt"
	"sync"
)

var _ Queue[int] = (*Blocking[int])(nil)

// Blocking is a mutex-guarded FIFO queue with blocking Enqueue and Dequeue.
// Producers parked on a full queue and consumers parked on an empty queue
// are kept in separate FIFO wait lists; every insert wakes at most one
// consumer and every removal wakes at most one producer. Woken callers
// re-check the queue state before proceeding, so a spurious or raced wakeup
// only costs another wait, never a broken invariant.
type Blocking[T any] struct {
	mu       sync.Mutex
	items    *ring[T]
	capacity int // 0 means unbounded
	closed   bool

	notFull  waitList // producers blocked on a full queue
	notEmpty waitList // consumers blocked on an empty queue

	enqueued uint64
	dequeued uint64
}

// NewBlocking creates a queue holding at most capacity items.
// Capacity zero means the queue is unbounded and Enqueue never blocks.
// A negative capacity fails with ErrNegativeCapacity.
func NewBlocking[T any](capacity int) (*Blocking[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	return &Blocking[T]{
		items:    newRing[T](capacity),
		capacity: capacity,
	}, nil
}

// Enqueue adds an item at the tail of the queue. When the queue is full it
// blocks until a slot frees up, the queue is closed, or ctx is done. It
// fails with ErrClosed after Close and with ctx.Err() on cancellation; in
// both cases the queue is left unchanged.
//
// Producers are admitted in arrival order: a new caller that finds other
// producers already waiting joins the back of the line even if a slot is
// free at that instant.
func (q *Blocking[T]) Enqueue(ctx context.Context, item T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for woken := false; ; woken = true {
		if q.closed {
			return ErrClosed
		}
		if !q.full() && (woken || q.notFull.len() == 0) {
			break
		}
		if err := q.notFull.wait(ctx, &q.mu, woken); err != nil {
			return err
		}
	}

	q.items.push(item)
	q.enqueued++
	q.notEmpty.notify()
	return nil
}

// Dequeue removes and returns the item at the head of the queue. When the
// queue is empty it blocks until an item arrives, the queue is closed, or
// ctx is done. A closed queue keeps serving Dequeue until it is drained,
// after which every call fails with ErrClosed.
func (q *Blocking[T]) Dequeue(ctx context.Context) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for woken := false; ; woken = true {
		if q.items.len() > 0 && (woken || q.notEmpty.len() == 0) {
			break
		}
		if q.closed {
			return zero, ErrClosed
		}
		if err := q.notEmpty.wait(ctx, &q.mu, woken); err != nil {
			return zero, err
		}
	}

	item := q.items.pop()
	q.dequeued++
	q.notFull.notify()
	return item, nil
}

// TryEnqueue adds an item only if that is possible without blocking. It
// fails with ErrFull on a full queue and ErrClosed on a closed one. Unlike
// Enqueue it does not respect the producer line and may overtake parked
// producers.
func (q *Blocking[T]) TryEnqueue(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if q.full() {
		return ErrFull
	}

	q.items.push(item)
	q.enqueued++
	q.notEmpty.notify()
	return nil
}

// TryDequeue removes and returns the head item only if one is immediately
// available. It fails with ErrEmpty on an empty queue and ErrClosed on an
// empty closed one.
func (q *Blocking[T]) TryDequeue() (T, error) {
	var zero T

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.len() == 0 {
		if q.closed {
			return zero, ErrClosed
		}
		return zero, ErrEmpty
	}

	item := q.items.pop()
	q.dequeued++
	q.notFull.notify()
	return item, nil
}

// Peek returns the head item without removing it. It fails with ErrEmpty on
// an empty queue and ErrClosed on an empty closed one.
func (q *Blocking[T]) Peek() (T, error) {
	var zero T

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.len() == 0 {
		if q.closed {
			return zero, ErrClosed
		}
		return zero, ErrEmpty
	}
	return q.items.peek(), nil
}

// Close marks the queue as closed and wakes every parked caller. It is
// idempotent and never fails. Items already queued stay readable through
// Dequeue and TryDequeue; new Enqueue calls fail with ErrClosed.
func (q *Blocking[T]) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true
	q.notFull.notifyAll()
	q.notEmpty.notifyAll()
	return nil
}

// Clear drops all queued items and returns how many were removed. Parked
// producers are woken since their slots are free again.
func (q *Blocking[T]) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	removed := q.items.len()
	if removed == 0 {
		return 0
	}
	q.items.reset()
	q.notFull.notifyAll()
	return removed
}

// Size returns the number of queued items. The value is a snapshot and may
// be stale by the time the caller acts on it.
func (q *Blocking[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.len()
}

// Capacity returns the maximum number of queued items, zero for unbounded.
func (q *Blocking[T]) Capacity() int {
	return q.capacity
}

// IsEmpty reports whether the queue currently holds no items.
func (q *Blocking[T]) IsEmpty() bool {
	return q.Size() == 0
}

// IsFull reports whether the queue is currently at capacity. An unbounded
// queue is never full.
func (q *Blocking[T]) IsFull() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.full()
}

// IsClosed reports whether Close has been called.
func (q *Blocking[T]) IsClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Stats returns a consistent snapshot of the queue counters.
func (q *Blocking[T]) Stats() Stats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return Stats{
		Size:            q.items.len(),
		Capacity:        q.capacity,
		Enqueued:        q.enqueued,
		Dequeued:        q.dequeued,
		BlockedEnqueues: q.notFull.len(),
		BlockedDequeues: q.notEmpty.len(),
		Closed:          q.closed,
	}
}

// full reports whether the queue is at capacity. Callers must hold mu.
func (q *Blocking[T]) full() bool {
	return q.capacity > 0 && q.items.len() >= q.capacity
}
