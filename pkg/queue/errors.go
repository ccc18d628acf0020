package queue

import "errors"

var (
	// ErrClosed is returned by Enqueue after Close, and by Dequeue once a
	// closed queue has been drained.
	ErrClosed = errors.New("queue is closed")

	// ErrFull is returned by TryEnqueue when the queue is at capacity.
	ErrFull = errors.New("queue is full")

	// ErrEmpty is returned by TryDequeue and Peek when no item is available.
	ErrEmpty = errors.New("queue is empty")

	// ErrNegativeCapacity is returned by constructors for a capacity below zero.
	ErrNegativeCapacity = errors.New("queue capacity must not be negative")
)
