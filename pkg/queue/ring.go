package queue

import "github.com/syncq/go-syncq/pkg/utils"

const minRingCapacity = 8

// ring is a power-of-two sized circular buffer of items.
// It is not safe for concurrent use; Blocking guards it with its mutex.
type ring[T any] struct {
	buf   []T
	head  int // next position to pop from
	count int
}

// newRing creates a ring holding at least capacity items before it grows.
func newRing[T any](capacity int) *ring[T] {
	if capacity < minRingCapacity {
		capacity = minRingCapacity
	}
	return &ring[T]{buf: make([]T, utils.CeilToPowerOfTwo(capacity))}
}

func (r *ring[T]) wrapIndex(idx int) int { return idx & (len(r.buf) - 1) }

// push appends an item at the tail, doubling the buffer when it is full.
func (r *ring[T]) push(item T) {
	if r.count == len(r.buf) {
		r.grow()
	}
	r.buf[r.wrapIndex(r.head+r.count)] = item
	r.count++
}

// pop removes and returns the item at the head.
// The vacated slot is zeroed so the item can be collected.
func (r *ring[T]) pop() T {
	var zero T
	item := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = r.wrapIndex(r.head + 1)
	r.count--
	return item
}

// peek returns the item at the head without removing it.
func (r *ring[T]) peek() T {
	return r.buf[r.head]
}

// reset drops all items and zeroes their slots.
func (r *ring[T]) reset() {
	var zero T
	for i := 0; i < r.count; i++ {
		r.buf[r.wrapIndex(r.head+i)] = zero
	}
	r.head = 0
	r.count = 0
}

func (r *ring[T]) len() int { return r.count }

// grow doubles the buffer and re-packs the items starting at index zero.
func (r *ring[T]) grow() {
	newBuf := make([]T, len(r.buf)*2)
	n := copy(newBuf, r.buf[r.head:])
	copy(newBuf[n:], r.buf[:r.head])
	r.buf = newBuf
	r.head = 0
}
